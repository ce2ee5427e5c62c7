package codec

import "github.com/tinysprite/pntree/sprite"

// compTypeUncompressed is the container byte for a sprite stored as a raw
// packed raster with no further compression (spec.md §6).
const compTypeUncompressed byte = 0

// Uncompressed is the identity codec: its body is the packed raster
// verbatim. It exists so every sprite can always be stored, even one the
// PnTree search fails to shrink, and so analyze can report how much the
// PnTree encoding actually saved.
type Uncompressed struct{}

// NewUncompressed returns the uncompressed codec.
func NewUncompressed() *Uncompressed { return &Uncompressed{} }

func (*Uncompressed) Name() string   { return "uncompressed" }
func (*Uncompressed) CompType() byte { return compTypeUncompressed }

func (*Uncompressed) Encode(params EncodeParams) ([]byte, error) {
	return append([]byte(nil), params.Raster...), nil
}

func (*Uncompressed) Decode(body []byte, width, height int, bpp sprite.BitsPerPixel) (*DecodeResult, error) {
	want := bpp.RasterLen(width, height)
	if len(body) < want {
		return nil, ErrShortSprite
	}
	return &DecodeResult{
		Raster: append([]byte(nil), body[:want]...),
		Width:  width,
		Height: height,
		BPP:    bpp,
	}, nil
}
