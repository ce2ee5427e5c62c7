package codec

import "github.com/tinysprite/pntree/sprite"

// Codec is the interface implemented by each sprite compression scheme the
// runtime understands. A Codec only ever sees the packed raster and its
// compressed body — the container byte and sprite header that frame it on
// the wire are Assemble's and Parse's job (wire.go).
type Codec interface {
	// Encode compresses params.Raster into this codec's body bytes.
	Encode(params EncodeParams) ([]byte, error)

	// Decode decompresses body into a DecodeResult. width, height and bpp
	// come from the sprite header that preceded body on the wire, since
	// some codecs (PnTree) need them to size their output buffer before
	// they've decoded anything.
	Decode(body []byte, width, height int, bpp sprite.BitsPerPixel) (*DecodeResult, error)

	// CompType is this codec's 1-byte container tag (spec.md §6).
	CompType() byte

	// Name returns a human-readable name.
	Name() string
}

// EncodeParams carries everything a Codec needs to compress a packed raster.
type EncodeParams struct {
	Raster []byte
	Width  int
	Height int
	BPP    sprite.BitsPerPixel
}

// DecodeResult contains the result of decoding a sprite body.
type DecodeResult struct {
	Raster []byte
	Width  int
	Height int
	BPP    sprite.BitsPerPixel
}
