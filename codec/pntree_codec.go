package codec

import (
	"github.com/tinysprite/pntree/pntree"
	"github.com/tinysprite/pntree/sprite"
)

// compTypePnTree is the container byte for a sprite compressed with the
// PnTree transform-search codec (spec.md §6).
const compTypePnTree byte = 1

// PnTree wraps the transform-search compressor (pntree.Encode) and its
// exact in-place inverse (pntree.DecodeInPlace) as a Codec. Its body is the
// 2-byte codec header followed by the entropy-coded payload.
type PnTree struct{}

// NewPnTree returns the PnTree codec.
func NewPnTree() *PnTree { return &PnTree{} }

func (*PnTree) Name() string   { return "pntree" }
func (*PnTree) CompType() byte { return compTypePnTree }

func (*PnTree) Encode(params EncodeParams) ([]byte, error) {
	header, payload := pntree.Encode(params.Raster)
	hdrBytes := header.Encode()
	body := make([]byte, 0, 2+len(payload))
	body = append(body, hdrBytes[:]...)
	body = append(body, payload...)
	return body, nil
}

func (*PnTree) Decode(body []byte, width, height int, bpp sprite.BitsPerPixel) (*DecodeResult, error) {
	if len(body) < 2 {
		return nil, ErrShortSprite
	}
	header := pntree.ParseHeader([2]byte{body[0], body[1]})
	dst := make([]byte, bpp.RasterLen(width, height))
	pntree.DecodeInPlace(body[2:], dst, header)
	return &DecodeResult{Raster: dst, Width: width, Height: height, BPP: bpp}, nil
}
