package codec

import (
	"fmt"

	"github.com/tinysprite/pntree/sprite"
)

func init() {
	Register(NewUncompressed())
	Register(NewPnTree())
}

// Assemble encodes s with the named codec and frames the result with the
// container byte and 3-byte sprite header that make up a complete on-wire
// sprite (spec.md §6).
func Assemble(codecName string, s *sprite.Sprite) ([]byte, error) {
	c, err := Get(codecName)
	if err != nil {
		return nil, fmt.Errorf("assemble sprite: %w", err)
	}
	body, err := c.Encode(EncodeParams{Raster: s.Bytes, Width: s.Width, Height: s.Height, BPP: s.BPP})
	if err != nil {
		return nil, fmt.Errorf("assemble sprite: %w", err)
	}
	hdr := s.Header()
	out := make([]byte, 0, 1+len(hdr)+len(body))
	out = append(out, c.CompType())
	out = append(out, hdr[:]...)
	out = append(out, body...)
	return out, nil
}

// Parse reads a complete on-wire sprite: container byte, 3-byte sprite
// header, and codec-specific body.
func Parse(data []byte) (*sprite.Sprite, error) {
	if len(data) < 4 {
		return nil, ErrShortSprite
	}
	c, err := GetByCompType(data[0])
	if err != nil {
		return nil, err
	}
	width := int(data[1])
	height := int(data[2])
	bpp, err := sprite.BitsPerPixelFromFlags(data[3])
	if err != nil {
		return nil, err
	}
	result, err := c.Decode(data[4:], width, height, bpp)
	if err != nil {
		return nil, fmt.Errorf("parse sprite: %w", err)
	}
	return &sprite.Sprite{Bytes: result.Raster, Width: result.Width, Height: result.Height, BPP: result.BPP}, nil
}

// AssembleSmallest tries every registered codec and returns the smallest
// resulting on-wire encoding, so a sprite is never stored larger than its
// uncompressed form even when PnTree's search can't beat it.
func AssembleSmallest(s *sprite.Sprite) ([]byte, error) {
	var best []byte
	for _, c := range List() {
		out, err := Assemble(c.Name(), s)
		if err != nil {
			return nil, err
		}
		if best == nil || len(out) < len(best) {
			best = out
		}
	}
	return best, nil
}
