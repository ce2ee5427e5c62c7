package sprite

import (
	"fmt"
	"image"
	imgcolor "image/color"
	stdpng "image/png"
	"io"
)

// FromPNG decodes a PNG with image/png and reduces it to the Frame contract
// Normalize expects. image/png always hands back a fully unpacked
// image.Image regardless of the source bit depth, so every Frame produced
// here reports BitDepth 8 except for *image.Gray16, which keeps its 16-bit
// samples (BitDepth 16). *image.Paletted frames carry the raw index bytes
// (not their RGBA expansion), which is what Normalize's Indexed branch
// needs to see.
func FromPNG(r io.Reader) (*Frame, error) {
	img, err := stdpng.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("sprite: decode png: %w", err)
	}

	switch im := img.(type) {
	case *image.Paletted:
		return frameFromPaletted(im), nil
	case *image.Gray:
		return frameFromGray(im), nil
	case *image.Gray16:
		return frameFromGray16(im), nil
	case *image.NRGBA:
		return frameFromNRGBA(im), nil
	default:
		return frameFromGeneric(img), nil
	}
}

func frameFromPaletted(im *image.Paletted) *Frame {
	b := im.Bounds()
	w, h := b.Dx(), b.Dy()
	pixels := make([]byte, 0, w*h)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := im.Pix[(y-b.Min.Y)*im.Stride : (y-b.Min.Y)*im.Stride+w]
		pixels = append(pixels, row...)
	}
	return &Frame{Width: w, Height: h, BitDepth: 8, ColorType: Indexed, Pixels: pixels}
}

func frameFromGray(im *image.Gray) *Frame {
	b := im.Bounds()
	w, h := b.Dx(), b.Dy()
	pixels := make([]byte, 0, w*h)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := im.Pix[(y-b.Min.Y)*im.Stride : (y-b.Min.Y)*im.Stride+w]
		pixels = append(pixels, row...)
	}
	return &Frame{Width: w, Height: h, BitDepth: 8, ColorType: Gray, Pixels: pixels}
}

func frameFromGray16(im *image.Gray16) *Frame {
	b := im.Bounds()
	w, h := b.Dx(), b.Dy()
	pixels := make([]byte, 0, w*h*2)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := im.Pix[(y-b.Min.Y)*im.Stride : (y-b.Min.Y)*im.Stride+w*2]
		pixels = append(pixels, row...)
	}
	return &Frame{Width: w, Height: h, BitDepth: 16, ColorType: Gray, Pixels: pixels}
}

func frameFromNRGBA(im *image.NRGBA) *Frame {
	b := im.Bounds()
	w, h := b.Dx(), b.Dy()
	pixels := make([]byte, 0, w*h*4)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := im.Pix[(y-b.Min.Y)*im.Stride : (y-b.Min.Y)*im.Stride+w*4]
		pixels = append(pixels, row...)
	}
	return &Frame{Width: w, Height: h, BitDepth: 8, ColorType: RGBA, Pixels: pixels}
}

// frameFromGeneric handles any image.Image this adapter doesn't have a fast
// path for (image.RGBA, image.NRGBA64, image.CMYK, ...) by resampling every
// pixel through color.NRGBAModel.
func frameFromGeneric(img image.Image) *Frame {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pixels := make([]byte, 0, w*h*4)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := imgcolor.NRGBAModel.Convert(img.At(x, y)).(imgcolor.NRGBA)
			pixels = append(pixels, c.R, c.G, c.B, c.A)
		}
	}
	return &Frame{Width: w, Height: h, BitDepth: 8, ColorType: RGBA, Pixels: pixels}
}
