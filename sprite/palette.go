package sprite

import (
	"bytes"
	"encoding/binary"

	"golang.org/x/exp/slices"
)

// color is an 8-bit-per-channel RGBA sample, compressed down from whatever
// bit depth and color type the source pixel carried.
type color struct {
	r, g, b, a uint8
}

// brightness is the perceptual luminance weighting from spec.md §3,
// multiplied by the (compressed) alpha channel.
func (c color) brightness() float32 {
	return (float32(c.r)*0.2126 + float32(c.g)*0.7152 + float32(c.b)*0.0722) * float32(c.a)
}

// compressToU8 collapses a sample to 8 bits: bit depths up to 8 already
// occupy one byte verbatim, and 16-bit samples take the most significant
// byte.
func compressToU8(sample []byte) uint8 {
	return sample[0]
}

func colorFromSample(sample []byte, ct ColorType) color {
	if n := ct.components(); n > 0 && len(sample) == 2*n {
		// 16-bit depth: keep each channel's most significant byte.
		msb := make([]byte, n)
		for i := range msb {
			msb[i] = sample[2*i]
		}
		sample = msb
	}
	switch ct {
	case Gray:
		g := compressToU8(sample)
		return color{g, g, g, 1}
	case GrayAlpha:
		g := compressToU8(sample[0:1])
		a := compressToU8(sample[1:2])
		return color{g, g, g, a}
	case RGB:
		return color{
			compressToU8(sample[0:1]),
			compressToU8(sample[1:2]),
			compressToU8(sample[2:3]),
			1,
		}
	case RGBA:
		return color{
			compressToU8(sample[0:1]),
			compressToU8(sample[1:2]),
			compressToU8(sample[2:3]),
			compressToU8(sample[3:4]),
		}
	default:
		return color{}
	}
}

// paletteEntry is one discovered color: its raw sample tuple (the map key,
// byte-for-byte as it appeared in the frame), the order it was first seen
// in, and (once assigned) its final palette index.
type paletteEntry struct {
	key  []byte
	seen int
}

// buildPalette walks the frame in raster order, assigning each distinct
// sample tuple a discovery-order index. It fails with a *TooManyColorsError
// at the (x, y) of a fifth distinct color, matching spec.md §4.3 step 3 —
// this check does not apply to Indexed frames, whose palette short-circuits
// (see buildIndexedPalette).
func buildPalette(f *Frame) (entries []paletteEntry, err error) {
	seen := make(map[string]int)

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			sample := f.pixelBytes(x, y)
			k := string(sample)
			if _, ok := seen[k]; ok {
				continue
			}
			if len(seen) >= 4 {
				return nil, &TooManyColorsError{X: x, Y: y}
			}
			seen[k] = len(entries)
			entries = append(entries, paletteEntry{key: append([]byte(nil), sample...), seen: len(entries)})
		}
	}
	return entries, nil
}

// sortByBrightnessDescending reassigns palette indices so that the
// brightest color gets index 0 (spec.md §4.3 step 4). Ties are broken by
// comparing the raw sample bytes rather than discovery order, so that two
// frames sharing the same set of colors land on the same ordering
// regardless of which pixel happened to introduce each color first (the
// "palette stability" property in spec.md §8).
func sortByBrightnessDescending(entries []paletteEntry, ct ColorType) []int {
	type scored struct {
		idx        int
		brightness float32
		key        []byte
	}
	scoredEntries := make([]scored, len(entries))
	for i, e := range entries {
		scoredEntries[i] = scored{
			idx:        i,
			brightness: colorFromSample(e.key, ct).brightness(),
			key:        e.key,
		}
	}

	slices.SortFunc(scoredEntries, func(a, b scored) int {
		if a.brightness > b.brightness {
			return -1
		}
		if a.brightness < b.brightness {
			return 1
		}
		return bytes.Compare(a.key, b.key)
	})

	// indexByDiscovery[discoveryIndex] = final palette index
	indexByDiscovery := make([]int, len(entries))
	for finalIdx, s := range scoredEntries {
		indexByDiscovery[s.idx] = finalIdx
	}
	return indexByDiscovery
}

// assumeU8 mirrors the original tool's Indexed-path index extraction: for
// bit depths up to 8 the sample already is the index; for 16-bit depth (not
// valid PNG but handled formally) the index is truncated from the
// big-endian uint16 sample rather than scaled, unlike compressToU8.
func assumeU8(sample []byte, bitDepth int) uint8 {
	if bitDepth == 16 {
		return uint8(binary.BigEndian.Uint16(sample))
	}
	return sample[0]
}

// buildIndexedPalette preserves the PNG's own palette indices directly,
// without a brightness re-sort — spec.md §4.3's documented Indexed
// short-circuit (DESIGN NOTES point (i)). It also does not enforce the
// four-color cap: indexed sprites are trusted to already carry a small
// index range.
func buildIndexedPalette(f *Frame) (colorCount int) {
	seen := make(map[uint8]bool)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			idx := assumeU8(f.pixelBytes(x, y), f.BitDepth)
			seen[idx] = true
		}
	}
	return len(seen)
}
