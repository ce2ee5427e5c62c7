package sprite

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func grayFrame(width, height int, rows [][]byte) *Frame {
	pixels := make([]byte, 0, width*height)
	for _, row := range rows {
		pixels = append(pixels, row...)
	}
	return &Frame{Width: width, Height: height, BitDepth: 8, ColorType: Gray, Pixels: pixels}
}

func TestNormalizeCheckerboard(t *testing.T) {
	// 8x8 checkerboard, two colors -> 1 bpp.
	rows := make([][]byte, 8)
	for y := 0; y < 8; y++ {
		row := make([]byte, 8)
		for x := 0; x < 8; x++ {
			if (x+y)%2 == 0 {
				row[x] = 0xFF // brighter -> index 0
			} else {
				row[x] = 0x00 // darker -> index 1
			}
		}
		rows[y] = row
	}
	f := grayFrame(8, 8, rows)

	s, err := Normalize(f)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if s.BPP != One {
		t.Fatalf("BPP = %v, want One", s.BPP)
	}

	// Row y=0 starts bright (index 0) at x=0 and alternates; row y=1 starts
	// dark (index 1) at x=0, so MSB-first packing alternates 0x55/0xAA.
	want := []byte{0x55, 0xAA, 0x55, 0xAA, 0x55, 0xAA, 0x55, 0xAA}
	if diff := cmp.Diff(want, s.Bytes); diff != "" {
		t.Errorf("checkerboard raster mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeVerticalStripes(t *testing.T) {
	// Left half bright (index 0), right half dark (index 1); MSB-first
	// packing puts the left stripe in the high bits of each byte.
	rows := make([][]byte, 8)
	for y := 0; y < 8; y++ {
		row := make([]byte, 8)
		for x := 0; x < 8; x++ {
			if x < 4 {
				row[x] = 0xFF
			} else {
				row[x] = 0x00
			}
		}
		rows[y] = row
	}
	f := grayFrame(8, 8, rows)

	s, err := Normalize(f)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	want := []byte{0x0F, 0x0F, 0x0F, 0x0F, 0x0F, 0x0F, 0x0F, 0x0F}
	if diff := cmp.Diff(want, s.Bytes); diff != "" {
		t.Errorf("vertical stripes raster mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeTooManyColors(t *testing.T) {
	rows := [][]byte{{0, 50, 100, 150, 200}}
	f := grayFrame(5, 1, rows)
	// Pad to a multiple of 8 pixels by using 8 width instead.
	f = grayFrame(8, 1, [][]byte{{0, 50, 100, 150, 200, 0, 0, 0}})

	_, err := Normalize(f)
	if err == nil {
		t.Fatal("Normalize() expected error for five distinct colors, got nil")
	}
	var tooMany *TooManyColorsError
	if !errors.As(err, &tooMany) {
		t.Fatalf("Normalize() error = %v, want *TooManyColorsError", err)
	}
	if tooMany.X != 4 || tooMany.Y != 0 {
		t.Errorf("TooManyColorsError location = (%d,%d), want (4,0)", tooMany.X, tooMany.Y)
	}
}

func TestPaletteBrightnessOrderIsDiscoveryIndependent(t *testing.T) {
	colors := [][]byte{
		{255, 255, 255}, // brightest
		{200, 0, 0},
		{0, 200, 0},
		{0, 0, 0}, // darkest
	}

	forward := []paletteEntry{
		{key: colors[0], seen: 0},
		{key: colors[1], seen: 1},
		{key: colors[2], seen: 2},
		{key: colors[3], seen: 3},
	}
	reversed := []paletteEntry{
		{key: colors[3], seen: 0},
		{key: colors[2], seen: 1},
		{key: colors[1], seen: 2},
		{key: colors[0], seen: 3},
	}

	fwdIdx := sortByBrightnessDescending(forward, RGB)
	revIdx := sortByBrightnessDescending(reversed, RGB)

	byColor := func(entries []paletteEntry, idx []int, c []byte) int {
		for i, e := range entries {
			if string(e.key) == string(c) {
				return idx[i]
			}
		}
		t.Fatalf("color %v not found", c)
		return -1
	}

	for _, c := range colors {
		if byColor(forward, fwdIdx, c) != byColor(reversed, revIdx, c) {
			t.Errorf("color %v got different final index depending on discovery order", c)
		}
	}
}

func TestNormalizeIndexedPreservesRawIndices(t *testing.T) {
	// Indexed frames skip the brightness sort: raw index values pass
	// straight through, even if index 1 is brighter than index 0 in
	// whatever PLTE this represents.
	f := &Frame{
		Width: 8, Height: 1, BitDepth: 8, ColorType: Indexed,
		Pixels: []byte{0, 1, 0, 1, 0, 1, 0, 1},
	}
	s, err := Normalize(f)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	want := []byte{0b01010101}
	if diff := cmp.Diff(want, s.Bytes); diff != "" {
		t.Errorf("indexed raster mismatch (-want +got):\n%s", diff)
	}
}

