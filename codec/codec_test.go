package codec

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tinysprite/pntree/sprite"
)

func checkerboardSprite() *sprite.Sprite {
	return &sprite.Sprite{
		Bytes:  []byte{0x55, 0xAA, 0x55, 0xAA, 0x55, 0xAA, 0x55, 0xAA},
		Width:  8,
		Height: 8,
		BPP:    sprite.One,
	}
}

func TestAssembleParseRoundTripUncompressed(t *testing.T) {
	s := checkerboardSprite()
	wire, err := Assemble("uncompressed", s)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if wire[0] != compTypeUncompressed {
		t.Fatalf("container byte = %d, want %d", wire[0], compTypeUncompressed)
	}

	got, err := Parse(wire)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if diff := cmp.Diff(s, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestAssembleParseRoundTripPnTree(t *testing.T) {
	s := checkerboardSprite()
	wire, err := Assemble("pntree", s)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if wire[0] != compTypePnTree {
		t.Fatalf("container byte = %d, want %d", wire[0], compTypePnTree)
	}

	got, err := Parse(wire)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if diff := cmp.Diff(s, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestParseUnknownCompType(t *testing.T) {
	_, err := Parse([]byte{0x7F, 8, 8, 0, 0, 0, 0, 0})
	if err == nil {
		t.Fatal("Parse() expected error for unknown comp-type, got nil")
	}
}

func TestAssembleSmallestPicksPnTreeForCompressibleSprite(t *testing.T) {
	s := &sprite.Sprite{Bytes: make([]byte, 64), Width: 64, Height: 8, BPP: sprite.One}
	wire, err := AssembleSmallest(s)
	if err != nil {
		t.Fatalf("AssembleSmallest() error = %v", err)
	}
	if wire[0] != compTypePnTree {
		t.Errorf("container byte = %d, want PnTree (%d) for an all-zero sprite", wire[0], compTypePnTree)
	}
}
