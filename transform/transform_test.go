package transform_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tinysprite/pntree/bitio"
	"github.com/tinysprite/pntree/transform"
)

func TestXORBitplanes(t *testing.T) {
	a := []byte{0b11001100, 0b00110011}
	dst := []byte{0b10101010, 0b00001111}
	want := []byte{0b01100110, 0b00111100}

	transform.XORBitplanes(a, dst)

	if diff := cmp.Diff(want, dst); diff != "" {
		t.Errorf("XORBitplanes() mismatch (-want +got):\n%s", diff)
	}
}

func TestSliceWriterRotateRight(t *testing.T) {
	buf := []byte{0b11001100, 0b00110011}
	want := []byte{0b00111100, 0b00110011}

	bitio.NewSliceWriter(buf).RotateRight(4, 8, 2)

	if diff := cmp.Diff(want, buf); diff != "" {
		t.Errorf("RotateRight() mismatch (-want +got):\n%s", diff)
	}
}

func TestAssembleBitplanesInPlace(t *testing.T) {
	buf := []byte{0b11001100, 0b11001100, 0b00110011, 0b00110011}
	want := []byte{0b01011010, 0b01011010, 0b01011010, 0b01011010}

	transform.AssembleBitplanesInPlace(buf)

	if diff := cmp.Diff(want, buf); diff != "" {
		t.Errorf("AssembleBitplanesInPlace() mismatch (-want +got):\n%s", diff)
	}
}

func TestDeltaDecodeInPlace(t *testing.T) {
	buf := []byte{0b00000001, 0b00100100, 0b00001000}
	want := []byte{0b11111111, 0b11100011, 0b00000111}

	transform.DeltaDecodeInPlace(buf)

	if diff := cmp.Diff(want, buf); diff != "" {
		t.Errorf("DeltaDecodeInPlace() mismatch (-want +got):\n%s", diff)
	}
}

func TestJumpDeltaDecodeInPlace(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		jump int
		want []byte
	}{
		{
			name: "jump 8",
			buf:  []byte{0b00111100, 0b00110100, 0b10110101},
			jump: 8,
			want: []byte{0b00111100, 0b00001000, 0b10111101},
		},
		{
			name: "jump 4",
			buf:  []byte{0b00100011, 0b00100100, 0b10000001},
			jump: 4,
			want: []byte{0b00010011, 0b01110101, 0b11100110},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := append([]byte(nil), tt.buf...)
			transform.JumpDeltaDecodeInPlace(buf, tt.jump)

			if diff := cmp.Diff(tt.want, buf); diff != "" {
				t.Errorf("JumpDeltaDecodeInPlace() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSplitAssembleRoundTrip(t *testing.T) {
	src := []byte{0xA5, 0x3C, 0x0F, 0xFF, 0x00, 0x81}

	left, right := transform.SplitBitplanes(src)
	merged := append(append([]byte(nil), left...), right...)

	transform.AssembleBitplanesInPlace(merged)

	if diff := cmp.Diff(src, merged); diff != "" {
		t.Errorf("split/assemble round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDeltaRoundTrip(t *testing.T) {
	src := []byte{0x00, 0xFF, 0xAA, 0x55, 0x81, 0x7E}

	encoded := transform.DeltaEncode(src)
	decoded := transform.DeltaDecode(encoded)

	if diff := cmp.Diff(src, decoded); diff != "" {
		t.Errorf("delta round trip mismatch (-want +got):\n%s", diff)
	}

	inPlace := append([]byte(nil), encoded...)
	transform.DeltaDecodeInPlace(inPlace)
	if diff := cmp.Diff(src, inPlace); diff != "" {
		t.Errorf("delta in-place round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestJumpDeltaRoundTrip(t *testing.T) {
	src := []byte{0x00, 0xFF, 0xAA, 0x55, 0x81, 0x7E, 0x3C, 0xC3}

	for jump := 4; jump <= 32; jump += 2 {
		encoded := transform.DeltaEncodeByJump(src, jump)
		decoded := append([]byte(nil), encoded...)
		transform.JumpDeltaDecodeInPlace(decoded, jump)

		if diff := cmp.Diff(src, decoded); diff != "" {
			t.Errorf("jump=%d round trip mismatch (-want +got):\n%s", jump, diff)
		}
	}
}
