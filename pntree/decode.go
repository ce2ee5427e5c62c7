package pntree

import "github.com/tinysprite/pntree/transform"

// DecodeInPlace inverts Encode's transform pipeline for the given header,
// entropy-decoding payload directly into dst and then undoing each
// transform in the reverse of the order Encode applied them: jump delta,
// then sequential delta, then bitplane xor, then bitplane assembly. dst must
// already be sized to the sprite's packed raster length; no allocation
// happens here, matching the heap-free decoder requirement (spec.md §5).
func DecodeInPlace(payload []byte, dst []byte, h Header) {
	decodeEntropy(payload, dst, len(dst)*8)

	for i := 0; i < h.JumpDeltaPasses; i++ {
		transform.JumpDeltaDecodeInPlace(dst, h.JumpDeltaSize)
	}
	for i := 0; i < h.SeqDeltaPasses; i++ {
		transform.DeltaDecodeInPlace(dst)
	}
	if h.Split {
		if h.Xor {
			half := len(dst) / 2
			transform.XORBitplanes(dst[half:], dst[:half])
		}
		transform.AssembleBitplanesInPlace(dst)
	}
}
