package transform

import "github.com/tinysprite/pntree/bitio"

// DeltaEncodeByJump passes the first `jump` bits of src through unchanged,
// then for every later bit emits src[i] XOR src[i-jump]. It generalizes
// DeltaEncode, whose predecessor distance is fixed at 1.
func DeltaEncodeByJump(src []byte, jump int) []byte {
	r := bitio.NewReader(src)
	var out []byte
	w := bitio.NewVecWriter(&out)

	for i := 0; i < jump; i++ {
		bit, ok := r.ReadBit()
		if !ok {
			return w.Bytes()
		}
		w.WriteBit(bit)
	}

	total := len(src) * 8
	for i := jump; i < total; i++ {
		b1, _ := r.ReadAt(i - jump)
		b2, _ := r.ReadAt(i)
		w.WriteBit(b1 != b2)
	}
	return w.Bytes()
}

// JumpDeltaDecodeInPlace is the in-place inverse of DeltaEncodeByJump. It
// walks forward from bit `jumpSize`, XORing each bit with the
// already-rewritten bit `jumpSize` positions earlier; the first `jumpSize`
// bits are left untouched, mirroring the encoder's verbatim prefix.
func JumpDeltaDecodeInPlace(buf []byte, jumpSize int) {
	length := len(buf) * 8
	w := bitio.NewSliceWriter(buf)

	for pos := jumpSize; pos < length; pos++ {
		bJump := w.ReadAt(pos - jumpSize)
		bCur := w.ReadAt(pos)
		w.WriteBitAt(bJump != bCur, pos)
	}
}
