package transform

import "github.com/tinysprite/pntree/bitio"

// DeltaEncode emits, for each bit of src, 1 where it differs from the
// previous bit (0 initially) and 0 where it matches; i.e. XOR against a
// running predecessor.
func DeltaEncode(src []byte) []byte {
	r := bitio.NewReader(src)
	var out []byte
	w := bitio.NewVecWriter(&out)

	last := false
	for {
		bit, ok := r.ReadBit()
		if !ok {
			break
		}
		w.WriteBit(bit != last)
		last = bit
	}
	return w.Bytes()
}

// DeltaDecode is the buffer-to-buffer inverse of DeltaEncode: it accumulates
// a running XOR, flipping the current value whenever the input bit is 1.
func DeltaDecode(src []byte) []byte {
	r := bitio.NewReader(src)
	var out []byte
	w := bitio.NewVecWriter(&out)

	cur := false
	for {
		bit, ok := r.ReadBit()
		if !ok {
			break
		}
		if bit {
			cur = !cur
		}
		w.WriteBit(cur)
	}
	return w.Bytes()
}

// DeltaDecodeInPlace applies DeltaDecode's transform directly on buf,
// the form the heap-free decoder (C5) needs: it reads each bit before
// overwriting it with the running accumulator.
func DeltaDecodeInPlace(buf []byte) {
	length := len(buf) * 8
	w := bitio.NewSliceWriter(buf)

	cur := false
	for pos := 0; pos < length; pos++ {
		if w.ReadAt(pos) {
			cur = !cur
		}
		w.WriteBit(cur)
	}
}
