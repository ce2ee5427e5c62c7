// Package transform implements the pure, reversible bit-level transforms
// that make up the PnTree pipeline: bitplane split/assemble, bitplane XOR,
// sequential delta, and jump delta. Every transform here has a documented
// inverse; the encoder and decoder pipelines that compose them must stay
// exact inverses of each other (see pntree's encode/decode).
package transform

import "github.com/tinysprite/pntree/bitio"

// SplitBitplanes consumes pairs of bits from src and distributes the first
// of each pair into left, the second into right. When len(src)*8 is even
// (guaranteed for sprite rasters, whose bit count is a multiple of 8) left
// and right end up the same length.
func SplitBitplanes(src []byte) (left, right []byte) {
	totalBits := len(src) * 8
	r := bitio.NewReader(src)

	var leftBuf, rightBuf []byte
	lw := bitio.NewVecWriter(&leftBuf)
	rw := bitio.NewVecWriter(&rightBuf)

	toLeft := true
	for i := 0; i < totalBits; i++ {
		bit, _ := r.ReadBit()
		if toLeft {
			lw.WriteBit(bit)
		} else {
			rw.WriteBit(bit)
		}
		toLeft = !toLeft
	}
	return lw.Bytes(), rw.Bytes()
}

// AssembleBitplanesInPlace is the in-place inverse of SplitBitplanes: given
// a buffer holding left ++ right, it rewrites it in place into the
// interleaved a1,b1,a2,b2,... order, without allocating a scratch buffer.
//
// This is the classic "in-shuffle" permutation. The first and last bits of
// the buffer are fixed points, so the recursion starts at bit 1 and covers
// len(buf)*8-2 bits; each level finds the largest power of three not
// exceeding size+1, rotates the middle of that span into place, walks the
// permutation's cycles with a single swap-chain per cycle leader, and
// recurses on the remaining suffix.
func AssembleBitplanesInPlace(buf []byte) {
	w := bitio.NewSliceWriter(buf)
	inShuffle(w, 1, len(buf)*8-2)
}

func inShuffle(w *bitio.SliceWriter, start, size int) {
	if size == 0 || size%2 == 1 {
		return
	}
	n := size / 2

	i := 1
	for i*3 <= size+1 {
		i *= 3
	}
	m := (i - 1) / 2

	w.RotateRight(m+start, m+n+start, m)

	for m := 1; m < i-1; m *= 3 {
		idx := start + (m*2)%i - 1
		tmp1 := w.ReadAt(idx)
		w.WriteBitAt(w.ReadAt(start+m-1), idx)

		for j := (m * 2) % i; j != m; j = (j * 2) % i {
			idx := start + (j*2)%i - 1
			tmp2 := w.ReadAt(idx)
			w.WriteBitAt(tmp1, idx)
			tmp1 = tmp2
		}
	}

	inShuffle(w, start+i-1, size-(i-1))
}
