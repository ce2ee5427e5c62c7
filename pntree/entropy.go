package pntree

import (
	"math/bits"

	"github.com/tinysprite/pntree/bitio"
)

// entropyStateKind distinguishes the two states the encoder's pair-wise
// run-length/verbatim coder can be in (spec.md §4.4): a run of (0,0) pairs,
// or a run of one or more consecutive non-(0,0) pairs.
type entropyStateKind uint8

const (
	stateZeroes entropyStateKind = iota
	stateRoot
)

// entropyState is the coder's one-pair lookahead buffer: it always holds
// the most recently seen pair, flushed by writeState once the next pair
// forces a transition. In the Root case, b1/b2 are the most recent nonzero
// pair, not a value every pair in the run shares — a run of nonzero pairs
// is coded as a literal 2-bit emission per pair, not as a repeated value.
type entropyState struct {
	kind   entropyStateKind
	n      int // Zeroes: number of (0,0) pairs seen so far
	b1, b2 bool
	i      int // Root: number of consecutive non-(0,0) pairs seen so far
}

// writeState emits the terminal code for state: a Golomb-style length/value
// pair for a zero run, or the literal two bits for a root pair (spec.md
// §4.4, "Zeroes(n)" / "Root(lb1,lb2,i)").
func writeState(w *bitio.VecWriter, s entropyState) {
	if s.kind == stateZeroes {
		n := s.n + 1
		hb := bits.Len(uint(n))
		f := 1 << uint(hb-1)
		v := n &^ f
		l := f - 2
		w.Write(uint32(l), hb-1)
		w.Write(uint32(v), hb-1)
		return
	}
	w.WriteBit(s.b1)
	w.WriteBit(s.b2)
}

// encodeEntropy runs the pair-wise run-length/verbatim coder over bits
// (already transformed by the search loop's chosen pipeline) and returns the
// entropy-coded byte stream. Input whose bit count is odd has its final bit
// padded with an implicit 0, per spec.md §4.4's framing rule; every caller in
// this package only ever passes a byte-aligned buffer, so this never
// triggers in practice.
func encodeEntropy(bitsSrc []byte) []byte {
	r := bitio.NewReader(bitsSrc)
	var out []byte
	w := bitio.NewVecWriter(&out)

	b1, ok := r.ReadBit()
	if !ok {
		return out
	}
	b2, ok2 := r.ReadBit()
	if !ok2 {
		b2 = false
	}

	var state entropyState
	if !b1 && !b2 {
		state = entropyState{kind: stateZeroes, n: 1}
	} else {
		state = entropyState{kind: stateRoot, b1: b1, b2: b2, i: 1}
	}
	w.WriteBit(state.kind == stateRoot)

	for {
		nb1, ok := r.ReadBit()
		if !ok {
			if state.kind == stateRoot && state.i == 1 {
				// A lone final pair still needs the StartVerbatim framing
				// the decoder reads ahead of it.
				if !(state.b1 && state.b2) {
					w.WriteBit(false)
					w.WriteBit(state.b1)
					break
				}
				w.WriteBit(true)
			}
			writeState(w, state)
			break
		}
		nb2, ok2 := r.ReadBit()
		if !ok2 {
			nb2 = false
		}

		switch state.kind {
		case stateZeroes:
			if !nb1 && !nb2 {
				state.n++
			} else {
				writeState(w, state)
				state = entropyState{kind: stateRoot, b1: nb1, b2: nb2, i: 1}
			}
		case stateRoot:
			if !nb1 && !nb2 {
				switch {
				case state.i == 1 && !(state.b1 && state.b2):
					w.WriteBit(false)
					w.WriteBit(state.b1)
				case state.i == 1 && state.b1 && state.b2:
					w.WriteBit(true)
					writeState(w, state)
					w.WriteBit(false)
					w.WriteBit(false)
				default:
					writeState(w, state)
					w.WriteBit(false)
					w.WriteBit(false)
				}
				state = entropyState{kind: stateZeroes, n: 1}
			} else {
				if state.i == 1 {
					w.WriteBit(true)
				}
				writeState(w, state)
				state = entropyState{kind: stateRoot, b1: nb1, b2: nb2, i: state.i + 1}
			}
		}
	}
	return w.Bytes()
}

// decodeState is the decoder's three-way counterpart to the encoder's
// Zeroes/Root split (spec.md §4.5). StartVerbatim is entered after every
// zero run (and at the start when the opening framing bit is 1); it reads
// one bit that chooses between a single isolated nonzero pair and a run of
// literal pairs (Verbatim).
type decodeState uint8

const (
	stateStartVerbatim decodeState = iota
	stateVerbatim
	stateRle
)

// decodeEntropy inverts encodeEntropy, writing decoded (b1,b2) pairs into
// dst starting at bit 0 until targetBits bits have been produced. dst must
// already be sized to hold at least targetBits/8 bytes; decodeEntropy
// performs no allocation, matching the heap-free decoder (C5).
func decodeEntropy(src []byte, dst []byte, targetBits int) {
	r := bitio.NewReader(src)
	w := bitio.NewSliceWriter(dst)
	written := 0

	writePair := func(b1, b2 bool) {
		if written >= targetBits {
			return
		}
		w.WriteBit(b1)
		written++
		if written >= targetBits {
			return
		}
		w.WriteBit(b2)
		written++
	}

	startVerbatim, ok := r.ReadBit()
	if !ok {
		return
	}
	state := stateRle
	if startVerbatim {
		state = stateStartVerbatim
	}

	for written < targetBits {
		switch state {
		case stateStartVerbatim:
			moreThanOne, ok := r.ReadBit()
			if !ok {
				return
			}
			if !moreThanOne {
				kind, ok := r.ReadBit()
				if !ok {
					return
				}
				if kind {
					writePair(true, false)
				} else {
					writePair(false, true)
				}
				state = stateRle
			} else {
				state = stateVerbatim
			}
		case stateVerbatim:
			b1, ok := r.ReadBit()
			if !ok {
				return
			}
			b2, ok := r.ReadBit()
			if !ok {
				return
			}
			if !b1 && !b2 {
				state = stateRle
			} else {
				writePair(b1, b2)
			}
		case stateRle:
			length := 0
			runBits := 0
			frontBit, ok := r.ReadBit()
			for ok && frontBit {
				length++
				runBits = runBits<<1 | 1
				frontBit, ok = r.ReadBit()
			}
			length++
			runBits <<= 1

			tail := 0
			for j := 0; j < length; j++ {
				b, ok := r.ReadBit()
				if !ok {
					break
				}
				tail = tail<<1 | boolToInt(b)
			}
			sum := runBits + tail + 1

			for j := 0; j < sum && written < targetBits; j++ {
				writePair(false, false)
			}
			state = stateStartVerbatim
		}
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
