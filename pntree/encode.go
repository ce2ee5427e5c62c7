package pntree

import "github.com/tinysprite/pntree/transform"

// minJumpSize and maxJumpSize bound the jump-delta distance the search
// explores, matching the step-2 range the transform's reference
// implementation sweeps (spec.md §4.2 "jump delta").
const (
	minJumpSize  = 4
	maxJumpSize  = 32
	jumpSizeStep = 2
	maxSeqDelta  = 4
	maxJumpPass  = 2
)

// Encode runs the exhaustive parameter search described in spec.md §4
// (split × xor × sequential-delta passes × jump-delta passes × jump size)
// and returns the header and entropy-coded payload of whichever
// configuration produced the smallest output. Ties are broken by the
// iteration order below: split outer, then xor, then ascending sequential
// delta passes, then ascending jump-delta passes, then ascending jump size.
func Encode(raster []byte) (Header, []byte) {
	var bestHeader Header
	var bestPayload []byte
	haveBest := false

	consider := func(h Header, transformed []byte) {
		payload := encodeEntropy(transformed)
		if !haveBest || len(payload) < len(bestPayload) {
			bestHeader = h
			bestPayload = payload
			haveBest = true
		}
	}

	for _, split := range []bool{false, true} {
		for _, xor := range []bool{false, true} {
			if xor && !split {
				// xor has no effect without a prior split; skip the
				// redundant half of the grid rather than score it twice.
				continue
			}
			base := applySplitXor(raster, split, xor)

			for seq := 0; seq <= maxSeqDelta; seq++ {
				afterSeq := applySeqDelta(base, seq)

				consider(Header{Split: split, Xor: xor, SeqDeltaPasses: seq, JumpDeltaPasses: 0, JumpDeltaSize: minJumpSize}, afterSeq)

				for jumpPasses := 1; jumpPasses <= maxJumpPass; jumpPasses++ {
					for jumpSize := minJumpSize; jumpSize <= maxJumpSize; jumpSize += jumpSizeStep {
						afterJump := applyJumpDelta(afterSeq, jumpPasses, jumpSize)
						consider(Header{Split: split, Xor: xor, SeqDeltaPasses: seq, JumpDeltaPasses: jumpPasses, JumpDeltaSize: jumpSize}, afterJump)
					}
				}
			}
		}
	}

	return bestHeader, bestPayload
}

func applySplitXor(raster []byte, split, xor bool) []byte {
	if !split {
		return append([]byte(nil), raster...)
	}
	left, right := transform.SplitBitplanes(raster)
	if xor {
		transform.XORBitplanes(right, left)
	}
	return append(left, right...)
}

func applySeqDelta(buf []byte, passes int) []byte {
	for i := 0; i < passes; i++ {
		buf = transform.DeltaEncode(buf)
	}
	return buf
}

func applyJumpDelta(buf []byte, passes, jumpSize int) []byte {
	for i := 0; i < passes; i++ {
		buf = transform.DeltaEncodeByJump(buf, jumpSize)
	}
	return buf
}
