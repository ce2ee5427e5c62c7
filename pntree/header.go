// Package pntree implements the PnTree transform-search compressor (C4) and
// its exact in-place inverse (C5): bitplane splitting, bitplane XOR,
// sequential and jump delta encoding, and a pair-wise run-length/verbatim
// entropy coder, tied together by a 2-byte codec header.
package pntree

import "errors"

// Header is the 2-byte codec header (spec.md §3 "Codec header") describing
// which transforms the encoder applied and in what configuration.
type Header struct {
	Split           bool
	Xor             bool
	SeqDeltaPasses  int // 0-4
	JumpDeltaPasses int // 0-2
	JumpDeltaSize   int // one of 4, 6, 8, ..., 32
}

// ErrInvalidCompType names a container byte that is neither 0
// (uncompressed) nor 1 (PnTree). No function in this package returns it;
// codec.Parse reports that case with codec.ErrInvalidCompType.
var ErrInvalidCompType = errors.New("pntree: invalid compression type")

// Encode packs the header into its 2-byte wire form (spec.md §3 byte 0/1).
func (h Header) Encode() [2]byte {
	var b0 byte
	if h.Split {
		b0 |= 1 << 0
	}
	if h.Xor {
		b0 |= 1 << 1
	}
	b0 |= byte(h.SeqDeltaPasses&0x0F) << 2
	b0 |= byte(h.JumpDeltaPasses&0x03) << 6
	return [2]byte{b0, byte(h.JumpDeltaSize)}
}

// ParseHeader decodes a 2-byte codec header. It performs no validation
// beyond the bit layout itself: reserved seq-delta values (5-15, see
// spec.md DESIGN NOTES point (ii)) parse structurally even though the
// encoder's search never produces them.
func ParseHeader(b [2]byte) Header {
	return Header{
		Split:           b[0]&(1<<0) != 0,
		Xor:             b[0]&(1<<1) != 0,
		SeqDeltaPasses:  int(b[0]>>2) & 0x0F,
		JumpDeltaPasses: int(b[0]>>6) & 0x03,
		JumpDeltaSize:   int(b[1]),
	}
}
