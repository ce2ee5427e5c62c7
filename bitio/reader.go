// Package bitio provides bit-level readers and writers over byte slices and
// vectors. Bit positions are addressed little-endian within each byte: for
// bit position p, the byte offset is p/8 and the bit offset within that byte
// is p%8, counting from the least significant bit. Every reader and writer
// in this package shares that convention; departing from it breaks wire
// compatibility with anything encoded by this package.
package bitio

// Reader reads individual bits from an immutable byte slice, advancing a
// cursor one bit at a time.
type Reader struct {
	src []byte
	pos int
}

// NewReader returns a Reader over src, starting at bit position 0.
func NewReader(src []byte) *Reader {
	return &Reader{src: src}
}

// ReadBit reads the next bit and advances the cursor. ok is false once the
// cursor has run past the end of src.
func (r *Reader) ReadBit() (bit bool, ok bool) {
	bit, ok = r.ReadAt(r.pos)
	if ok {
		r.pos++
	}
	return bit, ok
}

// PeekBit returns the next bit without advancing the cursor.
func (r *Reader) PeekBit() (bit bool, ok bool) {
	return r.ReadAt(r.pos)
}

// ReadAt reads the bit at an absolute bit position without touching the
// cursor used by ReadBit/PeekBit.
func (r *Reader) ReadAt(pos int) (bit bool, ok bool) {
	off := pos / 8
	if off < 0 || off >= len(r.src) {
		return false, false
	}
	return r.src[off]&(1<<uint(pos%8)) != 0, true
}

// Pos returns the reader's current bit cursor.
func (r *Reader) Pos() int {
	return r.pos
}
