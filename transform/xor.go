package transform

// XORBitplanes overwrites dst[i] with a[i] XOR dst[i] for each byte. It
// requires len(a) == len(dst); this is self-inverse (applying it twice with
// the same a restores dst).
func XORBitplanes(a []byte, dst []byte) {
	for i := range dst {
		dst[i] ^= a[i]
	}
}
