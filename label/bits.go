package label

import "math/bits"

// bitAt returns the bit at index i where i=0 is the MSB (bit 63).
func bitAt(x uint64, i int) uint8 {
	shift := 63 - i
	return uint8((x >> shift) & 1)
}

// lowMask returns a mask of the n least significant bits. n may be 64.
func lowMask(n int) uint64 {
	if n >= LabelBits {
		return ^uint64(0)
	}
	return (uint64(1) << n) - 1
}

// bitLength is the number of significant bits in x, 0 for x == 0.
func bitLength(x uint64) int {
	return bits.Len64(x)
}

// markerIndex returns the LSB based position of the marker bit, which is the
// most significant set bit. It returns -1 for the all zero label.
func markerIndex(x uint64) int {
	return bits.Len64(x) - 1
}

// payload returns the bits strictly below the marker and their count.
func payload(x uint64) (uint64, int) {
	n := markerIndex(x)
	if n < 0 {
		return 0, 0
	}
	return x & lowMask(n), n
}
