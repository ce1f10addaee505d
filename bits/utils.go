package bits

import "math/bits"

// MostSignificantBit returns the index of the highest set bit, -1 for 0.
func MostSignificantBit(x uint64) int {
	return bits.Len64(x) - 1
}

func wordsFor(sizeBits uint32) int {
	return int((sizeBits + 63) / 64)
}
