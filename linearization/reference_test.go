package linearization

import (
	"math/big"
	"math/rand"

	"TreeSearch/bits"
)

// preorderRank counts the packings visited before v in a depth-first walk of
// the packing tree: each 1 up to the last packed item descends one step, each
// 0 skips the sibling subtree of size 2^(n-1-i).
func preorderRank(v *bits.PackingVector) *big.Int {
	n := int(v.Size())
	x := new(big.Int)
	for i := 0; i <= v.LastSet(); i++ {
		if v.At(uint32(i)) {
			x.Add(x, one)
		} else {
			x.Add(x, new(big.Int).Lsh(one, uint(n-1-i)))
		}
	}
	return x
}

func randomVector(r *rand.Rand, n int) *bits.PackingVector {
	v := bits.NewPackingVector(uint32(n))
	for i := 0; i < n; i++ {
		v.Set(uint32(i), r.Intn(2) == 1)
	}
	return v
}

func randomOrdinal(r *rand.Rand, n int) *big.Int {
	return new(big.Int).Rand(r, new(big.Int).Lsh(one, uint(n)))
}
