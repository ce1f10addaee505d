package linearization

import (
	"math/big"

	"TreeSearch/bits"
)

// BranchSize returns the number of consecutive ordinals taken by the subtree
// rooted at v, 2^k for k zero coordinates after v's last packed item. The
// empty packing is the root and spans all 2^n ordinals.
func BranchSize(v *bits.PackingVector) *big.Int {
	return BranchSizeInto(new(big.Int), v)
}

// BranchSizeInto stores BranchSize(v) in dst and returns dst.
func BranchSizeInto(dst *big.Int, v *bits.PackingVector) *big.Int {
	return dst.Lsh(one, uint(v.TrailingZeros()))
}
