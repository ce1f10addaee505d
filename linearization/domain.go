package linearization

import "math/big"

// MinVectorLength is the smallest vector length that can be collapsed.
const MinVectorLength = 3

var one = big.NewInt(1)

// MaxCollapseDepth returns the coarsest collapse level for vector length n.
// Each collapse folds one 3-coordinate group into a single digit.
func MaxCollapseDepth(n int) int {
	return (n - 1) / 3
}

// LevelCount is the number of digits in a DigitSequence for length n,
// that is ceil(n/3).
func LevelCount(n int) int {
	return MaxCollapseDepth(n) + 1
}

// TopReductionRate returns how many coordinates the coarsest group lacks:
// 0 for n%3 == 0 (8 digits present), 1 for n%3 == 2 (4 digits), 2 for
// n%3 == 1 (2 digits).
func TopReductionRate(n int) int {
	r := n % 3
	if r == 0 {
		return 0
	}
	return 3 - r
}

// DomainPopulation returns 2^(3*level+1) - 1, the number of ordinals in the
// body of a compound digit at the given collapse level.
func DomainPopulation(level int) *big.Int {
	p := new(big.Int).Lsh(one, uint(3*level+1))
	return p.Sub(p, one)
}
