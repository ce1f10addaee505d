package search

import (
	"fmt"
	"math/big"
)

var one = big.NewInt(1)

// Range is a half-open run of ordinals [Start, End).
type Range struct {
	Start *big.Int
	End   *big.Int
}

func (r Range) Len() *big.Int {
	return new(big.Int).Sub(r.End, r.Start)
}

func (r Range) String() string {
	return fmt.Sprintf("[%s, %s)", r.Start, r.End)
}

// Partitions splits [0, 2^n) into p consecutive ranges of 2^n/p ordinals.
// The last range also takes the remainder.
func Partitions(n, p int) ([]Range, error) {
	if n < 0 || p < 1 {
		return nil, fmt.Errorf("%w: %d partitions of 2^%d", ErrInvalidConfig, p, n)
	}
	limit := new(big.Int).Lsh(one, uint(n))
	size := new(big.Int).Quo(limit, big.NewInt(int64(p)))
	if size.Sign() == 0 {
		return nil, fmt.Errorf("%w: %d partitions of 2^%d", ErrInvalidConfig, p, n)
	}

	parts := make([]Range, p)
	start := new(big.Int)
	for k := range parts {
		end := new(big.Int).Add(start, size)
		if k == p-1 {
			end.Set(limit)
		}
		parts[k] = Range{Start: start, End: end}
		start = new(big.Int).Set(end)
	}
	return parts, nil
}
