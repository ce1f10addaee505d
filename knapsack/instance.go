// Package knapsack generates random subset-sum instances for the packing-tree
// search: item weights drawn uniformly from a fixed bit width and a target
// weight either chosen as a share of the total or drawn at random.
package knapsack

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"
	"math/rand"

	bitstring "TreeSearch/bits"
)

var ErrDegenerateInstance = errors.New("knapsack: degenerate instance")

var one = big.NewInt(1)

// RandomTarget asks NewInstance to draw the target weight.
const RandomTarget = -1

// ItemBits is the width of one item weight: elementSize minus enough bits to
// keep the sum of taskSize items within elementSize bits.
func ItemBits(elementSize, taskSize int) int {
	if taskSize <= 1 {
		return elementSize
	}
	return elementSize - bits.Len(uint(taskSize-1))
}

// BigRandom returns a uniform value in [0, 2^width).
func BigRandom(r *rand.Rand, width int) *big.Int {
	if width <= 0 {
		return new(big.Int)
	}
	return new(big.Int).Rand(r, new(big.Int).Lsh(one, uint(width)))
}

type Instance struct {
	Weights []*big.Int
	Sum     *big.Int
	Target  *big.Int
	// Relative is the target as a whole percentage of Sum.
	Relative int
}

// NewInstance draws taskSize item weights. A relativeTarget in [0, 100] puts
// the target at that percentage of the total weight; any other value draws
// it uniformly from [1, Sum-1].
func NewInstance(r *rand.Rand, taskSize, elementSize, relativeTarget int) (*Instance, error) {
	width := ItemBits(elementSize, taskSize)
	if taskSize <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: %d items of %d bits", ErrDegenerateInstance, taskSize, width)
	}

	in := &Instance{
		Weights: make([]*big.Int, taskSize),
		Sum:     new(big.Int),
	}
	for i := range in.Weights {
		in.Weights[i] = BigRandom(r, width)
		in.Sum.Add(in.Sum, in.Weights[i])
	}

	hundred := big.NewInt(100)
	if relativeTarget >= 0 && relativeTarget <= 100 {
		in.Relative = relativeTarget
		in.Target = new(big.Int).Mul(big.NewInt(int64(relativeTarget)), in.Sum)
		in.Target.Quo(in.Target, hundred)
		return in, nil
	}

	if in.Sum.Cmp(big.NewInt(2)) < 0 {
		return nil, fmt.Errorf("%w: total weight %s leaves no target in (0, total)", ErrDegenerateInstance, in.Sum)
	}
	in.Target = new(big.Int).Rand(r, new(big.Int).Sub(in.Sum, one))
	in.Target.Add(in.Target, one)
	rel := new(big.Int).Mul(in.Target, hundred)
	in.Relative = int(rel.Quo(rel, in.Sum).Int64())
	return in, nil
}

func (in *Instance) Size() int {
	return len(in.Weights)
}

// Weigh returns the total weight of the items packed in v.
func (in *Instance) Weigh(v bitstring.BitString) *big.Int {
	if int(v.Size()) != len(in.Weights) {
		panic(fmt.Sprintf("packing of %d items for instance of %d", v.Size(), len(in.Weights)))
	}
	w := new(big.Int)
	for i, weight := range in.Weights {
		if v.At(uint32(i)) {
			w.Add(w, weight)
		}
	}
	return w
}

// MixSeed derives independent seeds for (iteration, partition) pairs from one
// base seed.
func MixSeed(base int64, a int64, b int64) int64 {
	x := uint64(base) + 0x9e3779b97f4a7c15
	x ^= uint64(a) + 0x9e3779b97f4a7c15 + (x << 6) + (x >> 2)
	x ^= uint64(b) + 0x9e3779b97f4a7c15 + (x << 6) + (x >> 2)
	return int64(x)
}
