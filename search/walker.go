package search

import (
	"math/big"

	"TreeSearch/bits"
	"TreeSearch/knapsack"
	"TreeSearch/linearization"
)

// walker steps through the packing tree in preorder without decoding. It
// keeps the packing, its weight, its last packed item and its ordinal in step.
type walker struct {
	weights []*big.Int
	v       *bits.PackingVector
	weight  *big.Int
	ordinal *big.Int
	last    int
	n       int
	span    *big.Int
	done    bool
}

func newWalker(table *linearization.Table, in *knapsack.Instance, start *big.Int) (*walker, error) {
	v, err := table.Decode(start)
	if err != nil {
		return nil, err
	}
	return &walker{
		weights: in.Weights,
		v:       v,
		weight:  in.Weigh(v),
		ordinal: new(big.Int).Set(start),
		last:    v.LastSet(),
		n:       int(v.Size()),
		span:    new(big.Int),
	}, nil
}

func (w *walker) pack(i int) {
	w.v.Set(uint32(i), true)
	w.weight.Add(w.weight, w.weights[i])
}

func (w *walker) unpack(i int) {
	w.v.Set(uint32(i), false)
	w.weight.Sub(w.weight, w.weights[i])
}

// next moves to the first child, or past the subtree when there is none.
func (w *walker) next() {
	if w.last < w.n-1 {
		w.last++
		w.pack(w.last)
		w.ordinal.Add(w.ordinal, one)
		return
	}
	w.skip()
}

// skip moves past the whole subtree of the current packing.
func (w *walker) skip() {
	w.ordinal.Add(w.ordinal, linearization.BranchSizeInto(w.span, w.v))
	if w.last < 0 {
		w.done = true
		return
	}
	if w.last == w.n-1 {
		w.unpack(w.last)
		w.last = w.v.LastSet()
		if w.last < 0 {
			w.done = true
			return
		}
	}
	w.unpack(w.last)
	w.last++
	w.pack(w.last)
}
