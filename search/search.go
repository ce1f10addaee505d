package search

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"TreeSearch/bits"
	"TreeSearch/errutil"
	"TreeSearch/knapsack"
	"TreeSearch/linearization"
)

// Mode selects how a partition is traversed.
type Mode int

const (
	// ModeDecode rebuilds the packing from its ordinal at every node.
	ModeDecode Mode = iota
	// ModeOptimized decodes the partition start once and then walks the tree.
	ModeOptimized
)

func (m Mode) String() string {
	switch m {
	case ModeDecode:
		return "decode"
	case ModeOptimized:
		return "optimized"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// cancelCheckMask sets how often the loops poll the context.
const cancelCheckMask = 1<<16 - 1

// Result summarises the search of one partition.
type Result struct {
	Rank      int
	Nodes     int64
	Solutions int64
	Elapsed   time.Duration
}

// Searcher counts the packings of one instance whose weight equals the target,
// pruning every subtree whose root already reaches it.
type Searcher struct {
	table     *linearization.Table
	instance  *knapsack.Instance
	mode      Mode
	solutions *SolutionLog
}

// NewSearcher pairs a table with an instance of the same size. solutions may
// be nil.
func NewSearcher(table *linearization.Table, in *knapsack.Instance, mode Mode, solutions *SolutionLog) (*Searcher, error) {
	if table.Size() != in.Size() {
		return nil, fmt.Errorf("%w: table for %d items, instance of %d", ErrInvalidConfig, table.Size(), in.Size())
	}
	return &Searcher{table: table, instance: in, mode: mode, solutions: solutions}, nil
}

// Run searches the ordinals of part.
func (s *Searcher) Run(ctx context.Context, rank int, part Range) (Result, error) {
	started := time.Now()
	var (
		res Result
		err error
	)
	switch s.mode {
	case ModeDecode:
		res, err = s.runDecode(ctx, part)
	case ModeOptimized:
		res, err = s.runOptimized(ctx, part)
	default:
		return Result{}, fmt.Errorf("%w: mode %s", ErrInvalidConfig, s.mode)
	}
	res.Rank = rank
	res.Elapsed = time.Since(started)
	return res, err
}

func (s *Searcher) record(res *Result, v *bits.PackingVector) {
	res.Solutions++
	if s.solutions != nil {
		errutil.BugOn(s.solutions.Contains(v), "packing %s found twice", v)
		s.solutions.Append(v)
	}
}

func (s *Searcher) runDecode(ctx context.Context, part Range) (Result, error) {
	var res Result
	v := bits.NewPackingVector(uint32(s.table.Size()))
	x := new(big.Int).Set(part.Start)
	span := new(big.Int)
	target := s.instance.Target

	for x.Cmp(part.End) < 0 {
		if res.Nodes&cancelCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}
		if err := s.table.DecodeInto(v, x); err != nil {
			return res, err
		}
		res.Nodes++

		switch s.instance.Weigh(v).Cmp(target) {
		case -1:
			x.Add(x, one)
		case 0:
			s.record(&res, v)
			fallthrough
		default:
			x.Add(x, linearization.BranchSizeInto(span, v))
		}
	}
	return res, nil
}

func (s *Searcher) runOptimized(ctx context.Context, part Range) (Result, error) {
	var res Result
	w, err := newWalker(s.table, s.instance, part.Start)
	if err != nil {
		return res, err
	}
	target := s.instance.Target

	for !w.done && w.ordinal.Cmp(part.End) < 0 {
		if res.Nodes&cancelCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}
		res.Nodes++

		switch w.weight.Cmp(target) {
		case -1:
			w.next()
		case 0:
			s.record(&res, w.v)
			fallthrough
		default:
			w.skip()
		}
	}
	return res, nil
}
