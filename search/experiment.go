package search

import (
	"context"
	"io"
	"log/slog"
	"math/big"
	"math/rand"
	"os"
	"time"

	"TreeSearch/knapsack"
	"TreeSearch/linearization"
	"TreeSearch/utils"

	"golang.org/x/exp/slices"
)

// Iteration is the outcome of solving one random instance.
type Iteration struct {
	Index    int
	Relative int
	Target   *big.Int
	Results  []Result
	// Solutions holds the found packings when Config.KeepSolutions is set.
	Solutions *SolutionLog
}

func (it Iteration) Nodes() int64 {
	return utils.SumBy(it.Results, func(r Result) int64 { return r.Nodes })
}

func (it Iteration) SolutionCount() int64 {
	return utils.SumBy(it.Results, func(r Result) int64 { return r.Solutions })
}

// MedianElapsed is the median partition time, the upper one for an even count.
func (it Iteration) MedianElapsed() time.Duration {
	if len(it.Results) == 0 {
		return 0
	}
	times := utils.Map(it.Results, func(r Result) time.Duration { return r.Elapsed })
	slices.Sort(times)
	return times[len(times)/2]
}

type Option func(*Experiment)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Experiment) {
		e.logger = logger
	}
}

func NewTextLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func NoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Experiment runs Config.Iterations random instances against one shared
// offset table.
type Experiment struct {
	cfg    Config
	table  *linearization.Table
	parts  []Range
	logger *slog.Logger
}

func NewExperiment(cfg Config, opts ...Option) (*Experiment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Experiment{cfg: cfg, logger: NoopLogger()}
	for _, opt := range opts {
		opt(e)
	}

	started := time.Now()
	table, err := linearization.NewTable(cfg.TaskSize)
	if err != nil {
		return nil, err
	}
	parts, err := Partitions(cfg.TaskSize, cfg.Processors)
	if err != nil {
		table.Release()
		return nil, err
	}
	e.table = table
	e.parts = parts

	e.logger.Info("offset table built",
		"n", cfg.TaskSize,
		"levels", table.Depth()+1,
		"reduction", table.ReductionRate(),
		"bytes", table.MemReport().TotalBytes,
		"elapsed", time.Since(started),
	)
	return e, nil
}

func (e *Experiment) Config() Config {
	return e.cfg
}

func (e *Experiment) Table() *linearization.Table {
	return e.table
}

func (e *Experiment) Partitions() []Range {
	return e.parts
}

// Close releases the offset table. Later iterations fail.
func (e *Experiment) Close() {
	e.table.Release()
}

// RunIteration draws instance index and searches every partition in turn.
func (e *Experiment) RunIteration(ctx context.Context, index int) (Iteration, error) {
	r := rand.New(rand.NewSource(knapsack.MixSeed(e.cfg.Seed, int64(index), 0)))
	in, err := knapsack.NewInstance(r, e.cfg.TaskSize, e.cfg.ElementSize, e.cfg.RelativeTarget)
	if err != nil {
		return Iteration{}, err
	}
	return e.Solve(ctx, index, in)
}

// Solve searches every partition of a given instance.
func (e *Experiment) Solve(ctx context.Context, index int, in *knapsack.Instance) (Iteration, error) {
	it := Iteration{
		Index:    index,
		Relative: in.Relative,
		Target:   in.Target,
		Results:  make([]Result, 0, len(e.parts)),
	}
	if e.cfg.KeepSolutions {
		it.Solutions = NewSolutionLog(e.cfg.TaskSize)
	}

	s, err := NewSearcher(e.table, in, e.cfg.Mode(), it.Solutions)
	if err != nil {
		return it, err
	}
	for rank, part := range e.parts {
		res, err := s.Run(ctx, rank, part)
		if err != nil {
			e.logger.Error("partition failed", "iteration", index, "rank", rank, "error", err)
			return it, err
		}
		e.logger.Debug("partition done",
			"iteration", index,
			"rank", rank,
			"nodes", res.Nodes,
			"solutions", res.Solutions,
			"elapsed", res.Elapsed,
		)
		it.Results = append(it.Results, res)
	}

	e.logger.Info("iteration done",
		"iteration", index,
		"relw", it.Relative,
		"nodes", it.Nodes(),
		"solutions", it.SolutionCount(),
		"mode", e.cfg.Mode(),
	)
	return it, nil
}

// Run executes every iteration and hands each to fn as it completes.
func (e *Experiment) Run(ctx context.Context, fn func(Iteration) error) error {
	for i := 0; i < e.cfg.Iterations; i++ {
		it, err := e.RunIteration(ctx, i)
		if err != nil {
			return err
		}
		if err := fn(it); err != nil {
			return err
		}
	}
	return nil
}
