package search

import (
	"errors"
	"fmt"
	"time"

	"TreeSearch/knapsack"
	"TreeSearch/linearization"
)

var ErrInvalidConfig = errors.New("search: invalid config")

// Config describes one benchmark run.
type Config struct {
	TaskSize       int   // items per instance, the packing vector length
	ElementSize    int   // bits of the total weight
	Processors     int   // partitions of the ordinal range
	Iterations     int   // instances to solve
	RelativeTarget int   // target as a percentage of the total, knapsack.RandomTarget to draw it
	Optimized      bool  // walk the tree incrementally instead of decoding every node
	KeepSolutions  bool  // record every solution in a SolutionLog
	Seed           int64 // base seed, mixed per iteration
}

func DefaultConfig() Config {
	return Config{
		TaskSize:       24,
		ElementSize:    64,
		Processors:     8,
		Iterations:     100,
		RelativeTarget: knapsack.RandomTarget,
		Seed:           time.Now().UnixNano(),
	}
}

func (c Config) Mode() Mode {
	if c.Optimized {
		return ModeOptimized
	}
	return ModeDecode
}

func (c Config) Validate() error {
	switch {
	case c.TaskSize < linearization.MinVectorLength:
		return fmt.Errorf("%w: task size %d < %d", ErrInvalidConfig, c.TaskSize, linearization.MinVectorLength)
	case knapsack.ItemBits(c.ElementSize, c.TaskSize) <= 0:
		return fmt.Errorf("%w: element size %d too small for %d items", ErrInvalidConfig, c.ElementSize, c.TaskSize)
	case c.Processors < 1:
		return fmt.Errorf("%w: processor count %d", ErrInvalidConfig, c.Processors)
	case c.TaskSize < 63 && int64(c.Processors) > int64(1)<<c.TaskSize:
		return fmt.Errorf("%w: %d processors for %d ordinals", ErrInvalidConfig, c.Processors, int64(1)<<c.TaskSize)
	case c.Iterations < 1:
		return fmt.Errorf("%w: iteration count %d", ErrInvalidConfig, c.Iterations)
	case c.RelativeTarget != knapsack.RandomTarget && (c.RelativeTarget < 0 || c.RelativeTarget > 100):
		return fmt.Errorf("%w: relative target %d%% outside [0, 100]", ErrInvalidConfig, c.RelativeTarget)
	}
	return nil
}
