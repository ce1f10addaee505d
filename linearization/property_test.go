package linearization

import (
	"math/big"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/stretchr/testify/require"
)

const (
	propertyRuns  = 200
	propertyWidth = 150
	iterations    = 100
)

// Every vector of length n must be reached exactly once by 0..2^n-1.
func TestDecodeCoversEveryVector(t *testing.T) {
	t.Parallel()
	for n := 3; n <= 14; n++ {
		table := mustTable(t, n)
		limit := int64(1) << n
		seen := make(map[string]struct{}, limit)
		for x := int64(0); x < limit; x++ {
			v, err := table.Decode(big.NewInt(x))
			require.NoError(t, err)
			_, dup := seen[v.String()]
			require.False(t, dup, "n=%d: %s decoded twice", n, v)
			seen[v.String()] = struct{}{}
		}
		require.Len(t, seen, int(limit))
	}
}

// Ordinals x+1..x+BranchSize(x)-1 are exactly the descendants of x.
func TestBranchSizeSpansSubtree(t *testing.T) {
	t.Parallel()
	for n := 3; n <= 10; n++ {
		table := mustTable(t, n)
		limit := int64(1) << n
		vectors := make([]string, limit)
		for x := int64(0); x < limit; x++ {
			v, err := table.Decode(big.NewInt(x))
			require.NoError(t, err)
			vectors[x] = v.String()
		}

		for x := int64(0); x < limit; x++ {
			v, err := table.Decode(big.NewInt(x))
			require.NoError(t, err)
			prefix := vectors[x][:v.LastSet()+1]
			span := BranchSize(v).Int64()
			require.LessOrEqual(t, x+span, limit)

			for y := x; y < x+span; y++ {
				require.True(t, strings.HasPrefix(vectors[y], prefix),
					"n=%d: %s at %d outside subtree of %s", n, vectors[y], y, vectors[x])
			}
			if end := x + span; end < limit {
				require.False(t, strings.HasPrefix(vectors[end], prefix) && prefix != "",
					"n=%d: subtree of %s continues past %d", n, vectors[x], end)
			}
		}
	}
}

type span struct {
	lo, hi *big.Int
	count  int64
}

func (s *span) add(x *big.Int) {
	if s.lo == nil || x.Cmp(s.lo) < 0 {
		s.lo = new(big.Int).Set(x)
	}
	if s.hi == nil || x.Cmp(s.hi) > 0 {
		s.hi = new(big.Int).Set(x)
	}
	s.count++
}

func (s *span) width() int64 {
	return new(big.Int).Sub(s.hi, s.lo).Int64() + 1
}

func coarserKey(seq DigitSequence, level int) string {
	return seq[level+2:].String()
}

// A compound digit with every coarser digit fixed owns 8^l consecutive
// ordinals; together with its non-trivial partner it owns DomainPopulation(l).
func TestCompoundBodiesAreContiguous(t *testing.T) {
	t.Parallel()
	for _, n := range []int{6, 8, 9, 10} {
		table := mustTable(t, n)
		limit := int64(1) << n

		for level := 0; level <= table.Depth(); level++ {
			compound := map[string]*span{}
			body := map[string]*span{}
			for x := int64(0); x < limit; x++ {
				ord := big.NewInt(x)
				seq, err := table.Digits(ord)
				require.NoError(t, err)

				d := seq.Level(level)
				trivial := true
				for finer := 0; finer < level; finer++ {
					trivial = trivial && seq.Level(finer) == 0
				}

				key := coarserKey(seq, level)
				if d.IsCompound() {
					ck := key + d.String()
					if compound[ck] == nil {
						compound[ck] = &span{}
					}
					compound[ck].add(ord)
				}
				if d.IsCompound() || !trivial {
					bk := key + (d | 4).String()
					if body[bk] == nil {
						body[bk] = &span{}
					}
					body[bk].add(ord)
				}
			}

			blockSize := int64(1) << (3 * level)
			for k, s := range compound {
				require.Equal(t, blockSize, s.count, "n=%d level %d block %s", n, level, k)
				require.Equal(t, s.count, s.width(), "n=%d level %d block %s", n, level, k)
			}
			population := DomainPopulation(level).Int64()
			for k, s := range body {
				require.Equal(t, population, s.count, "n=%d level %d body %s", n, level, k)
				require.Equal(t, s.count, s.width(), "n=%d level %d body %s", n, level, k)
			}
		}
	}
}

func TestRandomWalkMatchesPreorder(t *testing.T) {
	t.Parallel()
	table := mustTable(t, propertyWidth)

	bar := progressbar.Default(propertyRuns)
	for run := 0; run < propertyRuns; run++ {
		seed := time.Now().UnixNano()
		r := rand.New(rand.NewSource(seed))

		x := randomOrdinal(r, propertyWidth)
		for i := 0; i < iterations; i++ {
			v, err := table.Decode(x)
			require.NoError(t, err)
			require.Equal(t, 0, x.Cmp(preorderRank(v)), "ordinal %s (seed: %d)", x, seed)

			x.Add(x, BranchSize(v))
			if x.Cmp(table.Limit()) >= 0 {
				break
			}
		}
		_ = bar.Add(1)
	}
}
