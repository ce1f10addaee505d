package linearization

import (
	"fmt"
	"math/big"
	"unsafe"

	"TreeSearch/errutil"
	"TreeSearch/utils"
)

// segment is one contiguous run of ordinals at a level. Residuals below end
// decode to digit and continue one level finer from residual-base.
type segment struct {
	end   *big.Int // exclusive, nil for the last segment
	digit Digit
	base  *big.Int
}

// levelOffsets holds the starting ordinals of one collapse level.
type levelOffsets struct {
	population *big.Int
	start      [8]*big.Int
	// sub marks where the partner half of a compound body begins; only
	// compound digits have one.
	sub      [8]*big.Int
	present  [8]bool
	segments [12]segment
}

// Table is the DomainOffsetTable for one vector length.
type Table struct {
	size      int
	reduction int
	limit     *big.Int
	levels    []levelOffsets
}

// NewTable precomputes the offsets for vectors of length n.
func NewTable(n int) (*Table, error) {
	if n < MinVectorLength {
		return nil, fmt.Errorf("%w: %d < %d", ErrInvalidSize, n, MinVectorLength)
	}

	depth := MaxCollapseDepth(n)
	t := &Table{
		size:      n,
		reduction: TopReductionRate(n),
		limit:     new(big.Int).Lsh(one, uint(n)),
		levels:    make([]levelOffsets, depth+1),
	}
	for level := 0; level <= depth; level++ {
		reduction := 0
		if level == depth {
			reduction = t.reduction
		}
		t.levels[level] = buildLevel(level, reduction)
	}
	return t, nil
}

func buildLevel(level int, reduction int) levelOffsets {
	lv := levelOffsets{population: DomainPopulation(level)}
	// The compound digit itself keeps the first (population+1)/2 ordinals of its body.
	head := new(big.Int).Rsh(lv.population, 1)
	head.Add(head, one)

	off := new(big.Int)
	for _, d := range EnumerationOrder {
		present := d.presentAt(reduction)
		lv.present[d] = present
		lv.start[d] = new(big.Int).Set(off)
		if d.IsCompound() {
			lv.sub[d] = new(big.Int).Set(off)
			if present {
				lv.sub[d].Add(lv.sub[d], head)
			}
		}

		switch {
		case d == 0:
			// The all-zero digit always occupies its single ordinal, even at a
			// reduced top level.
			off.Add(off, one)
		case !present:
		case d.IsCompound():
			off.Add(off, lv.population)
		default:
			off.Add(off, one)
		}
	}

	i := 0
	for k, d := range EnumerationOrder {
		var next *big.Int
		if k+1 < len(EnumerationOrder) {
			next = lv.start[EnumerationOrder[k+1]]
		}
		if d.IsCompound() {
			lv.segments[i] = segment{end: lv.sub[d], digit: d, base: lv.start[d]}
			lv.segments[i+1] = segment{end: next, digit: d.Partner(), base: new(big.Int).Sub(lv.sub[d], one)}
			i += 2
			continue
		}
		lv.segments[i] = segment{end: next, digit: d, base: lv.start[d]}
		i++
	}
	errutil.BugOn(i != len(lv.segments), "level %d built %d segments", level, i)
	return lv
}

// descend picks the segment holding residual, rebases residual to the next
// finer level and returns the segment's digit.
func (lv *levelOffsets) descend(residual *big.Int) Digit {
	last := len(lv.segments) - 1
	for i := 0; i < last; i++ {
		s := &lv.segments[i]
		if residual.Cmp(s.end) < 0 {
			residual.Sub(residual, s.base)
			return s.digit
		}
	}
	s := &lv.segments[last]
	residual.Sub(residual, s.base)
	return s.digit
}

// contribution is the ordinal offset added by digit d at this level. trivial
// means every finer digit is 0.
func (lv *levelOffsets) contribution(d Digit, trivial bool) *big.Int {
	if trivial || d.IsCompound() {
		return lv.start[d]
	}
	return new(big.Int).Sub(lv.sub[d|4], one)
}

// Size is the vector length the table was built for.
func (t *Table) Size() int {
	return t.size
}

// Depth is the coarsest collapse level.
func (t *Table) Depth() int {
	return MaxCollapseDepth(t.size)
}

func (t *Table) ReductionRate() int {
	return t.reduction
}

// Limit returns 2^n, one past the largest ordinal.
func (t *Table) Limit() *big.Int {
	return new(big.Int).Lsh(one, uint(t.size))
}

func (t *Table) Released() bool {
	return t.levels == nil
}

// Release drops the offsets. Every later codec call on t fails with
// ErrInvalidOrdinal.
func (t *Table) Release() {
	t.levels = nil
	t.limit = nil
}

func (t *Table) level(level int) *levelOffsets {
	if t.levels == nil {
		panic("table released")
	}
	if level < 0 || level >= len(t.levels) {
		panic(fmt.Sprintf("collapse level %d out of range [0, %d]", level, len(t.levels)-1))
	}
	return &t.levels[level]
}

// Start returns the first ordinal of digit d's run at the given level,
// relative to the enclosing coarser run.
func (t *Table) Start(level int, d Digit) *big.Int {
	if !d.IsValue() {
		panic(fmt.Sprintf("digit %s has no offset", d))
	}
	return new(big.Int).Set(t.level(level).start[d])
}

// SubStart returns where the partner half of compound digit d's body begins.
func (t *Table) SubStart(level int, d Digit) *big.Int {
	if !d.IsCompound() {
		panic(fmt.Sprintf("digit %s is not compound", d))
	}
	return new(big.Int).Set(t.level(level).sub[d])
}

// Present reports whether digit d can occur at the given level.
func (t *Table) Present(level int, d Digit) bool {
	return d.IsValue() && t.level(level).present[d]
}

func (t *Table) Population(level int) *big.Int {
	return new(big.Int).Set(t.level(level).population)
}

func (t *Table) checkLive() error {
	if t == nil || t.levels == nil {
		return fmt.Errorf("%w: table released", ErrInvalidOrdinal)
	}
	return nil
}

func bigIntBytes(x *big.Int) int {
	if x == nil {
		return 0
	}
	return int(unsafe.Sizeof(*x)) + cap(x.Bits())*int(unsafe.Sizeof(big.Word(0)))
}

// MemReport breaks the table footprint down per collapse level.
func (t *Table) MemReport() utils.MemReport {
	report := utils.MemReport{Name: fmt.Sprintf("DomainOffsetTable(n=%d)", t.size)}
	report.TotalBytes = int(unsafe.Sizeof(*t)) + bigIntBytes(t.limit)
	for i := range t.levels {
		lv := &t.levels[i]
		size := int(unsafe.Sizeof(*lv)) + bigIntBytes(lv.population)
		for d := 0; d < 8; d++ {
			size += bigIntBytes(lv.start[d]) + bigIntBytes(lv.sub[d])
		}
		for _, s := range lv.segments {
			if s.base != lv.start[s.digit] {
				size += bigIntBytes(s.base)
			}
		}
		report.Children = append(report.Children, utils.MemReport{
			Name:       fmt.Sprintf("level %d", i),
			TotalBytes: size,
		})
		report.TotalBytes += size
	}
	return report
}
