package search

import (
	"fmt"
	"sync"
	"unsafe"

	"TreeSearch/bits"
	"TreeSearch/utils"

	"github.com/hillbig/rsdic"
)

// SolutionLog stores found packings back to back in one rank/select
// dictionary. Solution i occupies bits [i*n, (i+1)*n).
type SolutionLog struct {
	n  int
	bv *rsdic.RSDic
	// byHash lists the solutions sharing a packing hash.
	byHash map[uint64][]int
	mu     sync.RWMutex
}

func NewSolutionLog(n int) *SolutionLog {
	return &SolutionLog{n: n, bv: rsdic.New(), byHash: make(map[uint64][]int)}
}

func (l *SolutionLog) Append(v *bits.PackingVector) {
	if int(v.Size()) != l.n {
		panic(fmt.Sprintf("solution of %d items in a log of %d", v.Size(), l.n))
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	h := v.Hash()
	l.byHash[h] = append(l.byHash[h], int(l.bv.Num())/l.n)
	for i := uint32(0); i < v.Size(); i++ {
		l.bv.PushBack(v.At(i))
	}
}

// Contains reports whether packing v was already logged.
func (l *SolutionLog) Contains(v *bits.PackingVector) bool {
	if int(v.Size()) != l.n {
		return false
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, i := range l.byHash[v.Hash()] {
		if l.at(i).Equal(v) {
			return true
		}
	}
	return false
}

func (l *SolutionLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return int(l.bv.Num()) / l.n
}

// At returns a copy of solution i.
func (l *SolutionLog) At(i int) *bits.PackingVector {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.checkIndex(i)
	return l.at(i)
}

func (l *SolutionLog) at(i int) *bits.PackingVector {
	v := bits.NewPackingVector(uint32(l.n))
	base := uint64(i * l.n)
	for j := 0; j < l.n; j++ {
		if l.bv.Bit(base + uint64(j)) {
			v.Set(uint32(j), true)
		}
	}
	return v
}

// ItemCount is the number of items packed in solution i.
func (l *SolutionLog) ItemCount(i int) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.checkIndex(i)
	lo := uint64(i * l.n)
	return int(l.bv.Rank(lo+uint64(l.n), true) - l.bv.Rank(lo, true))
}

// TotalItems is the number of packed items over all solutions.
func (l *SolutionLog) TotalItems() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.bv.Num() == 0 {
		return 0
	}
	return int(l.bv.Rank(l.bv.Num(), true))
}

func (l *SolutionLog) checkIndex(i int) {
	if i < 0 || uint64((i+1)*l.n) > l.bv.Num() {
		panic(fmt.Sprintf("solution %d out of range [0, %d)", i, int(l.bv.Num())/l.n))
	}
}

func (l *SolutionLog) MemReport() utils.MemReport {
	l.mu.RLock()
	defer l.mu.RUnlock()
	header := int(unsafe.Sizeof(*l))
	bv := l.bv.AllocSize()
	index := 0
	for _, ids := range l.byHash {
		index += 8 + int(unsafe.Sizeof(ids)) + cap(ids)*int(unsafe.Sizeof(0))
	}
	return utils.MemReport{
		Name:       fmt.Sprintf("SolutionLog(%d solutions)", int(l.bv.Num())/l.n),
		TotalBytes: header + bv + index,
		Children: []utils.MemReport{
			{Name: "header", TotalBytes: header},
			{Name: "rsdic", TotalBytes: bv},
			{Name: "hash index", TotalBytes: index},
		},
	}
}
