package bits

// BitString is the read-only view of a packing used by weighing and
// solution bookkeeping.
type BitString interface {
	Size() uint32
	IsEmpty() bool
	At(index uint32) bool
	Equal(a BitString) bool
	String() string
	Data() []byte
}

// FromBools builds a PackingVector with coordinate i set to coords[i].
func FromBools(coords []bool) *PackingVector {
	v := NewPackingVector(uint32(len(coords)))
	for i, c := range coords {
		if c {
			v.Set(uint32(i), true)
		}
	}
	return v
}

// ToBools expands any BitString into one bool per coordinate.
func ToBools(bs BitString) []bool {
	out := make([]bool, bs.Size())
	for i := range out {
		out[i] = bs.At(uint32(i))
	}
	return out
}
