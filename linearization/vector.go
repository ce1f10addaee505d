package linearization

import (
	"TreeSearch/bits"
	"TreeSearch/errutil"
)

// groupStart is the first coordinate of the group collapsed at level. It is
// negative for a reduced top level; those virtual coordinates are always 0.
func (t *Table) groupStart(level int) int {
	return t.size - 3*(level+1)
}

func (t *Table) writeDigit(dst *bits.PackingVector, level int, d Digit) {
	lo := t.groupStart(level)
	for j, set := range tripletBits[d] {
		i := lo + j
		if i < 0 {
			errutil.BugOn(set, "digit %s sets a truncated coordinate at level %d", d, level)
			continue
		}
		dst.Set(uint32(i), set)
	}
}

func (t *Table) readDigit(v *bits.PackingVector, level int) Digit {
	lo := t.groupStart(level)
	var b [3]bool
	for j := range b {
		if i := lo + j; i >= 0 {
			b[j] = v.At(uint32(i))
		}
	}
	return digitOfTriplet(b)
}

// Vector expands a DigitSequence into its packing vector.
func (t *Table) Vector(seq DigitSequence) (*bits.PackingVector, error) {
	if err := t.checkSequence(seq); err != nil {
		return nil, err
	}

	v := bits.NewPackingVector(uint32(t.size))
	for level := len(t.levels) - 1; level >= 0; level-- {
		t.writeDigit(v, level, seq[level+1])
	}
	return v, nil
}

// DigitsOfVector collapses packing vector v into its DigitSequence.
func (t *Table) DigitsOfVector(v *bits.PackingVector) (DigitSequence, error) {
	if err := t.checkVector(v); err != nil {
		return nil, err
	}

	seq := NewDigitSequence(len(t.levels))
	for level := range t.levels {
		seq[level+1] = t.readDigit(v, level)
	}
	return seq, nil
}
