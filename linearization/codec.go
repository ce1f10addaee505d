package linearization

import (
	"fmt"
	"math/big"

	"TreeSearch/bits"
	"TreeSearch/errutil"
)

func (t *Table) checkOrdinal(x *big.Int) error {
	if err := t.checkLive(); err != nil {
		return err
	}
	if x == nil {
		return fmt.Errorf("%w: nil", ErrInvalidOrdinal)
	}
	if x.Sign() < 0 || x.Cmp(t.limit) >= 0 {
		return fmt.Errorf("%w: %s not in [0, 2^%d)", ErrInvalidOrdinal, x, t.size)
	}
	return nil
}

func (t *Table) checkVector(v *bits.PackingVector) error {
	if err := t.checkLive(); err != nil {
		return err
	}
	if v == nil || int(v.Size()) != t.size {
		got := -1
		if v != nil {
			got = int(v.Size())
		}
		return fmt.Errorf("%w: vector length %d, table built for %d", ErrInvalidOrdinal, got, t.size)
	}
	return nil
}

// checkSequence validates the sentinels and that every digit may appear at
// its level.
func (t *Table) checkSequence(seq DigitSequence) error {
	if err := t.checkLive(); err != nil {
		return err
	}
	if seq.Levels() != len(t.levels) {
		return fmt.Errorf("%w: sequence has %d levels, table has %d", ErrInvalidOrdinal, seq.Levels(), len(t.levels))
	}
	last := len(seq) - 1
	if seq[0] != Bottom {
		return &DigitError{Position: 0, Digit: seq[0]}
	}
	if seq[last] != Top {
		return &DigitError{Position: last, Digit: seq[last]}
	}
	for pos := 1; pos < last; pos++ {
		d := seq[pos]
		if !d.IsValue() || !t.levels[pos-1].present[d] {
			return &DigitError{Position: pos, Digit: d}
		}
	}
	return nil
}

// Digits decomposes ordinal x into its DigitSequence.
func (t *Table) Digits(x *big.Int) (DigitSequence, error) {
	if err := t.checkOrdinal(x); err != nil {
		return nil, err
	}

	seq := NewDigitSequence(len(t.levels))
	residual := new(big.Int).Set(x)
	for level := len(t.levels) - 1; level >= 0; level-- {
		seq[level+1] = t.levels[level].descend(residual)
	}
	errutil.BugOn(residual.Sign() != 0, "ordinal %s left residual %s", x, residual)
	return seq, nil
}

// Ordinal folds a DigitSequence back into its ordinal.
func (t *Table) Ordinal(seq DigitSequence) (*big.Int, error) {
	if err := t.checkSequence(seq); err != nil {
		return nil, err
	}

	x := new(big.Int)
	trivial := true
	for level := range t.levels {
		d := seq[level+1]
		x.Add(x, t.levels[level].contribution(d, trivial))
		trivial = trivial && d == 0
	}
	return x, nil
}

// Decode returns the packing vector at ordinal x.
func (t *Table) Decode(x *big.Int) (*bits.PackingVector, error) {
	if err := t.checkLive(); err != nil {
		return nil, err
	}
	v := bits.NewPackingVector(uint32(t.size))
	if err := t.DecodeInto(v, x); err != nil {
		return nil, err
	}
	return v, nil
}

// DecodeInto overwrites dst with the packing vector at ordinal x without
// materialising the DigitSequence.
func (t *Table) DecodeInto(dst *bits.PackingVector, x *big.Int) error {
	if err := t.checkVector(dst); err != nil {
		return err
	}
	if err := t.checkOrdinal(x); err != nil {
		return err
	}

	residual := new(big.Int).Set(x)
	for level := len(t.levels) - 1; level >= 0; level-- {
		d := t.levels[level].descend(residual)
		t.writeDigit(dst, level, d)
	}
	errutil.BugOn(residual.Sign() != 0, "ordinal %s left residual %s", x, residual)
	return nil
}

// Encode returns the ordinal of packing vector v.
func (t *Table) Encode(v *bits.PackingVector) (*big.Int, error) {
	seq, err := t.DigitsOfVector(v)
	if err != nil {
		return nil, err
	}
	return t.Ordinal(seq)
}
