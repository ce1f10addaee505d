package linearization

import (
	"strconv"
	"strings"
)

// Digit is the octal value of one 3-coordinate group, or one of the two
// sentinels that bracket a DigitSequence.
type Digit int8

const (
	Bottom Digit = -2
	Top    Digit = -1
)

// EnumerationOrder is the order in which the digits of one level are visited.
var EnumerationOrder = [8]Digit{0, 1, 3, 7, 5, 2, 6, 4}

// digitTier says which top-level reduction removes a digit: tier 1 digits
// vanish at reduction 1 and above, tier 2 digits at reduction 2.
var digitTier = [8]int{0: 0, 1: 1, 2: 2, 3: 1, 4: 0, 5: 1, 6: 2, 7: 1}

// tripletBits is the canonical digit encoding. tripletBits[d][j] is the
// coordinate at offset j inside the digit's group, lowest index first:
// 0→000 1→100 3→110 7→111 5→101 2→010 6→011 4→001.
var tripletBits = [8][3]bool{
	0: {false, false, false},
	1: {true, false, false},
	3: {true, true, false},
	7: {true, true, true},
	5: {true, false, true},
	2: {false, true, false},
	6: {false, true, true},
	4: {false, false, true},
}

func (d Digit) IsValue() bool {
	return d >= 0 && d <= 7
}

// IsCompound reports whether the digit's last coordinate is set. Compound
// digits own a body of DomainPopulation(level) ordinals.
func (d Digit) IsCompound() bool {
	return d.IsValue() && d&4 != 0
}

// Partner is the digit that shares the body of compound digit d.
func (d Digit) Partner() Digit {
	return d &^ 4
}

func (d Digit) presentAt(reduction int) bool {
	tier := digitTier[d]
	return tier == 0 || reduction < tier
}

func (d Digit) String() string {
	switch d {
	case Bottom:
		return "BOTTOM"
	case Top:
		return "TOP"
	}
	if d.IsValue() {
		return strconv.Itoa(int(d))
	}
	return "Digit(" + strconv.Itoa(int(d)) + ")"
}

func digitOfTriplet(b [3]bool) Digit {
	var d Digit
	for j, set := range b {
		if set {
			d |= 1 << j
		}
	}
	return d
}

// DigitSequence holds one digit per collapse level between two sentinels:
// index 0 is Bottom, index level+1 the digit of that level (finest first),
// the last index Top.
type DigitSequence []Digit

func NewDigitSequence(levels int) DigitSequence {
	s := make(DigitSequence, levels+2)
	s[0] = Bottom
	s[levels+1] = Top
	return s
}

func (s DigitSequence) Levels() int {
	return len(s) - 2
}

func (s DigitSequence) Level(level int) Digit {
	return s[level+1]
}

func (s DigitSequence) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = d.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
