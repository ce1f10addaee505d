package linearization

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize indicates a vector length below MinVectorLength.
	ErrInvalidSize = errors.New("linearization: invalid vector length")
	// ErrInvalidOrdinal indicates an ordinal outside [0, 2^n) or an argument
	// built for a different vector length than the table.
	ErrInvalidOrdinal = errors.New("linearization: invalid ordinal")
	// ErrInvalidDigit indicates a digit that cannot appear at its position.
	ErrInvalidDigit = errors.New("linearization: invalid domain digit")
)

// DigitError reports the offending entry of a DigitSequence.
//
// errors.Is(err, ErrInvalidDigit) holds for every DigitError.
type DigitError struct {
	Position int
	Digit    Digit
}

func (e *DigitError) Error() string {
	return fmt.Sprintf("linearization: invalid domain digit %s at position %d", e.Digit, e.Position)
}

func (e *DigitError) Unwrap() error { return ErrInvalidDigit }
