package quantity

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTolerance is returned by constructors for a negative
	// tolerance fraction. Fractions of 0 and > 1 are accepted as given.
	ErrInvalidTolerance = errors.New("tolerance fraction must not be negative")

	// ErrZeroInterval is returned when a division (or parallel combination)
	// would divide by an interval that contains zero. Failing is the only
	// honest answer: the quotient bounds would be infinite.
	ErrZeroInterval = errors.New("division by an interval containing zero")

	// ErrNoTempCoefficient is returned by AtTemperature on a resistance
	// constructed without a temperature coefficient.
	ErrNoTempCoefficient = errors.New("temperature coefficient (alpha) not specified")

	// ErrTemperatureMismatch is returned by Divider when the two resistors
	// are not anchored at the same known temperature.
	ErrTemperatureMismatch = errors.New("resistors must be at the same temperature")
)

// UnsupportedCombinationError reports an (operator, kind, kind) triple absent
// from the resolution table. It is terminal: there is no nearest-kind coercion.
type UnsupportedCombinationError struct {
	Op    Op
	Left  Kind
	Right Kind
}

func (e *UnsupportedCombinationError) Error() string {
	if e.Op == OpSquare {
		return fmt.Sprintf("unsupported operation: squaring a %s", e.Left)
	}
	return fmt.Sprintf("unsupported operation: %s %s %s", e.Left, e.Op, e.Right)
}
