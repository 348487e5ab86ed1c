package physics

import (
	"errors"
	"fmt"
)

// ErrInvalidMass is returned when a KineticState is constructed with a mass
// that is zero or negative.
var ErrInvalidMass = errors.New("mass must be strictly positive")

// UndefinedDirectionError is returned by PolarVector.Add when the resultant
// has no recoverable direction because both Cartesian components are zero.
type UndefinedDirectionError struct {
	A PolarVector
	B PolarVector
}

func (e *UndefinedDirectionError) Error() string {
	return fmt.Sprintf("resultant of %v and %v has undefined direction", e.A, e.B)
}
