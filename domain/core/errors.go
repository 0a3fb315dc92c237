package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Shape errors
	ErrInvalidShape = errors.New("invalid trapezoid shape")

	// Arithmetic errors
	ErrDivisionByZero = errors.New("divisor support contains zero")

	// Test input errors
	ErrEmptySample      = errors.New("empty sample")
	ErrInvalidParameter = errors.New("invalid test parameter")

	// Persistence errors
	ErrNotFound       = errors.New("resource not found")
	ErrResultNotFound = fmt.Errorf("%w: test result", ErrNotFound)
)

// Error constructors with context

// NewShapeError reports a boundary ordering violation. The offending
// boundaries are included verbatim so caller bugs stay visible.
func NewShapeError(a, b, c, d float64) error {
	return fmt.Errorf("%w: boundaries (%v, %v, %v, %v) must satisfy a <= b <= c <= d",
		ErrInvalidShape, a, b, c, d)
}

func NewParameterError(name string, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidParameter, name, reason)
}

func NewEmptySampleError(m, n int) error {
	return fmt.Errorf("%w: need observations in both groups (got %d and %d)", ErrEmptySample, m, n)
}

// Error checking helpers

func IsShapeError(err error) bool {
	return errors.Is(err, ErrInvalidShape)
}

func IsArithmeticError(err error) bool {
	return errors.Is(err, ErrInvalidShape) ||
		errors.Is(err, ErrDivisionByZero)
}

func IsInputError(err error) bool {
	return errors.Is(err, ErrEmptySample) ||
		errors.Is(err, ErrInvalidParameter)
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
