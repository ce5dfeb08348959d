package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Measure errors
	ErrInvalidMeasure = errors.New("invalid probability measure")

	// Evaluation errors
	ErrOutcomeMismatch = errors.New("outcome does not belong to sample space")

	// Conditioning errors
	ErrDegenerateCondition = errors.New("conditioning event has zero probability")

	// Construction errors
	ErrEmptyPMF      = errors.New("probability mass function has no entries")
	ErrInvalidDie    = errors.New("invalid die specification")
	ErrSpaceTooLarge = errors.New("sample space enumeration too large")
)

// Error constructors with context
func NewMeasureError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidMeasure, reason)
}

func NewOutcomeMismatchError(context string) error {
	return fmt.Errorf("%w: %s", ErrOutcomeMismatch, context)
}

func NewDegenerateConditionError(context string) error {
	return fmt.Errorf("%w: %s", ErrDegenerateCondition, context)
}

// Error checking helpers
func IsMeasureError(err error) bool {
	return errors.Is(err, ErrInvalidMeasure)
}

func IsOutcomeMismatchError(err error) bool {
	return errors.Is(err, ErrOutcomeMismatch)
}

func IsDegenerateConditionError(err error) bool {
	return errors.Is(err, ErrDegenerateCondition)
}
