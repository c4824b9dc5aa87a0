package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	ErrNotFound         = errors.New("resource not found")
	ErrUnknownScenario  = fmt.Errorf("%w: scenario", ErrNotFound)
	ErrInvalidParameter = errors.New("invalid distribution parameter")
	ErrInsufficientData = errors.New("insufficient data for analysis")
	ErrInvalidLevel     = errors.New("invalid confidence or significance level")

	// Determinism errors
	ErrNonDeterministic = errors.New("non-deterministic result")
	ErrHashMismatch     = errors.New("hash mismatch")
)

// NewParameterError reports an out-of-domain distribution parameter
func NewParameterError(name string, value float64, reason string) error {
	return fmt.Errorf("%w: %s=%v %s", ErrInvalidParameter, name, value, reason)
}

// NewLevelError reports a confidence or significance level outside (0, 1)
func NewLevelError(name string, value float64) error {
	return fmt.Errorf("%w: %s=%v must be in (0, 1)", ErrInvalidLevel, name, value)
}

func NewUnknownScenarioError(key string) error {
	return fmt.Errorf("%w %q", ErrUnknownScenario, key)
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError reports whether err stems from bad input values
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidParameter) ||
		errors.Is(err, ErrInvalidLevel) ||
		errors.Is(err, ErrInsufficientData)
}

func IsDeterminismError(err error) bool {
	return errors.Is(err, ErrNonDeterministic) ||
		errors.Is(err, ErrHashMismatch)
}
