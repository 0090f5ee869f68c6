package core

import (
	"errors"
	"fmt"
)

// Error kinds shared by all pipeline stages. Stage packages wrap these with
// context about the offending value, so callers can match with errors.Is.
var (
	// ErrInvalidParameter reports a rejected numeric or structural parameter.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrShapeMismatch reports sensor signals of unequal length or an empty array.
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrInsufficientData reports input too short for the requested analysis.
	ErrInsufficientData = errors.New("insufficient data")
)

// InvalidParameterf returns an ErrInvalidParameter wrapped with a formatted message.
func InvalidParameterf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}

// ShapeMismatchf returns an ErrShapeMismatch wrapped with a formatted message.
func ShapeMismatchf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrShapeMismatch, fmt.Sprintf(format, args...))
}

// InsufficientDataf returns an ErrInsufficientData wrapped with a formatted message.
func InsufficientDataf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInsufficientData, fmt.Sprintf(format, args...))
}
