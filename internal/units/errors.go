package units

import (
	"errors"
	"fmt"
)

// Parse errors. Every failure from [Parse] is a *ParseError wrapping one of these.
var (
	// ErrMultipleSlashes indicates more than one '/' in a unit string.
	ErrMultipleSlashes = errors.New("units: unit string can only have one '/'")

	// ErrEmptyToken indicates adjacent or dangling '-' separators.
	ErrEmptyToken = errors.New("units: empty unit token")

	// ErrMissingExponent indicates a '^' with nothing after it.
	ErrMissingExponent = errors.New("units: missing exponent after '^'")

	// ErrInvalidExponent indicates exponent text that is not an integer.
	ErrInvalidExponent = errors.New("units: unable to read numeric power")

	// ErrMissingSymbol indicates an exponent with no unit symbol before it.
	ErrMissingSymbol = errors.New("units: missing unit symbol before exponent")

	// ErrUnknownUnit indicates a symbol absent from the registry.
	ErrUnknownUnit = errors.New("units: unknown unit")
)

// ParseError wraps a parse failure with the input and offending token.
type ParseError struct {
	Input string
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%v in %q", e.Err, e.Input)
	}
	return fmt.Sprintf("%v %q in %q", e.Err, e.Token, e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
