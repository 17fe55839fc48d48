package dimvar

import (
	"errors"
	"fmt"
)

// Domain errors for dimensional operations.
var (
	// ErrDimensionMismatch indicates operands with different base exponents.
	ErrDimensionMismatch = errors.New("dimvar: incompatible units")

	// ErrDomain indicates an operand outside the operation's domain.
	ErrDomain = errors.New("dimvar: domain error")
)

// OpError wraps an error with the operation that produced it.
type OpError struct {
	Op     string
	Detail string
	Err    error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Detail)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func mismatch(op, detail string) error {
	return &OpError{Op: op, Detail: detail, Err: ErrDimensionMismatch}
}

func domain(op, detail string) error {
	return &OpError{Op: op, Detail: detail, Err: ErrDomain}
}
