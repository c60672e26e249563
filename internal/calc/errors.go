package calc

import "errors"

// Sentinels for arithmetic failures, matched with errors.Is.
var (
	ErrDivideByZero = errors.New("division by zero")
	ErrOverflow     = errors.New("overflow")
)

// ArithmeticError reports a failed Eq step. It is recoverable: the Backend
// latches it for display instead of crashing.
type ArithmeticError struct {
	Op  Op
	Err error // ErrDivideByZero or ErrOverflow
}

func (e *ArithmeticError) Error() string {
	return "calc: " + e.Op.String() + ": " + e.Err.Error()
}

func (e *ArithmeticError) Unwrap() error {
	return e.Err
}
