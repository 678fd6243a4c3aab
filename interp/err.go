package interp

import "errors"

var (
	// ErrNoInstructions is returned by Forward when the pending
	// queue is empty.
	ErrNoInstructions = errors.New("no instructions")
	// ErrNoHistory is returned by Back when nothing has been
	// executed yet.
	ErrNoHistory = errors.New("no history")
	// ErrStackUnderflow is returned when an instruction needs more
	// operands than the stack holds.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrDivideByZero is returned by DIV with a zero divisor.
	ErrDivideByZero = errors.New("divide by zero")
	// ErrArithmeticOverflow is returned when a result does not fit
	// in a signed 32-bit integer.
	ErrArithmeticOverflow = errors.New("arithmetic overflow")
)

var runtimeErrors = []error{
	ErrNoInstructions,
	ErrNoHistory,
	ErrStackUnderflow,
	ErrDivideByZero,
	ErrArithmeticOverflow,
}

// IsRuntime reports whether err is one of the interpreter runtime
// errors, as opposed to a parse or command error.
func IsRuntime(err error) bool {
	for _, e := range runtimeErrors {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
