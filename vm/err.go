package vm

import (
	"errors"
	"fmt"
)

// ErrMalformedInstruction covers a PUSH without an argument and a
// zero-argument mnemonic followed by trailing text.
var ErrMalformedInstruction = errors.New("malformed instruction")

// ErrUnknownInstruction carries an unrecognized mnemonic token.
type ErrUnknownInstruction string

func (e ErrUnknownInstruction) Error() string {
	return fmt.Sprintf("unknown instruction %q", string(e))
}

func (e ErrUnknownInstruction) Is(err error) (ok bool) {
	_, ok = err.(ErrUnknownInstruction)
	return
}

// ErrInvalidArgument carries argument text that does not parse as a
// signed 32-bit integer.
type ErrInvalidArgument string

func (e ErrInvalidArgument) Error() string {
	return fmt.Sprintf("%q is not a 32-bit integer", string(e))
}

func (e ErrInvalidArgument) Is(err error) (ok bool) {
	_, ok = err.(ErrInvalidArgument)
	return
}

// ErrBatch wraps a parse failure with its position inside a
// semicolon-separated batch. Index is zero-based.
type ErrBatch struct {
	Index int
	Text  string
	Err   error
}

func (e ErrBatch) Error() string {
	return fmt.Sprintf("instruction %d %q: %v", e.Index+1, e.Text, e.Err)
}

func (e ErrBatch) Unwrap() error {
	return e.Err
}
