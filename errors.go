package viu

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// Construction faults. They signal programming errors in tree assembly and
// are returned synchronously from the call that caused them.
var (
	ErrAlreadyOwned    = errors.New("component already has a parent")
	ErrUnsupportedHint = errors.New("layout hint not accepted by strategy")
	ErrNotChild        = errors.New("component is not a child of this container")
	ErrSlotTaken       = errors.New("layout slot already occupied")
)

// PanicError wraps a value recovered from a closure run on the event loop or
// a background task.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it was an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

func recovered(v any) *PanicError {
	return &PanicError{Value: v, Stack: debug.Stack()}
}
