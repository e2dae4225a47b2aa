package engine

import (
	"fmt"
	"runtime/debug"
)

// FatalLoopError is an unrecoverable failure inside a frame. The caller
// releases its resources and exits with a diagnostic.
type FatalLoopError struct {
	Frame uint64
	Cause any
	Stack []byte
}

func (e *FatalLoopError) Error() string {
	return fmt.Sprintf("fatal error in frame %d: %v", e.Frame, e.Cause)
}

// Unwrap exposes the cause when it is an error
func (e *FatalLoopError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}

// SafeStep runs fn and converts a panic or a returned error into a FatalLoopError
func SafeStep(frame uint64, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &FatalLoopError{Frame: frame, Cause: r, Stack: debug.Stack()}
		}
	}()

	if stepErr := fn(); stepErr != nil {
		return &FatalLoopError{Frame: frame, Cause: stepErr}
	}
	return nil
}
