package elm

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is matching against the typed runtime errors.
var (
	ErrRenderLoop       = errors.New("elm: render loop did not settle")
	ErrUnhandledMessage = errors.New("elm: unhandled message")
	ErrPrecondition     = errors.New("elm: precondition violated")
)

// RenderLoopError reports a dispatch whose render callbacks kept queuing
// messages past the render ceiling. State is the last committed state.
type RenderLoopError struct {
	MaxRenders int
	State      any
}

func (e *RenderLoopError) Error() string {
	return fmt.Sprintf("elm: rendered %d times without settling, last state: %+v", e.MaxRenders, e.State)
}

func (e *RenderLoopError) Unwrap() error { return ErrRenderLoop }

// UnhandledMessageError is raised by a reducer that received a variant it
// has no case for.
type UnhandledMessageError struct {
	Message any
}

func (e *UnhandledMessageError) Error() string {
	return fmt.Sprintf("elm: no case for message %T (%+v)", e.Message, e.Message)
}

func (e *UnhandledMessageError) Unwrap() error { return ErrUnhandledMessage }

// UnhandledMessage builds the panic value reducers use in their default case:
//
//	default:
//		panic(elm.UnhandledMessage(msg))
func UnhandledMessage(msg any) *UnhandledMessageError {
	return &UnhandledMessageError{Message: msg}
}

// PreconditionError reports caller misuse, e.g. rendering a factory that
// was never set up.
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("elm: %s: %s", e.Op, e.Reason)
}

func (e *PreconditionError) Unwrap() error { return ErrPrecondition }

func precondition(op, reason string) *PreconditionError {
	return &PreconditionError{Op: op, Reason: reason}
}

// isRuntimeError reports whether a recovered panic value is one of the
// fatal errors raised by this package or by reducers through it.
func isRuntimeError(v any) (error, bool) {
	err, ok := v.(error)
	if !ok {
		return nil, false
	}
	if errors.Is(err, ErrRenderLoop) || errors.Is(err, ErrUnhandledMessage) || errors.Is(err, ErrPrecondition) {
		return err, true
	}
	return nil, false
}

// Catch runs fn and returns a runtime error it panicked with. Panics that
// did not come from this package's error types are re-raised.
func Catch(fn func()) (err error) {
	defer func() {
		if v := recover(); v != nil {
			e, ok := isRuntimeError(v)
			if !ok {
				panic(v)
			}
			err = e
		}
	}()
	fn()
	return nil
}
