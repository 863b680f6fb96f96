// Package errs defines the error kinds shared by the recognizer lifecycle,
// the handle registry and the C bridge.
package errs

import (
	"errors"
	"fmt"
)

type Kind string

const (
	// KindInvalidState means the operation is not legal in the current lifecycle state.
	KindInvalidState Kind = "invalid_state"
	// KindInvalidHandle means a caller passed an unknown, released or mistyped handle.
	KindInvalidHandle Kind = "invalid_handle"
	// KindBusy means another operation is in progress.
	KindBusy Kind = "busy"
	// KindNotFound means the requested object or value does not exist.
	KindNotFound Kind = "not_found"
	// KindInvalidArgument means an argument failed validation.
	KindInvalidArgument Kind = "invalid_argument"
	// KindInternal covers failures of the pipeline or of a collaborator.
	KindInternal Kind = "internal"
)

// Sentinels for errors.Is. Any *Error of the same kind matches.
var (
	ErrInvalidState    = &Error{Kind: KindInvalidState}
	ErrInvalidHandle   = &Error{Kind: KindInvalidHandle}
	ErrBusy            = &Error{Kind: KindBusy}
	ErrNotFound        = &Error{Kind: KindNotFound}
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument}
	ErrInternal        = &Error{Kind: KindInternal}
)

type Error struct {
	Kind    Kind
	Op      string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Cause != nil {
		return fmt.Sprintf("[%s:%s] %s: %v", e.Kind, e.Op, msg, e.Cause)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Kind, e.Op, msg)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func New(kind Kind, op, message string) *Error {
	return &Error{
		Kind:    kind,
		Op:      op,
		Message: message,
	}
}

// Wrap annotates err with a kind. Errors that already carry a kind are
// returned unchanged so the innermost classification wins.
func Wrap(kind Kind, op, message string, err error) error {
	if err == nil {
		return nil
	}

	var typed *Error
	if errors.As(err, &typed) {
		return err
	}

	return &Error{
		Kind:    kind,
		Op:      op,
		Message: message,
		Cause:   err,
	}
}

// KindOf returns the kind of the first *Error in the chain, or KindInternal
// for errors that were never classified.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var typed *Error
	if errors.As(err, &typed) {
		return typed.Kind
	}
	return KindInternal
}
