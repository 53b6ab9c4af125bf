package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for callers that need to map it to their own
// presentation layer (HTTP status codes, CLI exit codes, ...).
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindInvalidInput
	KindForbidden
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindInvalidInput:
		return "invalid_input"
	case KindForbidden:
		return "forbidden"
	default:
		return "internal"
	}
}

// Error is the error type returned by services and repositories.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Msg, e.Err)
	case e.Op != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Msg)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	default:
		return e.Msg
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error with the same kind and message, so package level
// values like voting.ErrVoteClosed work with errors.Is even after WithOp.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Msg == t.Msg
}

// WithOp returns a copy of e tagged with the failing operation.
func (e *Error) WithOp(op string) *Error {
	cp := *e
	cp.Op = op
	return &cp
}

func NotFound(op, msg string) *Error {
	return &Error{Kind: KindNotFound, Op: op, Msg: msg}
}

func Conflict(op, msg string) *Error {
	return &Error{Kind: KindConflict, Op: op, Msg: msg}
}

func InvalidInput(op, msg string) *Error {
	return &Error{Kind: KindInvalidInput, Op: op, Msg: msg}
}

func Forbidden(op, msg string) *Error {
	return &Error{Kind: KindForbidden, Op: op, Msg: msg}
}

// Internal wraps an unexpected failure (database down, driver error, ...).
func Internal(op string, err error) *Error {
	return &Error{Kind: KindInternal, Op: op, Msg: "internal error", Err: err}
}

// KindOf reports the kind of err. Errors that are not *Error are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Message returns the user facing message of err.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return "internal error"
}
