// Package apperr holds the error taxonomy shared by the store, the service and the HTTP layer.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
	ErrStorage    = errors.New("storage failure")
)

// Error carries one of the sentinel kinds plus a client-facing message.
// Err is the underlying cause, kept for logs only.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Is(target error) bool { return target == e.Kind }

func (e *Error) Unwrap() error { return e.Err }

func Validation(format string, args ...any) error {
	return &Error{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

func Conflict(msg string, cause error) error {
	return &Error{Kind: ErrConflict, Message: msg, Err: cause}
}

func NotFound(msg string) error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

func Storage(msg string, cause error) error {
	return &Error{Kind: ErrStorage, Message: msg, Err: cause}
}

// Message returns the text that is safe to show a client.
// Storage failures and unclassified errors are reported generically.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != ErrStorage {
		return e.Message
	}
	return "internal server error"
}
