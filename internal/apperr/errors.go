package apperr

import "errors"

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrInvalidState is returned when an entity is not in a state that allows the operation.
var ErrInvalidState = errors.New("invalid state")

// ErrConflict indicates a uniqueness conflict (HTTP 409).
var ErrConflict = errors.New("conflict")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrTransient marks failures that may succeed on retry (timeouts, lost connections, serialization failures).
var ErrTransient = errors.New("transient failure")

// Error is a classified error carrying a client-facing message.
type Error struct {
	Kind error
	Msg  string
}

// New returns an error of the given kind with a client-facing message.
func New(kind error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func (e *Error) Error() string { return e.Msg }

// Unwrap exposes the kind to errors.Is.
func (e *Error) Unwrap() error { return e.Kind }

// Message returns the client-facing message of err, or fallback when err carries none.
func Message(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) && e.Msg != "" {
		return e.Msg
	}
	return fallback
}

// Classified reports whether err already belongs to one of the known kinds.
func Classified(err error) bool {
	return errors.Is(err, ErrInvalid) ||
		errors.Is(err, ErrInvalidState) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrTransient)
}
