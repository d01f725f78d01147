package service

import "errors"

// Kind classifies a service error for HTTP mapping in the handlers.
type Kind int

const (
	KindInvalid  Kind = iota // 400 — missing/malformed input
	KindConflict             // 400 — uniqueness or integrity violation
	KindNotFound             // 404
)

// Error is a service-level failure with a client-safe message. Anything a
// service returns that is not an *Error is treated as a dependency failure
// and surfaces as a generic 500.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func Invalid(msg string) error  { return &Error{Kind: KindInvalid, Message: msg} }
func Conflict(msg string) error { return &Error{Kind: KindConflict, Message: msg} }
func NotFound(msg string) error { return &Error{Kind: KindNotFound, Message: msg} }

// AsError unwraps a service error, if err is one.
func AsError(err error) (*Error, bool) {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}
