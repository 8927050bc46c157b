// Package common defines the error kinds shared by the gophtodo stores and
// the presentation layer. Callers should use errors.Is to match the kinds.
package common

import "errors"

var (
	// ErrValidation reports malformed or missing input, detected before any I/O.
	ErrValidation = errors.New("validation error")

	// ErrConflict reports a uniqueness violation on signup.
	ErrConflict = errors.New("conflict")

	// ErrUnauthorized reports a credential mismatch on login.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrStorage reports a key/value backend read or write failure.
	ErrStorage = errors.New("storage error")

	// ErrNetwork reports a failure talking to the remote seed source.
	ErrNetwork = errors.New("network error")
)

// Dialog titles shown by the presentation layer.
const (
	TitleValidation   = "Validation Error"
	TitleRegistration = "Registration Error"
	TitleLogin        = "Login Error"
	TitleError        = "Error"
	TitleSuccess      = "Success"
)

// MessageUnexpected is shown for failures that carry no user-facing text.
const MessageUnexpected = "An unexpected error occurred. Please try again later."

// Error is a classified store failure. It unwraps to both its Kind and the
// underlying cause, so errors.Is works against either.
type Error struct {
	Kind    error
	Title   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Kind.Error() + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Kind.Error() + ": " + e.Message
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(kind error, title, message string, cause error) *Error {
	return &Error{Kind: kind, Title: title, Message: message, Err: cause}
}

func Validation(message string) *Error {
	return newError(ErrValidation, TitleValidation, message, nil)
}

func Conflict(message string) *Error {
	return newError(ErrConflict, TitleRegistration, message, nil)
}

func Unauthorized(message string) *Error {
	return newError(ErrUnauthorized, TitleLogin, message, nil)
}

func Storage(message string, cause error) *Error {
	return newError(ErrStorage, TitleError, message, cause)
}

func Network(message string, cause error) *Error {
	return newError(ErrNetwork, TitleError, message, cause)
}

// Describe returns the dialog title and message for err. Errors that were
// not produced by the stores get a generic, non-revealing description.
func Describe(err error) (title, message string) {
	var e *Error
	if errors.As(err, &e) {
		return e.Title, e.Message
	}
	return TitleError, MessageUnexpected
}
