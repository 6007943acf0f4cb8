package rop

import (
	"fmt"

	"github.com/zeebo/errs"
)

// Misuse of the API panics with an error of one of these classes.
// Use Class.Has on the recovered value to tell them apart.
var (
	ErrInvalidArgument = errs.Class("invalid argument")
	ErrInvalidState    = errs.Class("invalid state")
)

// Error is the capability every failure carried by a Result implements.
// Message is never empty and Error/String render it verbatim.
type Error interface {
	error
	fmt.Stringer
	Message() string
}

// BaseError holds the message of an Error. Embed it in structured
// variants and build it with NewBaseError.
type BaseError struct {
	message string
}

func NewBaseError(message string) BaseError {
	if message == "" {
		panic(ErrInvalidArgument.New("message must contain at least one character"))
	}
	return BaseError{message: message}
}

func (e BaseError) Message() string {
	return e.message
}

func (e BaseError) Error() string {
	return e.message
}

func (e BaseError) String() string {
	return e.message
}

// GenericError is a failure described only by its text.
type GenericError struct {
	BaseError
}

func NewGenericError(message string) GenericError {
	return GenericError{BaseError: NewBaseError(message)}
}

// CauseError carries a plain Go error as a Result failure.
type CauseError struct {
	BaseError
	cause error
}

// NewCauseError wraps cause. A cause with empty text is described by its
// type name instead.
func NewCauseError(cause error) CauseError {
	if IsNil(cause) {
		panic(ErrInvalidArgument.New("cause must not be nil"))
	}

	message := cause.Error()
	if message == "" {
		message = fmt.Sprintf("%T", cause)
	}
	return CauseError{BaseError: NewBaseError(message), cause: cause}
}

func (e CauseError) Unwrap() error {
	return e.cause
}

// AsError returns err unchanged when it already is an Error and wraps it
// into a CauseError otherwise.
func AsError(err error) Error {
	if e, ok := err.(Error); ok && !IsNil(e) {
		return e
	}
	return NewCauseError(err)
}
