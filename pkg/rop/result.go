package rop

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultConstructorMessage is the message of the error reported by a
// Result that was not built by Ok or Failure, e.g. Result[T]{}.
const DefaultConstructorMessage = "Default constructor should not be used."

var defaultConstructedError = sync.OnceValue(func() Error {
	return NewGenericError(DefaultConstructorMessage)
})

// Result is either a success carrying a value or a failure carrying an
// Error. Build it with Ok or Failure; the zero value reads as a failure.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       Error
	isSuccess bool
}

func Ok[T any](value T) Result[T] {
	if IsNil(value) {
		panic(ErrInvalidArgument.New("value must not be nil"))
	}

	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     value,
		isSuccess: true,
	}
}

func Failure[T any](err Error) Result[T] {
	if IsNil(err) {
		panic(ErrInvalidArgument.New("error must not be nil"))
	}
	if err.Message() == "" {
		panic(ErrInvalidArgument.New("error message must not be empty"))
	}

	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		err:       err,
		isSuccess: false,
	}
}

// FailureMsg reports a failure described only by message.
func FailureMsg[T any](message string) Result[T] {
	return Failure[T](NewGenericError(message))
}

func Failuref[T any](format string, args ...any) Result[T] {
	return FailureMsg[T](fmt.Sprintf(format, args...))
}

// FromPair converts a (value, error) return into a Result. A non-nil err
// always becomes a failure. With a nil err the value goes through Ok, so a
// (nil, nil) return such as a "not found" pointer panics with
// ErrInvalidArgument; handle that case before calling FromPair.
func FromPair[T any](value T, err error) Result[T] {
	if !IsNil(err) {
		return Failure[T](AsError(err))
	}
	return Ok(value)
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

// Value returns the success value. It panics on a failure.
func (r Result[T]) Value() T {
	if r.IsFailure() {
		panic(ErrInvalidState.New("Result is failure. Value not available."))
	}
	return r.value
}

// Error returns the failure. It panics on a success.
func (r Result[T]) Error() Error {
	if r.IsSuccess() {
		panic(ErrInvalidState.New("Result is success. Error not available"))
	}
	if r.err == nil {
		return defaultConstructedError()
	}
	return r.err
}

// Unwrap returns the value and a nil error on success, or T's zero value
// and the failure.
func (r Result[T]) Unwrap() (T, error) {
	if r.IsFailure() {
		var zero T
		return zero, r.Error()
	}
	return r.value, nil
}

func (r Result[T]) ValueOr(fallback T) T {
	if r.IsFailure() {
		return fallback
	}
	return r.value
}

func (r Result[T]) ID() uuid.UUID {
	return r.id
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) String() string {
	if r.IsSuccess() {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Failure(%s)", r.Error().Message())
}
