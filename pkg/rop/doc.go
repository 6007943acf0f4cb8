// Package rop provides Result[T], a value that is either a success holding a
// T or a failure holding an Error, and the combinators that chain Results
// without unwinding the stack.
//
// Expected failures travel as data inside a Result. Misusing the API
// (a nil value or error, an empty message, reading Value of a failure or
// Error of a success) panics with an ErrInvalidArgument or ErrInvalidState
// class error.
//
// A Result[T]{} that did not come from Ok or Failure is a failure whose
// Error is a GenericError with DefaultConstructorMessage.
//
// Combinators:
// - (Result).OnSuccess: observe the value
// - OnSuccess: bind to the next Result, forwarding the same Error on failure
// - (Result).OnFailure: observe the failure message
// - OnFailure: observe failures of one Error type only
package rop
