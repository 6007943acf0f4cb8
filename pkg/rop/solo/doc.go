// Package solo contains single-value, synchronous primitives that operate
// on rop.Result[T] and thread a context.Context through every callback.
// They are thin wrappers over the rop combinators.
//
// Highlights:
// - Succeed/Fail/FailMsg: construct Result[T]
// - Validate/AndValidate: apply validation producing failure on invalid input
// - Switch: move from Result[In] to Result[Out]
// - Map/DoubleMap: transform successful values
// - Try/FailOnError: call a function returning error and convert it to failure
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error handlers
package solo
