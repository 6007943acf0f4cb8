// Package ropzap logs rop.Result values with go.uber.org/zap.
//
// Field renders a Result as a structured object; LogFailure and LogSuccess
// return handlers that plug straight into Result.OnFailure and
// Result.OnSuccess.
package ropzap
