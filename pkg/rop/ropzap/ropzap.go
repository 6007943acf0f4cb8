package ropzap

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ib-77/ropresult/pkg/rop"
)

type outcome struct {
	r     rop.Outcome
	value func() any
}

func (o outcome) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if id := o.r.ID(); id != uuid.Nil {
		enc.AddString("id", id.String())
	}
	if created := o.r.CreatedAt(); !created.IsZero() {
		enc.AddString("created_at", created.Format(time.RFC3339Nano))
	}
	enc.AddBool("success", o.r.IsSuccess())

	if o.r.IsFailure() {
		enc.AddString("error", o.r.Error().Message())
		return nil
	}
	if o.value != nil {
		return enc.AddReflected("value", o.value())
	}
	return nil
}

// Field renders r, value included, under key.
func Field[T any](key string, r rop.Result[T]) zap.Field {
	return zap.Object(key, outcome{r: r, value: func() any { return r.Value() }})
}

// Status renders r without its value.
func Status(key string, r rop.Outcome) zap.Field {
	return zap.Object(key, outcome{r: r})
}

func withField(fields []zap.Field, f zap.Field) []zap.Field {
	all := make([]zap.Field, 0, len(fields)+1)
	all = append(all, fields...)
	return append(all, f)
}

// LogFailure returns a handler for Result.OnFailure that logs the failure
// message at error level.
//
//	res.OnFailure(ropzap.LogFailure(logger, "import failed"))
func LogFailure(logger *zap.Logger, msg string, fields ...zap.Field) func(string) {
	return func(message string) {
		logger.Error(msg, withField(fields, zap.String("error", message))...)
	}
}

// LogSuccess returns a handler for Result.OnSuccess that logs the value at
// debug level.
func LogSuccess[T any](logger *zap.Logger, msg string, fields ...zap.Field) func(T) {
	return func(v T) {
		logger.Debug(msg, withField(fields, zap.Any("value", v))...)
	}
}

// LogError logs r at error level when it failed with an error of type K.
func LogError[K rop.Error, T any](logger *zap.Logger, r rop.Result[T], msg string) rop.Result[T] {
	return rop.OnFailure(r, func(e K) {
		logger.Error(msg, zap.Error(e), Status("result", r))
	})
}
