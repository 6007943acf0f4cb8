package solo

import (
	"context"

	"github.com/ib-77/ropresult/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Ok(input)
}

func Fail[T any](err rop.Error) rop.Result[T] {
	return rop.Failure[T](err)
}

func FailMsg[T any](message string) rop.Result[T] {
	return rop.FailureMsg[T](message)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {

	if input.IsSuccess() {
		if isValid, errMsg := validate(ctx, input.Value()); !isValid {
			return rop.FailureMsg[T](errMsg)
		}
	}
	return input
}

func Switch[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	return rop.OnSuccess(input, func(r In) rop.Result[Out] {
		return onSuccess(ctx, r)
	})
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	return rop.OnSuccess(input, func(r In) rop.Result[Out] {
		return rop.Ok(onSuccess(ctx, r))
	})
}

func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func TeeIf[T any](ctx context.Context,
	input rop.Result[T],
	condition func(ctx context.Context, r rop.Result[T]) bool,
	onSuccessAndCondition func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	if input.IsSuccess() {
		if condition(ctx, input) {
			onSuccessAndCondition(ctx, input)
		}
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err rop.Error)) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	} else {
		onError(ctx, input.Error())
	}

	return input
}

// DoubleMap maps the value of a success; a failure is reported to onError
// and forwarded unchanged.
func DoubleMap[In any, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err rop.Error)) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Ok(onSuccess(ctx, input.Value()))
	}

	onError(ctx, input.Error())
	return rop.Failure[Out](input.Error())
}

// Try calls a (Out, error) function on the value of a success. A returned
// error becomes the failure, kept as is when it already is a rop.Error.
func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	return rop.OnSuccess(input, func(r In) rop.Result[Out] {
		out, err := onTryExecute(ctx, r)
		if !rop.IsNil(err) {
			return rop.Failure[Out](rop.AsError(err))
		}
		return rop.Ok(out)
	})
}

func FailOnError[T any](ctx context.Context, input rop.Result[T],
	maybeErr func(ctx context.Context, in T) error) rop.Result[T] {
	if input.IsSuccess() {
		if err := maybeErr(ctx, input.Value()); !rop.IsNil(err) {
			return rop.Failure[T](rop.AsError(err))
		}
	}
	return input
}

func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err rop.Error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return onError(ctx, input.Error())
}
