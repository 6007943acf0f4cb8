package rop

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnSuccess_CalledWithValue(t *testing.T) {
	t.Parallel()

	r := Ok("payload")

	calls := 0
	var got string
	out := r.OnSuccess(func(v string) {
		calls++
		got = v
	})

	assert.Equal(t, 1, calls)
	assert.Equal(t, "payload", got)
	assert.Equal(t, r, out)
}

func TestOnSuccess_NotCalledOnFailure(t *testing.T) {
	t.Parallel()

	r := FailureMsg[string]("Error")

	called := false
	out := r.OnSuccess(func(string) { called = true })

	assert.False(t, called)
	assert.Equal(t, r, out)
}

func TestOnSuccessBind_ReturnsNextResult(t *testing.T) {
	t.Parallel()

	r1 := Ok(10)
	r2 := Ok("value")

	out := OnSuccess(r1, func(int) Result[string] { return r2 })

	assert.Equal(t, r2, out)
}

func TestOnSuccessBind_ReturnsNextFailure(t *testing.T) {
	t.Parallel()

	r2 := FailureMsg[string]("second step failed")

	out := OnSuccess(Ok(1), func(int) Result[string] { return r2 })

	assert.Equal(t, r2, out)
}

func TestOnSuccessBind_NotCalledOnFailure(t *testing.T) {
	t.Parallel()

	e := newNotFoundError("order")
	r1 := Failure[int](e)

	called := false
	out := OnSuccess(r1, func(int) Result[string] {
		called = true
		return Ok("never")
	})

	assert.False(t, called)
	require.True(t, out.IsFailure())
	assert.Same(t, e, out.Error())
}

func TestOnSuccessBind_ForwardsSentinel(t *testing.T) {
	t.Parallel()

	var r Result[int]

	out := OnSuccess(r, func(int) Result[bool] { return Ok(true) })

	require.True(t, out.IsFailure())
	assert.Equal(t, DefaultConstructorMessage, out.Error().Message())
}

func TestOnSuccessBind_LongChainKeepsFirstError(t *testing.T) {
	t.Parallel()

	parse := func(s string) Result[int] {
		n, err := strconv.Atoi(s)
		return FromPair(n, err)
	}
	positive := func(n int) Result[int] {
		if n <= 0 {
			return Failuref[int]("%d is not positive", n)
		}
		return Ok(n)
	}
	half := func(n int) Result[float64] { return Ok(float64(n) / 2) }

	ok := OnSuccess(OnSuccess(parse("8"), positive), half)
	require.True(t, ok.IsSuccess())
	assert.Equal(t, 4.0, ok.Value())

	neg := OnSuccess(OnSuccess(parse("-3"), positive), half)
	require.True(t, neg.IsFailure())
	assert.Equal(t, "-3 is not positive", neg.Error().Message())

	first := OnSuccess(parse("x"), positive)
	last := OnSuccess(first, half)
	assert.Equal(t, first.Error(), last.Error())
	assert.IsType(t, CauseError{}, last.Error())
}

func TestOnFailure_CalledWithMessage(t *testing.T) {
	t.Parallel()

	r := FailureMsg[int]("Error")

	calls := 0
	var got string
	out := r.OnFailure(func(msg string) {
		calls++
		got = msg
	})

	assert.Equal(t, 1, calls)
	assert.Equal(t, "Error", got)
	assert.Equal(t, r, out)
}

func TestOnFailure_NotCalledOnSuccess(t *testing.T) {
	t.Parallel()

	called := false
	Ok(1).OnFailure(func(string) { called = true })

	assert.False(t, called)
}

func TestOnFailure_ZeroValueReportsSentinel(t *testing.T) {
	t.Parallel()

	var got string
	Result[int]{}.OnFailure(func(msg string) { got = msg })

	assert.Equal(t, DefaultConstructorMessage, got)
}

func TestOnFailureTyped_CalledOnMatchingError(t *testing.T) {
	t.Parallel()

	e := newNotFoundError("user")
	r := Failure[int](e)

	var got *notFoundError
	out := OnFailure(r, func(err *notFoundError) { got = err })

	assert.Same(t, e, got)
	assert.Equal(t, "user", got.key)
	assert.Equal(t, r, out)
}

func TestOnFailureTyped_NotCalledOnGenericError(t *testing.T) {
	t.Parallel()

	called := false
	OnFailure(FailureMsg[int]("Error"), func(*notFoundError) { called = true })

	assert.False(t, called)
}

func TestOnFailureTyped_NotCalledOnOtherVariant(t *testing.T) {
	t.Parallel()

	r := Failure[int](conflictError{BaseError: NewBaseError("conflict")})

	called := false
	OnFailure(r, func(*notFoundError) { called = true })

	assert.False(t, called)
}

func TestOnFailureTyped_NotCalledOnSuccess(t *testing.T) {
	t.Parallel()

	called := false
	OnFailure(Ok(3), func(*notFoundError) { called = true })

	assert.False(t, called)
}

func TestOnFailureTyped_GenericErrorMatchesSentinel(t *testing.T) {
	t.Parallel()

	var got GenericError
	OnFailure(Result[int]{}, func(e GenericError) { got = e })

	assert.Equal(t, DefaultConstructorMessage, got.Message())
}

func TestOnFailureTyped_InterfaceTarget(t *testing.T) {
	t.Parallel()

	type unwrapper interface {
		Error
		Unwrap() error
	}

	calls := 0
	OnFailure(FromPair(0, strconv.ErrRange), func(unwrapper) { calls++ })
	OnFailure(FailureMsg[int]("plain"), func(unwrapper) { calls++ })

	assert.Equal(t, 1, calls)
}

func TestCombinators_Fluent(t *testing.T) {
	t.Parallel()

	var seen []string
	FailureMsg[int]("boom").
		OnSuccess(func(int) { seen = append(seen, "success") }).
		OnFailure(func(msg string) { seen = append(seen, "failure:"+msg) })

	assert.Equal(t, []string{"failure:boom"}, seen)
}
