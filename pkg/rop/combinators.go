package rop

// OnSuccess calls onSuccess with the value when r is a success.
// It always returns r.
func (r Result[T]) OnSuccess(onSuccess func(T)) Result[T] {
	if r.IsSuccess() {
		onSuccess(r.value)
	}
	return r
}

// OnFailure calls onFailure with the error message when r is a failure.
// It always returns r.
func (r Result[T]) OnFailure(onFailure func(message string)) Result[T] {
	if r.IsFailure() {
		onFailure(r.Error().Message())
	}
	return r
}

// OnSuccess passes the value of a successful r to next and returns its
// result. A failure is forwarded as Result[K] carrying the same Error and
// next is not called.
func OnSuccess[T, K any](r Result[T], next func(T) Result[K]) Result[K] {
	if r.IsSuccess() {
		return next(r.value)
	}
	return Failure[K](r.Error())
}

// OnFailure calls onFailure only when r failed with an error of type K.
// It always returns r.
//
//	rop.OnFailure(res, func(e NotFoundError) { ... })
func OnFailure[K Error, T any](r Result[T], onFailure func(K)) Result[T] {
	if r.IsFailure() {
		if e, ok := r.Error().(K); ok {
			onFailure(e)
		}
	}
	return r
}
