package museum

// Result carries either a value or the error that prevented producing it.
// Adapters use it internally so failures stay inspectable until the public
// methods collapse them into empty values.
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Fail wraps an error. A nil error is not allowed and is treated as ErrMalformed.
func Fail[T any](err error) Result[T] {
	if err == nil {
		err = ErrMalformed
	}
	return Result[T]{err: err}
}

func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r Result[T]) OK() bool {
	return r.err == nil
}

func (r Result[T]) Err() error {
	return r.err
}

// ValueOr returns the value, or fallback when the result is a failure.
func (r Result[T]) ValueOr(fallback T) T {
	if r.err != nil {
		return fallback
	}
	return r.value
}
