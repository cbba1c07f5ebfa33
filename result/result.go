// Package result provides a generic success/failure container used to
// propagate expected failures through the detection platform without panics.
//
// A Result is constructed exactly once, via Ok or Err, and is immutable
// afterwards. Combinators that change the success or error type (Map, MapErr,
// FlatMap, OrElse) are package-level functions because Go methods cannot
// introduce new type parameters.
package result

import "fmt"

// Result holds exactly one of a success value of type T or an error value of
// type E. The zero value is a failure carrying E's zero value; always
// construct results with Ok or Err.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok returns a successful Result wrapping value.
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

// Err returns a failed Result wrapping err.
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// IsOk reports whether the result holds a success value.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr reports whether the result holds an error value.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Unwrap returns the success value and panics if the result is a failure.
// Only call it where success has already been proven.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(fmt.Sprintf("called Unwrap on an Err result: %v", r.err))
	}
	return r.value
}

// UnwrapErr returns the error value and panics if the result is a success.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic(fmt.Sprintf("called UnwrapErr on an Ok result: %v", r.value))
	}
	return r.err
}

// UnwrapOr returns the success value, or def if the result is a failure.
func (r Result[T, E]) UnwrapOr(def T) T {
	if !r.ok {
		return def
	}
	return r.value
}

// UnwrapOrElse returns the success value, or computes one from the error.
func (r Result[T, E]) UnwrapOrElse(fn func(E) T) T {
	if !r.ok {
		return fn(r.err)
	}
	return r.value
}

// Expect behaves like Unwrap but prefixes msg on the panic message.
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		panic(fmt.Sprintf("%s: %v", msg, r.err))
	}
	return r.value
}

// ExpectErr behaves like UnwrapErr but prefixes msg on the panic message.
func (r Result[T, E]) ExpectErr(msg string) E {
	if r.ok {
		panic(fmt.Sprintf("%s: %v", msg, r.value))
	}
	return r.err
}

// Inspect calls fn with the success value, if any, and returns the receiver
// unchanged. Useful for logging-style hooks.
func (r Result[T, E]) Inspect(fn func(T)) Result[T, E] {
	if r.ok {
		fn(r.value)
	}
	return r
}

// InspectErr calls fn with the error value, if any, and returns the receiver
// unchanged.
func (r Result[T, E]) InspectErr(fn func(E)) Result[T, E] {
	if !r.ok {
		fn(r.err)
	}
	return r
}

// String renders the result as Ok(value) or Err(error).
func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// Map transforms the success value with fn. A failure passes through with the
// same error and the new success type.
func Map[T, E, U any](r Result[T, E], fn func(T) U) Result[U, E] {
	if !r.ok {
		return Err[U](r.err)
	}
	return Ok[U, E](fn(r.value))
}

// MapErr transforms the error value with fn. A success passes through with
// the same value and the new error type.
func MapErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return Err[T](fn(r.err))
}

// FlatMap sequences a fallible computation after a successful one. A failure
// short-circuits without invoking fn.
func FlatMap[T, E, U any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return Err[U](r.err)
	}
	return fn(r.value)
}

// Bind is an alias for FlatMap.
func Bind[T, E, U any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	return FlatMap(r, fn)
}

// OrElse sequences a recovery computation after a failure. A success
// short-circuits without invoking fn.
func OrElse[T, E, F any](r Result[T, E], fn func(E) Result[T, F]) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return fn(r.err)
}
