// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asyncrt

// tryState tags which of the three states a Try currently holds.
type tryState uint8

const (
	tryEmpty tryState = iota
	tryValue
	tryError
)

// Try carries the result of an asynchronous computation: exactly one of
// nothing (Empty), a value, or an error. Every result crosses a Future,
// Promise, or Lazy boundary as a Try.
//
// The zero value of Try[T] is Empty.
type Try[T any] struct {
	state tryState
	value T
	err   error
}

// Value wraps v as a completed Try.
func Value[T any](v T) Try[T] {
	return Try[T]{state: tryValue, value: v}
}

// Error wraps err as a failed Try. Panics if err is nil — callers that mean
// to produce an empty Try should use a zero-valued Try[T] instead.
func Error[T any](err error) Try[T] {
	if err == nil {
		panic("asyncrt: Error called with a nil error")
	}
	return Try[T]{state: tryError, err: err}
}

// HasValue reports whether t holds a value.
func (t Try[T]) HasValue() bool { return t.state == tryValue }

// HasError reports whether t holds an error.
func (t Try[T]) HasError() bool { return t.state == tryError }

// Available reports whether t holds a value or an error (i.e. is not Empty).
func (t Try[T]) Available() bool { return t.state != tryEmpty }

// Err returns the captured error, or nil if t does not hold an error.
func (t Try[T]) Err() error { return t.err }

// Get returns the value and a nil error when t holds a value. When t holds
// an error it returns the zero value and that error. When t is Empty it
// returns the zero value and ErrEmptyTry.
func (t Try[T]) Get() (T, error) {
	switch t.state {
	case tryValue:
		return t.value, nil
	case tryError:
		var zero T
		return zero, t.err
	default:
		var zero T
		return zero, ErrEmptyTry
	}
}

// MustGet returns the value, panicking if t holds an error or is Empty.
// Reserved for call sites that have already established t is a value (e.g.
// immediately after a type assertion on HasValue).
func (t Try[T]) MustGet() T {
	v, err := t.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// SetValue replaces t's state with Value(v), regardless of the previous state.
func (t *Try[T]) SetValue(v T) {
	t.state = tryValue
	t.value = v
	t.err = nil
}

// SetError replaces t's state with Error(err), regardless of the previous state.
func (t *Try[T]) SetError(err error) {
	if err == nil {
		panic("asyncrt: SetError called with a nil error")
	}
	t.state = tryError
	t.err = err
	var zero T
	t.value = zero
}

// TryMap transforms the value carried by t, passing errors and emptiness
// through unchanged.
func TryMap[A, B any](t Try[A], f func(A) B) Try[B] {
	switch t.state {
	case tryValue:
		return Value(f(t.value))
	case tryError:
		return Error[B](t.err)
	default:
		return Try[B]{}
	}
}

// panicError wraps a recovered panic value so it can travel through Try as
// an error without losing the original payload.
type panicError struct {
	recovered any
}

func (p panicError) Error() string {
	if err, ok := p.recovered.(error); ok {
		return "asyncrt: recovered panic: " + err.Error()
	}
	return "asyncrt: recovered panic"
}

// Unwrap exposes the original panic value's error, when it was one, so
// callers can errors.As/errors.Is through a recovered panic.
func (p panicError) Unwrap() error {
	if err, ok := p.recovered.(error); ok {
		return err
	}
	return nil
}

// Recovered returns the raw value passed to panic().
func (p panicError) Recovered() any { return p.recovered }
