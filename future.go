// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asyncrt

// Future is the consumer side of a futureState, or a self-contained ready
// result carrying no shared state at all (the source's LocalState,
// produced by the MakeReadyFuture family). A ready-made Future's
// continuation always runs inline regardless of executor — there is
// nothing left to wait for, so the dispatch table never applies to it.
//
// Future's operations consume it: Get, Wait, Via, and the package-level
// Then/ThenTry/ThenValue functions invalidate the receiver in place
// (pointer receivers exist specifically so calling them mutates the
// caller's variable), the closest Go gets to the source's rvalue-only
// Future without move semantics. A Future obtained from Promise.Future
// must eventually be consumed exactly once by one of those operations, or
// its result is simply never observed (no leak; Go's GC reclaims the
// shared state once nothing references it).
type Future[T any] struct {
	shared *futureState[T]

	hasLocal      bool
	localTry      Try[T]
	localExecutor Executor
}

// MakeReadyFuture returns an already-resolved Future holding v.
func MakeReadyFuture[T any](v T) Future[T] {
	return Future[T]{hasLocal: true, localTry: Value(v)}
}

// MakeReadyFutureTry returns an already-resolved Future holding t.
func MakeReadyFutureTry[T any](t Try[T]) Future[T] {
	return Future[T]{hasLocal: true, localTry: t}
}

// MakeReadyFutureError returns an already-resolved Future holding err.
func MakeReadyFutureError[T any](err error) Future[T] {
	return Future[T]{hasLocal: true, localTry: Error[T](err)}
}

// MakeReadyFutureVoid returns an already-resolved Future carrying no
// value, for operations whose only observable outcome is success or
// failure.
func MakeReadyFutureVoid() Future[struct{}] {
	return MakeReadyFuture(struct{}{})
}

// Valid reports whether f holds either shared state or a local result.
func (f *Future[T]) Valid() bool { return f.shared != nil || f.hasLocal }

func (f *Future[T]) invalidate() {
	f.shared = nil
	f.hasLocal = false
}

// HasResult reports whether f's result is already available without
// blocking.
func (f *Future[T]) HasResult() bool {
	if f.hasLocal {
		return f.localTry.Available()
	}
	if f.shared == nil {
		return false
	}
	return f.shared.hasResultSnapshot()
}

// Executor returns the executor currently attached to f, or nil.
func (f *Future[T]) Executor() Executor {
	if f.hasLocal {
		return f.localExecutor
	}
	if f.shared == nil {
		return nil
	}
	return f.shared.getExecutor()
}

// SetExecutor attaches ex to f.
func (f *Future[T]) SetExecutor(ex Executor) {
	if f.hasLocal {
		f.localExecutor = ex
		return
	}
	if f.shared == nil {
		panic(ErrFutureInvalid)
	}
	f.shared.setExecutor(ex)
}

// CurrentThreadInExecutor reports whether the calling goroutine is one
// f's attached executor drives.
func (f *Future[T]) CurrentThreadInExecutor() bool {
	if !f.Valid() {
		panic(ErrFutureInvalid)
	}
	if f.hasLocal {
		return f.localExecutor != nil && f.localExecutor.CurrentThreadInExecutor()
	}
	return f.shared.currentThreadInExecutor()
}

// Via attaches ex to f and returns f, consuming the receiver.
func (f *Future[T]) Via(ex Executor) Future[T] {
	if !f.Valid() {
		panic(ErrFutureInvalid)
	}
	f.SetExecutor(ex)
	ret := *f
	f.invalidate()
	return ret
}

// Result returns f's Try without blocking and without consuming f. Only
// meaningful once HasResult reports true; Get and Wait consume f, so
// Result cannot be called after them.
func (f *Future[T]) Result() Try[T] { return f.extractResult() }

// Value returns f's value and error without blocking; see Result.
func (f *Future[T]) Value() (T, error) { return f.extractResult().Get() }

func (f *Future[T]) extractResult() Try[T] {
	if !f.Valid() {
		panic(ErrFutureInvalid)
	}
	if f.hasLocal {
		return f.localTry
	}
	return f.shared.snapshotResult()
}

// Wait blocks the calling goroutine until f's result is available,
// consuming the receiver. Panics with ErrDeadlockAvoided if called from a
// goroutine f's attached executor reports owning — blocking there can
// never be satisfied, since nothing else would ever run on that executor
// to produce the result.
func (f *Future[T]) Wait() {
	f.await()
	f.invalidate()
}

// await blocks until f's result is available and stores it in f as a
// local result, leaving f valid.
func (f *Future[T]) await() {
	if !f.Valid() {
		panic(ErrFutureInvalid)
	}
	if f.HasResult() {
		return
	}
	if f.shared.currentThreadInExecutor() {
		panic(ErrDeadlockAvoided)
	}
	done := make(chan Try[T], 1)
	f.shared.setContinuation(func(t Try[T]) { done <- t })
	result := <-done
	f.shared = nil
	f.hasLocal = true
	f.localTry = result
}

// Get blocks until f's result is available and returns it, consuming the
// receiver.
func (f *Future[T]) Get() (T, error) {
	f.await()
	t := f.extractResult()
	f.invalidate()
	return t.Get()
}

// chainInto hooks f's eventual completion to satisfying p, consuming f.
func (f *Future[T]) chainInto(p Promise[T]) {
	if f.hasLocal {
		t := f.localTry
		f.invalidate()
		p.SetValueTry(t)
		return
	}
	fs := f.shared
	f.invalidate()
	fs.setContinuation(func(t Try[T]) { p.SetValueTry(t) })
}

// safeTryFn invokes f, capturing a panic as an error the same way
// safeTry does, for the many Then* shapes that hand user code a plain
// Go function rather than one already returning Try.
func safeTryFn[A, B any](f func(A) B, a A) (result Try[B]) {
	defer func() {
		if r := recover(); r != nil {
			result = Error[B](panicError{recovered: r})
		}
	}()
	return Value(f(a))
}

// ThenTry chains fn to run against f's raw Try once available, producing
// a new Future[T2]. fn runs exactly once, inline or scheduled the same
// way futureState.dispatch decides for any other continuation (§4.1); on
// an already-ready Future it always runs inline.
func ThenTry[T, T2 any](f *Future[T], fn func(Try[T]) Try[T2]) Future[T2] {
	if !f.Valid() {
		panic(ErrFutureInvalid)
	}
	if f.hasLocal {
		t := f.localTry
		ex := f.localExecutor
		f.invalidate()
		return Future[T2]{hasLocal: true, localExecutor: ex, localTry: safeTry(func() Try[T2] { return fn(t) })}
	}
	fs := f.shared
	f.invalidate()
	p2 := NewPromise[T2]()
	nf := p2.Future()
	nf.SetExecutor(fs.getExecutor())
	fs.setContinuation(func(t Try[T]) {
		p2.SetValueTry(safeTry(func() Try[T2] { return fn(t) }))
	})
	return nf
}

// ThenValue chains fn to run against f's unwrapped value once available.
// If f resolves to an error, fn never runs and that error propagates to
// the result unchanged.
func ThenValue[T, T2 any](f *Future[T], fn func(T) T2) Future[T2] {
	return ThenTry(f, func(t Try[T]) Try[T2] {
		v, err := t.Get()
		if err != nil {
			return Error[T2](err)
		}
		return safeTryFn(fn, v)
	})
}

// Then is an alias for ThenValue — the common case where the receiving
// function wants the value, not the Try. The source picks between the
// Try- and value-taking overloads via compile-time invocability checks
// that have no Go equivalent, so Then and ThenTry/ThenValue stay distinct
// named operations instead of one overloaded Then.
func Then[T, T2 any](f *Future[T], fn func(T) T2) Future[T2] {
	return ThenValue(f, fn)
}

// callFutureFn invokes fn, capturing a panic into an error Future instead
// of letting it escape — fn itself may legitimately fail even though its
// result type is already a Future.
func callFutureFn[T, T2 any](fn func(Try[T]) Future[T2], t Try[T]) (result Future[T2]) {
	defer func() {
		if r := recover(); r != nil {
			result = MakeReadyFutureError[T2](panicError{recovered: r})
		}
	}()
	return fn(t)
}

// ThenTryFuture chains fn, which itself returns a Future, flattening the
// result instead of producing a Future of a Future.
func ThenTryFuture[T, T2 any](f *Future[T], fn func(Try[T]) Future[T2]) Future[T2] {
	if !f.Valid() {
		panic(ErrFutureInvalid)
	}
	if f.hasLocal {
		t := f.localTry
		ex := f.localExecutor
		f.invalidate()
		inner := callFutureFn(fn, t)
		if inner.Executor() == nil {
			inner.SetExecutor(ex)
		}
		p2 := NewPromise[T2]()
		nf := p2.Future()
		nf.SetExecutor(inner.Executor())
		inner.chainInto(p2)
		return nf
	}
	fs := f.shared
	f.invalidate()
	p2 := NewPromise[T2]()
	nf := p2.Future()
	nf.SetExecutor(fs.getExecutor())
	fs.setContinuation(func(t Try[T]) {
		inner := callFutureFn(fn, t)
		inner.chainInto(p2)
	})
	return nf
}

// ThenValueFuture is the value-unwrapping, flattening counterpart to
// ThenValue: fn runs only on success and its Future result is flattened
// into the outcome.
func ThenValueFuture[T, T2 any](f *Future[T], fn func(T) Future[T2]) Future[T2] {
	return ThenTryFuture(f, func(t Try[T]) (result Future[T2]) {
		v, err := t.Get()
		if err != nil {
			return MakeReadyFutureError[T2](err)
		}
		defer func() {
			if r := recover(); r != nil {
				result = MakeReadyFutureError[T2](panicError{recovered: r})
			}
		}()
		return fn(v)
	})
}
