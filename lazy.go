// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asyncrt

// execBox is the single mutable cell threaded through one Start call's
// entire awaiting chain: every nested Await shares the same *execBox as
// long as the awaited Lazy carries no executor of its own, so that
// DispatchTo (which mutates box.ex) is visible to the whole remaining
// chain, awaiter included, once it resumes — the Go-native substitute for
// the source's "walk the chain of continuation frames and rewrite the
// recorded executor on each". A Lazy constructed with SetEx/Via gets its
// own fresh box instead, so its internal executor changes never leak back
// into whatever awaited it.
type execBox struct {
	ex Executor
}

// Lazy represents deferred, not-yet-started work that produces a T. Built
// from Cont in the source (coroutine frames with symmetric transfer);
// here a CPS closure plays the same role; Go's growable goroutine stacks
// make the "avoid stack growth across resumption" motivation for
// coroutines moot; only crossing an Executor boundary ever needs a real
// goroutine hop (via Executor.Schedule), everything else is an ordinary
// nested function call.
//
// A Lazy is single-use: Start/SyncAwait/Await consume it. The zero value
// is not valid.
type Lazy[T any] struct {
	executor   Executor
	forceSched bool
	body       func(box *execBox, resume func(Try[T]))
}

// RescheduleLazy is Lazy with its forceSched marker set by Via: awaiting
// it always posts the resume through its executor, never by direct call,
// even when the awaiter is already running on that executor.
type RescheduleLazy[T any] = Lazy[T]

// LazyValue lifts v into an already-resolved Lazy.
func LazyValue[T any](v T) Lazy[T] {
	return Lazy[T]{body: func(_ *execBox, resume func(Try[T])) {
		resume(Value(v))
	}}
}

// LazyError lifts err into an already-failed Lazy.
func LazyError[T any](err error) Lazy[T] {
	return Lazy[T]{body: func(_ *execBox, resume func(Try[T])) {
		resume(Error[T](err))
	}}
}

// LazyFromTry lifts t into a Lazy that resolves to exactly t.
func LazyFromTry[T any](t Try[T]) Lazy[T] {
	return Lazy[T]{body: func(_ *execBox, resume func(Try[T])) {
		resume(t)
	}}
}

// LazyFromFunc wraps a plain synchronous function as a leaf Lazy, capturing
// any panic it raises as an error the same way the combinators do.
func LazyFromFunc[T any](f func() (T, error)) Lazy[T] {
	return Lazy[T]{body: func(_ *execBox, resume func(Try[T])) {
		resume(safeTry(func() Try[T] {
			v, err := f()
			if err != nil {
				return Error[T](err)
			}
			return Value(v)
		}))
	}}
}

// SetEx attaches ex to l for inheritance purposes without forcing
// rescheduling: nested awaits inside l that carry no executor of their own
// default to ex, but awaiting l itself may still run inline.
func (l Lazy[T]) SetEx(ex Executor) Lazy[T] {
	l.executor = ex
	return l
}

// Via attaches ex to l and forces every await of the result to post
// through ex rather than transfer inline, even from ex's own thread.
func (l Lazy[T]) Via(ex Executor) RescheduleLazy[T] {
	if ex == nil {
		panic(ErrNoExecutor)
	}
	l.executor = ex
	l.forceSched = true
	return l
}

// Executor reports the executor currently bound to l, or nil.
func (l Lazy[T]) Executor() Executor { return l.executor }

// Start drives l to completion, invoking cb exactly once with the result.
// l's body starts on the calling goroutine unless l was made with Via, in
// which case its start is posted through l's executor; cb may therefore
// run on the calling goroutine before Start returns when nothing in the
// chain suspends.
func (l Lazy[T]) Start(cb func(Try[T])) {
	guard := Once(cb)
	l.startWith(&execBox{ex: l.executor}, func(t Try[T]) { guard.Resume(t) })
}

// startWith drives l to completion using callerBox's executor as the
// inherited default (when l carries none of its own), sharing callerBox
// with l's body so a nested DispatchTo is visible to the rest of the
// chain. resume is invoked exactly once; callers that need single-use
// enforcement beyond "closure created fresh per call" should wrap it in
// Once themselves.
func (l Lazy[T]) startWith(callerBox *execBox, resume func(Try[T])) {
	box := callerBox
	if l.executor != nil {
		box = &execBox{ex: l.executor}
	}
	run := func() { l.body(box, resume) }
	if l.forceSched {
		ex := box.ex
		if ex == nil {
			panic(ErrNoExecutor)
		}
		if !ex.Schedule(run) {
			run()
		}
		return
	}
	run()
}

// safeTry invokes f, capturing any panic as a Try error — shared by every
// leaf Lazy/Future constructor and combinator that calls untrusted user
// code.
func safeTry[T any](f func() Try[T]) (result Try[T]) {
	defer func() {
		if r := recover(); r != nil {
			result = Error[T](panicError{recovered: r})
		}
	}()
	return f()
}
