// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asyncrt

// Awaitable is implemented by foreign async types that want to compose
// with Async bodies via Await/AwaitTry without going through Future or
// Lazy directly — the Go counterpart to the source's ViaCoroutine
// customization point, where any type exposing the right awaiter methods
// can be co_await-ed from inside a coroutine.
type Awaitable[T any] interface {
	// CoAwait returns a Lazy that resolves the same way awaiting the
	// receiver directly would, given ex as the chain's current executor.
	CoAwait(ex Executor) Lazy[T]
}

// AwaitForeign awaits a, the general entry point for any Awaitable from
// inside an Async body.
func AwaitForeign[T any](r *Runtime, a Awaitable[T]) T {
	return Await(r, a.CoAwait(r.Executor()))
}

// FutureToLazy adapts f into a Lazy, consuming f, so it can be awaited
// from inside an Async body or composed with the combinators the same way
// a Lazy produced by the runtime itself would be.
func FutureToLazy[T any](f *Future[T]) Lazy[T] {
	if !f.Valid() {
		panic(ErrFutureInvalid)
	}
	ex := f.Executor()
	captured := *f
	f.invalidate()
	return Lazy[T]{executor: ex, body: func(_ *execBox, resume func(Try[T])) {
		local := captured
		if local.hasLocal {
			resume(local.localTry)
			return
		}
		local.shared.setContinuation(resume)
	}}
}

// LazyToFuture starts l against a freshly created Promise and returns its
// Future, the inverse of FutureToLazy — the bridge code not itself awaited
// from within another Lazy uses to interoperate with Future-based APIs.
func LazyToFuture[T any](l Lazy[T]) Future[T] {
	p := NewPromise[T]()
	f := p.Future()
	f.SetExecutor(l.Executor())
	l.Start(func(t Try[T]) { p.SetValueTry(t) })
	return f
}

// FromChan adapts a result delivered over a channel (any foreign
// asynchronous source that isn't itself expressed as a Lazy or Future)
// into a Lazy, performing the checkout/checkin dance described in §4.4:
// the current executor context is checked out before handing control to
// the foreign producer and checked back in once it answers, so the
// continuation resumes on the same logical context it suspended from
// rather than wherever the producer's own goroutine happens to run.
func FromChan[T any](ch <-chan Try[T]) Lazy[T] {
	return Lazy[T]{body: func(box *execBox, resume func(Try[T])) {
		ex := box.ex
		ctx := checkout(ex)
		go func() {
			t := <-ch
			if ex == nil {
				resume(t)
				return
			}
			if !checkin(ex, func() { resume(t) }, ctx, ScheduleOptions{Prompt: true}) {
				resume(t)
			}
		}()
	}}
}
