// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asyncrt

// Promise is the producer side of a futureState (§3.2). The zero value is
// not valid; construct with NewPromise.
//
// A Promise value is a handle to shared state, not the state itself:
// ordinary Go assignment copies the handle without affecting how many
// producer-side references exist, since Go has no copy constructor to
// hook into the way the source's move-only Promise does. Clone is the
// explicit operation that adds a reference; Release is the explicit
// operation that drops one, injecting ErrBrokenPromise into the Future
// if it was the last reference and no result was ever set. Callers that
// never Clone can treat a Promise as single-owner and just defer
// p.Release().
type Promise[T any] struct {
	fs *futureState[T]
}

// NewPromise creates a Promise with one producer-side reference.
func NewPromise[T any]() Promise[T] {
	fs := &futureState[T]{}
	fs.promiseCount.Store(1)
	return Promise[T]{fs: fs}
}

// Clone returns a second handle to the same shared state, incrementing
// its producer-side reference count. If no result is ever set, the Future
// sees a broken promise only once every clone has been Released.
func (p Promise[T]) Clone() Promise[T] {
	p.fs.promiseCount.Add(1)
	return Promise[T]{fs: p.fs}
}

// Future returns the Future bound to p's shared state. Panics with
// ErrFutureAlreadyRetrieved if called more than once across p and any of
// its clones — a logic error, not a runtime condition to recover from.
func (p Promise[T]) Future() Future[T] {
	if !p.fs.retrieveFuture() {
		panic(ErrFutureAlreadyRetrieved)
	}
	return Future[T]{shared: p.fs}
}

// SetValue satisfies the promise with v.
func (p Promise[T]) SetValue(v T) { p.fs.setResult(Value(v)) }

// SetValueTry satisfies the promise with t directly.
func (p Promise[T]) SetValueTry(t Try[T]) { p.fs.setResult(t) }

// SetError satisfies the promise with err.
func (p Promise[T]) SetError(err error) { p.fs.setResult(Error[T](err)) }

// SetExecutor attaches ex to the shared state, controlling how the
// eventual continuation dispatches (§4.1).
func (p Promise[T]) SetExecutor(ex Executor) { p.fs.setExecutor(ex) }

// ForceSched marks the shared state so its continuation always dispatches
// through the executor rather than ever running inline.
func (p Promise[T]) ForceSched() { p.fs.setForceSched(true) }

// Checkout snapshots the attached executor's current execution context so
// the eventual continuation resumes on that same context rather than just
// anywhere the executor schedules work (requires a CheckoutExecutor; a
// no-op otherwise).
func (p Promise[T]) Checkout() {
	p.fs.setContext(checkout(p.fs.getExecutor()))
}

// Release drops this handle's producer-side reference. If it was the
// last one and no result was ever set, the Future observes
// ErrBrokenPromise. Safe to call more than once only via separate Clones;
// releasing the same handle twice double-counts and will report
// ErrBrokenPromise early.
func (p Promise[T]) Release() { p.fs.release() }
