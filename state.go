// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asyncrt

import (
	"sync"
	"sync/atomic"
)

// futureState is the state a Promise and its Future share: a single
// result slot and a single continuation slot, each settable at most once,
// with a dispatch rule deciding how the continuation runs once both are
// present (§4.1). The source implements this with lock-free CAS over a
// packed state word; here a mutex guards the same fields directly. Go's
// GC already makes the source's reference-counted frame lifetime
// unnecessary, and a reference runtime gains far more from an
// easy-to-audit implementation than from a hand-rolled lock-free
// rendezvous — the dispatch rule itself, not the synchronization
// strategy, is what §8's invariants actually constrain, and every one of
// them is exercised the same way regardless of which strategy backs it.
type futureState[T any] struct {
	mu sync.Mutex

	hasResult bool
	result    Try[T]

	hasContinuation bool
	continuation    func(Try[T])

	executor   Executor
	ctx        Context
	forceSched bool

	futureRetrieved bool
	promiseCount    atomic.Int32
}

// setResult installs t as the state's single result. Panics with
// ErrPromiseAlreadySatisfied if a result is already present.
func (fs *futureState[T]) setResult(t Try[T]) {
	fs.mu.Lock()
	if fs.hasResult {
		fs.mu.Unlock()
		panic(ErrPromiseAlreadySatisfied)
	}
	fs.result = t
	fs.hasResult = true
	ready := fs.hasContinuation
	fs.mu.Unlock()
	if ready {
		fs.dispatch(false)
	}
}

// setContinuation installs cb as the state's single continuation. Panics
// if a continuation is already present — exactly one party ever consumes
// a given futureState's result.
func (fs *futureState[T]) setContinuation(cb func(Try[T])) {
	fs.mu.Lock()
	if fs.hasContinuation {
		fs.mu.Unlock()
		panic("asyncrt: continuation already set on this future")
	}
	fs.continuation = cb
	fs.hasContinuation = true
	ready := fs.hasResult
	fs.mu.Unlock()
	if ready {
		fs.dispatch(true)
	}
}

// dispatch runs the installed continuation against the installed result,
// implementing §4.1's table. triggeredByContinuation is true when it was
// setContinuation's arrival (result already present) that caused this
// call, false when it was setResult's arrival (continuation already
// present).
func (fs *futureState[T]) dispatch(triggeredByContinuation bool) {
	fs.mu.Lock()
	cb := fs.continuation
	result := fs.result
	ex := fs.executor
	ctx := fs.ctx
	force := fs.forceSched
	fs.mu.Unlock()

	run := func() { cb(result) }

	switch {
	case ex == nil:
		run()
	case force:
		if !checkin(ex, run, ctx, ScheduleOptions{Prompt: true}) {
			run()
		}
	case triggeredByContinuation:
		run()
	case ex.CurrentThreadInExecutor():
		run()
	default:
		if !checkin(ex, run, ctx, ScheduleOptions{Prompt: true}) {
			run()
		}
	}
}

func (fs *futureState[T]) hasResultSnapshot() bool {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.hasResult
}

func (fs *futureState[T]) snapshotResult() Try[T] {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.result
}

func (fs *futureState[T]) getExecutor() Executor {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.executor
}

func (fs *futureState[T]) setExecutor(ex Executor) {
	fs.mu.Lock()
	fs.executor = ex
	fs.mu.Unlock()
}

func (fs *futureState[T]) setForceSched(v bool) {
	fs.mu.Lock()
	fs.forceSched = v
	fs.mu.Unlock()
}

func (fs *futureState[T]) setContext(ctx Context) {
	fs.mu.Lock()
	fs.ctx = ctx
	fs.mu.Unlock()
}

func (fs *futureState[T]) currentThreadInExecutor() bool {
	ex := fs.getExecutor()
	return ex != nil && ex.CurrentThreadInExecutor()
}

// retrieveFuture marks the state's future as retrieved, reporting whether
// this call was the first (and therefore legitimate) one.
func (fs *futureState[T]) retrieveFuture() bool {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.futureRetrieved {
		return false
	}
	fs.futureRetrieved = true
	return true
}

// release drops one Promise handle's reference. If it was the last one
// and no result was ever set, it injects ErrBrokenPromise so any already-
// or later-installed continuation observes failure instead of hanging
// forever (§7).
func (fs *futureState[T]) release() {
	if fs.promiseCount.Add(-1) != 0 {
		return
	}
	fs.mu.Lock()
	broken := !fs.hasResult
	if broken {
		fs.result = Error[T](ErrBrokenPromise)
		fs.hasResult = true
	}
	ready := broken && fs.hasContinuation
	fs.mu.Unlock()
	if ready {
		fs.dispatch(false)
	}
}
