// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asyncrt

import "time"

// ExecutorStat reports pending-work information for an Executor.
type ExecutorStat struct {
	PendingTaskCount int64
}

// ScheduleOptions configures a single Checkin call.
type ScheduleOptions struct {
	// Prompt requests the executor run the work as soon as possible,
	// ahead of background/low-priority items, when the executor
	// distinguishes between them.
	Prompt bool
}

// Context is an opaque handle returned by Executor.Checkout and later
// passed back to Executor.Checkin so the executor can resume work on the
// same logical execution context (e.g. the same worker, the same io_uring
// ring, the same partition) it was checked out from. The zero value (nil)
// means "no particular context."
type Context any

// Executor is the scheduling surface the runtime delegates to. The core
// package never creates one; callers plug in a collaborator (see the
// workerpool package for a reference implementation) the same way
// async_simple's coroutine layer is always handed an Executor by its
// caller rather than owning one.
//
// Implementations must be safe for concurrent use: Schedule/Checkin may be
// called from arbitrary goroutines, including from within work the
// executor itself is running.
type Executor interface {
	// Schedule enqueues work for execution. It returns false if the
	// executor refused the work (e.g. it is shutting down); in that case
	// work is guaranteed never to run and the caller must not assume
	// otherwise. Schedule must not block waiting for work to complete.
	Schedule(work func()) bool

	// CurrentThreadInExecutor reports whether the calling goroutine is
	// one the executor itself drives. Executors that cannot determine
	// this should return false unconditionally — the runtime then
	// conservatively always posts rather than risk inlining across an
	// executor boundary (and Future.Get / SyncAwait's deadlock check
	// becomes a no-op, not a false negative).
	CurrentThreadInExecutor() bool

	// Stat reports executor load. Implementations that don't track this
	// may return the zero value.
	Stat() ExecutorStat
}

// CheckoutExecutor is implemented by executors that want continuations
// resumed on the same logical context they were checked out from (see
// Promise.Checkout). Executors that don't implement it are treated as
// always returning a nil Context from Checkout and delegating Checkin to
// Schedule.
type CheckoutExecutor interface {
	Executor

	// Checkout snapshots the current execution context.
	Checkout() Context

	// Checkin resumes work on the context previously returned by
	// Checkout. Implementations that have no notion of "same context"
	// may simply call Schedule(work) and ignore ctx/opts.
	Checkin(work func(), ctx Context, opts ScheduleOptions) bool
}

// DelayExecutor is implemented by executors that can schedule work after a
// delay natively (e.g. backed by a timer wheel) instead of the default
// spawn-a-sleeping-goroutine fallback Sleep uses.
type DelayExecutor interface {
	Executor

	// ScheduleAfter enqueues work to run no sooner than dur from now.
	ScheduleAfter(work func(), dur time.Duration)
}

// checkout returns ex.Checkout() if ex implements CheckoutExecutor, else nil.
func checkout(ex Executor) Context {
	if ex == nil {
		return nil
	}
	if co, ok := ex.(CheckoutExecutor); ok {
		return co.Checkout()
	}
	return nil
}

// checkin resumes work on ctx via ex's Checkin, falling back to Schedule
// for executors that don't implement CheckoutExecutor.
func checkin(ex Executor, work func(), ctx Context, opts ScheduleOptions) bool {
	if co, ok := ex.(CheckoutExecutor); ok {
		return co.Checkin(work, ctx, opts)
	}
	return ex.Schedule(work)
}

// scheduleAfter posts work to run after dur, using ex's native delay
// scheduling when available and falling back to a sleeping goroutine that
// then calls Schedule, mirroring Executor::schedule(Func, Duration) in the
// source.
func scheduleAfter(ex Executor, work func(), dur time.Duration) {
	if de, ok := ex.(DelayExecutor); ok {
		de.ScheduleAfter(work, dur)
		return
	}
	go func() {
		time.Sleep(dur)
		ex.Schedule(work)
	}()
}

// CurrentExecutor is a marker value used to request the executor attached
// to the currently-running Lazy; see CurrentExecutorLazy.
type CurrentExecutor struct{}

// CurrentExecutorLazy returns a Lazy that resolves, without suspending, to
// the executor currently in effect for its chain (possibly nil). Runtime's
// Executor method is the non-awaiting shortcut for the same value.
func CurrentExecutorLazy() Lazy[Executor] {
	return Lazy[Executor]{body: func(box *execBox, resume func(Try[Executor])) {
		resume(Value(box.ex))
	}}
}
