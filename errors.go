// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asyncrt

import "errors"

// Sentinel errors for the core runtime. Programming-error cases (an API
// misused by the caller, as opposed to a failure of the underlying work)
// fail loudly: the functions that can only fail this way panic with one of
// these errors rather than returning it, matching the source's
// logicAssert/assert convention. Errors that can legitimately arise from
// ordinary, correct use (a dropped Promise, a refused executor dispatch)
// are returned or carried inside a Try instead.
var (
	// ErrEmptyTry is returned by Try.Get when the Try holds neither a value
	// nor an error.
	ErrEmptyTry = errors.New("asyncrt: try is empty")

	// ErrBrokenPromise is injected into a Future's Try when every Promise
	// handle pointing at its shared state is dropped without a value or
	// error ever having been set.
	ErrBrokenPromise = errors.New("asyncrt: broken promise")

	// ErrFutureAlreadyRetrieved is raised by Promise.Future when called
	// more than once against the same shared state.
	ErrFutureAlreadyRetrieved = errors.New("asyncrt: future already retrieved")

	// ErrPromiseAlreadySatisfied is raised by Promise.SetValue /
	// Promise.SetError when the shared state already holds a result.
	ErrPromiseAlreadySatisfied = errors.New("asyncrt: promise already satisfied")

	// ErrFutureInvalid is raised by operations on a Future that holds
	// neither a shared state nor a local result — the zero Future, or one
	// already consumed by Get/Wait/Then*/Via.
	ErrFutureInvalid = errors.New("asyncrt: future is invalid")

	// ErrDeadlockAvoided is raised by Future.Get/Wait and SyncAwait when
	// called from a goroutine the target Executor reports owning.
	ErrDeadlockAvoided = errors.New("asyncrt: deadlock avoided: blocking wait from within the owning executor")

	// ErrDispatchFailed is surfaced (wrapped inside a Try) when DispatchTo's
	// target executor refuses the posted continuation.
	ErrDispatchFailed = errors.New("asyncrt: dispatch to executor failed")

	// ErrNoExecutor is raised by operations that require a non-nil
	// executor (RescheduleLazy, Yield) when none is attached.
	ErrNoExecutor = errors.New("asyncrt: operation requires a non-nil executor")
)
