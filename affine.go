// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asyncrt

import "sync/atomic"

// Affine wraps a resume callback of shape func(Try[T]) with one-shot
// enforcement: it can be invoked at most once. Lazy.Start wraps its
// callback in one, and CollectAny uses one as its first-arrival-wins gate.
// futureState does not use Affine; it keeps its own once-only flags under
// its mutex.
//
// Affine is exported because user Executor implementations that hand a
// continuation across a Checkin boundary (where it might race a direct
// inline invocation on another path) want the same guarantee without
// reimplementing the CAS dance.
type Affine[T any] struct {
	used   atomic.Uint32
	resume func(Try[T])
}

// Once wraps k as an Affine continuation.
func Once[T any](k func(Try[T])) *Affine[T] {
	return &Affine[T]{resume: k}
}

// Resume invokes the continuation with t. Panics if already used — a
// double-resume is always a logic error in this runtime (for example a
// Lazy started with Start completing twice), never a condition a caller
// should recover from.
func (a *Affine[T]) Resume(t Try[T]) {
	if !a.used.CompareAndSwap(0, 1) {
		panic("asyncrt: continuation resumed more than once")
	}
	a.resume(t)
}

// TryResume attempts to invoke the continuation, returning false instead
// of panicking if it was already used.
func (a *Affine[T]) TryResume(t Try[T]) bool {
	if !a.used.CompareAndSwap(0, 1) {
		return false
	}
	a.resume(t)
	return true
}

// Discard marks the continuation as used without invoking it, for paths
// that determine a continuation will never legitimately fire (e.g. a
// losing collectAny branch whose result is intentionally dropped).
func (a *Affine[T]) Discard() {
	a.used.Store(1)
}
