// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asyncrt

import "sync/atomic"

// CountEvent is a multi-arrival barrier used by the combinators (§4.5):
// it counts down from N+1 — N task completions plus one reservation held
// by the awaiter itself — and hands the awaiter's resume handle to
// whichever arrival observes the count reach zero. The "+1" reservation
// means the awaiter can register all N callbacks and only then release its
// own reservation, so the barrier cannot fire before every callback has
// actually been installed even if some callback fires synchronously during
// installation (§4.5.1's "ready inputs complete synchronously and are
// still slotted in order").
type CountEvent struct {
	count    atomic.Int64
	awaiting atomic.Pointer[func()]
}

// NewCountEvent creates a CountEvent initialized to n+1.
func NewCountEvent(n int64) *CountEvent {
	ce := &CountEvent{}
	ce.count.Store(n + 1)
	return ce
}

// SetAwaiting records the handle to resume when the barrier reaches zero.
// Must be called at most once, before any Down call can observe the count
// reaching zero as a result of it.
func (ce *CountEvent) SetAwaiting(resume func()) {
	ce.awaiting.Store(&resume)
}

// Down subtracts n (default semantics: n=1) from the count. If the
// subtraction makes the count reach exactly zero, Down returns the
// awaiting handle set by SetAwaiting (and the caller — the last arrival —
// is responsible for invoking it); otherwise it returns nil.
func (ce *CountEvent) Down(n int64) func() {
	prev := ce.count.Add(-n) + n
	if prev == n {
		if p := ce.awaiting.Load(); p != nil {
			return *p
		}
	}
	return nil
}

// DownCount subtracts n from the count and returns the value the count
// held immediately before the subtraction, letting a caller distinguish
// "I was the first to arrive" (prev == initial) from later arrivals.
// CollectAny does not use it; its first-wins race is decided by an Affine
// guard instead.
func (ce *CountEvent) DownCount(n int64) int64 {
	return ce.count.Add(-n) + n
}
