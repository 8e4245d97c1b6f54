// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asyncrt

// Monad operations for Lazy, generalizing the source's Cont[R, A]
// Bind/Map/Then to a CPS type that additionally threads an execBox for
// executor inheritance (§4.3) — so chaining this way, instead of through
// Async/Await, costs no extra goroutine: the continuation given to Bind
// runs wherever m's own resume callback runs, on m's own dispatch, exactly
// the symmetric-transfer path Async otherwise has to simulate with a
// channel handoff.
//
// Minimal definition: LazyValue (unit, already in lazy.go) and LazyBind
// are necessary and sufficient. LazyMap and LazyThen are derived
// operations kept as optimizations to avoid intermediate closure
// allocations, exactly as in the source.

// LazyBind sequences two Lazy computations: runs m, then passes its
// result to f to get the next Lazy to run. If m fails, f never runs and
// the error propagates unchanged.
func LazyBind[A, B any](m Lazy[A], f func(Try[A]) Lazy[B]) Lazy[B] {
	return Lazy[B]{executor: m.executor, forceSched: m.forceSched, body: func(box *execBox, resume func(Try[B])) {
		m.body(box, func(a Try[A]) {
			if a.HasError() {
				resume(Error[B](a.Err()))
				return
			}
			next := safeLazyFn(f, a)
			next.startWith(box, resume)
		})
	}}
}

// LazyMap applies a pure function to m's result.
//
// Allocation note: Map is equivalent to LazyBind(m, compose(LazyValue,
// f)) but avoids the intermediate LazyValue closure, making it the
// preferred choice when the transformation is pure.
func LazyMap[A, B any](m Lazy[A], f func(A) B) Lazy[B] {
	return Lazy[B]{executor: m.executor, forceSched: m.forceSched, body: func(box *execBox, resume func(Try[B])) {
		m.body(box, func(a Try[A]) {
			resume(TryMap(a, f))
		})
	}}
}

// LazyThen sequences two Lazy computations, discarding the first result
// (but not its error — n only runs if m succeeds).
//
// Allocation note: Then avoids the closure capture of a transformation
// function that would occur with LazyBind(m, func(Try[A]) Lazy[B] {
// return n }).
func LazyThen[A, B any](m Lazy[A], n Lazy[B]) Lazy[B] {
	return Lazy[B]{executor: m.executor, forceSched: m.forceSched, body: func(box *execBox, resume func(Try[B])) {
		m.body(box, func(a Try[A]) {
			if a.HasError() {
				resume(Error[B](a.Err()))
				return
			}
			n.startWith(box, resume)
		})
	}}
}

// safeLazyFn calls f, turning a panic into an already-failed Lazy instead
// of letting it escape — f is user code chaining the next step, not a
// leaf body, so it needs the same panic-to-error treatment every other
// boundary into user code gets.
func safeLazyFn[A, B any](f func(Try[A]) Lazy[B], a Try[A]) (result Lazy[B]) {
	defer func() {
		if r := recover(); r != nil {
			result = LazyError[B](panicError{recovered: r})
		}
	}()
	return f(a)
}
