// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asyncrt

// Runtime is handed to an Async body in place of the compiler-generated
// coroutine frame the source relies on for co_await: it carries the
// chain's shared execBox, exposing Await/AwaitTry as the ordinary function
// calls that stand in for await expressions.
type Runtime struct {
	box *execBox
}

// Executor returns the executor currently in effect for this leg of the
// chain, without suspending — the non-awaiting shortcut for
// CurrentExecutorLazy.
func (r *Runtime) Executor() Executor { return r.box.ex }

// awaitPanic carries an awaited Lazy's error up through the Async body's
// call stack to the recover() in Async, so a plain early return isn't
// required at every Await call site — the Go analogue of co_await
// rethrowing the awaited coroutine's exception.
type awaitPanic struct{ err error }

// Await suspends until l completes and returns its value, propagating any
// error by panicking with it — recovered by the enclosing Async and
// turned into that Lazy's own error result. Call only from inside an
// Async body.
func Await[T any](r *Runtime, l Lazy[T]) T {
	v, err := AwaitTry(r, l).Get()
	if err != nil {
		panic(awaitPanic{err: err})
	}
	return v
}

// AwaitTry suspends until l completes and returns its full Try, without
// raising an error automatically — the explicit-control counterpart to
// Await, used when a body needs to inspect or recover from failure rather
// than propagate it.
func AwaitTry[T any](r *Runtime, l Lazy[T]) Try[T] {
	ch := make(chan Try[T], 1)
	l.startWith(r.box, func(t Try[T]) { ch <- t })
	return <-ch
}

// Async builds a Lazy from an imperative body that awaits other Lazy
// values via Await/AwaitTry. The body runs on a dedicated goroutine (the
// Go stand-in for a coroutine frame); Await blocks that goroutine until
// its argument resumes, which may itself hop executors without blocking
// anything else.
func Async[T any](body func(r *Runtime) (T, error)) Lazy[T] {
	return Lazy[T]{body: func(box *execBox, resume func(Try[T])) {
		go func() {
			resume(safeTry(func() (result Try[T]) {
				defer func() {
					if rec := recover(); rec != nil {
						if ap, ok := rec.(awaitPanic); ok {
							result = Error[T](ap.err)
							return
						}
						panic(rec)
					}
				}()
				v, err := body(&Runtime{box: box})
				if err != nil {
					return Error[T](err)
				}
				return Value(v)
			}))
		}()
	}}
}
