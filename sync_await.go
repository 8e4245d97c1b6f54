// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asyncrt

// SyncAwait drives l to completion on the calling goroutine and returns
// its value, blocking until it resolves. Grounded on coro/SyncAwait.h
// rather than adapted from a trampoline runner: a pure Run that only ever
// steps a self-contained computation has nothing to say about blocking
// one goroutine until a result produced by a /different/ one — possibly
// hopping through an Executor along the way — becomes available, which is
// exactly what SyncAwait exists to do.
//
// Panics with ErrDeadlockAvoided if l's executor reports the calling
// goroutine as one it owns: blocking there would starve the very
// executor l depends on to ever produce a result.
func SyncAwait[T any](l Lazy[T]) (T, error) {
	if ex := l.Executor(); ex != nil && ex.CurrentThreadInExecutor() {
		panic(ErrDeadlockAvoided)
	}
	ch := make(chan Try[T], 1)
	l.Start(func(t Try[T]) { ch <- t })
	return (<-ch).Get()
}
