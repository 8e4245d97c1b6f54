// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asyncrt

import "sync"

// Generator is a pull-based sequence of values produced lazily by a
// user-supplied body (§4.6), matching the shape Go 1.23's iter.Seq uses
// for range-over-func: the body calls yield with each value and stops
// producing as soon as yield reports the consumer is done. Unlike a plain
// iter.Seq, a Generator is pull rather than push — the body's goroutine
// doesn't run ahead of the consumer; it blocks between values until Next
// is called again, so producing a value the consumer never asks for never
// happens.
type Generator[T any] struct {
	values   chan T
	requests chan struct{}
	closed   chan struct{}
	closeOne sync.Once

	cur T
}

// New starts a Generator whose values come from calling yield inside
// body. body runs on its own goroutine, which blocks inside yield until
// the consumer calls Next again.
func New[T any](body func(yield func(T) bool)) *Generator[T] {
	g := &Generator[T]{
		values:   make(chan T),
		requests: make(chan struct{}),
		closed:   make(chan struct{}),
	}
	go func() {
		defer close(g.values)
		select {
		case <-g.requests:
		case <-g.closed:
			return
		}
		body(func(v T) bool {
			select {
			case g.values <- v:
			case <-g.closed:
				return false
			}
			select {
			case <-g.requests:
				return true
			case <-g.closed:
				return false
			}
		})
	}()
	return g
}

// Next advances the generator, reporting whether a new value is
// available. Must be called before the first Value.
func (g *Generator[T]) Next() bool {
	select {
	case g.requests <- struct{}{}:
	case <-g.closed:
		return false
	}
	v, ok := <-g.values
	if !ok {
		return false
	}
	g.cur = v
	return true
}

// Value returns the value produced by the most recent Next call that
// returned true.
func (g *Generator[T]) Value() T { return g.cur }

// Close stops the generator's body at its next yield point, if it hasn't
// finished already. Safe to call more than once.
func (g *Generator[T]) Close() {
	g.closeOne.Do(func() { close(g.closed) })
}

// All adapts g into a Go 1.23 range-over-func sequence: `for v := range
// g.All()`. Closes g once the loop ends, whether by exhaustion or an
// early break.
func (g *Generator[T]) All() func(func(T) bool) {
	return func(yield func(T) bool) {
		defer g.Close()
		for g.Next() {
			if !yield(g.Value()) {
				return
			}
		}
	}
}

// YieldAll re-yields every value Next/Value produces from inner through
// yield, forwarding early stop in either direction — the composition
// primitive behind nested `elements_of(innerGenerator)` bodies (§4.6).
// Each forwarded value crosses inner's own request/value channel pair, so
// nesting YieldAll D levels deep costs O(D) goroutine handoffs per value,
// not O(1); the source's root-level "top" pointer redirect (an atomic
// pointer to the currently-active leaf generator, skipping intermediate
// frames) is not reproduced here, since Go's goroutines have no frame
// chain to walk around in the first place and the nesting depths this
// forwards are shallow.
func YieldAll[T any](yield func(T) bool, inner *Generator[T]) bool {
	defer inner.Close()
	for inner.Next() {
		if !yield(inner.Value()) {
			return false
		}
	}
	return true
}
