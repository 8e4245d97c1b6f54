// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asyncrt

// Resource safety primitives for exception-safe Lazy composition: acquire
// → use → release, where release is guaranteed to run even if use fails,
// and OnError, which runs cleanup only on failure. Both are plain Async
// bodies built from AwaitTry rather than Bind/Map/Then, since the
// guaranteed-release step needs to run regardless of what use produced —
// something AwaitTry's explicit Try return expresses directly, while
// LazyBind's automatic short-circuit on error would skip exactly the step
// that must not be skipped.

// Bracket runs acquire, then use(resource), then release(resource)
// unconditionally, and returns use's outcome unless release itself fails
// — a release failure takes precedence since it means the resource may
// now be in an unknown state.
func Bracket[R, A any](acquire Lazy[R], use func(R) Lazy[A], release func(R) Lazy[struct{}]) Lazy[A] {
	return Async(func(rt *Runtime) (A, error) {
		var zero A
		r, err := AwaitTry(rt, acquire).Get()
		if err != nil {
			return zero, err
		}
		useResult := AwaitTry(rt, use(r))
		if _, relErr := AwaitTry(rt, release(r)).Get(); relErr != nil {
			return zero, relErr
		}
		return useResult.Get()
	})
}

// OnError runs cleanup(err) if body fails, then re-surfaces the original
// error — unless cleanup itself fails, in which case cleanup's error is
// returned instead.
func OnError[A any](body Lazy[A], cleanup func(error) Lazy[struct{}]) Lazy[A] {
	return Async(func(rt *Runtime) (A, error) {
		t := AwaitTry(rt, body)
		if t.HasError() {
			if _, cleanupErr := AwaitTry(rt, cleanup(t.Err())).Get(); cleanupErr != nil {
				var zero A
				return zero, cleanupErr
			}
		}
		return t.Get()
	})
}
