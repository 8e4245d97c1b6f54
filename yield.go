// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asyncrt

// Yield returns a Lazy that gives the chain's executor a chance to run
// other pending work before resuming: requires a non-nil executor (there
// is nothing to yield to otherwise, a programming error the source also
// asserts against). If the post is refused, Yield falls back to resuming
// inline rather than dropping the continuation.
func Yield() Lazy[struct{}] {
	return Lazy[struct{}]{body: func(box *execBox, resume func(Try[struct{}])) {
		ex := box.ex
		if ex == nil {
			panic(ErrNoExecutor)
		}
		if !ex.Schedule(func() { resume(Value(struct{}{})) }) {
			resume(Value(struct{}{}))
		}
	}}
}
