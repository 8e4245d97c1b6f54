// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asyncrt

// DispatchTo returns a Lazy that, when awaited, moves the remainder of its
// chain onto ex: everything awaited afterward through the same Runtime
// defaults to ex until dispatched elsewhere again. If ex refuses the post,
// the chain's executor is rolled back and ErrDispatchFailed is carried as
// the result's error rather than silently staying on the old executor.
func DispatchTo(ex Executor) Lazy[struct{}] {
	if ex == nil {
		panic(ErrNoExecutor)
	}
	return Lazy[struct{}]{body: func(box *execBox, resume func(Try[struct{}])) {
		if box.ex == ex {
			resume(Value(struct{}{}))
			return
		}
		old := box.ex
		box.ex = ex
		if !ex.Schedule(func() { resume(Value(struct{}{})) }) {
			box.ex = old
			resume(Error[struct{}](ErrDispatchFailed))
		}
	}}
}
