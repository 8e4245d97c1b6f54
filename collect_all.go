// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asyncrt

// CollectAll awaits every input, in the order given, and resolves to their
// results in the same order once all have completed (§4.5.1). Inputs that
// carry no executor of their own inherit the awaiter's. Inputs are
// started on the calling goroutine, in order; any that complete
// synchronously are still slotted at their original index.
func CollectAll[T any](inputs []Lazy[T]) Lazy[[]Try[T]] {
	return Lazy[[]Try[T]]{body: func(box *execBox, resume func(Try[[]Try[T]])) {
		n := len(inputs)
		if n == 0 {
			resume(Value[[]Try[T]](nil))
			return
		}
		results := make([]Try[T], n)
		ce := acquireCountEvent(int64(n))
		ce.SetAwaiting(func() {
			resume(Value(results))
			releaseCountEvent(ce)
		})
		for i := range inputs {
			i := i
			inputs[i].startWith(box, func(t Try[T]) {
				results[i] = t
				if done := ce.Down(1); done != nil {
					done()
				}
			})
		}
		if done := ce.Down(1); done != nil {
			done()
		}
	}}
}

// CollectAllPara is CollectAll but posts each input's start to its
// executor instead of running it inline on the calling goroutine, letting
// independent inputs backed by the same multi-threaded executor actually
// run concurrently rather than one after another (§4.5.2). An input with
// no executor of its own, and no inherited one either, still starts
// inline — there is nowhere to post it.
func CollectAllPara[T any](inputs []Lazy[T]) Lazy[[]Try[T]] {
	return Lazy[[]Try[T]]{body: func(box *execBox, resume func(Try[[]Try[T]])) {
		n := len(inputs)
		if n == 0 {
			resume(Value[[]Try[T]](nil))
			return
		}
		results := make([]Try[T], n)
		ce := acquireCountEvent(int64(n))
		ce.SetAwaiting(func() {
			resume(Value(results))
			releaseCountEvent(ce)
		})
		for i := range inputs {
			i := i
			cb := func(t Try[T]) {
				results[i] = t
				if done := ce.Down(1); done != nil {
					done()
				}
			}
			ex := inputs[i].Executor()
			if ex == nil {
				ex = box.ex
			}
			if ex == nil {
				inputs[i].startWith(box, cb)
				continue
			}
			if !ex.Schedule(func() { inputs[i].startWith(box, cb) }) {
				inputs[i].startWith(box, cb)
			}
		}
		if done := ce.Down(1); done != nil {
			done()
		}
	}}
}
