// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asyncrt

import "errors"

// ErrNoInputs is returned by CollectAny when given an empty slice —
// there is no "first" result to ever produce.
var ErrNoInputs = errors.New("asyncrt: collectAny requires at least one input")

// CollectAnyResult is CollectAny's resolved value: which input won the
// race and what it produced.
type CollectAnyResult[T any] struct {
	Index  int
	Result Try[T]
}

// CollectAny awaits every input and resolves as soon as the first one
// completes, carrying its index and Try (§4.5.3). The remaining inputs
// keep running uncancelled; their eventual results are simply discarded —
// unlike CollectAll/Windowed, first-arrival is the gate here, the
// opposite of CountEvent's last-arrival barrier, so the race is decided
// with a plain CAS guard (the Affine one-shot primitive) rather than
// forcing CountEvent into a shape it isn't suited for.
func CollectAny[T any](inputs []Lazy[T]) Lazy[CollectAnyResult[T]] {
	return Lazy[CollectAnyResult[T]]{body: func(box *execBox, resume func(Try[CollectAnyResult[T]])) {
		if len(inputs) == 0 {
			resume(Error[CollectAnyResult[T]](ErrNoInputs))
			return
		}
		guard := Once(resume)
		for i := range inputs {
			i := i
			inputs[i].startWith(box, func(t Try[T]) {
				guard.TryResume(Value(CollectAnyResult[T]{Index: i, Result: t}))
			})
		}
	}}
}
