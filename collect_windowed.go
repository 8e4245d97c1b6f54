// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asyncrt

// CollectAllWindowed runs inputs in sequential batches of at most
// maxConcurrency, awaiting each batch with CollectAll before starting the
// next, and resolves to every result in original order (§4.5.4). If
// yieldBetweenBatches is true, it awaits Yield between batches so other
// work queued on the same executor gets a turn. If maxConcurrency is
// non-positive or at least len(inputs), it degrades to a single CollectAll
// batch.
func CollectAllWindowed[T any](maxConcurrency int, yieldBetweenBatches bool, inputs []Lazy[T]) Lazy[[]Try[T]] {
	return collectAllWindowed(maxConcurrency, yieldBetweenBatches, inputs, false)
}

// CollectAllWindowedPara is CollectAllWindowed but uses CollectAllPara for
// each batch, so inputs within a batch may run concurrently instead of
// strictly one after another.
func CollectAllWindowedPara[T any](maxConcurrency int, yieldBetweenBatches bool, inputs []Lazy[T]) Lazy[[]Try[T]] {
	return collectAllWindowed(maxConcurrency, yieldBetweenBatches, inputs, true)
}

func collectAllWindowed[T any](maxConcurrency int, yieldBetweenBatches bool, inputs []Lazy[T], para bool) Lazy[[]Try[T]] {
	if maxConcurrency <= 0 || maxConcurrency >= len(inputs) {
		if para {
			return CollectAllPara(inputs)
		}
		return CollectAll(inputs)
	}
	return Async(func(r *Runtime) ([]Try[T], error) {
		results := make([]Try[T], len(inputs))
		for start := 0; start < len(inputs); start += maxConcurrency {
			end := start + maxConcurrency
			if end > len(inputs) {
				end = len(inputs)
			}
			window := inputs[start:end]
			var batch Lazy[[]Try[T]]
			if para {
				batch = CollectAllPara(window)
			} else {
				batch = CollectAll(window)
			}
			copy(results[start:end], Await(r, batch))
			if yieldBetweenBatches && end < len(inputs) {
				Await(r, Yield())
			}
		}
		return results, nil
	})
}
