// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asyncrt

import "time"

// Sleep returns a Lazy that resolves after dur without blocking a
// goroutine the whole time: if the chain carries an executor, the resume
// is scheduled on it (natively via DelayExecutor when the executor
// supports it, otherwise via a sleeping goroutine that then posts);
// otherwise it falls back to a plain time.Sleep on whatever goroutine
// awaits it.
func Sleep(dur time.Duration) Lazy[struct{}] {
	return Lazy[struct{}]{body: func(box *execBox, resume func(Try[struct{}])) {
		ex := box.ex
		if ex == nil {
			time.Sleep(dur)
			resume(Value(struct{}{}))
			return
		}
		scheduleAfter(ex, func() { resume(Value(struct{}{})) }, dur)
	}}
}
