// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package workerpool is a reference [asyncrt.Executor] backed by a bounded,
// lazily-grown goroutine pool. It exists so the core asyncrt package never
// has to own a scheduling policy of its own: callers that don't already
// have an Executor (an http.Server mux, a cron runner, a queue consumer)
// can reach for this one.
//
// A Pool also implements [asyncrt.DelayExecutor], scheduling delayed work
// with time.AfterFunc instead of the sleeping-goroutine fallback
// asyncrt.Sleep otherwise uses. It does not implement
// asyncrt.CheckoutExecutor: tasks are picked up by whichever worker is
// idle, so there is no persistent per-continuation worker to resume on,
// and the zero-value fallback (Checkin posts through Schedule) already
// describes that correctly.
package workerpool
