// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package workerpool

import "sync/atomic"

// metrics tracks Pool activity counters, mirroring the fields poolx.Metrics
// tracks for its own Pool, narrowed to what Stat and tests here need.
type metrics struct {
	submitted atomic.Int64
	completed atomic.Int64
	panics    atomic.Int64
	running   atomic.Int32
}

// Metrics is a point-in-time snapshot of a Pool's activity counters.
type Metrics struct {
	Submitted int64
	Completed int64
	Panics    int64
	Running   int32
	Workers   int32
	Queued    int
}

// Metrics returns a snapshot of p's counters.
func (p *Pool) Metrics() Metrics {
	return Metrics{
		Submitted: p.metrics.submitted.Load(),
		Completed: p.metrics.completed.Load(),
		Panics:    p.metrics.panics.Load(),
		Running:   p.metrics.running.Load(),
		Workers:   p.workers.Load(),
		Queued:    len(p.tasks),
	}
}
