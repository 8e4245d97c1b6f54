// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package workerpool

import (
	"bytes"
	"runtime"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// goroutineID extracts the numeric goroutine id from the calling
// goroutine's own stack trace header ("goroutine 123 [running]: ..."). It
// is only ever compared for equality against ids captured the same way, so
// the exact numbering scheme doesn't matter; it just needs to be stable
// for the lifetime of one goroutine, which runtime.Stack already
// guarantees.
func goroutineID() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	line := buf[:n]
	const prefix = "goroutine "
	if !bytes.HasPrefix(line, []byte(prefix)) {
		return -1
	}
	line = line[len(prefix):]
	if sp := bytes.IndexByte(line, ' '); sp >= 0 {
		line = line[:sp]
	}
	id, err := strconv.ParseInt(string(line), 10, 64)
	if err != nil {
		return -1
	}
	return id
}

// worker runs tasks pulled from the pool's queue until told to stop, or
// until it has sat idle longer than cfg.WorkerExpiry while more than
// MinWorkers are still running (see maybeExpire). A worker goroutine
// registers its own id in p.active for its entire lifetime:
// CurrentThreadInExecutor asks "is the calling goroutine one the executor
// drives", which for a persistent worker is true from the moment it
// starts pulling tasks, not just while a task body is running.
func (p *Pool) worker() {
	defer p.workers.Add(-1)
	id := goroutineID()
	p.active.Store(id, struct{}{})
	defer p.active.Delete(id)

	var idleC <-chan time.Time
	var idleTimer *time.Timer
	if p.cfg.WorkerExpiry > 0 {
		idleTimer = time.NewTimer(p.cfg.WorkerExpiry)
		defer idleTimer.Stop()
		idleC = idleTimer.C
	}

	for {
		select {
		case work, ok := <-p.tasks:
			if !ok {
				return
			}
			stopIdleTimer(idleTimer)
			p.run(work)
			resetIdleTimer(idleTimer, p.cfg.WorkerExpiry)
		case <-p.closeCh:
			p.drain()
			return
		case <-idleC:
			if p.maybeExpire() {
				return
			}
			resetIdleTimer(idleTimer, p.cfg.WorkerExpiry)
		}
	}
}

// maybeExpire reports whether this worker should exit because it has been
// idle past cfg.WorkerExpiry and more than MinWorkers are still running.
// Mirrors poolx's cleanupExpiredWorkers, minus its precise idle-stack
// bookkeeping: several idle workers can observe the same headroom at once
// and all decide to exit, so the pool can briefly dip below MinWorkers
// before Schedule's tryGrow brings it back up under sustained load. That
// approximation is accepted in exchange for not needing a second lock
// around worker count on top of the atomic counter.
func (p *Pool) maybeExpire() bool {
	return p.workers.Load() > p.cfg.MinWorkers
}

func stopIdleTimer(t *time.Timer) {
	if t == nil {
		return
	}
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}

func resetIdleTimer(t *time.Timer, d time.Duration) {
	if t == nil {
		return
	}
	t.Reset(d)
}

// drain runs whatever is already buffered in p.tasks without blocking, so
// a Release doesn't strand work a Schedule call managed to enqueue right
// before the pool closed.
func (p *Pool) drain() {
	for {
		select {
		case work, ok := <-p.tasks:
			if !ok {
				return
			}
			p.run(work)
		default:
			return
		}
	}
}

func (p *Pool) run(work func()) {
	p.metrics.running.Add(1)
	defer p.metrics.running.Add(-1)
	defer func() {
		if r := recover(); r != nil {
			p.metrics.panics.Add(1)
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			p.logger.Error("workerpool: task panicked",
				zap.Any("recovered", r),
				zap.ByteString("stack", buf[:n]),
			)
		}
	}()
	work()
	p.metrics.completed.Add(1)
}
