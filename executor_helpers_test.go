// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asyncrt_test

import (
	"sync"
	"sync/atomic"
	"time"

	"code.hybscloud.com/asyncrt"
)

// inlineExecutor runs work synchronously on the calling goroutine. depth
// tracks reentrancy so CurrentThreadInExecutor is accurate for the
// single-goroutine test bodies that use it.
type inlineExecutor struct {
	depth   atomic.Int32
	refuse  atomic.Bool
	posted  atomic.Int64
	pending atomic.Int64
}

func (e *inlineExecutor) Schedule(work func()) bool {
	if e.refuse.Load() {
		return false
	}
	e.posted.Add(1)
	e.pending.Add(1)
	e.depth.Add(1)
	defer e.depth.Add(-1)
	defer e.pending.Add(-1)
	work()
	return true
}

func (e *inlineExecutor) CurrentThreadInExecutor() bool { return e.depth.Load() > 0 }

func (e *inlineExecutor) Stat() asyncrt.ExecutorStat {
	return asyncrt.ExecutorStat{PendingTaskCount: e.pending.Load()}
}

// hopExecutor runs work on a single dedicated background goroutine,
// forcing a genuine goroutine hop so tests can observe the difference
// between running inline and being rescheduled.
type hopExecutor struct {
	tasks  chan func()
	closed chan struct{}
	once   sync.Once
	busy   atomic.Bool
	refuse atomic.Bool
}

func newHopExecutor() *hopExecutor {
	e := &hopExecutor{tasks: make(chan func(), 64), closed: make(chan struct{})}
	go func() {
		for {
			select {
			case w := <-e.tasks:
				e.busy.Store(true)
				w()
				e.busy.Store(false)
			case <-e.closed:
				return
			}
		}
	}()
	return e
}

func (e *hopExecutor) Schedule(work func()) bool {
	if e.refuse.Load() {
		return false
	}
	select {
	case e.tasks <- work:
		return true
	case <-e.closed:
		return false
	}
}

func (e *hopExecutor) CurrentThreadInExecutor() bool { return e.busy.Load() }

func (e *hopExecutor) Stat() asyncrt.ExecutorStat {
	return asyncrt.ExecutorStat{PendingTaskCount: int64(len(e.tasks))}
}

func (e *hopExecutor) Close() { e.once.Do(func() { close(e.closed) }) }

// delayExecutor adds native ScheduleAfter on top of inlineExecutor, using
// time.AfterFunc instead of Sleep's sleeping-goroutine fallback.
type delayExecutor struct {
	inlineExecutor
	delays atomic.Int64
}

func (e *delayExecutor) ScheduleAfter(work func(), dur time.Duration) {
	e.delays.Add(1)
	time.AfterFunc(dur, func() { e.Schedule(work) })
}

// parallelExecutor runs work across a fixed pool of background goroutines,
// for tests that need to observe genuine concurrency rather than just a
// single hop off the calling goroutine.
type parallelExecutor struct {
	tasks chan func()
}

func newParallelExecutor(workers int) *parallelExecutor {
	e := &parallelExecutor{tasks: make(chan func(), 64)}
	for i := 0; i < workers; i++ {
		go func() {
			for w := range e.tasks {
				w()
			}
		}()
	}
	return e
}

func (e *parallelExecutor) Schedule(work func()) bool {
	e.tasks <- work
	return true
}

func (e *parallelExecutor) CurrentThreadInExecutor() bool { return false }

func (e *parallelExecutor) Stat() asyncrt.ExecutorStat {
	return asyncrt.ExecutorStat{PendingTaskCount: int64(len(e.tasks))}
}

// checkoutExecutor records Checkout/Checkin calls so tests can assert the
// checkout/checkin dance actually ran instead of silently falling back to
// plain Schedule.
type checkoutExecutor struct {
	inlineExecutor
	checkouts atomic.Int64
	checkins  atomic.Int64
}

func (e *checkoutExecutor) Checkout() asyncrt.Context {
	e.checkouts.Add(1)
	return "checked-out"
}

func (e *checkoutExecutor) Checkin(work func(), ctx asyncrt.Context, _ asyncrt.ScheduleOptions) bool {
	e.checkins.Add(1)
	return e.Schedule(work)
}
