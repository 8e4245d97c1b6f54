// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package workerpool

import (
	"errors"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"code.hybscloud.com/asyncrt"
)

// ErrPoolClosed identifies a pool on which Release has been called.
// Schedule does not return it: Schedule reports a closed pool by returning
// false.
var ErrPoolClosed = errors.New("workerpool: pool is closed")

// ErrReleaseTimeout is returned by ReleaseTimeout if workers are still
// draining the queue when the deadline passes.
var ErrReleaseTimeout = errors.New("workerpool: release timed out")

func runtimeNumCPU() int32 {
	n := runtime.NumCPU()
	if n < 1 {
		return 1
	}
	return int32(n)
}

// Pool is a bounded goroutine pool implementing asyncrt.Executor and
// asyncrt.DelayExecutor.
type Pool struct {
	id  uuid.UUID
	cfg Config

	tasks   chan func()
	closeCh chan struct{}
	closed  atomic.Bool

	workers atomic.Int32
	active  sync.Map // goroutine id (int64) -> struct{}

	metrics metrics
	logger  *zap.Logger

	wg sync.WaitGroup
}

// New builds a Pool from opts, preheating Config.MinWorkers workers.
func New(opts ...Option) *Pool {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxWorkers < cfg.MinWorkers {
		cfg.MaxWorkers = cfg.MinWorkers
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	p := &Pool{
		id:      uuid.New(),
		cfg:     cfg,
		tasks:   make(chan func(), cfg.QueueSize),
		closeCh: make(chan struct{}),
		logger:  cfg.Logger,
	}
	p.logger.Info("workerpool: pool started",
		zap.Stringer("pool_id", p.id),
		zap.Int32("min_workers", cfg.MinWorkers),
		zap.Int32("max_workers", cfg.MaxWorkers),
	)
	for i := int32(0); i < cfg.MinWorkers; i++ {
		p.spawn()
	}
	return p
}

// ID identifies this Pool instance, for correlating log lines across a
// process that runs more than one.
func (p *Pool) ID() uuid.UUID { return p.id }

// spawn reserves a worker slot and starts it, ignoring cfg.MaxWorkers; New
// uses it directly to preheat MinWorkers. tryGrow is the bounded version
// used once the pool is running.
func (p *Pool) spawn() {
	p.workers.Add(1)
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.worker()
	}()
}

// tryGrow starts one more worker if the pool is below MaxWorkers.
func (p *Pool) tryGrow() bool {
	for {
		cur := p.workers.Load()
		if cur >= p.cfg.MaxWorkers {
			return false
		}
		if p.workers.CompareAndSwap(cur, cur+1) {
			p.wg.Add(1)
			go func() {
				defer p.wg.Done()
				p.worker()
			}()
			return true
		}
	}
}

// Schedule implements asyncrt.Executor.
func (p *Pool) Schedule(work func()) bool {
	if p.closed.Load() {
		return false
	}
	p.metrics.submitted.Add(1)
	select {
	case p.tasks <- work:
		return true
	default:
	}
	p.tryGrow()
	if p.cfg.NonBlocking {
		select {
		case p.tasks <- work:
			return true
		default:
			return false
		}
	}
	select {
	case p.tasks <- work:
		return true
	case <-p.closeCh:
		return false
	}
}

// CurrentThreadInExecutor implements asyncrt.Executor.
func (p *Pool) CurrentThreadInExecutor() bool {
	_, ok := p.active.Load(goroutineID())
	return ok
}

// Stat implements asyncrt.Executor.
func (p *Pool) Stat() asyncrt.ExecutorStat {
	return asyncrt.ExecutorStat{PendingTaskCount: int64(len(p.tasks))}
}

// ScheduleAfter implements asyncrt.DelayExecutor, using a native timer
// instead of the sleeping-goroutine fallback asyncrt.Sleep falls back to
// for executors that don't implement it.
func (p *Pool) ScheduleAfter(work func(), dur time.Duration) {
	time.AfterFunc(dur, func() { p.Schedule(work) })
}

// Release stops accepting new work and waits for queued and in-flight
// tasks to finish.
func (p *Pool) Release() error {
	return p.ReleaseTimeout(0)
}

// ReleaseTimeout is Release bounded by timeout. timeout <= 0 means wait
// indefinitely. If the deadline passes before all workers exit,
// ReleaseTimeout returns ErrReleaseTimeout joined with any panic-recovery
// errors observed up to that point.
func (p *Pool) ReleaseTimeout(timeout time.Duration) error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	p.logger.Info("workerpool: pool releasing", zap.Stringer("pool_id", p.id))
	close(p.closeCh)

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	collectErrs := func() error {
		var errs error
		if panics := p.metrics.panics.Load(); panics > 0 {
			errs = multierr.Append(errs, errPanicsObserved(panics))
		}
		return errs
	}
	if timeout <= 0 {
		<-done
		return collectErrs()
	}
	select {
	case <-done:
		return collectErrs()
	case <-time.After(timeout):
		return multierr.Append(collectErrs(), ErrReleaseTimeout)
	}
}

func errPanicsObserved(n int64) error {
	return errPanicCount(n)
}

type errPanicCount int64

func (e errPanicCount) Error() string {
	return "workerpool: " + strconv.FormatInt(int64(e), 10) + " task(s) panicked during this pool's lifetime"
}

var _ asyncrt.Executor = (*Pool)(nil)
var _ asyncrt.DelayExecutor = (*Pool)(nil)
