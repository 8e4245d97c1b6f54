// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package workerpool_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"code.hybscloud.com/asyncrt"
	"code.hybscloud.com/asyncrt/workerpool"
)

func TestPoolSchedule(t *testing.T) {
	p := workerpool.New(workerpool.WithMinWorkers(2), workerpool.WithMaxWorkers(4))
	defer p.Release()

	var n atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		ok := p.Schedule(func() {
			defer wg.Done()
			n.Add(1)
		})
		if !ok {
			t.Fatal("Schedule refused work on an open pool")
		}
	}
	wg.Wait()
	if got := n.Load(); got != 100 {
		t.Fatalf("ran %d tasks, want 100", got)
	}
}

func TestPoolScheduleAfterRelease(t *testing.T) {
	p := workerpool.New()
	if err := p.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if p.Schedule(func() {}) {
		t.Fatal("Schedule accepted work after Release")
	}
}

func TestPoolCurrentThreadInExecutor(t *testing.T) {
	p := workerpool.New(workerpool.WithMinWorkers(1))
	defer p.Release()

	if p.CurrentThreadInExecutor() {
		t.Fatal("test goroutine reported as inside the executor")
	}

	done := make(chan bool, 1)
	p.Schedule(func() {
		done <- p.CurrentThreadInExecutor()
	})
	if inside := <-done; !inside {
		t.Fatal("worker goroutine did not report itself as inside the executor")
	}
}

func TestPoolPanicRecovered(t *testing.T) {
	p := workerpool.New(workerpool.WithMinWorkers(1))

	done := make(chan struct{})
	p.Schedule(func() {
		defer close(done)
		panic("boom")
	})
	<-done

	if err := p.Release(); err == nil {
		t.Fatal("expected Release to report the recovered panic")
	}
}

func TestPoolReleaseTimeout(t *testing.T) {
	p := workerpool.New(workerpool.WithMinWorkers(1))
	started := make(chan struct{})
	release := make(chan struct{})
	p.Schedule(func() {
		close(started)
		<-release
	})
	<-started

	err := p.ReleaseTimeout(10 * time.Millisecond)
	if err == nil {
		t.Fatal("expected ReleaseTimeout to report a timeout while a task is still running")
	}
	close(release)
}

func TestPoolAsExecutor(t *testing.T) {
	p := workerpool.New(workerpool.WithMinWorkers(1))
	defer p.Release()

	l := asyncrt.LazyValue(7).Via(p)
	v, err := asyncrt.SyncAwait(l)
	if err != nil {
		t.Fatalf("SyncAwait: %v", err)
	}
	if v != 7 {
		t.Fatalf("got %d, want 7", v)
	}
}

func TestPoolScheduleAfter(t *testing.T) {
	p := workerpool.New(workerpool.WithMinWorkers(1))
	defer p.Release()

	start := time.Now()
	done := make(chan time.Time, 1)
	p.ScheduleAfter(func() { done <- time.Now() }, 20*time.Millisecond)

	fired := <-done
	if fired.Sub(start) < 15*time.Millisecond {
		t.Fatalf("ScheduleAfter fired too early: %v", fired.Sub(start))
	}
}

func TestPoolMetrics(t *testing.T) {
	p := workerpool.New(workerpool.WithMinWorkers(1))
	defer p.Release()

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		p.Schedule(func() { defer wg.Done() })
	}
	wg.Wait()

	m := p.Metrics()
	if m.Completed < 5 {
		t.Fatalf("Metrics().Completed = %d, want >= 5", m.Completed)
	}
}
