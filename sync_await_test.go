// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asyncrt_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/asyncrt"
)

func TestSyncAwaitBasic(t *testing.T) {
	v, err := asyncrt.SyncAwait(asyncrt.LazyValue(5))
	if err != nil {
		t.Fatalf("SyncAwait: %v", err)
	}
	if v != 5 {
		t.Fatalf("got %d, want 5", v)
	}
}

func TestSyncAwaitPropagatesError(t *testing.T) {
	wantErr := errors.New("fail")
	_, err := asyncrt.SyncAwait(asyncrt.LazyError[int](wantErr))
	if !errors.Is(err, wantErr) {
		t.Fatalf("got %v, want %v", err, wantErr)
	}
}

func TestSyncAwaitDeadlockAvoided(t *testing.T) {
	ex := newHopExecutor()
	defer ex.Close()

	done := make(chan any, 1)
	ex.Schedule(func() {
		defer func() { done <- recover() }()
		asyncrt.SyncAwait(asyncrt.LazyValue(1).Via(ex))
	})
	r := <-done
	if r == nil {
		t.Fatal("expected SyncAwait to panic when called from the owning executor's thread")
	}
	if err, ok := r.(error); !ok || !errors.Is(err, asyncrt.ErrDeadlockAvoided) {
		t.Fatalf("got %v, want ErrDeadlockAvoided", r)
	}
}
