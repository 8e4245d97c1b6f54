// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asyncrt_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/asyncrt"
)

func TestLazyBindSequencesAndPassesResult(t *testing.T) {
	l := asyncrt.LazyBind(asyncrt.LazyValue(2), func(t asyncrt.Try[int]) asyncrt.Lazy[int] {
		v, _ := t.Get()
		return asyncrt.LazyValue(v * 10)
	})
	v, err := asyncrt.SyncAwait(l)
	if err != nil {
		t.Fatalf("SyncAwait: %v", err)
	}
	if v != 20 {
		t.Fatalf("got %d, want 20", v)
	}
}

func TestLazyBindShortCircuitsOnError(t *testing.T) {
	wantErr := errors.New("boom")
	ran := false
	l := asyncrt.LazyBind(asyncrt.LazyError[int](wantErr), func(t asyncrt.Try[int]) asyncrt.Lazy[int] {
		ran = true
		return asyncrt.LazyValue(1)
	})
	_, err := asyncrt.SyncAwait(l)
	if ran {
		t.Fatal("f ran despite m having failed")
	}
	if !errors.Is(err, wantErr) {
		t.Fatalf("got %v, want %v", err, wantErr)
	}
}

func TestLazyMap(t *testing.T) {
	l := asyncrt.LazyMap(asyncrt.LazyValue(3), func(v int) string { return "n=3" })
	v, err := asyncrt.SyncAwait(l)
	if err != nil {
		t.Fatalf("SyncAwait: %v", err)
	}
	if v != "n=3" {
		t.Fatalf("got %q, want %q", v, "n=3")
	}
}

func TestLazyThenDiscardsFirstResultButNotItsError(t *testing.T) {
	l := asyncrt.LazyThen(asyncrt.LazyValue(1), asyncrt.LazyValue("second"))
	v, err := asyncrt.SyncAwait(l)
	if err != nil {
		t.Fatalf("SyncAwait: %v", err)
	}
	if v != "second" {
		t.Fatalf("got %q, want %q", v, "second")
	}

	wantErr := errors.New("first failed")
	l2 := asyncrt.LazyThen(asyncrt.LazyError[int](wantErr), asyncrt.LazyValue("unreachable"))
	_, err = asyncrt.SyncAwait(l2)
	if !errors.Is(err, wantErr) {
		t.Fatalf("got %v, want %v", err, wantErr)
	}
}

func TestLazyBindPropagatesInheritedExecutor(t *testing.T) {
	ex := &inlineExecutor{}
	l := asyncrt.LazyBind(asyncrt.LazyValue(1), func(t asyncrt.Try[int]) asyncrt.Lazy[int] {
		return asyncrt.Async(func(r *asyncrt.Runtime) (int, error) {
			if r.Executor() != ex {
				t_, _ := t.Get()
				return t_, errors.New("executor not inherited")
			}
			return 0, nil
		})
	}).SetEx(ex)

	if _, err := asyncrt.SyncAwait(l); err != nil {
		t.Fatalf("SyncAwait: %v", err)
	}
}

func TestLazyBindCatchesPanicInF(t *testing.T) {
	l := asyncrt.LazyBind(asyncrt.LazyValue(1), func(t asyncrt.Try[int]) asyncrt.Lazy[int] {
		panic("f exploded")
	})
	_, err := asyncrt.SyncAwait(l)
	if err == nil {
		t.Fatal("expected the panic inside f to surface as an error")
	}
}
