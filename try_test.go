// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asyncrt_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/asyncrt"
)

func TestTryValue(t *testing.T) {
	tr := asyncrt.Value(42)
	if !tr.HasValue() || tr.HasError() || !tr.Available() {
		t.Fatalf("Value(42) states wrong: %+v", tr)
	}
	v, err := tr.Get()
	if err != nil || v != 42 {
		t.Fatalf("Get() = %d, %v, want 42, nil", v, err)
	}
}

func TestTryError(t *testing.T) {
	wantErr := errors.New("boom")
	tr := asyncrt.Error[int](wantErr)
	if tr.HasValue() || !tr.HasError() || !tr.Available() {
		t.Fatalf("Error states wrong: %+v", tr)
	}
	if tr.Err() != wantErr {
		t.Fatalf("Err() = %v, want %v", tr.Err(), wantErr)
	}
	_, err := tr.Get()
	if !errors.Is(err, wantErr) {
		t.Fatalf("Get() err = %v, want %v", err, wantErr)
	}
}

func TestTryEmpty(t *testing.T) {
	var tr asyncrt.Try[int]
	if tr.Available() {
		t.Fatal("zero-value Try reports Available")
	}
	_, err := tr.Get()
	if !errors.Is(err, asyncrt.ErrEmptyTry) {
		t.Fatalf("Get() on empty Try = %v, want ErrEmptyTry", err)
	}
}

func TestTryErrorPanicsOnNil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Error(nil) did not panic")
		}
	}()
	asyncrt.Error[int](nil)
}

func TestTryMustGetPanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustGet did not panic on an error Try")
		}
	}()
	asyncrt.Error[int](errors.New("x")).MustGet()
}

func TestTrySetValueAndSetError(t *testing.T) {
	var tr asyncrt.Try[string]
	tr.SetValue("a")
	if v, _ := tr.Get(); v != "a" {
		t.Fatalf("after SetValue, Get() = %q", v)
	}
	wantErr := errors.New("bad")
	tr.SetError(wantErr)
	if !tr.HasError() {
		t.Fatal("after SetError, HasError() is false")
	}
	if _, err := tr.Get(); !errors.Is(err, wantErr) {
		t.Fatalf("after SetError, Get() err = %v", err)
	}
}

func TestTryMap(t *testing.T) {
	doubled := asyncrt.TryMap(asyncrt.Value(21), func(v int) int { return v * 2 })
	if v, _ := doubled.Get(); v != 42 {
		t.Fatalf("TryMap(Value(21)) = %d, want 42", v)
	}

	wantErr := errors.New("fail")
	propagated := asyncrt.TryMap(asyncrt.Error[int](wantErr), func(v int) string { return "x" })
	if _, err := propagated.Get(); !errors.Is(err, wantErr) {
		t.Fatalf("TryMap over an error Try = %v, want %v", err, wantErr)
	}

	var empty asyncrt.Try[int]
	mappedEmpty := asyncrt.TryMap(empty, func(v int) int { return v + 1 })
	if mappedEmpty.Available() {
		t.Fatal("TryMap over an empty Try produced an available result")
	}
}
