// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asyncrt_test

import (
	"testing"

	"code.hybscloud.com/asyncrt"
)

func TestAffineResumeOnce(t *testing.T) {
	var got asyncrt.Try[int]
	aff := asyncrt.Once(func(t asyncrt.Try[int]) { got = t })
	aff.Resume(asyncrt.Value(7))
	if v, _ := got.Get(); v != 7 {
		t.Fatalf("got %d, want 7", v)
	}
}

func TestAffineResumeTwicePanics(t *testing.T) {
	aff := asyncrt.Once(func(t asyncrt.Try[int]) {})
	aff.Resume(asyncrt.Value(1))
	defer func() {
		if recover() == nil {
			t.Fatal("second Resume did not panic")
		}
	}()
	aff.Resume(asyncrt.Value(2))
}

func TestAffineTryResume(t *testing.T) {
	n := 0
	aff := asyncrt.Once(func(t asyncrt.Try[int]) { n++ })
	if !aff.TryResume(asyncrt.Value(1)) {
		t.Fatal("first TryResume reported failure")
	}
	if aff.TryResume(asyncrt.Value(2)) {
		t.Fatal("second TryResume reported success")
	}
	if n != 1 {
		t.Fatalf("continuation ran %d times, want 1", n)
	}
}

func TestAffineDiscard(t *testing.T) {
	ran := false
	aff := asyncrt.Once(func(t asyncrt.Try[int]) { ran = true })
	aff.Discard()
	if aff.TryResume(asyncrt.Value(1)) {
		t.Fatal("TryResume succeeded after Discard")
	}
	if ran {
		t.Fatal("continuation ran after Discard")
	}
}
