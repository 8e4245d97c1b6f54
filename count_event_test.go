// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asyncrt_test

import (
	"testing"

	"code.hybscloud.com/asyncrt"
)

func TestCountEventFiresOnLastArrival(t *testing.T) {
	ce := asyncrt.NewCountEvent(3)
	fired := 0
	ce.SetAwaiting(func() { fired++ })

	for i := 0; i < 3; i++ {
		if done := ce.Down(1); done != nil {
			t.Fatalf("barrier fired early after %d of 3 task completions", i+1)
		}
	}
	// the awaiter's own +1 reservation is what should finally bring it to zero
	done := ce.Down(1)
	if done == nil {
		t.Fatal("barrier did not fire once the awaiter released its own reservation")
	}
	done()
	if fired != 1 {
		t.Fatalf("awaiting handle ran %d times, want 1", fired)
	}
}

func TestCountEventZeroTasks(t *testing.T) {
	ce := asyncrt.NewCountEvent(0)
	fired := false
	ce.SetAwaiting(func() { fired = true })
	if done := ce.Down(1); done == nil {
		t.Fatal("barrier with zero tasks did not fire on the awaiter's own release")
	} else {
		done()
	}
	if !fired {
		t.Fatal("awaiting handle did not run")
	}
}

func TestCountEventDownCountDistinguishesFirstArrival(t *testing.T) {
	ce := asyncrt.NewCountEvent(5)
	first := ce.DownCount(1)
	second := ce.DownCount(1)
	if first == second {
		t.Fatalf("DownCount returned the same previous value twice: %d", first)
	}
	if first <= second {
		t.Fatalf("DownCount not monotonically decreasing: first=%d second=%d", first, second)
	}
}
