// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asyncrt

import "sync"

// CountEvent pooling for CollectAll and CollectAllPara, each of which
// allocates exactly one short-lived *CountEvent per call (the windowed
// variants get one per batch through them; CollectAny uses none). CountEvent has no type parameter, unlike the values it gates, so
// — unlike the source's frame pools, which had to be instantiated against
// a type-erased Erased payload to fit sync.Pool's non-generic Get/Put —
// it pools directly with no erasure trick needed.

var countEventPool = sync.Pool{New: func() any { return new(CountEvent) }}

// acquireCountEvent gets a pooled CountEvent reset to n+1.
func acquireCountEvent(n int64) *CountEvent {
	ce := countEventPool.Get().(*CountEvent)
	ce.count.Store(n + 1)
	ce.awaiting.Store(nil)
	return ce
}

// releaseCountEvent returns ce to the pool. Callers must not touch ce
// afterward; only safe once the barrier has fired and every Down call
// that could reference it has returned.
func releaseCountEvent(ce *CountEvent) {
	countEventPool.Put(ce)
}
