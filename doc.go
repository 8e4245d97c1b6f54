// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package asyncrt provides a lazily-started, executor-aware asynchronous
// execution runtime: Future/Promise pairs for one-shot producer/consumer
// handoff, Lazy for deferred work composed before it ever runs, and a set
// of combinators for running many of either over a pluggable Executor.
//
// # Design Philosophy
//
// The core type [Lazy] represents deferred work expressed in
// continuation-passing style. Go's growable goroutine stacks make the
// stackless-coroutine-with-symmetric-transfer machinery this runtime is
// grounded on unnecessary for its own sake: ordinary nested function calls
// already substitute for symmetric transfer, so only the moments that
// genuinely cross an [Executor] boundary — via, Dispatch, a combinator's
// Para variant — ever need an actual goroutine hop or scheduler post.
// Everything else in a chain of awaits is a plain Go call.
//
// # Core Types
//
//   - [Try]: three-state result carrier (empty, value, or error) that
//     crosses every Future/Promise/Lazy boundary
//   - [Promise] / [Future]: one-shot producer/consumer pair over shared
//     state, or a ready-made [Future] with no shared state at all
//   - [Lazy] / [RescheduleLazy]: deferred work, started at most once
//   - [Executor]: the scheduling surface the runtime delegates to;
//     [CheckoutExecutor] and [DelayExecutor] are optional capabilities an
//     Executor may additionally implement
//
// # Building Lazy Values
//
//   - [LazyValue], [LazyError], [LazyFromTry], [LazyFromFunc]: leaf
//     constructors
//   - [Async]: build a Lazy from an imperative body using [Await] /
//     [AwaitTry] against a [Runtime]
//   - [LazyBind], [LazyMap], [LazyThen]: monadic composition with no
//     extra goroutine, for hot paths that don't need Async's ergonomics
//   - [DispatchTo], [Sleep], [Yield], [CurrentExecutorLazy]: the
//     primitive awaitables every Lazy chain can reach for
//
// # Future Chaining
//
//   - [MakeReadyFuture], [MakeReadyFutureTry], [MakeReadyFutureError],
//     [MakeReadyFutureVoid]: already-resolved Futures
//   - [ThenTry], [ThenValue], [Then]: chain a plain function
//   - [ThenTryFuture], [ThenValueFuture]: chain a function returning
//     another Future, flattening the result
//
// # Combinators
//
//   - [CollectAll], [CollectAllPara]: await N Lazy values, in order
//   - [CollectAny]: await N Lazy values, resolve on the first
//   - [CollectAllWindowed], [CollectAllWindowedPara]: await N Lazy values
//     in bounded-concurrency batches
//
// # Bridging
//
//   - [FutureToLazy], [LazyToFuture]: interop between the two result
//     types
//   - [Awaitable], [AwaitForeign]: customization point for foreign async
//     types
//   - [FromChan]: adapt a channel-delivered result, preserving executor
//     context across the hop via Checkout/Checkin
//   - [SyncAwait]: block the calling goroutine until a Lazy resolves
//
// # Resource Safety
//
//   - [Bracket]: acquire-release-use with guaranteed cleanup
//   - [OnError]: run cleanup only on error
//
// # Affine Continuations
//
// [Affine] wraps a continuation with one-shot enforcement:
//
//   - [Once]: create an affine continuation
//   - [Affine.Resume]: invoke (panics on reuse)
//   - [Affine.TryResume]: non-panicking variant
//   - [Affine.Discard]: drop without invoking
//
// # Generators
//
// [Generator] is a pull-based sequence for callback-style producers that
// don't fit the Future/Lazy shape:
//
//   - [New]: start a Generator from a yield-style body
//   - [Generator.Next], [Generator.Value]: pull the next value
//   - [Generator.All]: adapt to Go 1.23 range-over-func
//   - [YieldAll]: forward a nested Generator's values
//
// A reference [Executor] implementation backed by a bounded worker pool
// lives in the workerpool subpackage.
package asyncrt
