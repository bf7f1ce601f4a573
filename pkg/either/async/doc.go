// Package async implements EitherAsync[L, R], a deferred computation that
// yields an Either[L, R] when run. Chains are composed up front at zero
// execution cost; Run walks the stages from the root in composition order
// and short-circuits the success track on the first Left.
//
// Asynchrony follows Go convention: a stage is a blocking, ctx-aware call,
// and RunAsync moves a whole chain onto a goroutine when a caller wants a
// channel instead. The package itself performs no I/O, holds no resources
// and plumbs no cancellation of its own; the ctx handed to Run reaches
// every user callback untouched.
//
// Key operations:
// - FromRight/FromLeft/FromEither/New: construct deferred chains
// - Try: wrap an action (R, error), converting the error to a Left via a handler
// - Map/MapLeft/DoubleMap: transform tracks without executing the chain
// - FlatMap: sequence a dependent Either-producing step
// - TryMap: a Try boundary mid-chain
// - Ensure/Tee/DoubleTee/OrElse: same-type stages as methods
// - Run/RunAsync/Await/Finally: execute and consume
package async
