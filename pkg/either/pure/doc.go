// Package pure contains single-value, synchronous combinators that operate
// on Either[L, R]. These functions form the building blocks for two-track
// pipelines over values that are already at hand; nothing here defers or
// suspends.
//
// A Left input passes through every combinator untouched and no
// right-handler is invoked for it. None of the combinators recovers panics;
// a handler that fails takes the caller down with it.
//
// Highlights:
// - Map/MapLeft/DoubleMap: transform one or both tracks
// - FlatMap: switch to a dependent Either-producing step
// - Try: call a function (T, error) and convert the error to a Left via a handler
// - Ensure: demote a Right to a given Left when a predicate rejects it
// - Tee/DoubleTee: side-effect helpers that return the input unchanged
// - Collect/Partition/Lefts/Rights: fold batches of eithers
package pure
