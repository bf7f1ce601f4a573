// Package chain provides a fluent wrapper around async.EitherAsync
// for building deferred two-track pipelines without handling branching
// results at each step.
//
// It composes the async combinators behind a convenient Chain[L, R] type;
// composition is free and execution happens only at Run or Finally.
//
// Key operations:
// - Start/FromValue/FromLeft/Try: begin a chain
// - Then: sequence a dependent Either-producing step
// - ThenTry: call a step (T, error) and convert the error to a Left
// - Map/MapLeft: transform a single track
// - Ensure/Tee/DoubleTee/OrElse: same-type steps as methods
// - Run/Finally: trigger execution and consume the outcome
package chain
