package chain

import (
	"context"

	"github.com/ib-77/either/pkg/either"
	"github.com/ib-77/either/pkg/either/async"
)

// Chain wraps an async.EitherAsync to enable fluent composition. The chain
// stays deferred: nothing executes before Run or Finally.
type Chain[L, R any] struct {
	ea async.EitherAsync[L, R]
}

// Start creates a new chain from an existing deferred computation.
func Start[L, R any](ea async.EitherAsync[L, R]) Chain[L, R] {
	return Chain[L, R]{ea: ea}
}

// FromValue creates a new chain whose run yields Right(value).
func FromValue[L, R any](value R) Chain[L, R] {
	return Chain[L, R]{ea: async.FromRight[L](value)}
}

// FromLeft creates a new chain whose run yields Left(value).
func FromLeft[L, R any](value L) Chain[L, R] {
	return Chain[L, R]{ea: async.FromLeft[L, R](value)}
}

// Try creates a new chain rooted in an action (R, error); the error is
// converted to a Left via onError when the chain runs.
func Try[L, R any](action func(ctx context.Context) (R, error),
	onError func(err error) L) Chain[L, R] {

	return Chain[L, R]{ea: async.Try(action, onError)}
}

// Async returns the underlying deferred computation.
func (c Chain[L, R]) Async() async.EitherAsync[L, R] {
	return c.ea
}

// Then appends a dependent Either-producing step.
func Then[L, R, T any](c Chain[L, R],
	onRight func(ctx context.Context, r R) either.Either[L, T]) Chain[L, T] {

	return Chain[L, T]{ea: async.FlatMap(c.ea, onRight)}
}

// ThenTry appends a step (T, error) whose error is converted to a Left via onError.
func ThenTry[L, R, T any](c Chain[L, R],
	action func(ctx context.Context, r R) (T, error),
	onError func(err error) L) Chain[L, T] {

	return Chain[L, T]{ea: async.TryMap(c.ea, action, onError)}
}

// Map appends a pure transformation of the success track.
func Map[L, R, T any](c Chain[L, R],
	onRight func(ctx context.Context, r R) T) Chain[L, T] {

	return Chain[L, T]{ea: async.Map(c.ea, onRight)}
}

// MapLeft appends a transformation of the failure track.
func MapLeft[L, R, M any](c Chain[L, R],
	onLeft func(ctx context.Context, l L) M) Chain[M, R] {

	return Chain[M, R]{ea: async.MapLeft(c.ea, onLeft)}
}

// Ensure demotes a Right to Left(errorValue) when the predicate rejects it.
func (c Chain[L, R]) Ensure(predicate func(ctx context.Context, r R) bool,
	errorValue L) Chain[L, R] {

	return Chain[L, R]{ea: c.ea.Ensure(predicate, errorValue)}
}

// Tee appends a success-track side effect without changing the result.
func (c Chain[L, R]) Tee(onRight func(ctx context.Context, r R)) Chain[L, R] {
	return Chain[L, R]{ea: c.ea.Tee(onRight)}
}

// DoubleTee appends a side effect on whichever track the chain is on.
func (c Chain[L, R]) DoubleTee(onLeft func(ctx context.Context, l L),
	onRight func(ctx context.Context, r R)) Chain[L, R] {

	return Chain[L, R]{ea: c.ea.DoubleTee(onLeft, onRight)}
}

// OrElse falls back to the alternative chain when this one yields a Left.
func (c Chain[L, R]) OrElse(alternative Chain[L, R]) Chain[L, R] {
	return Chain[L, R]{ea: c.ea.OrElse(alternative.ea)}
}

// Run executes the chain and returns the terminal either.
func (c Chain[L, R]) Run(ctx context.Context) either.Either[L, R] {
	return c.ea.Run(ctx)
}

// Finally executes the chain and collapses it into a final value, delegating
// to async.Finally.
func Finally[L, R, T any](ctx context.Context, c Chain[L, R],
	onLeft func(ctx context.Context, l L) T,
	onRight func(ctx context.Context, r R) T) T {

	return async.Finally(ctx, c.ea, onLeft, onRight)
}
