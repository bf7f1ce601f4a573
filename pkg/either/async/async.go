package async

import (
	"context"

	"github.com/ib-77/either/pkg/either"
	"github.com/ib-77/either/pkg/either/pure"
)

// EitherAsync wraps a deferred computation that produces an Either[L, R]
// when run. Composing stages costs nothing; no stage executes before Run.
// Every combinator returns a brand-new value closing over its predecessor,
// so chains are immutable and can be re-run or shared freely.
type EitherAsync[L, R any] struct {
	run func(ctx context.Context) either.Either[L, R]
}

// New wraps a raw deferred computation. All other factories are sugar for New.
func New[L, R any](run func(ctx context.Context) either.Either[L, R]) EitherAsync[L, R] {
	return EitherAsync[L, R]{run: run}
}

// FromRight defers a computation that yields Right(value) when run.
func FromRight[L, R any](value R) EitherAsync[L, R] {
	return New(func(ctx context.Context) either.Either[L, R] {
		return either.Right[L](value)
	})
}

// FromLeft defers a computation that yields Left(value) when run.
func FromLeft[L, R any](value L) EitherAsync[L, R] {
	return New(func(ctx context.Context) either.Either[L, R] {
		return either.Left[L, R](value)
	})
}

// FromEither lifts an already-computed either into a deferred chain.
func FromEither[L, R any](e either.Either[L, R]) EitherAsync[L, R] {
	return New(func(ctx context.Context) either.Either[L, R] {
		return e
	})
}

// Try wraps an arbitrary ctx-aware action. On run, a non-nil error from the
// action is handed to onError and the handler's value becomes a Left; a nil
// error wraps the output in a Right. This is the single boundary where
// failures become values: onError must not itself fail, and a panic inside
// the action is not recovered anywhere in this package.
func Try[L, R any](action func(ctx context.Context) (R, error),
	onError func(err error) L) EitherAsync[L, R] {

	return New(func(ctx context.Context) either.Either[L, R] {
		out, err := action(ctx)
		if err != nil {
			return either.Left[L, R](onError(err))
		}
		return either.Right[L](out)
	})
}

// Map appends a pure transformation of the success track. A Left result of
// the previous stage passes through with onRight never invoked.
func Map[L, R, T any](input EitherAsync[L, R],
	onRight func(ctx context.Context, r R) T) EitherAsync[L, T] {

	return New(func(ctx context.Context) either.Either[L, T] {
		return pure.Map(ctx, input.Run(ctx), onRight)
	})
}

// MapLeft appends a transformation of the failure track; Rights pass through.
func MapLeft[L, R, M any](input EitherAsync[L, R],
	onLeft func(ctx context.Context, l L) M) EitherAsync[M, R] {

	return New(func(ctx context.Context) either.Either[M, R] {
		return pure.MapLeft(ctx, input.Run(ctx), onLeft)
	})
}

// DoubleMap transforms both tracks in one stage.
func DoubleMap[L, R, M, T any](input EitherAsync[L, R],
	onLeft func(ctx context.Context, l L) M,
	onRight func(ctx context.Context, r R) T) EitherAsync[M, T] {

	return New(func(ctx context.Context) either.Either[M, T] {
		return pure.DoubleMap(ctx, input.Run(ctx), onLeft, onRight)
	})
}

// FlatMap appends a dependent step: on a Right, onRight runs to completion
// and its either becomes the stage result as-is. Failures inside onRight are
// not converted here, only Try converts.
func FlatMap[L, R, T any](input EitherAsync[L, R],
	onRight func(ctx context.Context, r R) either.Either[L, T]) EitherAsync[L, T] {

	return New(func(ctx context.Context) either.Either[L, T] {
		return pure.FlatMap(ctx, input.Run(ctx), onRight)
	})
}

// TryMap appends a Try boundary mid-chain, converting the action's error to
// a Left via onError. Same contract as Try.
func TryMap[L, R, T any](input EitherAsync[L, R],
	action func(ctx context.Context, r R) (T, error),
	onError func(err error) L) EitherAsync[L, T] {

	return New(func(ctx context.Context) either.Either[L, T] {
		return pure.Try(ctx, input.Run(ctx), action, onError)
	})
}

// Ensure demotes a Right to Left(errorValue) when the predicate rejects it.
// The predicate must be total; it is never consulted for a Left.
func (ea EitherAsync[L, R]) Ensure(predicate func(ctx context.Context, r R) bool,
	errorValue L) EitherAsync[L, R] {

	return New(func(ctx context.Context) either.Either[L, R] {
		return pure.Ensure(ctx, ea.Run(ctx), predicate, errorValue)
	})
}

// Tee appends a success-track side effect without changing the result.
func (ea EitherAsync[L, R]) Tee(onRight func(ctx context.Context, r R)) EitherAsync[L, R] {
	return New(func(ctx context.Context) either.Either[L, R] {
		return pure.Tee(ctx, ea.Run(ctx), onRight)
	})
}

// DoubleTee appends a side effect on whichever track the chain is on.
func (ea EitherAsync[L, R]) DoubleTee(onLeft func(ctx context.Context, l L),
	onRight func(ctx context.Context, r R)) EitherAsync[L, R] {

	return New(func(ctx context.Context) either.Either[L, R] {
		return pure.DoubleTee(ctx, ea.Run(ctx), onLeft, onRight)
	})
}

// OrElse runs the alternative only when the receiver yields a Left; the
// first Right wins. The alternative stays unexecuted on the happy path.
func (ea EitherAsync[L, R]) OrElse(alternative EitherAsync[L, R]) EitherAsync[L, R] {
	return New(func(ctx context.Context) either.Either[L, R] {
		res := ea.Run(ctx)
		if res.IsRight() {
			return res
		}
		return alternative.Run(ctx)
	})
}

// Run executes the whole chain from its root, strictly in composition order,
// and returns the terminal either. Nothing is memoized: every call re-runs
// every stage, repeating any side effects of Try actions.
func (ea EitherAsync[L, R]) Run(ctx context.Context) either.Either[L, R] {
	if ea.run == nil {
		panic("either async: no computation!")
	}
	return ea.run(ctx)
}

// RunAsync hoists Run onto its own goroutine and returns a channel carrying
// the single terminal either. The channel is buffered, so the goroutine
// finishes even when the result is never received. The chain itself remains
// a linear pipeline; stages never run concurrently with each other.
func (ea EitherAsync[L, R]) RunAsync(ctx context.Context) <-chan either.Either[L, R] {
	out := make(chan either.Either[L, R], 1)

	go func() {
		defer close(out)
		out <- ea.Run(ctx)
	}()

	return out
}

// Await returns the first either received from out, or fallback once ctx is
// done or out is closed without a value.
func Await[L, R any](ctx context.Context, out <-chan either.Either[L, R],
	fallback either.Either[L, R]) either.Either[L, R] {

	select {
	case e, ok := <-out:
		if !ok {
			return fallback
		}
		return e
	case <-ctx.Done():
		return fallback
	}
}

// Finally runs the chain and collapses the terminal either into a concrete
// value via the two handlers.
func Finally[L, R, T any](ctx context.Context, input EitherAsync[L, R],
	onLeft func(ctx context.Context, l L) T,
	onRight func(ctx context.Context, r R) T) T {

	return either.Match(input.Run(ctx),
		func(l L) T {
			return onLeft(ctx, l)
		},
		func(r R) T {
			return onRight(ctx, r)
		})
}
