package pure

import (
	"context"

	"github.com/ib-77/either/pkg/either"
)

func Map[L, R, T any](ctx context.Context, input either.Either[L, R],
	onRight func(ctx context.Context, r R) T) either.Either[L, T] {

	return either.Match(input,
		func(l L) either.Either[L, T] {
			return either.Left[L, T](l)
		},
		func(r R) either.Either[L, T] {
			return either.Right[L](onRight(ctx, r))
		})
}

func MapLeft[L, R, M any](ctx context.Context, input either.Either[L, R],
	onLeft func(ctx context.Context, l L) M) either.Either[M, R] {

	return either.Match(input,
		func(l L) either.Either[M, R] {
			return either.Left[M, R](onLeft(ctx, l))
		},
		func(r R) either.Either[M, R] {
			return either.Right[M](r)
		})
}

func DoubleMap[L, R, M, T any](ctx context.Context, input either.Either[L, R],
	onLeft func(ctx context.Context, l L) M,
	onRight func(ctx context.Context, r R) T) either.Either[M, T] {

	return either.Match(input,
		func(l L) either.Either[M, T] {
			return either.Left[M, T](onLeft(ctx, l))
		},
		func(r R) either.Either[M, T] {
			return either.Right[M](onRight(ctx, r))
		})
}

func FlatMap[L, R, T any](ctx context.Context, input either.Either[L, R],
	onRight func(ctx context.Context, r R) either.Either[L, T]) either.Either[L, T] {

	return either.Match(input,
		func(l L) either.Either[L, T] {
			return either.Left[L, T](l)
		},
		func(r R) either.Either[L, T] {
			return onRight(ctx, r)
		})
}

func Try[L, R, T any](ctx context.Context, input either.Either[L, R],
	onTry func(ctx context.Context, r R) (T, error),
	onError func(err error) L) either.Either[L, T] {

	return either.Match(input,
		func(l L) either.Either[L, T] {
			return either.Left[L, T](l)
		},
		func(r R) either.Either[L, T] {
			out, err := onTry(ctx, r)
			if err != nil {
				return either.Left[L, T](onError(err))
			}
			return either.Right[L](out)
		})
}

func Ensure[L, R any](ctx context.Context, input either.Either[L, R],
	predicate func(ctx context.Context, r R) bool, errorValue L) either.Either[L, R] {

	return either.Match(input,
		func(l L) either.Either[L, R] {
			return input
		},
		func(r R) either.Either[L, R] {
			if predicate(ctx, r) {
				return input
			}
			return either.Left[L, R](errorValue)
		})
}

func Tee[L, R any](ctx context.Context, input either.Either[L, R],
	onRight func(ctx context.Context, r R)) either.Either[L, R] {

	either.MatchVoid(input,
		func(l L) {},
		func(r R) {
			onRight(ctx, r)
		})

	return input
}

func DoubleTee[L, R any](ctx context.Context, input either.Either[L, R],
	onLeft func(ctx context.Context, l L),
	onRight func(ctx context.Context, r R)) either.Either[L, R] {

	either.MatchVoid(input,
		func(l L) {
			onLeft(ctx, l)
		},
		func(r R) {
			onRight(ctx, r)
		})

	return input
}
