package pure

import (
	"github.com/ib-77/either/pkg/either"
)

// Collect folds many eithers into one: all Rights in input order, or the
// first Left encountered (later values are not inspected).
func Collect[L, R any](inputs ...either.Either[L, R]) either.Either[L, []R] {
	rights := make([]R, 0, len(inputs))

	for _, in := range inputs {
		var left L
		sawLeft := false

		either.MatchVoid(in,
			func(l L) {
				left = l
				sawLeft = true
			},
			func(r R) {
				rights = append(rights, r)
			})

		if sawLeft {
			return either.Left[L, []R](left)
		}
	}

	return either.Right[L](rights)
}

// Partition splits a batch into its Left and Right values, preserving order.
func Partition[L, R any](inputs ...either.Either[L, R]) ([]L, []R) {
	lefts := make([]L, 0, len(inputs))
	rights := make([]R, 0, len(inputs))

	for _, in := range inputs {
		either.MatchVoid(in,
			func(l L) {
				lefts = append(lefts, l)
			},
			func(r R) {
				rights = append(rights, r)
			})
	}

	return lefts, rights
}

func Lefts[L, R any](inputs ...either.Either[L, R]) []L {
	lefts, _ := Partition(inputs...)
	return lefts
}

func Rights[L, R any](inputs ...either.Either[L, R]) []R {
	_, rights := Partition(inputs...)
	return rights
}
