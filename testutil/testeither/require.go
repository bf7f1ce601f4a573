package testeither

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ib-77/either/pkg/either"
)

// RequireRight fails the test unless e holds a Right, and returns the
// wrapped value. Extraction goes through Match, like any other consumer.
func RequireRight[L, R any](t *testing.T, e either.Either[L, R]) R {
	t.Helper()

	require.Truef(t, e.IsRight(), "expected Right, got: isLeft=%v isEmpty=%v", e.IsLeft(), e.IsEmpty())

	return either.Match(e,
		func(l L) R {
			var zero R
			return zero
		},
		func(r R) R {
			return r
		})
}

// RequireLeft fails the test unless e holds a Left, and returns the
// wrapped value.
func RequireLeft[L, R any](t *testing.T, e either.Either[L, R]) L {
	t.Helper()

	require.Truef(t, e.IsLeft(), "expected Left, got: isRight=%v isEmpty=%v", e.IsRight(), e.IsEmpty())

	return either.Match(e,
		func(l L) L {
			return l
		},
		func(r R) L {
			var zero L
			return zero
		})
}
