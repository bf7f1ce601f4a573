package either

import (
	"time"

	"github.com/google/uuid"
)

// Either is a closed two-case union: a constructed value is exactly one of
// Left (conventionally a failure of type L) or Right (a success of type R).
// Values are immutable once constructed and carry no shared state.
type Either[L, R any] struct {
	id        uuid.UUID
	createdAt time.Time
	left      L
	right     R
	isLeft    bool
	isRight   bool
}

func Left[L, R any](value L) Either[L, R] {
	return Either[L, R]{
		left:      value,
		isLeft:    true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Right[L, R any](value R) Either[L, R] {
	return Either[L, R]{
		right:     value,
		isRight:   true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Match invokes exactly one of the two handlers with the wrapped value and
// returns its result. It is the only way to extract a wrapped value; both
// handlers must be total, any panic inside them reaches the caller.
// Match panics on a zero Either, which no constructor produces.
func Match[L, R, T any](e Either[L, R], onLeft func(l L) T, onRight func(r R) T) T {
	if e.isLeft {
		return onLeft(e.left)
	}
	if e.isRight {
		return onRight(e.right)
	}
	panic("either: no value!")
}

// MatchVoid is Match for side effects only.
func MatchVoid[L, R any](e Either[L, R], onLeft func(l L), onRight func(r R)) {
	if e.isLeft {
		onLeft(e.left)
		return
	}
	if e.isRight {
		onRight(e.right)
		return
	}
	panic("either: no value!")
}

func (e Either[L, R]) IsLeft() bool {
	return e.isLeft
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// IsEmpty reports the zero value, a Go artifact that bypassed both
// constructors. Empty values are not valid combinator input.
func (e Either[L, R]) IsEmpty() bool {
	return !e.isLeft && !e.isRight
}

func (e Either[L, R]) CreatedAt() time.Time {
	return e.createdAt
}

func (e Either[L, R]) Id() uuid.UUID {
	return e.id
}
