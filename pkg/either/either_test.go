package either

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestRight_MatchInvokesOnlyRightBranch(t *testing.T) {
	t.Parallel()

	e := Right[string](7)

	leftCalled := false
	got := Match(e,
		func(l string) int {
			leftCalled = true
			return -1
		},
		func(r int) int {
			return r * 2
		})

	if got != 14 {
		t.Fatalf("expected 14, got: %d", got)
	}
	if leftCalled {
		t.Fatalf("onLeft should not be invoked for a Right value")
	}
}

func TestLeft_MatchInvokesOnlyLeftBranch(t *testing.T) {
	t.Parallel()

	e := Left[string, int]("boom")

	rightCalled := false
	got := Match(e,
		func(l string) string {
			return l + "!"
		},
		func(r int) string {
			rightCalled = true
			return "unexpected"
		})

	if got != "boom!" {
		t.Fatalf("expected 'boom!', got: %q", got)
	}
	if rightCalled {
		t.Fatalf("onRight should not be invoked for a Left value")
	}
}

func TestMatchVoid_BothTracks(t *testing.T) {
	t.Parallel()

	var seenLeft string
	var seenRight int

	MatchVoid(Left[string, int]("oops"),
		func(l string) { seenLeft = l },
		func(r int) { seenRight = r })

	MatchVoid(Right[string](42),
		func(l string) { seenLeft = "wrong" },
		func(r int) { seenRight = r })

	if seenLeft != "oops" {
		t.Fatalf("expected left side effect 'oops', got: %q", seenLeft)
	}
	if seenRight != 42 {
		t.Fatalf("expected right side effect 42, got: %d", seenRight)
	}
}

func TestMatch_PanicsOnEmptyValue(t *testing.T) {
	t.Parallel()

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on zero-value either")
		}
	}()

	var empty Either[string, int]
	Match(empty, func(string) int { return 0 }, func(int) int { return 0 })
}

func TestSides(t *testing.T) {
	t.Parallel()

	l := Left[error, int](errors.New("x"))
	r := Right[error](1)

	var empty Either[error, int]

	if !l.IsLeft() || l.IsRight() || l.IsEmpty() {
		t.Fatalf("expected pure Left, got: isLeft=%v isRight=%v isEmpty=%v", l.IsLeft(), l.IsRight(), l.IsEmpty())
	}
	if !r.IsRight() || r.IsLeft() || r.IsEmpty() {
		t.Fatalf("expected pure Right, got: isLeft=%v isRight=%v isEmpty=%v", r.IsLeft(), r.IsRight(), r.IsEmpty())
	}
	if !empty.IsEmpty() || empty.IsLeft() || empty.IsRight() {
		t.Fatalf("expected empty zero value, got: isLeft=%v isRight=%v isEmpty=%v", empty.IsLeft(), empty.IsRight(), empty.IsEmpty())
	}
}

func TestProvenance(t *testing.T) {
	t.Parallel()

	a := Right[string](1)
	b := Right[string](1)

	if a.Id() == b.Id() {
		t.Fatalf("expected distinct ids per instance, got: %v twice", a.Id())
	}
	if a.CreatedAt().IsZero() || b.CreatedAt().IsZero() {
		t.Fatalf("expected createdAt to be stamped at construction")
	}
}

func TestInterfaces(t *testing.T) {
	t.Parallel()

	var s Sided = Right[string](1)
	if !s.IsRight() {
		t.Fatalf("expected Sided view to report Right")
	}

	var st Stamped = Left[string, int]("x")
	if st.CreatedAt().IsZero() {
		t.Fatalf("expected Stamped view to expose createdAt")
	}
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var nilErr error
	var nilPtr *int

	cases := []struct {
		name     string
		value    interface{}
		expected bool
	}{
		{"untyped nil", nil, true},
		{"nil error interface", nilErr, true},
		{"typed nil pointer", nilPtr, true},
		{"nil slice", []int(nil), true},
		{"non-nil error", errors.New("x"), false},
		{"zero int", 0, false},
	}

	for _, tc := range cases {
		if got := IsNil(tc.value); got != tc.expected {
			t.Fatalf("%s: expected IsNil=%v, got: %v", tc.name, tc.expected, got)
		}
	}
}

func TestGetErrors(t *testing.T) {
	t.Parallel()

	if got := GetErrors(nil); len(got) != 0 {
		t.Fatalf("expected no errors for nil, got: %v", got)
	}

	single := errors.New("one")
	if got := GetErrors(single); len(got) != 1 || got[0] != single {
		t.Fatalf("expected the error itself, got: %v", got)
	}

	first := errors.New("first")
	second := errors.New("second")
	joined := errors.Join(first, second)

	got := GetErrors(joined)
	if len(got) != 2 || !errors.Is(got[0], first) || !errors.Is(got[1], second) {
		t.Fatalf("expected both joined errors in order, got: %v", got)
	}
}

func TestIsCancellationError(t *testing.T) {
	t.Parallel()

	if !IsCancellationError(context.Canceled) {
		t.Fatalf("expected context.Canceled to count as cancellation")
	}
	if !IsCancellationError(fmt.Errorf("wrap: %w", context.DeadlineExceeded)) {
		t.Fatalf("expected wrapped DeadlineExceeded to count as cancellation")
	}
	if IsCancellationError(errors.New("plain")) {
		t.Fatalf("expected plain error not to count as cancellation")
	}
}
