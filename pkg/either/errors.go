package either

import (
	"context"
	"errors"
	"reflect"
)

// IsNil reports whether i is nil, including a typed nil wrapped in a
// non-nil interface.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}

// GetErrors flattens an error-typed Left value into its parts: a joined
// error (errors.Join) yields each joined error, any other non-nil error
// yields itself, nil yields an empty slice.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}

	return []error{err}
}

// IsCancellationError reports whether err stems from context cancellation
// or an expired deadline.
func IsCancellationError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
