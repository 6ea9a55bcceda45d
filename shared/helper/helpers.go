package helper

import (
	"fmt"
)

// GetTypedValueOf safely asserts the result of a getter function to the expected type T.
// Returns an error if type assertion fails.
func GetTypedValueOf[T any](getFn func() (any, error)) (T, error) {
	var zero T

	res, err := getFn()
	if err != nil {
		return zero, fmt.Errorf("failed to get value: %w", err)
	}

	val, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected type: %T", res)
	}

	return val, nil
}

// MustGetTypedValue is the panic-on-failure variant of GetTypedValueOf.
func MustGetTypedValue[T any](getFn func() (any, error)) T {
	res, err := GetTypedValueOf[T](getFn)
	if err != nil {
		panic(err)
	}
	return res
}

// MustArg returns args[i] as T. A nil argument yields the zero T, so nil
// interfaces and nil pointers pass through typed wrappers unchanged.
func MustArg[T any](args []any, i int) T {
	if i >= len(args) {
		panic(fmt.Sprintf("argument %d out of range: got %d arguments", i, len(args)))
	}
	if args[i] == nil {
		var zero T
		return zero
	}
	return MustGetTypedValue[T](func() (any, error) {
		return args[i], nil
	})
}
