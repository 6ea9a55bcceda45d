package purefn

import (
	"github.com/on-the-ground/weakmemo/pure"
	"github.com/on-the-ground/weakmemo/shared/helper"
)

// TableizeI1Err memoizes fn. A call that returns a non-nil error is not
// cached, so the next call with the same argument runs fn again.
func TableizeI1Err[I1, O1 any](
	fn func(I1) (O1, error),
	opts ...pure.Option,
) Table[func(I1) (O1, error)] {
	m := pure.Memoize(func(args ...any) (O1, error) {
		return fn(helper.MustArg[I1](args, 0))
	}, opts...)
	return newTable(m, func(i1 I1) (O1, error) {
		return m.Call(i1)
	})
}

func TableizeI2Err[I1, I2, O1 any](
	fn func(I1, I2) (O1, error),
	opts ...pure.Option,
) Table[func(I1, I2) (O1, error)] {
	m := pure.Memoize(func(args ...any) (O1, error) {
		return fn(helper.MustArg[I1](args, 0), helper.MustArg[I2](args, 1))
	}, opts...)
	return newTable(m, func(i1 I1, i2 I2) (O1, error) {
		return m.Call(i1, i2)
	})
}

func TableizeI3Err[I1, I2, I3, O1 any](
	fn func(I1, I2, I3) (O1, error),
	opts ...pure.Option,
) Table[func(I1, I2, I3) (O1, error)] {
	m := pure.Memoize(func(args ...any) (O1, error) {
		return fn(
			helper.MustArg[I1](args, 0),
			helper.MustArg[I2](args, 1),
			helper.MustArg[I3](args, 2),
		)
	}, opts...)
	return newTable(m, func(i1 I1, i2 I2, i3 I3) (O1, error) {
		return m.Call(i1, i2, i3)
	})
}

func TableizeI4Err[I1, I2, I3, I4, O1 any](
	fn func(I1, I2, I3, I4) (O1, error),
	opts ...pure.Option,
) Table[func(I1, I2, I3, I4) (O1, error)] {
	m := pure.Memoize(func(args ...any) (O1, error) {
		return fn(
			helper.MustArg[I1](args, 0),
			helper.MustArg[I2](args, 1),
			helper.MustArg[I3](args, 2),
			helper.MustArg[I4](args, 3),
		)
	}, opts...)
	return newTable(m, func(i1 I1, i2 I2, i3 I3, i4 I4) (O1, error) {
		return m.Call(i1, i2, i3, i4)
	})
}
