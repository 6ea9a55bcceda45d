package purefn

import (
	"github.com/on-the-ground/weakmemo/pure"
	"github.com/on-the-ground/weakmemo/shared/helper"
)

type result[O1 any, O2 any] struct {
	O1 O1
	O2 O2
}

func TableizeI1O2[I1, O1, O2 any](
	pureFn func(I1) (O1, O2),
	opts ...pure.Option,
) Table[func(I1) (O1, O2)] {
	m := tableizeDualOutput(func(args ...any) (O1, O2) {
		return pureFn(helper.MustArg[I1](args, 0))
	}, opts)
	return newTable(m, func(i1 I1) (O1, O2) {
		res := mustCall(m, i1)
		return res.O1, res.O2
	})
}

func TableizeI2O2[I1, I2, O1, O2 any](
	pureFn func(I1, I2) (O1, O2),
	opts ...pure.Option,
) Table[func(I1, I2) (O1, O2)] {
	m := tableizeDualOutput(func(args ...any) (O1, O2) {
		return pureFn(helper.MustArg[I1](args, 0), helper.MustArg[I2](args, 1))
	}, opts)
	return newTable(m, func(i1 I1, i2 I2) (O1, O2) {
		res := mustCall(m, i1, i2)
		return res.O1, res.O2
	})
}

func TableizeI3O2[I1, I2, I3, O1, O2 any](
	pureFn func(I1, I2, I3) (O1, O2),
	opts ...pure.Option,
) Table[func(I1, I2, I3) (O1, O2)] {
	m := tableizeDualOutput(func(args ...any) (O1, O2) {
		return pureFn(
			helper.MustArg[I1](args, 0),
			helper.MustArg[I2](args, 1),
			helper.MustArg[I3](args, 2),
		)
	}, opts)
	return newTable(m, func(i1 I1, i2 I2, i3 I3) (O1, O2) {
		res := mustCall(m, i1, i2, i3)
		return res.O1, res.O2
	})
}

func TableizeI4O2[I1, I2, I3, I4, O1, O2 any](
	pureFn func(I1, I2, I3, I4) (O1, O2),
	opts ...pure.Option,
) Table[func(I1, I2, I3, I4) (O1, O2)] {
	m := tableizeDualOutput(func(args ...any) (O1, O2) {
		return pureFn(
			helper.MustArg[I1](args, 0),
			helper.MustArg[I2](args, 1),
			helper.MustArg[I3](args, 2),
			helper.MustArg[I4](args, 3),
		)
	}, opts)
	return newTable(m, func(i1 I1, i2 I2, i3 I3, i4 I4) (O1, O2) {
		res := mustCall(m, i1, i2, i3, i4)
		return res.O1, res.O2
	})
}

func tableizeDualOutput[O1, O2 any](
	pureFn func(...any) (O1, O2),
	opts []pure.Option,
) *pure.Memoized[result[O1, O2]] {
	return pure.MemoizeValue(func(args ...any) result[O1, O2] {
		v1, v2 := pureFn(args...)
		return result[O1, O2]{O1: v1, O2: v2}
	}, opts...)
}
