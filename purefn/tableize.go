package purefn

import (
	"github.com/on-the-ground/weakmemo/pure"
	"github.com/on-the-ground/weakmemo/shared/helper"
)

func TableizeI1O1[I1, O1 any](
	pureFn func(I1) O1,
	opts ...pure.Option,
) Table[func(I1) O1] {
	m := pure.MemoizeValue(func(args ...any) O1 {
		return pureFn(helper.MustArg[I1](args, 0))
	}, opts...)
	return newTable(m, func(i1 I1) O1 {
		return mustCall(m, i1)
	})
}

func TableizeI2O1[I1, I2, O1 any](
	pureFn func(I1, I2) O1,
	opts ...pure.Option,
) Table[func(I1, I2) O1] {
	m := pure.MemoizeValue(func(args ...any) O1 {
		return pureFn(helper.MustArg[I1](args, 0), helper.MustArg[I2](args, 1))
	}, opts...)
	return newTable(m, func(i1 I1, i2 I2) O1 {
		return mustCall(m, i1, i2)
	})
}

func TableizeI3O1[I1, I2, I3, O1 any](
	pureFn func(I1, I2, I3) O1,
	opts ...pure.Option,
) Table[func(I1, I2, I3) O1] {
	m := pure.MemoizeValue(func(args ...any) O1 {
		return pureFn(
			helper.MustArg[I1](args, 0),
			helper.MustArg[I2](args, 1),
			helper.MustArg[I3](args, 2),
		)
	}, opts...)
	return newTable(m, func(i1 I1, i2 I2, i3 I3) O1 {
		return mustCall(m, i1, i2, i3)
	})
}

func TableizeI4O1[I1, I2, I3, I4, O1 any](
	pureFn func(I1, I2, I3, I4) O1,
	opts ...pure.Option,
) Table[func(I1, I2, I3, I4) O1] {
	m := pure.MemoizeValue(func(args ...any) O1 {
		return pureFn(
			helper.MustArg[I1](args, 0),
			helper.MustArg[I2](args, 1),
			helper.MustArg[I3](args, 2),
			helper.MustArg[I4](args, 3),
		)
	}, opts...)
	return newTable(m, func(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
		return mustCall(m, i1, i2, i3, i4)
	})
}
