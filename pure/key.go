package pure

import (
	"fmt"
	"math"
	"reflect"
	"unsafe"
	"weak"
)

type argKind uint8

const (
	primitiveArg argKind = iota
	objectArg
)

// argKey is the classified form of one call argument.
type argKey struct {
	kind      argKind
	primitive any
	object    objectKey
	// target is the key object of a weakly held argument. It is only kept
	// for the duration of a call.
	target unsafe.Pointer
}

// objectKey identifies a reference argument without owning it. Slices also
// record their length and capacity, so s and s[:1] are different keys.
type objectKey struct {
	typ reflect.Type
	ref weak.Pointer[byte]
	// pinned holds func values, which cannot be referenced weakly.
	pinned unsafe.Pointer
	len    int
	cap    int
}

// floatKey keys floats by bit pattern: -0 and +0 differ, every NaN is equal.
type floatKey struct {
	typ    reflect.Type
	re, im uint64
}

// nilKey stands in for nil values whose type is not comparable.
type nilKey struct {
	typ reflect.Type
}

var canonicalNaN = math.Float64bits(math.NaN())

func floatBits(f float64) uint64 {
	if f != f {
		return canonicalNaN
	}
	return math.Float64bits(f)
}

// keyOf classifies the argument at position pos.
func keyOf(pos int, arg any) argKey {
	if arg == nil {
		return argKey{kind: primitiveArg}
	}

	v := reflect.ValueOf(arg)
	t := v.Type()
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan:
		if v.IsNil() {
			return argKey{kind: primitiveArg, primitive: arg}
		}
		return weakKey(t, v.UnsafePointer(), 0, 0)
	case reflect.Slice:
		if v.IsNil() {
			return argKey{kind: primitiveArg, primitive: nilKey{typ: t}}
		}
		return weakKey(t, v.UnsafePointer(), v.Len(), v.Cap())
	case reflect.Func:
		if v.IsNil() {
			return argKey{kind: primitiveArg, primitive: nilKey{typ: t}}
		}
		return argKey{kind: objectArg, object: objectKey{typ: t, pinned: funcData(arg)}}
	case reflect.Float32, reflect.Float64:
		return argKey{kind: primitiveArg, primitive: floatKey{typ: t, re: floatBits(v.Float())}}
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		return argKey{kind: primitiveArg, primitive: floatKey{typ: t, re: floatBits(real(c)), im: floatBits(imag(c))}}
	}

	if v.Comparable() {
		return argKey{kind: primitiveArg, primitive: arg}
	}
	// A String() rendering cannot stand in for equality: distinct values may
	// print alike.
	panic(fmt.Sprintf("pure: argument %d of type %T is not comparable", pos, arg))
}

func weakKey(t reflect.Type, p unsafe.Pointer, n, c int) argKey {
	return argKey{
		kind:   objectArg,
		object: objectKey{typ: t, ref: weak.Make((*byte)(p)), len: n, cap: c},
		target: p,
	}
}

// funcData returns the closure pointer stored in the interface data word.
// Two func values share it only when they are the same closure.
func funcData(fn any) unsafe.Pointer {
	return (*[2]unsafe.Pointer)(unsafe.Pointer(&fn))[1]
}
