// Package pure memoizes pure functions of any arity.
//
// A memoized function keeps a trie with one level per argument. Reference
// arguments (pointers, maps, channels, slices) live in a branch keyed by
// identity through weak pointers, so the cache never keeps them alive; once
// such an argument is garbage collected its entry is dropped. All other
// arguments live in an ordinary map keyed by value, with floats compared by
// bit pattern so that NaN matches NaN and -0 does not match +0.
//
// Func arguments are the exception: Go cannot reference a static function
// weakly, so they are keyed by closure identity and held by the cache until
// ClearCache.
//
// Weak keys do not make the cache an ephemeron table. A cached result, or a
// comparable argument such as a struct with a pointer field, that references
// a key object keeps that object reachable, so its entry stays until
// ClearCache.
//
// Zero-size values share one address in Go. Pointers to them and non-nil
// slices with zero capacity are therefore one identity per type.
//
// Floats are compared by bit pattern only at the top level of an argument.
// A struct or array holding a NaN never equals itself, so each such call
// misses and adds another node that stays until ClearCache.
//
// Arguments that are neither reference types nor comparable panic.
//
//	area := pure.MemoizeValue(func(args ...any) float64 {
//	    r := args[0].(*Rect)
//	    return r.W * r.H
//	})
//	v, _ := area.Call(rect) // computed
//	v, _ = area.Call(rect)  // cached
//
// WARNING: only memoize functions whose result depends on nothing but their
// arguments.
package pure
