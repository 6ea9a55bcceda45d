// Package purefn provides typed memoization front-ends for pure functions.
//
// Tableize is not just a utility to add memoization.
// Tableize is a tool that *forces the developer to ask*:
//
//	→ "Is this function really pure?"
//	→ "Can this computation be treated as a lazy table?"
//
// The Tableize family wraps functions of one to four arguments in a
// pure.Memoized trie and hands back a Table whose Call field has the same
// signature as the wrapped function:
//
//	area := purefn.TableizeI2O1(func(w, h float64) float64 { return w * h })
//	area.Call(2, 3) // computed
//	area.Call(2, 3) // cached
//	area.ClearCache()
//
// Features:
//   - TableizeI1O1 to TableizeI4O2: memoizers for one or two results.
//   - TableizeI1Err to TableizeI4Err: results are cached only when the error is nil.
//   - Reference arguments are matched by identity and held weakly.
//   - Other arguments must be comparable; anything else panics.
//
// WARNING: Do not use Tableize on impure functions (e.g., those depending on time, I/O, etc).
package purefn
