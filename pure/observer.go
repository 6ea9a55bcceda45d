package pure

// Observer receives cache events of a memoized function.
//
// Contract:
// - Calls arrive on the goroutine that calls the memoized function.
// - Implementations must not call back into the memoized function.
type Observer interface {
	// Hit is called when a call is answered from the cache.
	Hit(arity int)
	// Miss is called before the wrapped function is invoked.
	Miss(arity int)
	// Error is called when the wrapped function returned an error.
	Error(err error)
	// Cleared is called after the trie has been replaced.
	Cleared(generation uint64)
	// Reclaimed is called with the number of object-branch entries dropped
	// because their key objects were garbage collected.
	Reclaimed(n int)
}

type nopObserver struct{}

func (nopObserver) Hit(int) {}
func (nopObserver) Miss(int) {}
func (nopObserver) Error(error) {}
func (nopObserver) Cleared(uint64) {}
func (nopObserver) Reclaimed(int) {}
