package purefn

import "github.com/on-the-ground/weakmemo/pure"

// Table is a memoized function of type F.
type Table[F any] struct {
	// Call has the signature of the wrapped function.
	Call F
	// ClearCache drops every cached result.
	ClearCache func()
	// Stats reports hit and miss counters.
	Stats func() pure.Stats
}

func newTable[F, R any](m *pure.Memoized[R], call F) Table[F] {
	return Table[F]{
		Call:       call,
		ClearCache: m.ClearCache,
		Stats:      m.Stats,
	}
}

// mustCall is Call for memoized functions that cannot return an error.
func mustCall[R any](m *pure.Memoized[R], args ...any) R {
	v, _ := m.Call(args...)
	return v
}
