package pure

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Stats is a snapshot of the counters of a memoized function.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Errors    uint64
	Clears    uint64
	Reclaimed uint64
}

// Memoized wraps a function with an argument trie cache.
//
// A Memoized is not safe for concurrent use. ClearCache during a call
// leaves that call writing into the abandoned trie, where no later call
// will see the result.
type Memoized[R any] struct {
	fn       func(args ...any) (R, error)
	trie     *trie[R]
	id       uuid.UUID
	logger   *zap.Logger
	observer Observer
	stats    Stats
}

// Memoize returns fn wrapped in a cache keyed by its exact argument list.
//
// Pointers, maps, channels, slices and funcs are matched by identity; every
// other argument is matched by value. Only successful results are cached:
// an error or panic from fn reaches the caller and the next call with the
// same arguments runs fn again.
func Memoize[R any](fn func(args ...any) (R, error), opts ...Option) *Memoized[R] {
	if fn == nil {
		panic("pure: Memoize of nil function")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	id := uuid.New()
	m := &Memoized[R]{
		fn:       fn,
		trie:     newTrie[R](),
		id:       id,
		logger:   cfg.logger.With(zap.String("memo", cfg.name), zap.Stringer("memo_id", id)),
		observer: cfg.observer,
	}
	m.logger.Debug("created memoized function")
	return m
}

// MemoizeValue is Memoize for functions without an error result.
func MemoizeValue[R any](fn func(args ...any) R, opts ...Option) *Memoized[R] {
	if fn == nil {
		panic("pure: MemoizeValue of nil function")
	}
	return Memoize(func(args ...any) (R, error) {
		return fn(args...), nil
	}, opts...)
}

// Call returns the cached result for args, computing it on the first
// successful call.
func (m *Memoized[R]) Call(args ...any) (R, error) {
	m.Sweep()

	node := m.trie.traverse(args)
	if v, ok := node.result(); ok {
		m.stats.Hits++
		m.observer.Hit(len(args))
		return v, nil
	}

	m.stats.Misses++
	m.observer.Miss(len(args))
	v, err := m.fn(args...)
	if err != nil {
		m.stats.Errors++
		m.observer.Error(err)
		m.logger.Debug("call failed, result not cached", zap.Int("arity", len(args)), zap.Error(err))
		return v, err
	}
	node.terminate(v)
	return v, nil
}

// ClearCache drops every cached result.
func (m *Memoized[R]) ClearCache() {
	gen := m.trie.reset()
	m.stats.Clears++
	m.observer.Cleared(gen)
	m.logger.Debug("cleared cache", zap.Uint64("generation", gen))
}

// Sweep removes entries whose key objects have been garbage collected and
// returns how many were removed. Call runs it first, so it only needs to be
// called directly to release memory of an idle memoized function.
func (m *Memoized[R]) Sweep() int {
	n := m.trie.sweep()
	if n > 0 {
		m.stats.Reclaimed += uint64(n)
		m.observer.Reclaimed(n)
		m.logger.Debug("reclaimed object entries", zap.Int("count", n))
	}
	return n
}

// Stats returns the current counters.
func (m *Memoized[R]) Stats() Stats {
	return m.stats
}

// ID identifies m in logs and metrics.
func (m *Memoized[R]) ID() uuid.UUID {
	return m.id
}
