package pure

import "weak"

// status tells whether a cacheNode holds a completed result.
type status uint8

const (
	// unterminated nodes have been reached but never completed a call.
	unterminated status = iota
	// terminated nodes hold the result of a successful call.
	terminated
)

// cacheNode is one point in the argument trie. The path from the root to a
// node is the argument prefix that reached it.
type cacheNode[R any] struct {
	status status
	value  R

	// objects is keyed by argument identity and held weakly.
	objects *objectBranch[R]
	// primitives is keyed by argument value and owns its keys.
	primitives map[any]*cacheNode[R]
}

func newCacheNode[R any]() *cacheNode[R] {
	return &cacheNode[R]{status: unterminated}
}

// terminate stores a successful result in place.
func (n *cacheNode[R]) terminate(v R) {
	n.status = terminated
	n.value = v
}

func (n *cacheNode[R]) result() (R, bool) {
	if n.status != terminated {
		var zero R
		return zero, false
	}
	return n.value, true
}

// objectBranch is a separate allocation so reclamation cleanups can refer to
// it through a weak pointer.
type objectBranch[R any] struct {
	entries map[objectKey]*cacheNode[R]
}

// child descends from n along key, creating the child node when absent.
func (n *cacheNode[R]) child(key argKey, q *reclaimQueue[R]) *cacheNode[R] {
	if key.kind == objectArg {
		return n.objectChild(key, q)
	}
	if n.primitives == nil {
		n.primitives = make(map[any]*cacheNode[R])
	}
	next, ok := n.primitives[key.primitive]
	if !ok {
		next = newCacheNode[R]()
		n.primitives[key.primitive] = next
	}
	return next
}

func (n *cacheNode[R]) objectChild(key argKey, q *reclaimQueue[R]) *cacheNode[R] {
	if n.objects == nil {
		n.objects = &objectBranch[R]{entries: make(map[objectKey]*cacheNode[R])}
	}
	next, ok := n.objects.entries[key.object]
	if !ok {
		next = newCacheNode[R]()
		n.objects.entries[key.object] = next
		if key.target != nil {
			q.watch(key.target, key.object, weak.Make(n.objects))
		}
	}
	return next
}
