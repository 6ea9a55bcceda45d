package pure

// trie is the argument trie of one memoized function. Each level consumes one
// argument; the node reached after the last argument is the memo slot.
type trie[R any] struct {
	root       *cacheNode[R]
	reclaim    *reclaimQueue[R]
	generation uint64
}

func newTrie[R any]() *trie[R] {
	return &trie[R]{
		root:    newCacheNode[R](),
		reclaim: &reclaimQueue[R]{},
	}
}

// traverse walks args from the root, creating missing nodes on the way.
// With no args the root itself is the slot.
func (t *trie[R]) traverse(args []any) *cacheNode[R] {
	node := t.root
	for i, arg := range args {
		node = node.child(keyOf(i, arg), t.reclaim)
	}
	return node
}

// reset abandons the current root. Nodes held by in-flight calls stay valid
// but are no longer reachable from the trie.
func (t *trie[R]) reset() uint64 {
	t.root = newCacheNode[R]()
	t.generation++
	return t.generation
}

func (t *trie[R]) sweep() int {
	return t.reclaim.drain()
}
