package pure

import (
	"runtime"
	"sync"
	"sync/atomic"
	"unsafe"
	"weak"
)

// reclaimQueue collects object-branch entries whose key objects died.
// Cleanups run on the runtime's cleanup goroutine, so they only enqueue; the
// goroutine that owns the trie deletes the entries in drain.
type reclaimQueue[R any] struct {
	mu      sync.Mutex
	pending []reclaimTicket[R]
	dirty   atomic.Bool
}

type reclaimTicket[R any] struct {
	queue  *reclaimQueue[R]
	branch weak.Pointer[objectBranch[R]]
	key    objectKey
}

// watch schedules removal of key from branch once target is unreachable.
// The ticket holds nothing but weak pointers to the trie.
func (q *reclaimQueue[R]) watch(target unsafe.Pointer, key objectKey, branch weak.Pointer[objectBranch[R]]) {
	runtime.AddCleanup((*byte)(target), func(t reclaimTicket[R]) {
		t.queue.push(t)
	}, reclaimTicket[R]{queue: q, branch: branch, key: key})
}

func (q *reclaimQueue[R]) push(t reclaimTicket[R]) {
	q.mu.Lock()
	q.pending = append(q.pending, t)
	q.dirty.Store(true)
	q.mu.Unlock()
}

// drain deletes every pending entry and returns how many were still present
// in a live branch.
func (q *reclaimQueue[R]) drain() int {
	if !q.dirty.Load() {
		return 0
	}

	q.mu.Lock()
	pending := q.pending
	q.pending = nil
	q.dirty.Store(false)
	q.mu.Unlock()

	n := 0
	for _, t := range pending {
		branch := t.branch.Value()
		if branch == nil {
			continue
		}
		if _, ok := branch.entries[t.key]; ok {
			delete(branch.entries, t.key)
			n++
		}
	}
	return n
}
