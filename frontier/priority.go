package frontier

import (
	"container/heap"
	"fmt"
)

// Priority is a min-priority frontier backed by an indexed binary heap.
//
// Entries are ordered by (priority, seq) ascending. An index map key → *entry
// gives O(1) membership and lets Replace locate the heap slot for heap.Fix,
// which is what makes decrease-key O(log n) without lazy deletion.
type Priority[K comparable, T any] struct {
	h     entryHeap[K, T]
	index map[K]*entry[K, T]
	seq   uint64
}

// NewPriority returns an empty Priority frontier.
// capacity is a sizing hint; zero is fine.
func NewPriority[K comparable, T any](capacity int) *Priority[K, T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Priority[K, T]{
		h:     make(entryHeap[K, T], 0, capacity),
		index: make(map[K]*entry[K, T], capacity),
	}
}

// Push inserts item with the given priority. O(log n).
func (p *Priority[K, T]) Push(key K, item T, priority float64) error {
	if _, ok := p.index[key]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}
	e := &entry[K, T]{key: key, item: item, priority: priority, seq: p.next()}
	p.index[key] = e
	heap.Push(&p.h, e)

	return nil
}

// Pop removes and returns the entry with the smallest (priority, seq). O(log n).
func (p *Priority[K, T]) Pop() (T, error) {
	if len(p.h) == 0 {
		var zero T
		return zero, ErrEmptyFrontier
	}
	e := heap.Pop(&p.h).(*entry[K, T])
	delete(p.index, e.key)

	return e.item, nil
}

// Peek returns the minimum entry without removing it. O(1).
func (p *Priority[K, T]) Peek() (T, float64, error) {
	if len(p.h) == 0 {
		var zero T
		return zero, 0, ErrEmptyFrontier
	}

	return p.h[0].item, p.h[0].priority, nil
}

// Contains reports whether key is resident. O(1).
func (p *Priority[K, T]) Contains(key K) bool {
	_, ok := p.index[key]
	return ok
}

// Get returns the resident item and its priority. O(1).
func (p *Priority[K, T]) Get(key K) (T, float64, bool) {
	e, ok := p.index[key]
	if !ok {
		var zero T
		return zero, 0, false
	}

	return e.item, e.priority, true
}

// Replace updates the payload and priority of a resident key in place and
// restores heap order. The entry takes a fresh sequence number. O(log n).
func (p *Priority[K, T]) Replace(key K, item T, priority float64) error {
	e, ok := p.index[key]
	if !ok {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	e.item = item
	e.priority = priority
	e.seq = p.next()
	heap.Fix(&p.h, e.index)

	return nil
}

// Len returns the number of resident entries.
func (p *Priority[K, T]) Len() int { return len(p.h) }

func (p *Priority[K, T]) next() uint64 {
	p.seq++
	return p.seq
}

// entryHeap implements heap.Interface over *entry, ordered by (priority, seq).
type entryHeap[K comparable, T any] []*entry[K, T]

func (h entryHeap[K, T]) Len() int { return len(h) }

// Less orders by priority, then by insertion sequence for a stable tie-break.
func (h entryHeap[K, T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

func (h entryHeap[K, T]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

// Push is called by heap.Push; x must be *entry.
func (h *entryHeap[K, T]) Push(x any) {
	e := x.(*entry[K, T])
	e.index = len(*h)
	*h = append(*h, e)
}

// Pop is called by heap.Pop.
func (h *entryHeap[K, T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]

	return e
}
