package frontier

import "fmt"

// Queue is a FIFO frontier with O(1) membership by key.
//
// Popped slots at the head are released by re-slicing; the backing array is
// compacted once more than half of it is dead so long runs do not leak.
type Queue[K comparable, T any] struct {
	items []*entry[K, T]
	head  int
	index map[K]*entry[K, T]
}

// NewQueue returns an empty FIFO frontier.
func NewQueue[K comparable, T any](capacity int) *Queue[K, T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Queue[K, T]{
		items: make([]*entry[K, T], 0, capacity),
		index: make(map[K]*entry[K, T], capacity),
	}
}

// Push appends item at the tail. priority is ignored.
func (q *Queue[K, T]) Push(key K, item T, priority float64) error {
	if _, ok := q.index[key]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}
	e := &entry[K, T]{key: key, item: item, priority: priority}
	q.index[key] = e
	q.items = append(q.items, e)

	return nil
}

// Pop removes and returns the head item.
func (q *Queue[K, T]) Pop() (T, error) {
	if q.head >= len(q.items) {
		var zero T
		return zero, ErrEmptyFrontier
	}
	e := q.items[q.head]
	q.items[q.head] = nil
	q.head++
	delete(q.index, e.key)

	if q.head > len(q.items)/2 {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}

	return e.item, nil
}

// Contains reports whether key is resident.
func (q *Queue[K, T]) Contains(key K) bool {
	_, ok := q.index[key]
	return ok
}

// Get returns the resident item for key.
func (q *Queue[K, T]) Get(key K) (T, float64, bool) {
	e, ok := q.index[key]
	if !ok {
		var zero T
		return zero, 0, false
	}

	return e.item, e.priority, true
}

// Replace swaps the payload of a resident key without moving it.
func (q *Queue[K, T]) Replace(key K, item T, priority float64) error {
	e, ok := q.index[key]
	if !ok {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	e.item, e.priority = item, priority

	return nil
}

// Len returns the number of resident entries.
func (q *Queue[K, T]) Len() int { return len(q.items) - q.head }

// Stack is a LIFO frontier with O(1) membership by key.
type Stack[K comparable, T any] struct {
	items []*entry[K, T]
	index map[K]*entry[K, T]
}

// NewStack returns an empty LIFO frontier.
func NewStack[K comparable, T any](capacity int) *Stack[K, T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Stack[K, T]{
		items: make([]*entry[K, T], 0, capacity),
		index: make(map[K]*entry[K, T], capacity),
	}
}

// Push places item on top. priority is ignored.
func (s *Stack[K, T]) Push(key K, item T, priority float64) error {
	if _, ok := s.index[key]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}
	e := &entry[K, T]{key: key, item: item, priority: priority}
	s.index[key] = e
	s.items = append(s.items, e)

	return nil
}

// Pop removes and returns the most recently pushed item.
func (s *Stack[K, T]) Pop() (T, error) {
	n := len(s.items)
	if n == 0 {
		var zero T
		return zero, ErrEmptyFrontier
	}
	e := s.items[n-1]
	s.items[n-1] = nil
	s.items = s.items[:n-1]
	delete(s.index, e.key)

	return e.item, nil
}

// Contains reports whether key is resident.
func (s *Stack[K, T]) Contains(key K) bool {
	_, ok := s.index[key]
	return ok
}

// Get returns the resident item for key.
func (s *Stack[K, T]) Get(key K) (T, float64, bool) {
	e, ok := s.index[key]
	if !ok {
		var zero T
		return zero, 0, false
	}

	return e.item, e.priority, true
}

// Replace swaps the payload of a resident key without moving it.
func (s *Stack[K, T]) Replace(key K, item T, priority float64) error {
	e, ok := s.index[key]
	if !ok {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	e.item, e.priority = item, priority

	return nil
}

// Len returns the number of resident entries.
func (s *Stack[K, T]) Len() int { return len(s.items) }

// compile-time checks
var (
	_ Frontier[string, int] = (*Priority[string, int])(nil)
	_ Frontier[string, int] = (*Queue[string, int])(nil)
	_ Frontier[string, int] = (*Stack[string, int])(nil)
)
