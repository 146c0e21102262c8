package frontier

import "errors"

// Sentinel errors returned by frontier operations.
var (
	// ErrEmptyFrontier indicates Pop or Peek was called on an empty frontier.
	ErrEmptyFrontier = errors.New("frontier: frontier is empty")

	// ErrKeyNotFound indicates Replace referenced a key that is not resident.
	ErrKeyNotFound = errors.New("frontier: key not found")

	// ErrDuplicateKey indicates Push was called with a key that is already resident.
	// Use Replace to change an existing entry.
	ErrDuplicateKey = errors.New("frontier: key already present")
)

// Frontier is the contract shared by Priority, Queue and Stack.
//
// K identifies an entry (two entries with the same K are the same search state),
// T is the payload (usually a *search.Node). The priority argument of Push and
// Replace is only meaningful for Priority; Queue and Stack ignore it and order
// purely by insertion.
type Frontier[K comparable, T any] interface {
	// Push inserts item under key. Returns ErrDuplicateKey if key is resident.
	Push(key K, item T, priority float64) error

	// Pop removes and returns the next item according to the discipline.
	Pop() (T, error)

	// Contains reports whether key is resident.
	Contains(key K) bool

	// Get returns the resident item and its priority for key.
	Get(key K) (T, float64, bool)

	// Replace swaps the payload and priority of a resident key.
	Replace(key K, item T, priority float64) error

	// Len returns the number of resident entries.
	Len() int
}

// entry is a single frontier slot.
type entry[K comparable, T any] struct {
	key      K
	item     T
	priority float64
	seq      uint64 // insertion counter, breaks priority ties
	index    int    // heap position, maintained by Swap; -1 once popped
}
