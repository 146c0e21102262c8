// Package core defines the weighted Graph that backs explicit state spaces,
// and provides thread-safe primitives for building and querying it.
//
// This file declares Edge, Point, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrNegativeWeight      - edge weight below zero.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - second edge between the same ordered endpoints.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNegativeWeight indicates an edge weight below zero. Search costs must
	// be non-negative for uniform-cost and A* optimality.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge between the same endpoints.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is one traversable connection as seen from its From vertex.
// Undirected edges appear twice in adjacency, once per direction.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// Point is a planar vertex location, used by straight-line heuristics.
type Point struct {
	X, Y float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether new edges are one-way (true) or mirrored (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is a weighted adjacency mapping vertex → ordered outgoing edges.
//
// Outgoing edges are kept in insertion order because search algorithms use
// that order to break ties. mu guards every field below it.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	directed   bool // edges are one-way
	allowLoops bool // allow self-loops

	// Storage
	order     []string                  // vertex IDs in insertion order
	adjacency map[string][]Edge         // from → outgoing edges, insertion order
	weights   map[string]map[string]int // from → to → index into adjacency[from]
	locations map[string]Point          // optional planar coordinates
}

// NewGraph creates an empty Graph. By default it is undirected without loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[string][]Edge),
		weights:   make(map[string]map[string]int),
		locations: make(map[string]Point),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
