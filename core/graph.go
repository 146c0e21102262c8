package core

import (
	"fmt"
	"sort"
)

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// AddVertex inserts a vertex with the given ID if it is not already present.
// Returns ErrEmptyVertexID if id == "".
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(id)

	return nil
}

// ensureVertex registers id. Caller must hold g.mu for writing.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.adjacency[id]; ok {
		return
	}
	g.adjacency[id] = nil
	g.weights[id] = make(map[string]int)
	g.order = append(g.order, id)
}

// HasVertex reports whether the vertex exists.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// AddEdge connects from → to with the given weight, creating missing vertices.
// On an undirected graph the reverse edge is mirrored.
//
// Steps:
//  1. Validate IDs, weight and loop policy.
//  2. Reject a second edge between the same ordered endpoints.
//  3. Append to adjacency (and mirror when undirected).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	// 1) Validate
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if weight < 0 {
		return fmt.Errorf("%w: %s→%s weight %g", ErrNegativeWeight, from, to, weight)
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: %s", ErrLoopNotAllowed, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Duplicate check
	if _, dup := g.weights[from][to]; dup {
		return fmt.Errorf("%w: %s→%s", ErrMultiEdgeNotAllowed, from, to)
	}

	// 3) Insert
	g.ensureVertex(from)
	g.ensureVertex(to)
	g.link(from, to, weight)
	if !g.directed && from != to {
		g.link(to, from, weight)
	}

	return nil
}

// link appends one outgoing arc. Caller must hold g.mu for writing.
func (g *Graph) link(from, to string, weight float64) {
	g.weights[from][to] = len(g.adjacency[from])
	g.adjacency[from] = append(g.adjacency[from], Edge{From: from, To: to, Weight: weight})
}

// Neighbors returns the outgoing edges of id in insertion order.
// The returned slice is a copy.
// Returns ErrVertexNotFound for an unknown id.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	edges, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]Edge, len(edges))
	copy(out, edges)

	return out, nil
}

// Weight returns the weight of the edge from → to, and false if no such edge.
func (g *Graph) Weight(from, to string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	idx, ok := g.weights[from][to]
	if !ok {
		return 0, false
	}

	return g.adjacency[from][idx].Weight, true
}

// Vertices returns all vertex IDs sorted lexicographically.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := make([]string, len(g.order))
	copy(ids, g.order)
	g.mu.RUnlock()
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns the number of logical edges; a mirrored undirected pair
// counts once.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	arcs, loops := 0, 0
	for id, edges := range g.adjacency {
		arcs += len(edges)
		if _, ok := g.weights[id][id]; ok {
			loops++
		}
	}
	if g.directed {
		return arcs
	}

	return (arcs-loops)/2 + loops
}

// SetLocation records planar coordinates for id, creating it if missing.
func (g *Graph) SetLocation(id string, p Point) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(id)
	g.locations[id] = p

	return nil
}

// Location returns the coordinates of id, and false if none were set.
func (g *Graph) Location(id string) (Point, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	p, ok := g.locations[id]

	return p, ok
}
