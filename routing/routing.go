// Package routing adapts an explicit weighted graph to the search.Problem
// contract: states are vertex IDs and an action names the neighbour to move to.
package routing

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
)

// ErrVertexNotFound indicates the start or goal is not a vertex of the graph.
var ErrVertexNotFound = errors.New("routing: vertex not found")

// GraphProblem is a route-finding problem over a *core.Graph.
//
// Actions(s) are the neighbour IDs of s in insertion order; Result(s, a) = a;
// PathCost adds the edge weight. H is the Euclidean distance from the node's
// location to the goal's location, 0 when either is missing. It is admissible
// only if every edge weight is at least the straight-line distance.
type GraphProblem struct {
	search.Base[string, string]
	graph *core.Graph
}

var _ search.Problem[string, string] = (*GraphProblem)(nil)

// NewGraphProblem validates that start and goal exist in g.
func NewGraphProblem(g *core.Graph, start, goal string) (*GraphProblem, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil graph", ErrVertexNotFound)
	}
	for _, id := range []string{start, goal} {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
		}
	}

	return &GraphProblem{Base: search.NewBase[string, string](start, goal), graph: g}, nil
}

// Graph returns the underlying graph.
func (p *GraphProblem) Graph() *core.Graph { return p.graph }

// Actions lists neighbours of s in insertion order.
func (p *GraphProblem) Actions(s string) []string {
	edges, err := p.graph.Neighbors(s)
	if err != nil {
		return nil
	}
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.To
	}

	return out
}

// Result follows the edge: the action is the destination.
func (p *GraphProblem) Result(_ string, a string) string { return a }

// PathCost adds the weight of the s → next edge. A missing edge panics: the
// action did not come from Actions.
func (p *GraphProblem) PathCost(c float64, s string, _ string, next string) float64 {
	w, ok := p.graph.Weight(s, next)
	if !ok {
		panic(fmt.Sprintf("routing: no edge %s→%s", s, next))
	}

	return c + w
}

// H is the straight-line distance to the goal, or 0 without locations.
func (p *GraphProblem) H(n *search.Node[string, string]) float64 {
	goal, _ := p.Goal()
	from, ok := p.graph.Location(n.State)
	if !ok {
		return 0
	}
	to, ok := p.graph.Location(goal)
	if !ok {
		return 0
	}

	return floats.Distance([]float64{from.X, from.Y}, []float64{to.X, to.Y}, 2)
}
