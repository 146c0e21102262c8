// Package peak implements hill climbing on an integer grid as a search problem.
//
// States are grid points, actions are compass moves whose target stays in
// bounds, and the goal is a local peak: a cell whose value is at least that of
// every in-bounds neighbour. An explicit goal point can replace the peak test.
package peak

import (
	"github.com/katalvlaran/lvsearch/gridgraph"
	"github.com/katalvlaran/lvsearch/search"
)

// PeakFindingProblem searches a gridgraph.Grid for a local peak.
type PeakFindingProblem struct {
	search.Base[gridgraph.Point, gridgraph.Move]
	grid *gridgraph.Grid
	top  int
}

var _ search.Problem[gridgraph.Point, gridgraph.Move] = (*PeakFindingProblem)(nil)

// New builds a problem starting at start. With a goal, GoalTest matches that
// point only; without one, any local peak is a goal.
// Returns gridgraph.ErrOutOfBounds when start or goal lies outside the grid.
func New(grid *gridgraph.Grid, start gridgraph.Point, goal ...gridgraph.Point) (*PeakFindingProblem, error) {
	for _, p := range append([]gridgraph.Point{start}, goal...) {
		if _, err := grid.Value(p); err != nil {
			return nil, err
		}
	}

	return &PeakFindingProblem{
		Base: search.NewBase[gridgraph.Point, gridgraph.Move](start, goal...),
		grid: grid,
		top:  grid.Max(),
	}, nil
}

// Grid returns the searched grid.
func (p *PeakFindingProblem) Grid() *gridgraph.Grid { return p.grid }

// Actions returns the in-bounds moves from s in fixed compass order.
func (p *PeakFindingProblem) Actions(s gridgraph.Point) []gridgraph.Move {
	return p.grid.Moves(s)
}

// Result applies the move's displacement.
func (p *PeakFindingProblem) Result(s gridgraph.Point, a gridgraph.Move) gridgraph.Point {
	return s.Add(a)
}

// Value returns the grid value at s.
func (p *PeakFindingProblem) Value(s gridgraph.Point) int {
	return p.grid.Values[s.Y][s.X]
}

// GoalTest matches the explicit goal when one was given, else any local peak.
func (p *PeakFindingProblem) GoalTest(s gridgraph.Point) bool {
	if len(p.Goals) > 0 {
		return p.Base.GoalTest(s)
	}
	v := p.Value(s)
	for _, n := range p.grid.Neighbors(s) {
		if p.Value(n) > v {
			return false
		}
	}

	return true
}

// H is the gap to the grid maximum. It is not admissible; it steers greedy
// search uphill.
func (p *PeakFindingProblem) H(n *search.Node[gridgraph.Point, gridgraph.Move]) float64 {
	return float64(p.top - p.Value(n.State))
}
