package gridgraph

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvsearch/core"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGrid(values [][]int, conn Connectivity) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	return &Grid{Width: w, Height: h, Values: cells, Conn: conn}, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Value returns the value at p, or ErrOutOfBounds.
func (g *Grid) Value(p Point) (int, error) {
	if !g.InBounds(p) {
		return 0, fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, p, g.Width, g.Height)
	}

	return g.Values[p.Y][p.X], nil
}

// Max returns the largest value in the grid.
func (g *Grid) Max() int {
	best := g.Values[0][0]
	for _, row := range g.Values {
		for _, v := range row {
			best = max(best, v)
		}
	}

	return best
}

// Moves returns the in-bounds moves from p in fixed order.
// Complexity: O(d), d = 4 or 8.
func (g *Grid) Moves(p Point) []Move {
	var out []Move
	for _, m := range Moves(g.Conn) {
		if g.InBounds(p.Add(m)) {
			out = append(out, m)
		}
	}

	return out
}

// Neighbors returns the in-bounds points adjacent to p, in move order.
func (g *Grid) Neighbors(p Point) []Point {
	moves := g.Moves(p)
	out := make([]Point, len(moves))
	for i, m := range moves {
		out[i] = p.Add(m)
	}

	return out
}

// VertexID formats the vertex identifier for p used by ToGraph: "x,y".
func VertexID(p Point) string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

// ToGraph converts the cells with value ≥ threshold into a weighted,
// undirected *core.Graph. Each kept cell becomes vertex "x,y" located at
// (x, y). Edges connect kept neighbours under g.Conn, weighted by the
// straight-line step length (1 or √2). Each neighbour pair is added once;
// any graph error is returned wrapped with the offending cells.
// Complexity: O(W×H×d) time, O(W×H + E) memory.
func (g *Grid) ToGraph(threshold int) (*core.Graph, error) {
	out := core.NewGraph()
	passable := func(p Point) bool { return g.Values[p.Y][p.X] >= threshold }

	// Add all vertices in row-major order so adjacency order is reproducible
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := Point{X: x, Y: y}
			if !passable(p) {
				continue
			}
			if err := out.SetLocation(VertexID(p), core.Point{X: float64(x), Y: float64(y)}); err != nil {
				return nil, fmt.Errorf("gridgraph: cell %v: %w", p, err)
			}
		}
	}
	// Add edges for each neighbour pair, skipping the mirror of an earlier edge
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := Point{X: x, Y: y}
			if !passable(p) {
				continue
			}
			for _, m := range g.Moves(p) {
				q := p.Add(m)
				if !passable(q) {
					continue
				}
				from, to := VertexID(p), VertexID(q)
				if _, seen := out.Weight(from, to); seen {
					continue
				}
				w := 1.0
				if m.DX != 0 && m.DY != 0 {
					w = sqrt2
				}
				if err := out.AddEdge(from, to, w); err != nil {
					return nil, fmt.Errorf("gridgraph: edge %v→%v: %w", p, q, err)
				}
			}
		}
	}

	return out, nil
}

const sqrt2 = 1.4142135623730951
