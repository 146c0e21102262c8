// Package gridgraph defines core types, moves, and sentinel errors for
// rectangular integer grids explored as implicit state graphs.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a point outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: point out of bounds")
	// ErrUnknownMove indicates a move name that is not part of the compass set.
	ErrUnknownMove = errors.New("gridgraph: unknown move")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 adds the diagonals: N, E, S, W, NE, SE, SW, NW.
	Conn8
)

// Point is a grid coordinate. X grows east, Y grows north.
type Point struct {
	X, Y int
}

// Add returns p displaced by m.
func (p Point) Add(m Move) Point {
	return Point{X: p.X + m.DX, Y: p.Y + m.DY}
}

// String renders p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Move is a named unit displacement.
type Move struct {
	Name   string
	DX, DY int
}

func (m Move) String() string { return m.Name }

// The compass move set. E = (+1, 0), N = (0, +1).
var (
	North = Move{Name: "N", DX: 0, DY: 1}
	East  = Move{Name: "E", DX: 1, DY: 0}
	South = Move{Name: "S", DX: 0, DY: -1}
	West  = Move{Name: "W", DX: -1, DY: 0}

	NorthEast = Move{Name: "NE", DX: 1, DY: 1}
	SouthEast = Move{Name: "SE", DX: 1, DY: -1}
	SouthWest = Move{Name: "SW", DX: -1, DY: -1}
	NorthWest = Move{Name: "NW", DX: -1, DY: 1}
)

var (
	orthogonal = []Move{North, East, South, West}
	all        = []Move{North, East, South, West, NorthEast, SouthEast, SouthWest, NorthWest}
)

// Moves returns the fixed, ordered move set for conn. The slice is a copy.
func Moves(conn Connectivity) []Move {
	src := orthogonal
	if conn == Conn8 {
		src = all
	}
	out := make([]Move, len(src))
	copy(out, src)

	return out
}

// ParseMove looks up a move by its compass name (e.g. "NE").
func ParseMove(name string) (Move, error) {
	for _, m := range all {
		if m.Name == name {
			return m, nil
		}
	}

	return Move{}, fmt.Errorf("%w: %q", ErrUnknownMove, name)
}

// Grid wraps a rectangular [][]int. It is immutable once built.
// Values[y][x] holds the input value at Point{x, y}.
type Grid struct {
	Width, Height int
	Values        [][]int
	Conn          Connectivity
}
