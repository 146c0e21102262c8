package vacuum

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsearch/gridgraph"
)

// Direction is the way the agent faces or moves. Values are ordered clockwise.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Rotation is a quarter turn.
type Rotation int

const (
	TurnLeft Rotation = iota
	TurnRight
)

// moveOrder is the order in which the planner offers moves.
var moveOrder = []Direction{Up, Down, Left, Right}

var (
	names  = [...]string{Up: "UP", Right: "RIGHT", Down: "DOWN", Left: "LEFT"}
	labels = [...]string{Up: "^", Right: ">", Down: "v", Left: "<"}
	deltas = [...]gridgraph.Move{Up: gridgraph.North, Right: gridgraph.East, Down: gridgraph.South, Left: gridgraph.West}
)

func (d Direction) valid() bool { return d >= Up && d <= Left }

// String returns the upper-case name, e.g. "UP".
func (d Direction) String() string {
	if !d.valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return names[d]
}

// Label is the one-character map glyph for an agent facing d.
func (d Direction) Label() string {
	if !d.valid() {
		return "?"
	}
	return labels[d]
}

// Turn rotates d by a quarter turn.
func (d Direction) Turn(r Rotation) Direction {
	if r == TurnRight {
		return (d + 1) % 4
	}
	return (d + 3) % 4
}

// Forward returns the cell one step ahead of p. Up is +y.
func (d Direction) Forward(p gridgraph.Point) gridgraph.Point {
	return p.Add(deltas[d])
}

// TurnCost is the extra cost of moving in to while facing from:
// 0 when unchanged, 1 for a reversal, 0.5 for a quarter turn.
func TurnCost(from, to Direction) float64 {
	switch {
	case from == to:
		return 0
	case (from+2)%4 == to:
		return 1
	default:
		return 0.5
	}
}

// IsAgentLabel reports whether s is one of the four agent glyphs.
func IsAgentLabel(s string) bool {
	_, ok := directionFromLabel(s)
	return ok
}

func directionFromLabel(s string) (Direction, bool) {
	for d, l := range labels {
		if l == s {
			return Direction(d), true
		}
	}
	return 0, false
}

// ParseDirection accepts a name ("up", "LEFT") or an agent label ("^").
func ParseDirection(s string) (Direction, error) {
	if d, ok := directionFromLabel(s); ok {
		return d, nil
	}
	upper := strings.ToUpper(strings.TrimSpace(s))
	for d, n := range names {
		if n == upper {
			return Direction(d), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}
