package vacuum

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvsearch/gridgraph"
)

// Sentinel errors for the vacuum world.
var (
	ErrInvalidRoom      = errors.New("vacuum: invalid room")
	ErrUnknownDirection = errors.New("vacuum: unknown direction")
	ErrNoAgent          = errors.New("vacuum: room has no agent")
	ErrNoDirt           = errors.New("vacuum: no dirty rooms")
	ErrUnreachable      = errors.New("vacuum: no dirty room reachable")
)

// Environment is what the planner needs to know about the world.
// Implementations must not change while a plan is being computed.
type Environment interface {
	Width() int
	Height() int
	// Blocked reports walls and cells outside the world.
	Blocked(p gridgraph.Point) bool
	Dirty(p gridgraph.Point) bool
	DirtyRooms() []gridgraph.Point
}

// Room is a rectangular vacuum world whose perimeter is always wall.
type Room struct {
	width, height int
	walls         map[gridgraph.Point]bool
	dirt          map[gridgraph.Point]bool

	agent    gridgraph.Point
	facing   Direction
	hasAgent bool
}

var _ Environment = (*Room)(nil)

// NewRoom creates an empty width×height room walled on every side.
// Both sides must be at least 3 so that one free cell exists.
func NewRoom(width, height int) (*Room, error) {
	if width < 3 || height < 3 {
		return nil, fmt.Errorf("%w: %dx%d is smaller than 3x3", ErrInvalidRoom, width, height)
	}
	r := &Room{
		width:  width,
		height: height,
		walls:  make(map[gridgraph.Point]bool),
		dirt:   make(map[gridgraph.Point]bool),
	}
	for x := 0; x < width; x++ {
		r.walls[gridgraph.Point{X: x, Y: 0}] = true
		r.walls[gridgraph.Point{X: x, Y: height - 1}] = true
	}
	for y := 0; y < height; y++ {
		r.walls[gridgraph.Point{X: 0, Y: y}] = true
		r.walls[gridgraph.Point{X: width - 1, Y: y}] = true
	}

	return r, nil
}

// ParseRoom builds a Room from ASCII rows, top row first:
//
//	#  wall
//	*  dirt
//	.  floor (space is accepted too)
//	^ v < >  agent start and facing
//
// Perimeter cells become walls whatever they contain; an agent there is an error.
func ParseRoom(rows []string) (*Room, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidRoom)
	}
	r, err := NewRoom(len(rows[0]), len(rows))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != r.width {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrInvalidRoom, i, len(row), r.width)
		}
		y := r.height - 1 - i
		for x, ch := range []byte(row) {
			p := gridgraph.Point{X: x, Y: y}
			switch c := string(ch); {
			case c == "#":
				r.walls[p] = true
			case c == "*":
				if !r.walls[p] {
					r.dirt[p] = true
				}
			case c == "." || c == " ":
			case IsAgentLabel(c):
				d, _ := directionFromLabel(c)
				if err := r.PlaceAgent(p, d); err != nil {
					return nil, err
				}
			default:
				return nil, fmt.Errorf("%w: unexpected %q at row %d col %d", ErrInvalidRoom, c, i, x)
			}
		}
	}

	return r, nil
}

// Width returns the number of columns including walls.
func (r *Room) Width() int { return r.width }

// Height returns the number of rows including walls.
func (r *Room) Height() int { return r.height }

func (r *Room) inside(p gridgraph.Point) bool {
	return p.X >= 0 && p.X < r.width && p.Y >= 0 && p.Y < r.height
}

// Blocked reports whether p is a wall or outside the room.
func (r *Room) Blocked(p gridgraph.Point) bool {
	return !r.inside(p) || r.walls[p]
}

// Dirty reports whether p holds dirt.
func (r *Room) Dirty(p gridgraph.Point) bool { return r.dirt[p] }

// DirtyRooms lists dirty cells ordered by Y then X.
func (r *Room) DirtyRooms() []gridgraph.Point {
	out := make([]gridgraph.Point, 0, len(r.dirt))
	for p := range r.dirt {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b gridgraph.Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})

	return out
}

// AddWall blocks p. Dirt on p is discarded.
func (r *Room) AddWall(p gridgraph.Point) error {
	if !r.inside(p) {
		return fmt.Errorf("%w: wall %v outside %dx%d", ErrInvalidRoom, p, r.width, r.height)
	}
	if r.hasAgent && r.agent == p {
		return fmt.Errorf("%w: wall on agent at %v", ErrInvalidRoom, p)
	}
	r.walls[p] = true
	delete(r.dirt, p)

	return nil
}

// AddDirt soils p, which must be a free cell.
func (r *Room) AddDirt(p gridgraph.Point) error {
	if r.Blocked(p) {
		return fmt.Errorf("%w: dirt on blocked cell %v", ErrInvalidRoom, p)
	}
	r.dirt[p] = true

	return nil
}

// Suck removes the dirt at p and reports whether there was any.
func (r *Room) Suck(p gridgraph.Point) bool {
	if !r.dirt[p] {
		return false
	}
	delete(r.dirt, p)

	return true
}

// PlaceAgent puts the single agent on free cell p facing d.
func (r *Room) PlaceAgent(p gridgraph.Point, d Direction) error {
	if r.Blocked(p) {
		return fmt.Errorf("%w: agent on blocked cell %v", ErrInvalidRoom, p)
	}
	if r.hasAgent && r.agent != p {
		return fmt.Errorf("%w: second agent at %v", ErrInvalidRoom, p)
	}
	r.agent, r.facing, r.hasAgent = p, d, true

	return nil
}

// Agent returns the agent location and facing, and false if none was placed.
func (r *Room) Agent() (gridgraph.Point, Direction, bool) {
	return r.agent, r.facing, r.hasAgent
}
