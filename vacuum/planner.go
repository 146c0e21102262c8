package vacuum

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvsearch/gridgraph"
	"github.com/katalvlaran/lvsearch/search"
)

// State is the planner's view of the agent. With turn cost disabled Facing is
// always Up so that location alone identifies a state.
type State struct {
	Loc    gridgraph.Point
	Facing Direction
}

// Planner is a search.Problem that moves the agent to the nearest dirty room.
//
// Actions are the moves UP, DOWN, LEFT, RIGHT into unblocked cells. Each step
// costs 1, plus TurnCost(facing, move) when turn cost is enabled. H is the
// Manhattan distance to the nearest dirty room, which never overestimates.
type Planner struct {
	search.Base[State, Direction]
	env      Environment
	turnCost bool
	dirt     []gridgraph.Point
}

var _ search.Problem[State, Direction] = (*Planner)(nil)

// NewPlanner snapshots the dirty rooms of env and starts at loc facing facing.
func NewPlanner(env Environment, loc gridgraph.Point, facing Direction, turnCost bool) *Planner {
	p := &Planner{env: env, turnCost: turnCost, dirt: env.DirtyRooms()}
	p.Base = search.NewBase[State, Direction](p.state(loc, facing))

	return p
}

func (p *Planner) state(loc gridgraph.Point, facing Direction) State {
	if !p.turnCost {
		facing = Up
	}
	return State{Loc: loc, Facing: facing}
}

// Actions lists the moves that do not run into a wall.
func (p *Planner) Actions(s State) []Direction {
	out := make([]Direction, 0, len(moveOrder))
	for _, d := range moveOrder {
		if !p.env.Blocked(d.Forward(s.Loc)) {
			out = append(out, d)
		}
	}

	return out
}

// Result moves one cell and faces the direction of travel.
func (p *Planner) Result(s State, a Direction) State {
	return p.state(a.Forward(s.Loc), a)
}

// GoalTest is true on any dirty room.
func (p *Planner) GoalTest(s State) bool { return p.env.Dirty(s.Loc) }

// PathCost adds one step, plus the turn penalty when enabled.
func (p *Planner) PathCost(c float64, s State, a Direction, _ State) float64 {
	c++
	if p.turnCost {
		c += TurnCost(s.Facing, a)
	}

	return c
}

// H is the Manhattan distance to the nearest dirty room, 0 if none remain.
func (p *Planner) H(n *search.Node[State, Direction]) float64 {
	return float64(minManhattan(n.State.Loc, p.dirt))
}

func minManhattan(from gridgraph.Point, targets []gridgraph.Point) int {
	best := -1
	for _, t := range targets {
		d := abs(from.X-t.X) + abs(from.Y-t.Y)
		if best < 0 || d < best {
			best = d
		}
	}
	return max(best, 0)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Options configures Plan and Clean.
type Options struct {
	// Algorithm defaults to breadth-first when empty.
	Algorithm search.Algorithm
	TurnCost  bool
	Logger    *slog.Logger
	// Search is passed through to every search run.
	Search []search.Option
}

func (o Options) normalize() Options {
	if o.Algorithm == "" {
		o.Algorithm = search.AlgBreadthFirst
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// Route is one planned trip to a dirty room.
type Route struct {
	Actions  []Direction
	Target   State
	Cost     float64
	Explored int
}

// Plan searches from loc/facing to the nearest dirty room of env.
// Returns ErrNoDirt when env is clean and ErrUnreachable when every dirty room
// is walled off. Search errors (budget, context) are returned unchanged.
func Plan(env Environment, loc gridgraph.Point, facing Direction, o Options) (Route, error) {
	o = o.normalize()
	if len(env.DirtyRooms()) == 0 {
		return Route{}, ErrNoDirt
	}
	p := NewPlanner(env, loc, facing, o.TurnCost)
	opts := append([]search.Option{search.WithLogger(o.Logger)}, o.Search...)
	res, err := search.Run[State, Direction](o.Algorithm, p, opts...)
	if err != nil {
		return Route{}, err
	}
	if !res.Found() {
		return Route{Explored: res.Explored.Len()}, fmt.Errorf("%w from %v", ErrUnreachable, loc)
	}

	return Route{
		Actions:  res.Solution(),
		Target:   res.Goal.State,
		Cost:     res.Cost(),
		Explored: res.Explored.Len(),
	}, nil
}

// SuckAction is the log entry for cleaning the current cell.
const SuckAction = "SUCK"

// Report summarises a Clean run.
type Report struct {
	// Actions holds move names and SuckAction in execution order.
	Actions []string
	Cleaned []gridgraph.Point
	// Remaining counts dirty rooms left unreachable.
	Remaining int
	Cost      float64
	// Performance is +100 per room cleaned and -1 per action.
	Performance int
}

// Clean drives the room's agent: plan to the nearest dirt, walk there, suck,
// repeat until no reachable dirt remains. The room is updated in place after
// every trip, so on a search error the agent stays where the last completed
// trip left it and the partial report describes the work done.
func Clean(room *Room, o Options) (Report, error) {
	o = o.normalize()
	loc, facing, ok := room.Agent()
	if !ok {
		return Report{}, ErrNoAgent
	}

	var (
		rep  Report
		fail error
	)
	for {
		route, err := Plan(room, loc, facing, o)
		if errors.Is(err, ErrNoDirt) || errors.Is(err, ErrUnreachable) {
			break
		}
		if err != nil {
			fail = err
			break
		}
		for _, d := range route.Actions {
			loc, facing = d.Forward(loc), d
			rep.Actions = append(rep.Actions, d.String())
		}
		room.Suck(loc)
		room.agent, room.facing = loc, facing
		rep.Actions = append(rep.Actions, SuckAction)
		rep.Cleaned = append(rep.Cleaned, loc)
		rep.Cost += route.Cost
		o.Logger.Debug("dirt cleaned",
			slog.String("at", loc.String()),
			slog.Int("steps", len(route.Actions)),
			slog.Int("explored", route.Explored),
		)
	}
	rep.Remaining = len(room.DirtyRooms())
	rep.Performance = 100*len(rep.Cleaned) - len(rep.Actions)

	return rep, fail
}
