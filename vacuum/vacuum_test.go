package vacuum_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/gridgraph"
	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/vacuum"
)

func pt(x, y int) gridgraph.Point { return gridgraph.Point{X: x, Y: y} }

//----------------------------------------------------------------------------//
// Direction
//----------------------------------------------------------------------------//

func TestDirection_Labels(t *testing.T) {
	assert.Equal(t, "^", vacuum.Up.Label())
	assert.Equal(t, "v", vacuum.Down.Label())
	assert.Equal(t, "<", vacuum.Left.Label())
	assert.Equal(t, ">", vacuum.Right.Label())

	for _, l := range []string{"^", "v", "<", ">"} {
		assert.True(t, vacuum.IsAgentLabel(l), l)
	}
	assert.False(t, vacuum.IsAgentLabel("X"))
	assert.False(t, vacuum.IsAgentLabel(""))
}

func TestDirection_TurnAndForward(t *testing.T) {
	assert.Equal(t, vacuum.Up, vacuum.Right.Turn(vacuum.TurnLeft))
	assert.Equal(t, vacuum.Down, vacuum.Right.Turn(vacuum.TurnRight))
	assert.Equal(t, vacuum.Left, vacuum.Up.Turn(vacuum.TurnLeft))
	assert.Equal(t, pt(2, 3), vacuum.Up.Forward(pt(2, 2)))
	assert.Equal(t, pt(2, 1), vacuum.Right.Forward(pt(1, 1)))
}

func TestTurnCost(t *testing.T) {
	assert.Equal(t, 0.0, vacuum.TurnCost(vacuum.Up, vacuum.Up))
	assert.Equal(t, 1.0, vacuum.TurnCost(vacuum.Up, vacuum.Down))
	assert.Equal(t, 0.5, vacuum.TurnCost(vacuum.Up, vacuum.Left))
	assert.Equal(t, 0.5, vacuum.TurnCost(vacuum.Left, vacuum.Up))
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]vacuum.Direction{"up": vacuum.Up, " LEFT": vacuum.Left, "v": vacuum.Down, ">": vacuum.Right} {
		got, err := vacuum.ParseDirection(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := vacuum.ParseDirection("north")
	require.ErrorIs(t, err, vacuum.ErrUnknownDirection)
}

//----------------------------------------------------------------------------//
// Room
//----------------------------------------------------------------------------//

func TestNewRoom_PerimeterWalls(t *testing.T) {
	r, err := vacuum.NewRoom(5, 5)
	require.NoError(t, err)
	assert.True(t, r.Blocked(pt(0, 2)))
	assert.True(t, r.Blocked(pt(4, 4)))
	assert.True(t, r.Blocked(pt(5, 1)))
	assert.False(t, r.Blocked(pt(2, 2)))

	_, err = vacuum.NewRoom(2, 5)
	require.ErrorIs(t, err, vacuum.ErrInvalidRoom)
}

func TestRoom_Suck(t *testing.T) {
	r, err := vacuum.NewRoom(5, 5)
	require.NoError(t, err)
	require.NoError(t, r.AddDirt(pt(2, 2)))
	require.ErrorIs(t, r.AddDirt(pt(0, 0)), vacuum.ErrInvalidRoom)

	assert.True(t, r.Dirty(pt(2, 2)))
	assert.True(t, r.Suck(pt(2, 2)))
	assert.False(t, r.Dirty(pt(2, 2)))
	assert.False(t, r.Suck(pt(2, 2)))
}

// TestParseRoom: top row is the highest y; borders are forced to wall.
func TestParseRoom(t *testing.T) {
	r, err := vacuum.ParseRoom([]string{
		".....",
		".>.*.",
		".*#..",
		".....",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, r.Width())
	assert.Equal(t, 4, r.Height())

	loc, facing, ok := r.Agent()
	require.True(t, ok)
	assert.Equal(t, pt(1, 2), loc)
	assert.Equal(t, vacuum.Right, facing)
	assert.Equal(t, []gridgraph.Point{pt(1, 1), pt(3, 2)}, r.DirtyRooms())
	assert.True(t, r.Blocked(pt(2, 1)))
	assert.True(t, r.Blocked(pt(0, 0)))
}

func TestParseRoom_Errors(t *testing.T) {
	cases := map[string][]string{
		"Empty":         nil,
		"Ragged":        {"#####", "#..#", "#####"},
		"UnknownGlyph":  {"#####", "#.x.#", "#####"},
		"TwoAgents":     {"#####", "#>.<#", "#####"},
		"AgentOnBorder": {"#^###", "#...#", "#####"},
		"TooSmall":      {"##", "##"},
	}
	for name, rows := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := vacuum.ParseRoom(rows)
			require.ErrorIs(t, err, vacuum.ErrInvalidRoom)
		})
	}
}

//----------------------------------------------------------------------------//
// Planner
//----------------------------------------------------------------------------//

func TestPlanner_Result(t *testing.T) {
	r, err := vacuum.NewRoom(5, 5)
	require.NoError(t, err)
	p := vacuum.NewPlanner(r, pt(1, 1), vacuum.Right, false)

	s := p.Initial()
	assert.Equal(t, vacuum.Up, s.Facing, "facing collapses without turn cost")
	assert.Equal(t, pt(1, 2), p.Result(s, vacuum.Up).Loc)
	assert.Equal(t, pt(1, 0), p.Result(s, vacuum.Down).Loc)
	assert.Equal(t, pt(0, 1), p.Result(s, vacuum.Left).Loc)
	assert.Equal(t, pt(2, 1), p.Result(s, vacuum.Right).Loc)

	// corner cell: walls below and left
	assert.Equal(t, []vacuum.Direction{vacuum.Up, vacuum.Right}, p.Actions(s))
}

func TestPlanner_GoalAndHeuristic(t *testing.T) {
	r, err := vacuum.NewRoom(5, 5)
	require.NoError(t, err)
	require.NoError(t, r.AddDirt(pt(1, 2)))
	require.NoError(t, r.AddDirt(pt(3, 3)))
	p := vacuum.NewPlanner(r, pt(1, 1), vacuum.Up, true)

	assert.True(t, p.GoalTest(vacuum.State{Loc: pt(1, 2)}))
	assert.False(t, p.GoalTest(vacuum.State{Loc: pt(2, 2)}))
	assert.Equal(t, 3.0, p.H(&search.Node[vacuum.State, vacuum.Direction]{State: vacuum.State{Loc: pt(0, 0)}}))
	assert.Equal(t, 1.0, p.H(&search.Node[vacuum.State, vacuum.Direction]{State: vacuum.State{Loc: pt(2, 2)}}))

	s := vacuum.State{Loc: pt(2, 2), Facing: vacuum.Up}
	assert.Equal(t, 1.0, p.PathCost(0, s, vacuum.Up, p.Result(s, vacuum.Up)))
	assert.Equal(t, 1.5, p.PathCost(0, s, vacuum.Left, p.Result(s, vacuum.Left)))
	assert.Equal(t, 2.0, p.PathCost(0, s, vacuum.Down, p.Result(s, vacuum.Down)))
	assert.Equal(t, vacuum.Left, p.Result(s, vacuum.Left).Facing)
}

// TestPlan_TurnCost: with turn cost the straight run comes first.
//
//	#####
//	#...#
//	#..*#   dirt (3,2)
//	#>..#   agent (1,1) facing right
//	#####
func TestPlan_TurnCost(t *testing.T) {
	r, err := vacuum.ParseRoom([]string{
		"#####",
		"#...#",
		"#..*#",
		"#>..#",
		"#####",
	})
	require.NoError(t, err)
	loc, facing, _ := r.Agent()

	for _, alg := range []search.Algorithm{search.AlgUniformCost, search.AlgAStar} {
		route, err := vacuum.Plan(r, loc, facing, vacuum.Options{Algorithm: alg, TurnCost: true})
		require.NoError(t, err, alg)
		assert.Equal(t, []vacuum.Direction{vacuum.Right, vacuum.Right, vacuum.Up}, route.Actions, alg)
		assert.Equal(t, 3.5, route.Cost, alg)
		assert.Equal(t, pt(3, 2), route.Target.Loc, alg)
	}

	route, err := vacuum.Plan(r, loc, facing, vacuum.Options{})
	require.NoError(t, err)
	assert.Len(t, route.Actions, 3)
	assert.Equal(t, 3.0, route.Cost)
}

func TestPlan_Errors(t *testing.T) {
	r, err := vacuum.ParseRoom([]string{
		"#######",
		"#>.#*.#",
		"#######",
	})
	require.NoError(t, err)
	_, err = vacuum.Plan(r, pt(1, 1), vacuum.Right, vacuum.Options{})
	require.ErrorIs(t, err, vacuum.ErrUnreachable)

	r.Suck(pt(4, 1))
	_, err = vacuum.Plan(r, pt(1, 1), vacuum.Right, vacuum.Options{})
	require.ErrorIs(t, err, vacuum.ErrNoDirt)

	require.NoError(t, r.AddDirt(pt(2, 1)))
	_, err = vacuum.Plan(r, pt(1, 1), vacuum.Right, vacuum.Options{Algorithm: "beam"})
	require.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

//----------------------------------------------------------------------------//
// Clean
//----------------------------------------------------------------------------//

func TestClean(t *testing.T) {
	r, err := vacuum.ParseRoom([]string{
		"#####",
		"#>.*#",
		"#*..#",
		"#####",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	rep, err := vacuum.Clean(r, vacuum.Options{Algorithm: search.AlgUniformCost, Logger: logger})
	require.NoError(t, err)

	// nearest first: (1,1) one step down, then (3,2) three steps away
	assert.Equal(t, []gridgraph.Point{pt(1, 1), pt(3, 2)}, rep.Cleaned)
	assert.Equal(t, []string{"DOWN", vacuum.SuckAction}, rep.Actions[:2])
	assert.Len(t, rep.Actions, 6)
	assert.Equal(t, vacuum.SuckAction, rep.Actions[5])
	assert.Equal(t, 4.0, rep.Cost)
	assert.Equal(t, 194, rep.Performance)
	assert.Zero(t, rep.Remaining)
	assert.Empty(t, r.DirtyRooms())

	loc, _, _ := r.Agent()
	assert.Equal(t, pt(3, 2), loc)
	assert.Equal(t, 2, strings.Count(buf.String(), "dirt cleaned"))
}

func TestClean_UnreachableAndStartDirty(t *testing.T) {
	r, err := vacuum.ParseRoom([]string{
		"#######",
		"#>.#*.#",
		"#######",
	})
	require.NoError(t, err)
	require.NoError(t, r.AddDirt(pt(1, 1)))

	rep, err := vacuum.Clean(r, vacuum.Options{Algorithm: search.AlgAStar, TurnCost: true})
	require.NoError(t, err)
	assert.Equal(t, []string{vacuum.SuckAction}, rep.Actions)
	assert.Equal(t, 1, rep.Remaining)
	assert.Equal(t, 99, rep.Performance)

	empty, err := vacuum.NewRoom(3, 3)
	require.NoError(t, err)
	_, err = vacuum.Clean(empty, vacuum.Options{})
	require.ErrorIs(t, err, vacuum.ErrNoAgent)
}

func TestClean_ExpansionBudget(t *testing.T) {
	r, err := vacuum.ParseRoom([]string{
		"#########",
		"#>......#",
		"#......*#",
		"#########",
	})
	require.NoError(t, err)
	_, err = vacuum.Clean(r, vacuum.Options{Search: []search.Option{search.WithMaxExpansions(2)}})
	require.ErrorIs(t, err, search.ErrExpansionLimit)
}

// TestClean_ErrorKeepsProgress: the first trip fits the budget, the second
// does not; the room and report reflect the completed trip.
func TestClean_ErrorKeepsProgress(t *testing.T) {
	r, err := vacuum.ParseRoom([]string{
		"#########",
		"#>*.....#",
		"#......*#",
		"#########",
	})
	require.NoError(t, err)

	rep, err := vacuum.Clean(r, vacuum.Options{Search: []search.Option{search.WithMaxExpansions(3)}})
	require.ErrorIs(t, err, search.ErrExpansionLimit)
	assert.Equal(t, []gridgraph.Point{pt(2, 2)}, rep.Cleaned)
	assert.Equal(t, []string{"RIGHT", vacuum.SuckAction}, rep.Actions)
	assert.Equal(t, 1, rep.Remaining)
	assert.Equal(t, 98, rep.Performance)

	loc, facing, ok := r.Agent()
	require.True(t, ok)
	assert.Equal(t, pt(2, 2), loc)
	assert.Equal(t, vacuum.Right, facing)
	assert.Equal(t, []gridgraph.Point{pt(7, 1)}, r.DirtyRooms())
}
