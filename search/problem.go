package search

import "slices"

// Problem is the contract a domain satisfies to be searched.
//
// S is the state type. It must be comparable because states key the explored set
// and the frontier index; states are treated as immutable values.
// A is the action type.
type Problem[S comparable, A any] interface {
	// Initial returns the start state.
	Initial() S

	// Actions lists the legal actions from s. The slice must be finite, and its
	// order becomes the tie-break order for equal-priority exploration.
	Actions(s S) []A

	// Result applies a to s and returns the successor. It must not mutate s.
	Result(s S, a A) S

	// GoalTest reports whether s is an accepted goal.
	GoalTest(s S) bool

	// PathCost returns the cost of reaching next from s via a, given the cost c
	// of reaching s. Increments must be non-negative for UniformCost and AStar
	// to be optimal.
	PathCost(c float64, s S, a A, next S) float64

	// H estimates the remaining cost from n to the nearest goal (≥ 0).
	H(n *Node[S, A]) float64
}

// Base supplies the defaulted half of Problem. Embed it and implement Actions and
// Result; override GoalTest, PathCost or H as the domain requires.
//
// Defaults:
//   - GoalTest: membership in Goals (one element for a single goal state).
//   - PathCost: c + 1.
//   - H:        0, which reduces AStar to UniformCost.
type Base[S comparable, A any] struct {
	InitialState S
	Goals        []S
}

// NewBase returns a Base with the given initial state and accepted goals.
func NewBase[S comparable, A any](initial S, goals ...S) Base[S, A] {
	return Base[S, A]{InitialState: initial, Goals: slices.Clone(goals)}
}

// Initial returns the start state.
func (b Base[S, A]) Initial() S { return b.InitialState }

// Goal returns the first accepted goal, if any.
func (b Base[S, A]) Goal() (S, bool) {
	if len(b.Goals) == 0 {
		var zero S
		return zero, false
	}

	return b.Goals[0], true
}

// GoalTest reports whether s is one of Goals.
func (b Base[S, A]) GoalTest(s S) bool { return slices.Contains(b.Goals, s) }

// PathCost charges one unit per step.
func (b Base[S, A]) PathCost(c float64, _ S, _ A, _ S) float64 { return c + 1 }

// H is the null heuristic.
func (b Base[S, A]) H(*Node[S, A]) float64 { return 0 }
