package search

import (
	"fmt"
	"strings"
)

// Algorithm names a search strategy.
type Algorithm string

// Supported algorithms. The string values are the names accepted by
// ParseAlgorithm and used as metric/log labels.
const (
	AlgBreadthFirst       Algorithm = "bfs"
	AlgDepthFirst         Algorithm = "dfs"
	AlgUniformCost        Algorithm = "ucs"
	AlgGreedyBestFirst    Algorithm = "greedy"
	AlgAStar              Algorithm = "astar"
	AlgDepthLimited       Algorithm = "dls"
	AlgIterativeDeepening Algorithm = "ids"
)

// Algorithms lists every supported algorithm in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{
		AlgBreadthFirst,
		AlgDepthFirst,
		AlgUniformCost,
		AlgGreedyBestFirst,
		AlgAStar,
		AlgDepthLimited,
		AlgIterativeDeepening,
	}
}

// aliases maps long-form names onto canonical ones.
var aliases = map[string]Algorithm{
	"breadth-first":       AlgBreadthFirst,
	"depth-first":         AlgDepthFirst,
	"uniform-cost":        AlgUniformCost,
	"greedy-best-first":   AlgGreedyBestFirst,
	"a*":                  AlgAStar,
	"depth-limited":       AlgDepthLimited,
	"iterative-deepening": AlgIterativeDeepening,
}

// ParseAlgorithm resolves a name (case-insensitive, canonical or long form).
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, alg := range Algorithms() {
		if string(alg) == key {
			return alg, nil
		}
	}
	if alg, ok := aliases[key]; ok {
		return alg, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Informed reports whether alg consults Problem.H.
func (a Algorithm) Informed() bool {
	return a == AlgGreedyBestFirst || a == AlgAStar
}

// Run dispatches to the named algorithm. AlgDepthLimited takes its limit from
// WithMaxDepth, which must then be > 0.
func Run[S comparable, A any](alg Algorithm, p Problem[S, A], opts ...Option) (*Result[S, A], error) {
	switch alg {
	case AlgBreadthFirst:
		return BreadthFirst(p, opts...)
	case AlgDepthFirst:
		return DepthFirst(p, opts...)
	case AlgUniformCost:
		return UniformCost(p, opts...)
	case AlgGreedyBestFirst:
		return GreedyBestFirst(p, opts...)
	case AlgAStar:
		return AStar(p, opts...)
	case AlgDepthLimited:
		o := DefaultOptions()
		for _, opt := range opts {
			opt(&o)
		}
		if o.MaxDepth <= 0 {
			return nil, fmt.Errorf("%w: %s requires WithMaxDepth > 0", ErrOptionViolation, alg)
		}
		return DepthLimited(p, o.MaxDepth, opts...)
	case AlgIterativeDeepening:
		return IterativeDeepening(p, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}
}
