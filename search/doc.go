// Package search is a generic state-space search engine.
//
// A client describes its domain as a Problem: an initial state, the legal actions
// from any state, a deterministic transition function, a goal test, a step cost and
// an optional heuristic. The engine grows a tree of Nodes from the initial state and
// returns the first goal Node it selects, from which Node.Solution yields the action
// sequence.
//
// Algorithms:
//
//	BreadthFirst     FIFO frontier; explored marked at generation; goal checked at
//	                 generation. Fewest actions for unit-cost problems.
//	DepthFirst       LIFO frontier; explored marked at expansion. Finds some path.
//	UniformCost      priority by g(n); decrease-key on cheaper rediscovery.
//	                 Cheapest path for non-negative step costs.
//	GreedyBestFirst  priority by h(n). Fast, not optimal.
//	AStar            priority by g(n)+h(n); decrease-key. Cheapest path when h is
//	                 admissible.
//	DepthLimited     recursive tree search to a fixed depth; reports cutoff.
//	IterativeDeepening  DepthLimited with limit 0, 1, 2, …
//
// All graph-search variants keep an explored set, so they terminate on finite
// state spaces even when the state graph has cycles.
//
// Determinism:
//
//   - Children are generated in the order Problem.Actions returns them.
//   - Equal-priority frontier entries pop in insertion order (see package frontier).
//   - Repeating a search on the same Problem yields the same goal, cost and
//     explored-set size.
//
// Failure is not an error: when the frontier is exhausted the Result has a nil
// Goal. Errors are reserved for invalid options (ErrOptionViolation), exceeded
// caller budgets (ErrExpansionLimit) and context cancellation.
//
// Problem purity (Actions, Result, PathCost and H must not mutate shared state) is
// a contract the engine relies on and does not check; a misbehaving Problem's
// panics propagate to the caller unchanged.
//
// Example:
//
//	res, err := search.AStar[string, string](problem)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Found() {
//	    fmt.Println(res.Solution(), res.Cost())
//	}
package search
