package search

import "github.com/katalvlaran/lvsearch/frontier"

// UniformCost runs uniform-cost search (Dijkstra over the implicit state graph),
// ordering the frontier by g(n).
//
// Optimal for any non-negative step costs.
// Complexity: O((V + E) log V) over the reachable state graph.
func UniformCost[S comparable, A any](p Problem[S, A], opts ...Option) (*Result[S, A], error) {
	return bestFirst(AlgUniformCost, p, func(n *Node[S, A]) float64 {
		return n.PathCost
	}, false, opts)
}

// GreedyBestFirst orders the frontier by h(n) alone.
//
// Fast when h is informative; no optimality guarantee. With the default null
// heuristic every node ties and exploration follows insertion order.
func GreedyBestFirst[S comparable, A any](p Problem[S, A], opts ...Option) (*Result[S, A], error) {
	return bestFirst(AlgGreedyBestFirst, p, func(n *Node[S, A]) float64 {
		return p.H(n)
	}, false, opts)
}

// AStar orders the frontier by f(n) = g(n) + h(n).
//
// Returns a cheapest path when h is admissible. An explored state reached
// again by a strictly cheaper path is reopened, so an admissible but
// inconsistent h may expand a state more than once; with a consistent h no
// state is expanded twice. Neither property is checked at runtime.
func AStar[S comparable, A any](p Problem[S, A], opts ...Option) (*Result[S, A], error) {
	return bestFirst(AlgAStar, p, func(n *Node[S, A]) float64 {
		return n.PathCost + p.H(n)
	}, true, opts)
}

// bestFirst is the shared best-first graph search, parameterized by f.
//
// Loop:
//  1. Pop the node with the lowest f (ties: earliest inserted).
//  2. Goal-test it; success returns it.
//  3. Mark its state explored.
//  4. For each child: skip explored states, unless reopen is set and the
//     child's g is strictly below the g the state was expanded with; if the
//     state is already on the frontier, replace it only when the child's f is
//     strictly lower (decrease-key); otherwise push.
func bestFirst[S comparable, A any](alg Algorithm, p Problem[S, A], f func(*Node[S, A]) float64, reopen bool, opts []Option) (*Result[S, A], error) {
	r, err := newRunner(alg, p, opts)
	if err != nil {
		return nil, err
	}

	pq := frontier.NewPriority[S, *Node[S, A]](0)
	root := NewRoot(p)
	if err = pq.Push(root.State, root, f(root)); err != nil {
		return r.abort(err)
	}
	r.trackFrontier(pq.Len())

	// g of each state at its last expansion; only consulted when reopening
	closedG := make(map[S]float64)
	cutoff := false
	for pq.Len() > 0 {
		node, err := pq.Pop()
		if err != nil {
			return r.abort(err)
		}
		if p.GoalTest(node.State) {
			return r.finish(node, false), nil
		}
		r.explored.Add(node.State)
		closedG[node.State] = node.PathCost
		if r.atDepthLimit(node) {
			cutoff = true
			continue
		}

		children, err := r.expand(node)
		if err != nil {
			return r.abort(err)
		}
		for _, child := range children {
			if r.explored.Has(child.State) {
				if !reopen || child.PathCost >= closedG[child.State] {
					continue
				}
				r.explored.Remove(child.State)
			}
			score := f(child)
			if _, queued, ok := pq.Get(child.State); ok {
				if score < queued {
					if err = pq.Replace(child.State, child, score); err != nil {
						return r.abort(err)
					}
				}
				continue
			}
			if err = pq.Push(child.State, child, score); err != nil {
				return r.abort(err)
			}
		}
		r.trackFrontier(pq.Len())
	}

	return r.finish(nil, cutoff), nil
}
