package search

import "fmt"

// DepthLimited runs recursive depth-limited tree search with limit ≥ 0.
//
// A node at depth limit is goal-tested but not expanded. Children whose state
// already appears on the current path are skipped, so cycles cannot recurse.
// There is no explored set across branches; Explored records every expanded
// state for reporting only. Stats.MaxFrontier is the deepest path held.
//
// Result.Cutoff is true when the limit pruned at least one node and no goal was
// found: a deeper limit may still succeed. A nil Goal with Cutoff false means no
// goal is reachable.
func DepthLimited[S comparable, A any](p Problem[S, A], limit int, opts ...Option) (*Result[S, A], error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: depth limit cannot be negative (%d)", ErrOptionViolation, limit)
	}
	r, err := newRunner(AlgDepthLimited, p, opts)
	if err != nil {
		return nil, err
	}

	goal, cutoff, err := r.recursiveDLS(NewRoot(p), limit)
	if err != nil {
		return r.abort(err)
	}

	return r.finish(goal, cutoff), nil
}

// IterativeDeepening runs DepthLimited with limit 0, 1, 2, … until a search ends
// without cutoff. WithMaxDepth bounds the largest limit tried; without it the
// search only stops on success, proven failure, a budget or cancellation.
//
// Stats and Explored accumulate across iterations.
func IterativeDeepening[S comparable, A any](p Problem[S, A], opts ...Option) (*Result[S, A], error) {
	r, err := newRunner(AlgIterativeDeepening, p, opts)
	if err != nil {
		return nil, err
	}

	for limit := 0; ; limit++ {
		goal, cutoff, err := r.recursiveDLS(NewRoot(p), limit)
		if err != nil {
			return r.abort(err)
		}
		if goal != nil || !cutoff {
			return r.finish(goal, false), nil
		}
		if r.opts.MaxDepth > 0 && limit >= r.opts.MaxDepth {
			return r.finish(nil, true), nil
		}
		r.log.Debug("deepening", "limit", limit+1)
	}
}

// recursiveDLS returns (goal, cutoff, err). The frontier of a recursive
// search is the current path, so its size is node.Depth+1.
func (r *runner[S, A]) recursiveDLS(node *Node[S, A], limit int) (*Node[S, A], bool, error) {
	r.trackFrontier(node.Depth + 1)
	if r.problem.GoalTest(node.State) {
		return node, false, nil
	}
	if limit == 0 {
		return nil, true, nil
	}

	children, err := r.expand(node)
	if err != nil {
		return nil, false, err
	}
	r.explored.Add(node.State)

	cutoff := false
	for _, child := range children {
		if node.onPath(child.State) {
			continue
		}
		goal, childCutoff, err := r.recursiveDLS(child, limit-1)
		if err != nil {
			return nil, false, err
		}
		if goal != nil {
			return goal, false, nil
		}
		cutoff = cutoff || childCutoff
	}

	return nil, cutoff, nil
}
