package search

import "github.com/katalvlaran/lvsearch/frontier"

// BreadthFirst runs breadth-first graph search on p.
//
// Behavior:
//  1. The root is goal-tested before the loop and marked explored.
//  2. Each popped node is expanded; every child whose state has not been seen is
//     goal-tested at generation time, then marked explored and enqueued.
//  3. Failure when the queue is empty.
//
// Marking at generation means a state is enqueued at most once, so Explored holds
// every generated state (minus the goal itself). Checking the goal at generation
// returns the first tied shortest path in action order.
//
// Optimal (fewest actions) for unit step costs.
// Complexity: O(b^d) time and memory for branching factor b and goal depth d.
func BreadthFirst[S comparable, A any](p Problem[S, A], opts ...Option) (*Result[S, A], error) {
	r, err := newRunner(AlgBreadthFirst, p, opts)
	if err != nil {
		return nil, err
	}

	root := NewRoot(p)
	if p.GoalTest(root.State) {
		return r.finish(root, false), nil
	}

	queue := frontier.NewQueue[S, *Node[S, A]](0)
	if err = queue.Push(root.State, root, 0); err != nil {
		return r.abort(err)
	}
	r.explored.Add(root.State)
	r.trackFrontier(queue.Len())

	cutoff := false
	for queue.Len() > 0 {
		node, err := queue.Pop()
		if err != nil {
			return r.abort(err)
		}
		if r.atDepthLimit(node) {
			cutoff = true
			continue
		}

		children, err := r.expand(node)
		if err != nil {
			return r.abort(err)
		}
		for _, child := range children {
			// explored already covers everything queued
			if r.explored.Has(child.State) {
				continue
			}
			if p.GoalTest(child.State) {
				return r.finish(child, false), nil
			}
			r.explored.Add(child.State)
			if err = queue.Push(child.State, child, 0); err != nil {
				return r.abort(err)
			}
		}
		r.trackFrontier(queue.Len())
	}

	return r.finish(nil, cutoff), nil
}

// DepthFirst runs depth-first graph search on p.
//
// Behavior:
//  1. Pop the most recently pushed node; goal-test it.
//  2. Mark its state explored and push every child whose state is neither
//     explored nor already on the stack, in action order (so the last action is
//     tried first).
//  3. Failure when the stack is empty.
//
// No optimality guarantee; on finite state spaces it finds a path exactly when
// one exists.
// Complexity: O(|S|) time and memory for a finite state space S.
func DepthFirst[S comparable, A any](p Problem[S, A], opts ...Option) (*Result[S, A], error) {
	r, err := newRunner(AlgDepthFirst, p, opts)
	if err != nil {
		return nil, err
	}

	stack := frontier.NewStack[S, *Node[S, A]](0)
	root := NewRoot(p)
	if err = stack.Push(root.State, root, 0); err != nil {
		return r.abort(err)
	}
	r.trackFrontier(stack.Len())

	cutoff := false
	for stack.Len() > 0 {
		node, err := stack.Pop()
		if err != nil {
			return r.abort(err)
		}
		if p.GoalTest(node.State) {
			return r.finish(node, false), nil
		}
		r.explored.Add(node.State)
		if r.atDepthLimit(node) {
			cutoff = true
			continue
		}

		children, err := r.expand(node)
		if err != nil {
			return r.abort(err)
		}
		for _, child := range children {
			if r.explored.Has(child.State) || stack.Contains(child.State) {
				continue
			}
			if err = stack.Push(child.State, child, 0); err != nil {
				return r.abort(err)
			}
		}
		r.trackFrontier(stack.Len())
	}

	return r.finish(nil, cutoff), nil
}
