package search

import "fmt"

// Node is a vertex of the search tree.
//
// Parent is a child→parent back-reference used only for path reconstruction;
// there are no parent→child links. Two nodes denote the same search state when
// their States are equal, regardless of path or cost.
type Node[S comparable, A any] struct {
	State    S
	Parent   *Node[S, A] // nil for the root
	Action   A           // zero value for the root
	PathCost float64     // g(n), cumulative from the root
	Depth    int         // root is 0
}

// NewRoot returns the root node for p's initial state.
func NewRoot[S comparable, A any](p Problem[S, A]) *Node[S, A] {
	return &Node[S, A]{State: p.Initial()}
}

// ChildNode builds the successor of n reached by action a.
func (n *Node[S, A]) ChildNode(p Problem[S, A], a A) *Node[S, A] {
	next := p.Result(n.State, a)

	return &Node[S, A]{
		State:    next,
		Parent:   n,
		Action:   a,
		PathCost: p.PathCost(n.PathCost, n.State, a, next),
		Depth:    n.Depth + 1,
	}
}

// Expand returns one child per action of p.Actions(n.State), in the same order.
func (n *Node[S, A]) Expand(p Problem[S, A]) []*Node[S, A] {
	actions := p.Actions(n.State)
	children := make([]*Node[S, A], 0, len(actions))
	for _, a := range actions {
		children = append(children, n.ChildNode(p, a))
	}

	return children
}

// Path returns the nodes from the root to n, inclusive.
func (n *Node[S, A]) Path() []*Node[S, A] {
	path := make([]*Node[S, A], 0, n.Depth+1)
	for cur := n; cur != nil; cur = cur.Parent {
		path = append(path, cur)
	}
	// reverse to get root → n
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Solution returns the actions from the root to n; empty for the root.
func (n *Node[S, A]) Solution() []A {
	path := n.Path()
	actions := make([]A, 0, len(path)-1)
	for _, node := range path[1:] {
		actions = append(actions, node.Action)
	}

	return actions
}

// States returns the states along Path.
func (n *Node[S, A]) States() []S {
	path := n.Path()
	states := make([]S, len(path))
	for i, node := range path {
		states[i] = node.State
	}

	return states
}

// onPath reports whether s occurs on the path from the root to n.
func (n *Node[S, A]) onPath(s S) bool {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.State == s {
			return true
		}
	}

	return false
}

func (n *Node[S, A]) String() string { return fmt.Sprintf("<Node %v>", n.State) }
