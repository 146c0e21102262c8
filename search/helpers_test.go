package search_test

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lvsearch/search"
)

// tuple mirrors a one-element numeric state such as (0,).
type tuple [1]int

// simpleProblem: start (0,), actions {(1,), (2,)}, result adds, goal (2,).
// The state space is infinite; every algorithm must still stop at (2,).
type simpleProblem struct {
	search.Base[tuple, tuple]
}

func newSimpleProblem() simpleProblem {
	return simpleProblem{Base: search.NewBase[tuple, tuple](tuple{0}, tuple{2})}
}

func (simpleProblem) Actions(tuple) []tuple { return []tuple{{1}, {2}} }

func (simpleProblem) Result(s, a tuple) tuple { return tuple{s[0] + a[0]} }

func (p simpleProblem) H(n *search.Node[tuple, tuple]) float64 {
	goal, _ := p.Goal()
	return math.Max(0, float64(goal[0]-n.State[0]))
}

// arc is one weighted outgoing edge.
type arc struct {
	to     string
	weight float64
}

// mapGraph is a small weighted digraph problem with insertion-ordered arcs.
// Actions are target vertex names.
type mapGraph struct {
	search.Base[string, string]
	adj map[string][]arc
	h   map[string]float64
}

func newMapGraph(start, goal string) *mapGraph {
	return &mapGraph{
		Base: search.NewBase[string, string](start, goal),
		adj:  make(map[string][]arc),
	}
}

func (g *mapGraph) edge(from, to string, w float64) *mapGraph {
	g.adj[from] = append(g.adj[from], arc{to: to, weight: w})
	if _, ok := g.adj[to]; !ok {
		g.adj[to] = nil
	}
	return g
}

func (g *mapGraph) Actions(s string) []string {
	out := make([]string, 0, len(g.adj[s]))
	for _, a := range g.adj[s] {
		out = append(out, a.to)
	}
	return out
}

func (g *mapGraph) Result(_ string, a string) string { return a }

func (g *mapGraph) PathCost(c float64, s string, a string, _ string) float64 {
	for _, e := range g.adj[s] {
		if e.to == a {
			return c + e.weight
		}
	}
	return math.Inf(1)
}

func (g *mapGraph) H(n *search.Node[string, string]) float64 {
	if g.h == nil {
		return 0
	}
	return g.h[n.State]
}

// sampleGraph is {A:{B:1,C:2}, B:{D:3}, C:{D:1}, D:{}}.
func sampleGraph() *mapGraph {
	return newMapGraph("A", "D").
		edge("A", "B", 1).
		edge("A", "C", 2).
		edge("B", "D", 3).
		edge("C", "D", 1)
}

// intGraph is a random weighted digraph over vertices 0..n-1, used for
// property tests. Arc order is the generation order.
type intGraph struct {
	search.Base[int, int]
	n    int
	adj  [][]intArc
	unit bool
	hTab []float64
}

type intArc struct {
	to     int
	weight float64
}

func randomGraph(seed int64, n, extra int, unit bool) *intGraph {
	r := rand.New(rand.NewSource(seed))
	g := &intGraph{
		Base: search.NewBase[int, int](0, n-1),
		n:    n,
		adj:  make([][]intArc, n),
		unit: unit,
	}
	for i := 0; i < extra; i++ {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		// always draw the weight so unit and weighted graphs share topology
		w := float64(1 + r.Intn(9))
		if unit {
			w = 1
		}
		g.adj[u] = append(g.adj[u], intArc{to: v, weight: w})
	}
	return g
}

func (g *intGraph) Actions(s int) []int {
	out := make([]int, len(g.adj[s]))
	for i := range g.adj[s] {
		out[i] = i // action = arc index, so parallel arcs stay distinct
	}
	return out
}

func (g *intGraph) Result(s int, a int) int { return g.adj[s][a].to }

func (g *intGraph) PathCost(c float64, s int, a int, _ int) float64 {
	return c + g.adj[s][a].weight
}

func (g *intGraph) H(n *search.Node[int, int]) float64 {
	if g.hTab == nil {
		return 0
	}
	return g.hTab[n.State]
}

// distancesTo returns exact cheapest costs from every vertex to target
// (Bellman-Ford over reversed arcs), +Inf when unreachable.
func (g *intGraph) distancesTo(target int) []float64 {
	dist := make([]float64, g.n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[target] = 0
	for round := 0; round < g.n; round++ {
		changed := false
		for u := 0; u < g.n; u++ {
			for _, e := range g.adj[u] {
				if dist[e.to]+e.weight < dist[u] {
					dist[u] = dist[e.to] + e.weight
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}
	return dist
}

// recordingObserver captures observer callbacks.
type recordingObserver struct {
	started  []search.Algorithm
	expanded int
	outcomes []search.Outcome
	costs    []float64
}

func (o *recordingObserver) SearchStarted(alg search.Algorithm) {
	o.started = append(o.started, alg)
}

func (o *recordingObserver) NodeExpanded(search.Algorithm, int) { o.expanded++ }

func (o *recordingObserver) SearchFinished(_ search.Algorithm, out search.Outcome, _ search.Stats, cost float64) {
	o.outcomes = append(o.outcomes, out)
	o.costs = append(o.costs, cost)
}
