// Package lvsearch is a generic state-space search engine and a small set of
// problems that exercise it.
//
// What is inside?
//
//	search/        - Problem contract, Node, BFS, DFS, UCS, greedy, A*, DLS, IDS
//	frontier/      - indexed priority frontier with decrease-key, FIFO queue, LIFO stack
//	core/          - thread-safe weighted graph with insertion-ordered adjacency
//	routing/       - route finding over a core.Graph (Euclidean h via gonum)
//	gridgraph/     - rectangular integer grids and compass moves
//	peak/          - local-peak search on a grid
//	vacuum/        - vacuum-world planner with optional turn cost
//	searchmetrics/ - Prometheus observer for search runs
//	config/        - YAML configuration for the CLI
//	cmd/lvsearch   - command-line front end
//
// Quick example:
//
//	g := core.NewGraph(core.WithDirected(true))
//	_ = g.AddEdge("A", "B", 1)
//	_ = g.AddEdge("A", "C", 2)
//	_ = g.AddEdge("B", "D", 3)
//	_ = g.AddEdge("C", "D", 1)
//	p, _ := routing.NewGraphProblem(g, "A", "D")
//	res, _ := search.AStar[string, string](p)
//	fmt.Println(res.Goal.States(), res.Cost()) // [A C D] 3
//
// Every algorithm returns a *search.Result: the goal node (nil on failure),
// the explored set and expansion statistics. Ties are broken by insertion
// order, so results are reproducible.
package lvsearch
