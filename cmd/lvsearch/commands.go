package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/gridgraph"
	"github.com/katalvlaran/lvsearch/peak"
	"github.com/katalvlaran/lvsearch/routing"
	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/vacuum"
)

func (a *app) routeCmd() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Find a route in the configured graph",
		Long: `Find a route from start to goal in the graph section of the config.

Uniform-cost and A* return a cheapest route; breadth-first returns one with the
fewest edges. With vertex locations A* uses straight-line distance as h.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gc := a.cfg.Graph
			if gc == nil {
				return fmt.Errorf("%w: graph", errMissingSection)
			}
			g, err := gc.Build()
			if err != nil {
				return err
			}
			start, goal := gc.Start, gc.Goal
			if from != "" {
				start = from
			}
			if to != "" {
				goal = to
			}
			p, err := routing.NewGraphProblem(g, start, goal)
			if err != nil {
				return err
			}

			alg, opts, cancel, err := a.searchOptions(cmd.Context())
			if err != nil {
				return err
			}
			defer cancel()
			res, err := search.Run[string, string](alg, p, opts...)
			if err != nil {
				return err
			}
			a.printResult(alg, res.Outcome(), res.Explored.Len(), res.Cost())
			if res.Found() {
				fmt.Fprintf(a.out, "path: %s\n", strings.Join(res.Goal.States(), " -> "))
			}

			return a.finish()
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Start vertex (overrides graph.start)")
	cmd.Flags().StringVar(&to, "to", "", "Goal vertex (overrides graph.goal)")

	return cmd
}

func (a *app) peakCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "peak",
		Short: "Climb to a local peak on the configured grid",
		Long: `Search the grid section for a local peak, or for grid.goal when given.
Greedy best-first uses the gap to the grid maximum as h.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gc := a.cfg.Grid
			if gc == nil {
				return fmt.Errorf("%w: grid", errMissingSection)
			}
			grid, err := gc.Build()
			if err != nil {
				return err
			}
			p, err := peak.New(grid, gc.StartPoint(), gc.GoalPoints()...)
			if err != nil {
				return err
			}

			alg, opts, cancel, err := a.searchOptions(cmd.Context())
			if err != nil {
				return err
			}
			defer cancel()
			res, err := search.Run[gridgraph.Point, gridgraph.Move](alg, p, opts...)
			if err != nil {
				return err
			}
			a.printResult(alg, res.Outcome(), res.Explored.Len(), res.Cost())
			if res.Found() {
				fmt.Fprintf(a.out, "moves: %v\n", res.Solution())
				fmt.Fprintf(a.out, "peak: %v value %d\n", res.Goal.State, p.Value(res.Goal.State))
			}

			return a.finish()
		},
	}
}

func (a *app) vacuumCmd() *cobra.Command {
	var turnCost bool
	cmd := &cobra.Command{
		Use:   "vacuum",
		Short: "Clean the configured room",
		Long: `Drive the vacuum agent in the room section: plan to the nearest dirt,
suck, and repeat until no reachable dirt remains.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rc := a.cfg.Room
			if rc == nil {
				return fmt.Errorf("%w: room", errMissingSection)
			}
			room, err := vacuum.ParseRoom(rc.Rows)
			if err != nil {
				return err
			}

			alg, opts, cancel, err := a.searchOptions(cmd.Context())
			if err != nil {
				return err
			}
			defer cancel()
			rep, err := vacuum.Clean(room, vacuum.Options{
				Algorithm: alg,
				TurnCost:  rc.TurnCost || turnCost,
				Logger:    a.logger,
				Search:    opts,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "algorithm: %s\n", alg)
			fmt.Fprintf(a.out, "actions: %s\n", strings.Join(rep.Actions, " "))
			fmt.Fprintf(a.out, "cleaned: %d remaining: %d\n", len(rep.Cleaned), rep.Remaining)
			fmt.Fprintf(a.out, "cost: %g performance: %d\n", rep.Cost, rep.Performance)

			return a.finish()
		},
	}
	cmd.Flags().BoolVar(&turnCost, "turn-cost", false, "Charge for turning even when room.turn_cost is false")

	return cmd
}

func (a *app) printResult(alg search.Algorithm, outcome search.Outcome, explored int, cost float64) {
	fmt.Fprintf(a.out, "algorithm: %s\n", alg)
	fmt.Fprintf(a.out, "outcome: %s\n", outcome)
	fmt.Fprintf(a.out, "explored: %d\n", explored)
	fmt.Fprintf(a.out, "cost: %g\n", cost)
}
