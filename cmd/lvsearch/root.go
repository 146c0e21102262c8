package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/config"
	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/searchmetrics"
)

// errMissingSection is returned when a subcommand's problem section is absent.
var errMissingSection = errors.New("config section missing")

// app carries flag values and shared state between the root and subcommands.
type app struct {
	out, errOut io.Writer

	// Root persistent flags
	configPath string
	algorithm  string
	verbose    bool
	metrics    bool

	cfg      config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	observer *searchmetrics.Collector
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "lvsearch",
		Short: "Solve state-space search problems",
		Long: `Run breadth-first, depth-first, uniform-cost, greedy best-first, A*,
depth-limited or iterative-deepening search over problems read from YAML.

Subcommands:
  route   - cheapest or shortest route in a weighted graph
  peak    - climb to a local peak on an integer grid
  vacuum  - plan a vacuum agent until every reachable room is clean

Examples:
  lvsearch route --config problems.yaml
  lvsearch peak --config problems.yaml --algorithm greedy
  lvsearch vacuum --config problems.yaml --algorithm ucs --metrics`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return a.setup() },
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "",
		"Path to the YAML configuration")
	root.PersistentFlags().StringVarP(&a.algorithm, "algorithm", "a", "",
		"Algorithm override: bfs, dfs, ucs, greedy, astar, dls, ids")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false,
		"Log search progress at debug level")
	root.PersistentFlags().BoolVar(&a.metrics, "metrics", false,
		"Print collected metrics in Prometheus text format")

	root.AddCommand(a.routeCmd(), a.peakCmd(), a.vacuumCmd())

	return root
}

// setup loads configuration and builds the logger and metrics registry.
func (a *app) setup() error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.algorithm != "" {
		cfg.Search.Algorithm = a.algorithm
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	a.registry = prometheus.NewRegistry()
	a.observer = searchmetrics.NewCollector(a.registry)
	a.logger.Debug("configuration loaded",
		slog.String("path", a.configPath),
		slog.String("algorithm", cfg.Search.Algorithm),
	)

	return nil
}

// searchOptions assembles the configured bounds plus logging and metrics.
func (a *app) searchOptions(ctx context.Context) (search.Algorithm, []search.Option, context.CancelFunc, error) {
	alg, err := a.cfg.Search.AlgorithmID()
	if err != nil {
		return "", nil, nil, err
	}
	opts, cancel := a.cfg.Search.Options(ctx)
	opts = append(opts, search.WithLogger(a.logger), search.WithObserver(a.observer))

	return alg, opts, cancel, nil
}

// finish prints metrics when requested.
func (a *app) finish() error {
	if !a.metrics {
		return nil
	}
	fmt.Fprintln(a.out)

	return searchmetrics.WriteText(a.out, a.registry)
}
