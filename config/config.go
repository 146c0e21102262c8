// Package config loads the YAML configuration of the lvsearch CLI.
//
// # Description
//
// A file has one search section plus any of the three problem sections:
//
//	search:
//	  algorithm: astar        # bfs, dfs, ucs, greedy, astar, dls, ids (or aliases)
//	  max_expansions: 10000   # 0 = unbounded
//	  max_depth: 0            # 0 = unbounded; required > 0 for dls
//	  timeout: 5s
//	graph:
//	  directed: true
//	  edges: [{from: A, to: B, weight: 1}]
//	  locations: {A: [0, 0]}
//	  start: A
//	  goal: D
//	grid:
//	  values: [[1, 2], [3, 4]]
//	  start: [0, 0]
//	  diagonal: false
//	room:
//	  rows: ["#####", "#>.*#", "#####"]
//	  turn_cost: true
//
// Loading order is defaults, then file, then LVSEARCH_* environment
// variables, then validation.
package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/gridgraph"
	"github.com/katalvlaran/lvsearch/search"
)

// ErrInvalidConfig wraps every parse and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root of the YAML file.
type Config struct {
	Search SearchConfig `yaml:"search"`
	Graph  *GraphConfig `yaml:"graph,omitempty"`
	Grid   *GridConfig  `yaml:"grid,omitempty"`
	Room   *RoomConfig  `yaml:"room,omitempty"`
}

// SearchConfig selects the algorithm and its caller-level bounds.
type SearchConfig struct {
	Algorithm     string        `yaml:"algorithm" validate:"required,algorithm"`
	MaxExpansions int           `yaml:"max_expansions" validate:"gte=0"`
	MaxDepth      int           `yaml:"max_depth" validate:"gte=0"`
	Timeout       time.Duration `yaml:"timeout" validate:"gte=0"`
}

// GraphConfig describes a weighted routing graph.
type GraphConfig struct {
	Directed  bool                  `yaml:"directed"`
	Edges     []EdgeConfig          `yaml:"edges" validate:"required,min=1,dive"`
	Locations map[string][2]float64 `yaml:"locations,omitempty"`
	Start     string                `yaml:"start" validate:"required"`
	Goal      string                `yaml:"goal" validate:"required"`
}

// EdgeConfig is one graph edge.
type EdgeConfig struct {
	From   string  `yaml:"from" validate:"required"`
	To     string  `yaml:"to" validate:"required"`
	Weight float64 `yaml:"weight" validate:"gte=0"`
}

// GridConfig describes a peak-finding grid. Values[y][x]; Goal is optional.
type GridConfig struct {
	Values   [][]int `yaml:"values" validate:"required,min=1,dive,min=1"`
	Start    [2]int  `yaml:"start"`
	Goal     *[2]int `yaml:"goal,omitempty"`
	Diagonal bool    `yaml:"diagonal"`
}

// RoomConfig describes a vacuum world in ASCII, top row first.
type RoomConfig struct {
	Rows     []string `yaml:"rows" validate:"required,min=3,dive,min=3"`
	TurnCost bool     `yaml:"turn_cost"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// algorithm accepts every name or alias ParseAlgorithm understands
	_ = v.RegisterValidation("algorithm", func(fl validator.FieldLevel) bool {
		_, err := search.ParseAlgorithm(fl.Field().String())
		return err == nil
	})
	return v
}

// Default returns a configuration with no problem sections.
func Default() Config {
	return Config{
		Search: SearchConfig{
			Algorithm:     string(search.AlgAStar),
			MaxExpansions: 100000,
		},
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err := decode(data, &cfg); err != nil {
			return cfg, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Parse decodes data over the defaults and validates, ignoring the environment.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := decode(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: parse yaml: %v", ErrInvalidConfig, err)
	}
	return nil
}

// applyEnv overrides search settings from LVSEARCH_ALGORITHM,
// LVSEARCH_MAX_EXPANSIONS, LVSEARCH_MAX_DEPTH and LVSEARCH_TIMEOUT.
func applyEnv(cfg *Config) error {
	if v := os.Getenv("LVSEARCH_ALGORITHM"); v != "" {
		cfg.Search.Algorithm = v
	}
	for _, iv := range []struct {
		key string
		dst *int
	}{
		{"LVSEARCH_MAX_EXPANSIONS", &cfg.Search.MaxExpansions},
		{"LVSEARCH_MAX_DEPTH", &cfg.Search.MaxDepth},
	} {
		v := os.Getenv(iv.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, iv.key, v, err)
		}
		*iv.dst = n
	}
	if v := os.Getenv("LVSEARCH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: LVSEARCH_TIMEOUT=%q: %v", ErrInvalidConfig, v, err)
		}
		cfg.Search.Timeout = d
	}

	return nil
}

// Validate checks struct tags on every present section.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// AlgorithmID resolves the configured algorithm name.
func (s SearchConfig) AlgorithmID() (search.Algorithm, error) {
	return search.ParseAlgorithm(s.Algorithm)
}

// Options converts the bounds into search options. When Timeout is set the
// returned cancel func must be called.
func (s SearchConfig) Options(ctx context.Context) ([]search.Option, context.CancelFunc) {
	cancel := context.CancelFunc(func() {})
	if s.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
	}

	return []search.Option{
		search.WithContext(ctx),
		search.WithMaxExpansions(s.MaxExpansions),
		search.WithMaxDepth(s.MaxDepth),
	}, cancel
}

// Build creates the graph, adding edges in file order.
func (g GraphConfig) Build() (*core.Graph, error) {
	out := core.NewGraph(core.WithDirected(g.Directed))
	for i, e := range g.Edges {
		if err := out.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("%w: edge %d: %w", ErrInvalidConfig, i, err)
		}
	}
	for id, xy := range g.Locations {
		if err := out.SetLocation(id, core.Point{X: xy[0], Y: xy[1]}); err != nil {
			return nil, fmt.Errorf("%w: location %q: %w", ErrInvalidConfig, id, err)
		}
	}

	return out, nil
}

// Build creates the grid with Conn8 when Diagonal is set.
func (g GridConfig) Build() (*gridgraph.Grid, error) {
	conn := gridgraph.Conn4
	if g.Diagonal {
		conn = gridgraph.Conn8
	}
	grid, err := gridgraph.NewGrid(g.Values, conn)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return grid, nil
}

// StartPoint returns Start as a grid point.
func (g GridConfig) StartPoint() gridgraph.Point {
	return gridgraph.Point{X: g.Start[0], Y: g.Start[1]}
}

// GoalPoints returns the explicit goal, if any.
func (g GridConfig) GoalPoints() []gridgraph.Point {
	if g.Goal == nil {
		return nil
	}
	return []gridgraph.Point{{X: g.Goal[0], Y: g.Goal[1]}}
}
