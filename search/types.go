package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors for search execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrExpansionLimit is returned when WithMaxExpansions is exhausted
	// before the search terminates.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrUnknownAlgorithm is returned by ParseAlgorithm and Run for an
	// unrecognised algorithm name.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// Outcome classifies how a search terminated.
type Outcome string

const (
	// OutcomeSuccess means a goal node was found.
	OutcomeSuccess Outcome = "success"
	// OutcomeFailure means the frontier was exhausted without a goal.
	OutcomeFailure Outcome = "failure"
	// OutcomeCutoff means a depth limit pruned the search before a verdict.
	OutcomeCutoff Outcome = "cutoff"
	// OutcomeAborted means a budget, the context, or an internal error stopped the run.
	OutcomeAborted Outcome = "aborted"
)

// Stats counts the work done by one search invocation.
type Stats struct {
	Expanded    int // nodes whose children were generated
	Generated   int // child nodes produced by expansion
	MaxFrontier int // peak frontier size
}

// Observer receives lifecycle callbacks from every search. Implementations must
// be cheap; they run inline in the search loop.
type Observer interface {
	SearchStarted(alg Algorithm)
	NodeExpanded(alg Algorithm, depth int)
	SearchFinished(alg Algorithm, outcome Outcome, stats Stats, cost float64)
}

// Option configures search behavior via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when the
// search is invoked.
type Option func(*Options)

// Options holds caller-level bounds and instrumentation. None of them change
// which node an unbounded search returns.
type Options struct {
	// Ctx allows cancellation; checked once per expansion.
	Ctx context.Context

	// MaxExpansions, if > 0, aborts with ErrExpansionLimit after that many
	// expansions. 0 disables the limit.
	MaxExpansions int

	// MaxDepth, if > 0, stops expansion of nodes at that depth in graph
	// searches, bounds IterativeDeepening, and is the limit DepthLimited uses
	// when invoked through Run. 0 disables the limit.
	MaxDepth int

	// Logger receives debug records at start and finish.
	Logger *slog.Logger

	// Observer, if non-nil, receives lifecycle callbacks.
	Observer Observer

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no expansion or depth limit
//   - a logger that discards everything
//   - no observer
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions bounds the number of node expansions.
//
//	n > 0: abort with ErrExpansionLimit after n expansions
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithMaxDepth bounds node depth.
//
//	d > 0: nodes at depth d are not expanded
//	d == 0: no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithLogger routes debug records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver registers lifecycle callbacks.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// StateSet is a set of states; the explored set of a search.
type StateSet[S comparable] map[S]struct{}

// Add inserts s.
func (s StateSet[S]) Add(state S) { s[state] = struct{}{} }

// Has reports whether state is present.
func (s StateSet[S]) Has(state S) bool {
	_, ok := s[state]
	return ok
}

// Remove deletes state; a no-op when absent.
func (s StateSet[S]) Remove(state S) { delete(s, state) }

// Len returns the number of states.
func (s StateSet[S]) Len() int { return len(s) }

// Result is the outcome of one search invocation.
//
//   - Goal:     the goal node, or nil when no goal was reached.
//   - Explored: states the algorithm marked explored (see each algorithm for timing).
//   - Stats:    work counters.
//   - Cutoff:   true when a depth limit, not exhaustion, ended a failed search.
type Result[S comparable, A any] struct {
	Goal     *Node[S, A]
	Explored StateSet[S]
	Stats    Stats
	Cutoff   bool
}

// Found reports whether a goal was reached.
func (r *Result[S, A]) Found() bool { return r != nil && r.Goal != nil }

// Solution returns the action sequence to the goal, or nil if none was found.
func (r *Result[S, A]) Solution() []A {
	if !r.Found() {
		return nil
	}

	return r.Goal.Solution()
}

// Cost returns the goal's path cost, or 0 if none was found.
func (r *Result[S, A]) Cost() float64 {
	if !r.Found() {
		return 0
	}

	return r.Goal.PathCost
}

// Outcome classifies the result.
func (r *Result[S, A]) Outcome() Outcome {
	switch {
	case r.Found():
		return OutcomeSuccess
	case r != nil && r.Cutoff:
		return OutcomeCutoff
	default:
		return OutcomeFailure
	}
}
