package search

import (
	"fmt"
	"log/slog"
)

// runner holds the mutable bookkeeping shared by every algorithm for a single
// invocation: options, explored set and counters. It is never reused.
type runner[S comparable, A any] struct {
	alg      Algorithm
	problem  Problem[S, A]
	opts     Options
	log      *slog.Logger
	explored StateSet[S]
	stats    Stats
}

// newRunner applies opts and surfaces any recorded option violation.
func newRunner[S comparable, A any](alg Algorithm, p Problem[S, A], opts []Option) (*runner[S, A], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: problem is nil", ErrOptionViolation)
	}

	r := &runner[S, A]{
		alg:      alg,
		problem:  p,
		opts:     o,
		log:      o.Logger.With(slog.String("algorithm", string(alg))),
		explored: make(StateSet[S]),
	}
	r.log.Debug("search started")
	if o.Observer != nil {
		o.Observer.SearchStarted(alg)
	}

	return r, nil
}

// expand checks cancellation and budget, then generates n's children.
func (r *runner[S, A]) expand(n *Node[S, A]) ([]*Node[S, A], error) {
	select {
	case <-r.opts.Ctx.Done():
		return nil, r.opts.Ctx.Err()
	default:
	}
	if r.opts.MaxExpansions > 0 && r.stats.Expanded >= r.opts.MaxExpansions {
		return nil, fmt.Errorf("%w: %d expansions", ErrExpansionLimit, r.stats.Expanded)
	}

	children := n.Expand(r.problem)
	r.stats.Expanded++
	r.stats.Generated += len(children)
	if r.opts.Observer != nil {
		r.opts.Observer.NodeExpanded(r.alg, n.Depth)
	}

	return children, nil
}

// atDepthLimit reports whether n must not be expanded under MaxDepth.
func (r *runner[S, A]) atDepthLimit(n *Node[S, A]) bool {
	return r.opts.MaxDepth > 0 && n.Depth >= r.opts.MaxDepth
}

// trackFrontier records the peak frontier size.
func (r *runner[S, A]) trackFrontier(size int) {
	if size > r.stats.MaxFrontier {
		r.stats.MaxFrontier = size
	}
}

// finish packages the result and notifies logger and observer.
func (r *runner[S, A]) finish(goal *Node[S, A], cutoff bool) *Result[S, A] {
	res := &Result[S, A]{
		Goal:     goal,
		Explored: r.explored,
		Stats:    r.stats,
		Cutoff:   cutoff && goal == nil,
	}
	r.report(res.Outcome(), res.Cost())

	return res
}

// abort packages a partial result alongside err.
func (r *runner[S, A]) abort(err error) (*Result[S, A], error) {
	r.report(OutcomeAborted, 0)
	r.log.Debug("search aborted", slog.Any("error", err))

	return &Result[S, A]{Explored: r.explored, Stats: r.stats}, err
}

func (r *runner[S, A]) report(outcome Outcome, cost float64) {
	r.log.Debug("search finished",
		slog.String("outcome", string(outcome)),
		slog.Int("expanded", r.stats.Expanded),
		slog.Int("generated", r.stats.Generated),
		slog.Int("explored", r.explored.Len()),
		slog.Float64("cost", cost),
	)
	if r.opts.Observer != nil {
		r.opts.Observer.SearchFinished(r.alg, outcome, r.stats, cost)
	}
}
