package searchmetrics_test

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/searchmetrics"
)

// countdown reaches 0 from Initial by subtracting 1 or 2.
type countdown struct {
	search.Base[int, int]
}

func (countdown) Actions(s int) []int {
	if s >= 2 {
		return []int{1, 2}
	}
	if s == 1 {
		return []int{1}
	}
	return nil
}

func (countdown) Result(s, a int) int { return s - a }

func newCollector(t *testing.T) (*searchmetrics.Collector, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return searchmetrics.NewCollector(reg), reg
}

func TestCollector_Success(t *testing.T) {
	c, _ := newCollector(t)
	p := countdown{Base: search.NewBase[int, int](4, 0)}

	res, err := search.UniformCost[int, int](p, search.WithObserver(c))
	require.NoError(t, err)
	require.True(t, res.Found())

	assert.Equal(t, 1.0, testutil.ToFloat64(c.SearchesTotal.WithLabelValues("ucs", "success")))
	assert.Equal(t, float64(res.Stats.Expanded), testutil.ToFloat64(c.NodesExpanded.WithLabelValues("ucs")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.SolutionCost))
}

func TestCollector_FailureAndAbort(t *testing.T) {
	c, _ := newCollector(t)
	unreachable := countdown{Base: search.NewBase[int, int](3, -5)}

	_, err := search.BreadthFirst[int, int](unreachable, search.WithObserver(c))
	require.NoError(t, err)
	_, err = search.AStar[int, int](unreachable, search.WithObserver(c), search.WithMaxExpansions(1))
	require.ErrorIs(t, err, search.ErrExpansionLimit)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.SearchesTotal.WithLabelValues("bfs", "failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.SearchesTotal.WithLabelValues("astar", "aborted")))
	assert.Equal(t, 2, testutil.CollectAndCount(c.SearchesTotal))
}

func TestWriteText(t *testing.T) {
	c, reg := newCollector(t)
	p := countdown{Base: search.NewBase[int, int](2, 0)}
	_, err := search.DepthFirst[int, int](p, search.WithObserver(c))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, searchmetrics.WriteText(&buf, reg))
	out := buf.String()
	assert.Contains(t, out, "# TYPE lvsearch_searches_total counter")
	assert.Contains(t, out, `lvsearch_searches_total{algorithm="dfs",outcome="success"} 1`)
	assert.Contains(t, out, "lvsearch_solution_cost_count 1")
}

func TestNewCollector_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	searchmetrics.NewCollector(reg)
	assert.Panics(t, func() { searchmetrics.NewCollector(reg) })
	assert.NotPanics(t, func() { searchmetrics.NewCollector(nil) })
}
