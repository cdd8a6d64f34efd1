package bench_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchlab/bimatch/bench"
	"github.com/matchlab/bimatch/gen"
	"github.com/matchlab/bimatch/match"
	"github.com/matchlab/bimatch/maxflow"
	"github.com/matchlab/bimatch/online"
)

// roster is the default algorithm set exercised by harness tests.
func roster() []match.Algorithm {
	return []match.Algorithm{
		online.Rand(1),
		online.Ranking(1),
		online.MinDegree(),
		maxflow.New(),
	}
}

func smallCases() []bench.Case {
	return []bench.Case{
		{ID: 1, Generator: gen.Random(0.3), SizeLeft: 6, SizeRight: 8, Repeats: 3},
		{ID: 2, Generator: gen.Gaussian(2, 1), SizeLeft: 5, SizeRight: 5, Repeats: 2},
	}
}

func TestRunGraph_NoAlgorithms(t *testing.T) {
	g, err := gen.Random(0.5).Generate(3, 3, 1)
	require.NoError(t, err)

	_, err = bench.RunGraph(g, nil, 1, 0)
	assert.ErrorIs(t, err, bench.ErrNoAlgorithms)
}

func TestRunSuite_Shape(t *testing.T) {
	results, err := bench.RunSuite(smallCases(), roster())
	require.NoError(t, err)

	// (3 + 2 graphs) × 4 algorithms.
	require.Len(t, results, 20)
	for _, r := range results {
		assert.NotEmpty(t, r.Algorithm)
		assert.True(t, r.Trend.Monotone(), "%s case %d", r.Algorithm, r.CaseID)
		assert.Equal(t, r.MatchingSize, r.Trend.Final(), "%s case %d", r.Algorithm, r.CaseID)
	}
}

// TestRunSuite_OptimumDominates: the flow optimum is pointwise at least
// every online heuristic on the same graph - the core guarantee the
// comparison rests on.
func TestRunSuite_OptimumDominates(t *testing.T) {
	results, err := bench.RunSuite(smallCases(), roster())
	require.NoError(t, err)

	type graphKey struct {
		caseID int
		seed   int64
	}
	optimum := make(map[graphKey]match.Trend)
	for _, r := range results {
		if r.Algorithm == "MaxFlow" {
			optimum[graphKey{r.CaseID, r.Seed}] = r.Trend
		}
	}

	for _, r := range results {
		if r.Algorithm == "MaxFlow" {
			continue
		}
		opt, ok := optimum[graphKey{r.CaseID, r.Seed}]
		require.True(t, ok)
		require.Len(t, r.Trend, len(opt))
		for i := range opt {
			assert.GreaterOrEqual(t, opt[i].Matched, r.Trend[i].Matched,
				"%s case %d seed %d: optimum must dominate at reveal %d", r.Algorithm, r.CaseID, r.Seed, i)
		}
	}
}

// TestRunSuite_WorkersDeterministic: concurrency must not change the
// collected results or their order.
func TestRunSuite_WorkersDeterministic(t *testing.T) {
	serial, err := bench.RunSuite(smallCases(), roster())
	require.NoError(t, err)
	parallel, err := bench.RunSuite(smallCases(), roster(), bench.WithWorkers(4))
	require.NoError(t, err)

	assert.Equal(t, serial, parallel)
}

func TestAggregateResults(t *testing.T) {
	cases := []bench.Case{{ID: 7, Generator: gen.Random(0.5), SizeLeft: 2, SizeRight: 2, Repeats: 2}}
	results := []bench.Result{
		{CaseID: 7, Algorithm: "Rand", Seed: 0, MatchingSize: 1, Trend: match.Trend{{Revealed: 0, Matched: 0}, {Revealed: 1, Matched: 0}, {Revealed: 2, Matched: 1}}},
		{CaseID: 7, Algorithm: "Rand", Seed: 1, MatchingSize: 2, Trend: match.Trend{{Revealed: 0, Matched: 0}, {Revealed: 1, Matched: 1}, {Revealed: 2, Matched: 2}}},
	}

	aggs, err := bench.AggregateResults(cases, results)
	require.NoError(t, err)
	require.Len(t, aggs, 1)

	a := aggs[0]
	assert.Equal(t, 7, a.CaseID)
	assert.Equal(t, "Rand", a.Algorithm)
	assert.Equal(t, 2, a.Repeats)
	assert.InDelta(t, 1.5, a.MeanSize, 1e-12)
	assert.InDelta(t, 0.7071067811865476, a.StdSize, 1e-12)
	assert.Equal(t, []float64{0, 0.5, 1.5}, a.MeanTrend)
	assert.InDelta(t, 0.7071067811865476, a.StdTrend[1], 1e-12)
}

func TestAggregateResults_Empty(t *testing.T) {
	_, err := bench.AggregateResults(nil, nil)
	assert.ErrorIs(t, err, bench.ErrNoResults)
}

// TestAggregate_SingleRepeat: standard deviation degrades to zero, not
// NaN, for one observation.
func TestAggregate_SingleRepeat(t *testing.T) {
	cases := []bench.Case{{ID: 1, Generator: gen.Random(0.5), SizeLeft: 2, SizeRight: 1, Repeats: 1}}
	results := []bench.Result{
		{CaseID: 1, Algorithm: "Rand", Seed: 0, MatchingSize: 1, Trend: match.Trend{{Revealed: 0, Matched: 0}, {Revealed: 1, Matched: 1}}},
	}

	aggs, err := bench.AggregateResults(cases, results)
	require.NoError(t, err)
	require.Len(t, aggs, 1)
	assert.Zero(t, aggs[0].StdSize)
	assert.Equal(t, []float64{0, 0}, aggs[0].StdTrend)
}

func TestExports(t *testing.T) {
	results, err := bench.RunSuite(smallCases(), roster())
	require.NoError(t, err)
	aggs, err := bench.AggregateResults(smallCases(), results)
	require.NoError(t, err)

	dir := t.TempDir()

	xlsx := filepath.Join(dir, "results.xlsx")
	require.NoError(t, bench.WriteXLSX(xlsx, results))
	assert.FileExists(t, xlsx)

	agg := filepath.Join(dir, "agg.xlsx")
	require.NoError(t, bench.WriteAggregateXLSX(agg, aggs))
	assert.FileExists(t, agg)

	chart := filepath.Join(dir, "trend.html")
	require.NoError(t, bench.WriteTrendChart(chart, results))
	assert.FileExists(t, chart)
}

func TestExports_Empty(t *testing.T) {
	assert.ErrorIs(t, bench.WriteXLSX("unused.xlsx", nil), bench.ErrNoResults)
	assert.ErrorIs(t, bench.WriteAggregateXLSX("unused.xlsx", nil), bench.ErrNoResults)
	assert.ErrorIs(t, bench.WriteTrendChart("unused.html", nil), bench.ErrNoResults)
}
