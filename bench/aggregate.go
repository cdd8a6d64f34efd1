package bench

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// AggregateResults groups results by (case, algorithm) and computes
// mean and standard deviation of the matching sizes and of every trend
// position across the seeded repeats. Trends within one group share a
// length by construction (same case, same graph shape).
func AggregateResults(cases []Case, results []Result) ([]Aggregate, error) {
	if len(results) == 0 {
		return nil, ErrNoResults
	}

	shape := make(map[int]Case, len(cases))
	for _, c := range cases {
		shape[c.ID] = c
	}

	type key struct {
		caseID    int
		algorithm string
	}
	groups := make(map[key][]Result)
	var order []key
	for _, r := range results {
		k := key{caseID: r.CaseID, algorithm: r.Algorithm}
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], r)
	}
	// Stable output: case id first, algorithm name second.
	sort.Slice(order, func(i, j int) bool {
		if order[i].caseID != order[j].caseID {
			return order[i].caseID < order[j].caseID
		}
		return order[i].algorithm < order[j].algorithm
	})

	aggs := make([]Aggregate, 0, len(order))
	for _, k := range order {
		group := groups[k]
		c := shape[k.caseID]

		sizes := make([]float64, len(group))
		for i, r := range group {
			sizes[i] = float64(r.MatchingSize)
		}

		trendLen := len(group[0].Trend)
		meanTrend := make([]float64, trendLen)
		stdTrend := make([]float64, trendLen)
		column := make([]float64, len(group))
		for pos := 0; pos < trendLen; pos++ {
			for i, r := range group {
				column[i] = float64(r.Trend[pos].Matched)
			}
			meanTrend[pos] = stat.Mean(column, nil)
			stdTrend[pos] = sampleStd(column)
		}

		aggs = append(aggs, Aggregate{
			CaseID:    k.caseID,
			Algorithm: k.algorithm,
			Repeats:   len(group),
			SizeLeft:  c.SizeLeft,
			SizeRight: c.SizeRight,
			MeanSize:  stat.Mean(sizes, nil),
			StdSize:   sampleStd(sizes),
			MeanTrend: meanTrend,
			StdTrend:  stdTrend,
		})
	}

	return aggs, nil
}

// sampleStd returns the sample standard deviation, defined as 0 for a
// single observation (stat.StdDev yields NaN there).
func sampleStd(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}

	return stat.StdDev(xs, nil)
}
