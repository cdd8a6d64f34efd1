package bench

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/matchlab/bimatch/match"
)

// WriteTrendChart renders an HTML line chart comparing the trend of
// every result: reveal count on the X axis, cumulative matching size on
// the Y axis, one series per (algorithm, seed) run. This is the visual
// form of the online/offline comparability contract - every strategy is
// plotted on the same reveal axis.
func WriteTrendChart(path string, results []Result) error {
	if len(results) == 0 {
		return ErrNoResults
	}

	chart := charts.NewLine()
	chart.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Matching size vs. vertices revealed",
			Subtitle: "online heuristics against the max-flow optimum",
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithXAxisOpts(opts.XAxis{Name: "revealed"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "matched"}),
	)

	chart.SetXAxis(revealAxis(results[0].Trend))
	for _, r := range results {
		chart.AddSeries(seriesName(r), trendData(r.Trend))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bench: chart: %w", err)
	}
	defer f.Close()

	if err = chart.Render(f); err != nil {
		return fmt.Errorf("bench: chart: render: %w", err)
	}

	return nil
}

// revealAxis converts a trend's reveal counts into axis labels.
func revealAxis(t match.Trend) []string {
	labels := make([]string, len(t))
	for i, p := range t {
		labels[i] = strconv.Itoa(p.Revealed)
	}

	return labels
}

// trendData converts a trend's matching sizes into chart points.
func trendData(t match.Trend) []opts.LineData {
	items := make([]opts.LineData, len(t))
	for i, p := range t {
		items[i] = opts.LineData{Value: p.Matched}
	}

	return items
}

// seriesName labels one run in the legend.
func seriesName(r Result) string {
	return fmt.Sprintf("%s (case %d, seed %d)", r.Algorithm, r.CaseID, r.Seed)
}
