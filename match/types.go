package match

import (
	"errors"
	"fmt"

	"github.com/matchlab/bimatch/bigraph"
)

// ErrBadTrend is returned by Validate when a trend violates the shared
// shape contract (length, baseline, or monotonicity).
var ErrBadTrend = errors.New("match: malformed trend")

// TrendPoint records the cumulative matching size after a number of
// right-side vertices have been revealed.
type TrendPoint struct {
	// Revealed counts right vertices revealed so far.
	Revealed int
	// Matched is the cumulative matching size at that point.
	Matched int
}

// Trend is the ordered reveal history of one algorithm run.
type Trend []TrendPoint

// Algorithm is the uniform shape of every matching strategy, online or
// offline. Run computes a matching on g and returns its final size
// together with the full trend. Run must treat g as read-only and own
// all of its transient state exclusively.
type Algorithm interface {
	// Name identifies the strategy in results and exports.
	Name() string

	// Run executes the strategy against g.
	Run(g *bigraph.Dense) (matchingSize int, trend Trend, err error)
}

// Monotone reports whether both components of the trend are
// non-decreasing between consecutive entries.
func (t Trend) Monotone() bool {
	for i := 1; i < len(t); i++ {
		if t[i].Revealed < t[i-1].Revealed || t[i].Matched < t[i-1].Matched {
			return false
		}
	}

	return true
}

// Final returns the matching size recorded by the last trend entry,
// or 0 for an empty trend.
func (t Trend) Final() int {
	if len(t) == 0 {
		return 0
	}

	return t[len(t)-1].Matched
}

// Validate checks the full shape contract for a graph with sizeRight
// right vertices: sizeRight+1 entries, (0,0) baseline, Revealed
// stepping by one, and monotone matching sizes.
func (t Trend) Validate(sizeRight int) error {
	if len(t) != sizeRight+1 {
		return fmt.Errorf("%w: %d entries, want %d", ErrBadTrend, len(t), sizeRight+1)
	}
	if t[0] != (TrendPoint{}) {
		return fmt.Errorf("%w: baseline %+v, want (0,0)", ErrBadTrend, t[0])
	}
	for i := 1; i < len(t); i++ {
		if t[i].Revealed != i {
			return fmt.Errorf("%w: entry %d reveals %d", ErrBadTrend, i, t[i].Revealed)
		}
		if t[i].Matched < t[i-1].Matched {
			return fmt.Errorf("%w: matched drops at entry %d", ErrBadTrend, i)
		}
	}

	return nil
}
