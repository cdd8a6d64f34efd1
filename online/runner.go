package online

import (
	"errors"

	"github.com/matchlab/bimatch/bigraph"
	"github.com/matchlab/bimatch/match"
)

// ErrGraphNil is returned when a strategy is run against a nil graph.
var ErrGraphNil = errors.New("online: graph is nil")

// unmatched marks a reveal step where the policy committed no edge.
const unmatched = -1

// pickFunc selects one left-local candidate for the revealed right-local
// vertex, or returns unmatched. candidates is non-empty, ascending, and
// contains only currently unmatched neighbors.
type pickFunc func(right int, candidates []int) int

// runner holds the mutable state of one single-pass reveal loop.
// A fresh runner is built per Run call; nothing is shared between runs.
type runner struct {
	graph       *bigraph.Dense
	matchedLeft []bool // left-local index → already committed
	matched     int
	trend       match.Trend
}

// run drives the reveal loop: for each right vertex in index order it
// collects the unmatched neighbors, lets pick commit at most one of
// them, and appends the cumulative matching size to the trend.
func run(g *bigraph.Dense, pick pickFunc) (int, match.Trend, error) {
	if g == nil {
		return 0, nil, ErrGraphNil
	}

	r := &runner{
		graph:       g,
		matchedLeft: make([]bool, g.SizeLeft()),
		trend:       make(match.Trend, 0, g.SizeRight()+1),
	}
	r.trend = append(r.trend, match.TrendPoint{})

	for right := 0; right < g.SizeRight(); right++ {
		cands, err := r.candidates(right)
		if err != nil {
			return 0, nil, err
		}
		if len(cands) > 0 {
			if left := pick(right, cands); left != unmatched {
				r.matchedLeft[left] = true
				r.matched++
			}
		}
		r.trend = append(r.trend, match.TrendPoint{Revealed: right + 1, Matched: r.matched})
	}

	return r.matched, r.trend, nil
}

// candidates returns the unmatched left-local neighbors of the revealed
// right-local vertex, in ascending order.
func (r *runner) candidates(right int) ([]int, error) {
	nbrs, err := r.graph.BList(right, bigraph.Right)
	if err != nil {
		return nil, err
	}
	cands := nbrs[:0]
	for _, left := range nbrs {
		if !r.matchedLeft[left] {
			cands = append(cands, left)
		}
	}

	return cands, nil
}
