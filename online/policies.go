package online

import (
	"github.com/matchlab/bimatch/bigraph"
	"github.com/matchlab/bimatch/match"
)

// Strategy names as reported in results and exports.
const (
	nameRand      = "Rand"
	nameRanking   = "Ranking"
	nameMinDegree = "MinDegree"
)

// randAlg matches each revealed vertex to a uniformly random unmatched
// neighbor.
type randAlg struct {
	seed int64
}

// Rand returns the random-choice greedy strategy. seed==0 selects the
// default deterministic stream.
func Rand(seed int64) match.Algorithm { return &randAlg{seed: seed} }

func (a *randAlg) Name() string { return nameRand }

// Run implements match.Algorithm. The RNG is consumed only on reveal
// steps that offer at least one candidate, so a truncated graph replays
// a strict prefix of the full run.
func (a *randAlg) Run(g *bigraph.Dense) (int, match.Trend, error) {
	if g == nil {
		return 0, nil, ErrGraphNil
	}
	rng := rngFromSeed(a.seed)

	return run(g, func(_ int, cands []int) int {
		return cands[rng.Intn(len(cands))]
	})
}

// rankingAlg fixes one random priority order over the left side and
// greedily matches each revealed vertex to its best-ranked unmatched
// neighbor.
type rankingAlg struct {
	seed int64
}

// Ranking returns the random-priority greedy strategy. seed==0 selects
// the default deterministic stream.
func Ranking(seed int64) match.Algorithm { return &rankingAlg{seed: seed} }

func (a *rankingAlg) Name() string { return nameRanking }

// Run implements match.Algorithm. The permutation depends only on the
// left partition size, so truncating the right side cannot perturb it.
func (a *rankingAlg) Run(g *bigraph.Dense) (int, match.Trend, error) {
	if g == nil {
		return 0, nil, ErrGraphNil
	}
	rank := permRange(g.SizeLeft(), rngFromSeed(a.seed))

	return run(g, func(_ int, cands []int) int {
		best := cands[0]
		for _, c := range cands[1:] {
			if rank[c] < rank[best] {
				best = c
			}
		}

		return best
	})
}

// minDegreeAlg matches each revealed vertex to the unmatched neighbor
// with the fewest edges toward already revealed right vertices.
type minDegreeAlg struct{}

// MinDegree returns the degree-biased greedy strategy. Only revealed
// edges count toward a neighbor's degree, keeping the policy inside the
// online contract (no look-ahead to unrevealed vertices).
func MinDegree() match.Algorithm { return minDegreeAlg{} }

func (minDegreeAlg) Name() string { return nameMinDegree }

// Run implements match.Algorithm. Ties break toward the lowest left
// index, so the policy is fully deterministic.
func (minDegreeAlg) Run(g *bigraph.Dense) (int, match.Trend, error) {
	if g == nil {
		return 0, nil, ErrGraphNil
	}

	return run(g, func(right int, cands []int) int {
		best, bestDeg := unmatched, 0
		for _, c := range cands {
			d := revealedDegree(g, c, right)
			if best == unmatched || d < bestDeg {
				best, bestDeg = c, d
			}
		}

		return best
	})
}

// revealedDegree counts edges from left-local vertex left to right-local
// vertices 0..revealed inclusive. Lookup failures cannot occur here:
// both indices come from validated partition ranges.
func revealedDegree(g *bigraph.Dense, left, revealed int) int {
	var d int
	for rr := 0; rr <= revealed; rr++ {
		if ok, err := g.BConnected(left, rr); err == nil && ok {
			d++
		}
	}

	return d
}
