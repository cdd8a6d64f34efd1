package maxflow

import (
	"fmt"

	"github.com/matchlab/bimatch/bigraph"
	"github.com/matchlab/bimatch/match"
)

// solverName identifies the offline optimum in results and exports.
const solverName = "MaxFlow"

// Solver computes the optimal matching trend via incremental maximum
// flow. It implements match.Algorithm; every Run owns its own residual
// network, so a single Solver is safe to reuse across graphs and
// goroutines.
type Solver struct {
	opts Options
}

// New builds a Solver from the given options.
func New(opts ...Option) *Solver {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Solver{opts: o}
}

// Name implements match.Algorithm.
func (s *Solver) Name() string { return solverName }

// Run computes, for every reveal count r in 0..sizeRight, the maximum
// matching size over the first r right vertices, and returns the
// maximum observed together with the full trend.
func (s *Solver) Run(g *bigraph.Dense) (int, match.Trend, error) {
	if g == nil {
		return 0, nil, ErrGraphNil
	}
	if s.opts.SourceSinkCap < defaultSourceSinkCap {
		return 0, nil, fmt.Errorf("SourceSinkCap=%d: %w", s.opts.SourceSinkCap, ErrBadCapacity)
	}

	if s.opts.Incremental {
		return s.runIncremental(g)
	}

	return s.runRebuild(g)
}

// runRebuild is the reference mode: the network is rebuilt and max-flow
// recomputed from scratch at every reveal step. Quadratic-or-worse in
// the number of reveals, kept for behavior fidelity; see runIncremental
// for the equivalent optimized mode.
func (s *Solver) runRebuild(g *bigraph.Dense) (int, match.Trend, error) {
	trend := make(match.Trend, 0, g.SizeRight()+1)
	trend = append(trend, match.TrendPoint{})

	var maxMatches int
	for r := 1; r <= g.SizeRight(); r++ {
		net := newNetwork(g.Size())
		s.wireEndpoints(g, net)
		for revealed := 0; revealed < r; revealed++ {
			if err := s.wireRevealed(g, net, revealed); err != nil {
				return 0, nil, err
			}
		}

		flow := net.maxflow()
		if flow > maxMatches {
			maxMatches = flow
		}
		trend = append(trend, match.TrendPoint{Revealed: r, Matched: flow})
	}

	return maxMatches, trend, nil
}

// runIncremental retains one residual network for the whole run. Each
// reveal wires the new right vertex into the residual graph and resumes
// the augmenting-path loop; flow accumulated so far never needs to be
// recomputed, because adding edges cannot invalidate committed flow.
func (s *Solver) runIncremental(g *bigraph.Dense) (int, match.Trend, error) {
	trend := make(match.Trend, 0, g.SizeRight()+1)
	trend = append(trend, match.TrendPoint{})

	net := newNetwork(g.Size())
	s.wireEndpoints(g, net)

	var flow int
	for r := 0; r < g.SizeRight(); r++ {
		if err := s.wireRevealed(g, net, r); err != nil {
			return 0, nil, err
		}
		flow += net.maxflow()
		trend = append(trend, match.TrendPoint{Revealed: r + 1, Matched: flow})
	}

	return flow, trend, nil
}

// wireEndpoints connects the synthetic source to every left vertex.
// Right→sink edges are wired per revealed vertex, so an unrevealed
// right vertex has no path to the sink in either mode.
func (s *Solver) wireEndpoints(g *bigraph.Dense, net *network) {
	for _, left := range g.IndependentSet(bigraph.Left) {
		net.addEdge(net.source, left, s.opts.SourceSinkCap)
	}
}

// wireRevealed adds the edges of right-local vertex r to the network:
// its drain into the sink and one unit-capacity edge from each of its
// left neighbors.
func (s *Solver) wireRevealed(g *bigraph.Dense, net *network, r int) error {
	global := r + g.SizeLeft()
	net.addEdge(global, net.sink, s.opts.SourceSinkCap)

	lefts, err := g.BList(r, bigraph.Right)
	if err != nil {
		return err
	}
	for _, left := range lefts {
		net.addEdge(left, global, 1)
	}

	return nil
}
