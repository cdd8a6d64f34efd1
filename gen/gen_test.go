package gen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchlab/bimatch/bigraph"
	"github.com/matchlab/bimatch/gen"
)

// edgeSet flattens a graph's adjacency into comparable (left, right)
// pairs.
func edgeSet(t *testing.T, g *bigraph.Dense) [][2]int {
	t.Helper()
	var out [][2]int
	for l := 0; l < g.SizeLeft(); l++ {
		rights, err := g.BList(l, bigraph.Left)
		require.NoError(t, err)
		for _, r := range rights {
			out = append(out, [2]int{l, r})
		}
	}

	return out
}

// TestRandom_Validation rejects out-of-range probabilities and sizes.
func TestRandom_Validation(t *testing.T) {
	_, err := gen.Random(-0.1).Generate(3, 3, 1)
	assert.ErrorIs(t, err, gen.ErrInvalidProbability)

	_, err = gen.Random(1.1).Generate(3, 3, 1)
	assert.ErrorIs(t, err, gen.ErrInvalidProbability)

	_, err = gen.Random(0.5).Generate(-1, 3, 1)
	assert.ErrorIs(t, err, bigraph.ErrBadPartition)
}

// TestRandom_Extremes covers the deterministic probability endpoints.
func TestRandom_Extremes(t *testing.T) {
	empty, err := gen.Random(0).Generate(4, 4, 1)
	require.NoError(t, err)
	assert.Empty(t, edgeSet(t, empty), "p=0 must produce no edges")

	full, err := gen.Random(1).Generate(4, 4, 1)
	require.NoError(t, err)
	assert.Len(t, edgeSet(t, full), 16, "p=1 must produce the complete bipartite graph")
}

// TestRandom_Deterministic: same seed => identical edge set, and the
// zero seed maps onto the fixed default stream.
func TestRandom_Deterministic(t *testing.T) {
	g1, err := gen.Random(0.4).Generate(6, 7, 42)
	require.NoError(t, err)
	g2, err := gen.Random(0.4).Generate(6, 7, 42)
	require.NoError(t, err)
	assert.Equal(t, edgeSet(t, g1), edgeSet(t, g2))

	z1, err := gen.Random(0.4).Generate(6, 7, 0)
	require.NoError(t, err)
	z2, err := gen.Random(0.4).Generate(6, 7, 0)
	require.NoError(t, err)
	assert.Equal(t, edgeSet(t, z1), edgeSet(t, z2), "seed 0 must be a stable default stream")
}

// TestGaussian_Validation rejects a negative sigma.
func TestGaussian_Validation(t *testing.T) {
	_, err := gen.Gaussian(3, -1).Generate(3, 3, 1)
	assert.ErrorIs(t, err, gen.ErrBadDistribution)
}

// TestGaussian_DegenerateSigma: sigma 0 pins every left degree to the
// rounded mean.
func TestGaussian_DegenerateSigma(t *testing.T) {
	g, err := gen.Gaussian(2, 0).Generate(5, 6, 9)
	require.NoError(t, err)

	for l := 0; l < g.SizeLeft(); l++ {
		rights, err := g.BList(l, bigraph.Left)
		require.NoError(t, err)
		assert.Len(t, rights, 2, "left %d", l)
	}
}

// TestGaussian_DegreeClamp: a mean far above sizeRight saturates every
// left vertex instead of overflowing.
func TestGaussian_DegreeClamp(t *testing.T) {
	g, err := gen.Gaussian(100, 5).Generate(3, 4, 7)
	require.NoError(t, err)

	for l := 0; l < g.SizeLeft(); l++ {
		rights, err := g.BList(l, bigraph.Left)
		require.NoError(t, err)
		assert.Len(t, rights, 4, "left %d must be clamped to sizeRight", l)
	}
}

// TestGaussian_Deterministic: same seed => same graph.
func TestGaussian_Deterministic(t *testing.T) {
	g1, err := gen.Gaussian(3, 1.5).Generate(8, 10, 21)
	require.NoError(t, err)
	g2, err := gen.Gaussian(3, 1.5).Generate(8, 10, 21)
	require.NoError(t, err)
	assert.Equal(t, edgeSet(t, g1), edgeSet(t, g2))
}

// TestGenerators_Symmetry: generated adjacency is symmetric for both
// models.
func TestGenerators_Symmetry(t *testing.T) {
	graphs := []*bigraph.Dense{}
	g, err := gen.Random(0.5).Generate(5, 5, 2)
	require.NoError(t, err)
	graphs = append(graphs, g)
	g, err = gen.Gaussian(2, 1).Generate(5, 5, 2)
	require.NoError(t, err)
	graphs = append(graphs, g)

	for _, g := range graphs {
		for i := 0; i < g.Size(); i++ {
			for j := 0; j < g.Size(); j++ {
				cij, err := g.Connected(i, j)
				require.NoError(t, err)
				cji, err := g.Connected(j, i)
				require.NoError(t, err)
				assert.Equal(t, cij, cji)
			}
		}
	}
}
