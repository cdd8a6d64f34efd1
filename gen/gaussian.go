package gen

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/matchlab/bimatch/bigraph"
)

// gaussianGen draws one target degree per left vertex from a normal
// distribution.
type gaussianGen struct {
	mean  float64
	sigma float64
}

// Gaussian returns the normal degree-model generator. Drawn degrees are
// rounded and clamped to [0, sizeRight]; sigma must be non-negative.
func Gaussian(mean, sigma float64) Generator {
	return &gaussianGen{mean: mean, sigma: sigma}
}

func (g *gaussianGen) Name() string { return "Gaussian" }

// Generate implements Generator. Sampling goes through the inverse CDF
// fed by our own seeded uniform stream, so determinism stays in one
// place instead of threading a second RNG source into distuv.
func (g *gaussianGen) Generate(sizeLeft, sizeRight int, seed int64) (*bigraph.Dense, error) {
	if g.sigma < 0 {
		return nil, fmt.Errorf("Gaussian: sigma=%v: %w", g.sigma, ErrBadDistribution)
	}
	graph, err := bigraph.NewDense(sizeLeft, sizeRight)
	if err != nil {
		return nil, fmt.Errorf("Gaussian: %w", err)
	}

	rng := rngFromSeed(seed)
	dist := distuv.Normal{Mu: g.mean, Sigma: g.sigma}

	for l := 0; l < sizeLeft; l++ {
		// Clamp in the float domain first: the inverse CDF can yield
		// ±Inf at the extreme tails of the uniform draw.
		z := math.Round(g.sample(dist, rng.Float64()))
		if z < 0 || math.IsNaN(z) {
			z = 0
		}
		if z > float64(sizeRight) {
			z = float64(sizeRight)
		}
		if err = graph.BBulkConnect(l, pickDistinct(sizeRight, int(z), rng)); err != nil {
			return nil, fmt.Errorf("Gaussian: connect left %d: %w", l, err)
		}
	}

	return graph, nil
}

// sample maps one uniform draw through the distribution. Sigma zero is
// a legal degenerate case: every vertex gets the mean degree.
func (g *gaussianGen) sample(dist distuv.Normal, u float64) float64 {
	if g.sigma == 0 {
		return g.mean
	}

	return dist.Quantile(u)
}

// pickDistinct selects k distinct right-local indices via a partial
// Fisher–Yates shuffle of 0..n-1.
func pickDistinct(n, k int, rng *rand.Rand) []int {
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:k]
}
