package gen

import (
	"fmt"

	"github.com/matchlab/bimatch/bigraph"
)

// Probability domain bounds for Random.
const (
	probMin = 0.0
	probMax = 1.0
)

// randomGen samples each left×right edge independently.
type randomGen struct {
	p float64
}

// Random returns the Erdős–Rényi style generator with edge probability p.
// The probability is validated at Generate time so a misconfigured suite
// fails with a diagnosable sentinel rather than at construction.
func Random(p float64) Generator { return &randomGen{p: p} }

func (g *randomGen) Name() string { return "Random" }

// Generate implements Generator. Bernoulli trials run in stable order:
// left index ascending, right index ascending within each left vertex.
func (g *randomGen) Generate(sizeLeft, sizeRight int, seed int64) (*bigraph.Dense, error) {
	if g.p < probMin || g.p > probMax {
		return nil, fmt.Errorf("Random: p=%v not in [%v, %v]: %w", g.p, probMin, probMax, ErrInvalidProbability)
	}
	graph, err := bigraph.NewDense(sizeLeft, sizeRight)
	if err != nil {
		return nil, fmt.Errorf("Random: %w", err)
	}

	rng := rngFromSeed(seed)
	for l := 0; l < sizeLeft; l++ {
		var rights []int
		for r := 0; r < sizeRight; r++ {
			if rng.Float64() < g.p {
				rights = append(rights, r)
			}
		}
		if err = graph.BBulkConnect(l, rights); err != nil {
			return nil, fmt.Errorf("Random: connect left %d: %w", l, err)
		}
	}

	return graph, nil
}
