package gen

import (
	"errors"
	"math/rand"

	"github.com/matchlab/bimatch/bigraph"
)

// Sentinel errors for generator parameters.
var (
	// ErrInvalidProbability is returned when an edge probability lies
	// outside the closed interval [0, 1].
	ErrInvalidProbability = errors.New("gen: probability out of range")

	// ErrBadDistribution is returned for a malformed degree
	// distribution (negative standard deviation).
	ErrBadDistribution = errors.New("gen: invalid degree distribution")
)

// Generator produces a populated bipartite graph from partition sizes
// and a seed. Implementations must be deterministic per (sizes, seed)
// and must not retain state between Generate calls.
type Generator interface {
	// Name identifies the degree model in suite configs and exports.
	Name() string

	// Generate builds a fresh graph. Size validation is delegated to
	// bigraph.NewDense, so negative sizes surface ErrBadPartition.
	Generate(sizeLeft, sizeRight int, seed int64) (*bigraph.Dense, error)
}

// defaultRNGSeed is substituted when callers pass seed==0, keeping
// zero-configured runs reproducible.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic stream for one Generate call.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}
