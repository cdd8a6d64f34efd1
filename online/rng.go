package online

// Deterministic RNG helpers shared by the randomized policies.
// math/rand.Rand is not goroutine-safe; each Run call builds its own
// stream from the strategy's seed, so concurrent runs never share one.

import "math/rand"

// defaultRNGSeed is the fixed seed substituted when callers pass seed==0.
// Arbitrary but stable, to keep zero-configured runs reproducible.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 selects defaultRNGSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// permRange returns a permutation of 0..n-1 drawn from rng via an
// in-place Fisher–Yates shuffle.
func permRange(n int, rng *rand.Rand) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	return p
}
