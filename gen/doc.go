// Package gen constructs synthetic bipartite graphs for the matching
// experiments.
//
// Two degree models are provided:
//
//   - Random(p) - Erdős–Rényi style: every left×right pair becomes an
//     edge independently with probability p.
//   - Gaussian(mean, sigma) - degree model: each left vertex draws a
//     target degree from N(mean, sigma), clamped to [0, sizeRight], and
//     connects to that many distinct random right vertices.
//
// Generators own the construction phase of a graph: they are the only
// code that mutates adjacency. The returned graph is treated as
// read-only by every downstream consumer.
//
// Determinism: a fixed (sizes, seed) pair always yields the same graph.
// Edge trials run in a stable order (left index ascending, right index
// ascending), and all randomness flows from one seeded stream; seed 0
// selects a fixed default stream.
package gen
