// Package bimatch compares strategies for maximum matching in bipartite
// graphs: online (single-pass, irrevocable) greedy heuristics against an
// offline optimum computed via incremental maximum flow.
//
// Everything is organized under flat subpackages:
//
//	bigraph/ — dense bipartite adjacency with global and partition-local accessors
//	match/   — the shared algorithm contract: run a graph, return (size, trend)
//	online/  — the greedy family: Rand, Ranking (random-priority), MinDegree
//	maxflow/ — Edmonds–Karp reveal-by-reveal optimum, rebuild or incremental
//	gen/     — synthetic graph generators (uniform random, Gaussian degree model)
//	bench/   — experiment harness: CSV suites, aggregation, xlsx export, charts
//
// The connecting idea is the trend: every strategy, online or offline,
// reports the cumulative matching size after each right-side vertex is
// revealed, so heuristics and the exact optimum plot on the same axis.
//
// All algorithm packages are deterministic given a seed, mutate nothing
// they are handed, and keep per-run state strictly local, so evaluations
// parallelize safely over shared read-only graphs.
package bimatch
