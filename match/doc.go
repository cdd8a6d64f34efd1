// Package match defines the contract shared by every matching strategy in
// bimatch: consume a bipartite graph, produce a matching size and a trend.
//
// A trend is the ordered sequence of (revealed, matched) pairs recording
// the cumulative matching size as right-side vertices are revealed one by
// one. It always has exactly sizeRight+1 entries - one before any reveal,
// one after each - starts at (0, 0), and is non-decreasing in both
// components. The trend is what makes an online heuristic and the offline
// flow optimum comparable on the same axis.
//
// Implementations must not mutate the input graph, must keep all working
// state local to a single Run call, and must be reproducible: the same
// graph (and, for randomized strategies, the same seed) yields the same
// result.
package match
