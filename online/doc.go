// Package online implements the single-pass greedy family of matching
// strategies.
//
// Every strategy here obeys the same behavioral contract: right-side
// vertices are revealed one by one in index order, and for each revealed
// vertex the policy decides immediately - and irrevocably - whether to
// match it, and to which currently unmatched left neighbor. A policy may
// consult only the edges of vertices already revealed and the current
// matched set; there is no look-ahead, and a left vertex, once matched,
// is never reassigned. After every reveal the cumulative matching size is
// appended to the trend, so each run yields exactly sizeRight+1 entries.
//
// Policies differ solely in the selection rule:
//
//   - Rand picks uniformly at random among the unmatched neighbors.
//   - Ranking fixes one random permutation of the left side up front and
//     always takes the unmatched neighbor with the highest priority
//     (the classic random-priority greedy rule).
//   - MinDegree takes the unmatched neighbor with the fewest edges to
//     already revealed right vertices, breaking ties toward the lowest
//     index.
//
// Randomized policies are deterministic for a fixed seed; seed 0 selects
// a stable default stream, so runs are reproducible by default.
package online
