// Package maxflow computes the exact optimum baseline for the online
// matching experiments: the maximum matching size as a function of how
// many right-side vertices have been revealed.
//
// For each reveal count r in 0..sizeRight the solver forms a unit-capacity
// flow network over size+2 nodes - every graph vertex plus a synthetic
// source and sink. The source feeds every left vertex and every right
// vertex drains into the sink (capacity SourceSinkCap, default 1); each
// revealed right vertex receives a unit-capacity edge from each of its
// left neighbors. Maximum flow on that network equals the maximum matching
// size for the revealed prefix, by the max-flow/min-cut correspondence on
// unit-capacity bipartite networks.
//
// Flow is computed with Edmonds–Karp: breadth-first search for the
// shortest augmenting path over edges with positive residual capacity,
// followed by the standard residual update along the predecessor chain.
// Reverse residual traversal is part of the search, so previously
// committed unit flows can be rerouted - this is what separates the exact
// optimum from the greedy heuristics it is compared against.
//
// Two execution modes produce identical trends:
//
//   - the default rebuilds the network from scratch at every reveal step
//     and serves as the simple reference mode;
//   - WithIncremental retains the residual network across reveal steps and
//     only searches for augmenting paths through the freshly revealed
//     vertex, which is substantially cheaper on large graphs.
//
// Capacities and flow values are small non-negative integers bounded by
// the graph size; no floating point is involved.
package maxflow
