// Package bigraph provides the bipartite graph abstraction shared by all
// matching algorithms in bimatch.
//
// A graph owns a symmetric boolean adjacency relation over a fixed vertex
// universe of size sizeLeft+sizeRight. Vertices are plain integer indices:
// [0, sizeLeft) form the left partition, [sizeLeft, size) the right one.
// Partition sizes are fixed at construction and indices are stable for the
// graph's lifetime.
//
// The structure is populated once, during a construction phase owned by a
// generator, via BulkConnect / BBulkConnect. After that phase every consumer
// treats the graph as read-only: no deletion is supported, and no algorithm
// mutates adjacency. Because of this discipline a single graph instance may
// be shared across concurrently running algorithm evaluations without locks.
//
// Two index vocabularies are offered over the same relation:
//
//   - global accessors (List, Connected, BulkConnect) speak whole-graph
//     indices in [0, size);
//   - partition-local accessors (BList, BConnected, BBulkConnect) speak
//     0-based indices within one side, which is the natural vocabulary for
//     generators and online policies.
//
// The local accessors are pure index translation; they add no semantics.
//
// # Errors
//
//	ErrBadPartition     - negative partition size at construction.
//	ErrVertexOutOfRange - a vertex index outside its valid range.
//	ErrBadLookupKey     - Lookup called with neither one nor two indices.
package bigraph
