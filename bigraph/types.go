package bigraph

import "errors"

// Sentinel errors for graph construction and queries.
var (
	// ErrBadPartition is returned when a partition size is negative.
	ErrBadPartition = errors.New("bigraph: partition size must be non-negative")

	// ErrVertexOutOfRange is returned when a vertex index lies outside
	// its valid range ([0, size) for global accessors, [0, sizeSide)
	// for partition-local ones).
	ErrVertexOutOfRange = errors.New("bigraph: vertex index out of range")

	// ErrBadLookupKey is returned by Lookup for a key that is neither a
	// single vertex index nor a pair of indices.
	ErrBadLookupKey = errors.New("bigraph: lookup key must be one or two indices")
)

// Side selects one of the two partitions of a bipartite graph.
type Side int

const (
	// Left selects the partition occupying indices [0, sizeLeft).
	Left Side = iota
	// Right selects the partition occupying indices [sizeLeft, size).
	Right
)

// String returns "left" or "right" for logging and error context.
func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}
