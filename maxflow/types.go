package maxflow

import "errors"

// Sentinel errors for solver configuration and input.
var (
	// ErrGraphNil is returned when the solver is run against a nil graph.
	ErrGraphNil = errors.New("maxflow: graph is nil")

	// ErrBadCapacity is returned when SourceSinkCap is below 1.
	ErrBadCapacity = errors.New("maxflow: source/sink capacity must be at least 1")
)

// defaultSourceSinkCap keeps the network a plain matching network: one
// unit per vertex on the source and sink sides.
const defaultSourceSinkCap = 1

// Options configures the solver.
type Options struct {
	// SourceSinkCap is the capacity of source→left and right→sink
	// edges. Values above 1 permit multi-assignment per vertex; the
	// result is then a b-matching bound, outside the matching
	// correctness contract. Default 1.
	SourceSinkCap int

	// Incremental retains the residual network across reveal steps
	// instead of rebuilding it from scratch. Observable output is
	// identical; only the work per step changes.
	Incremental bool
}

// DefaultOptions returns the production defaults: unit source/sink
// capacity, from-scratch rebuild per reveal step.
func DefaultOptions() Options {
	return Options{SourceSinkCap: defaultSourceSinkCap}
}

// Option mutates Options in the functional style.
type Option func(*Options)

// WithSourceSinkCap overrides the source/sink edge capacity.
// Values below 1 are rejected at Run time with ErrBadCapacity.
func WithSourceSinkCap(c int) Option {
	return func(o *Options) { o.SourceSinkCap = c }
}

// WithIncremental switches the solver to the retained-residual mode.
func WithIncremental() Option {
	return func(o *Options) { o.Incremental = true }
}
