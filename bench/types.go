package bench

import (
	"errors"
	"io"

	charmlog "github.com/charmbracelet/log"

	"github.com/matchlab/bimatch/gen"
	"github.com/matchlab/bimatch/match"
)

// Sentinel errors for suite parsing and execution.
var (
	// ErrBadSuite is returned for a structurally invalid suite file
	// (missing columns, non-numeric fields, bad header).
	ErrBadSuite = errors.New("bench: malformed suite")

	// ErrUnknownGenerator is returned when a suite row names a degree
	// model this harness does not provide.
	ErrUnknownGenerator = errors.New("bench: unknown generator")

	// ErrNoAlgorithms is returned when a run is requested with an
	// empty strategy roster.
	ErrNoAlgorithms = errors.New("bench: no algorithms to run")

	// ErrNoResults is returned by exports and aggregation on an empty
	// result set.
	ErrNoResults = errors.New("bench: no results")
)

// Case is one experiment configuration: a degree model, partition
// sizes, and the number of seeded repetitions.
type Case struct {
	ID        int
	Generator gen.Generator
	SizeLeft  int
	SizeRight int
	Repeats   int
}

// Result captures one algorithm run on one generated graph.
type Result struct {
	CaseID       int
	Algorithm    string
	Seed         int64
	MatchingSize int
	Trend        match.Trend
}

// Aggregate summarizes one algorithm's behavior across the seeded
// repeats of a single case.
type Aggregate struct {
	CaseID    int
	Algorithm string
	Repeats   int
	SizeLeft  int
	SizeRight int

	MeanSize float64
	StdSize  float64

	// MeanTrend and StdTrend hold the pointwise statistics of the
	// matching-size component, one entry per reveal count.
	MeanTrend []float64
	StdTrend  []float64
}

// Options configures suite execution.
type Options struct {
	// Workers bounds the number of graphs evaluated concurrently.
	Workers int

	// Logger receives progress output; discarded by default.
	Logger *charmlog.Logger
}

// DefaultOptions runs single-worker and silent.
func DefaultOptions() Options {
	return Options{
		Workers: 1,
		Logger:  charmlog.New(io.Discard),
	}
}

// Option mutates Options in the functional style.
type Option func(*Options)

// WithWorkers sets the concurrency bound; values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.Workers = n
		}
	}
}

// WithLogger directs progress output to l.
func WithLogger(l *charmlog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
