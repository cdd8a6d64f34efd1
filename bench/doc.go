// Package bench is the evaluation harness: it iterates experiment
// configurations, instantiates graphs, runs every registered matching
// strategy, and collects the (matching size, trend) pairs for export.
//
// An experiment suite is a CSV file, one case per row:
//
//	id,generator,size_left,size_right,arg1,arg2,repeats
//	1,random,50,50,0.1,0,10
//	2,gaussian,50,50,5,2,10
//
// The generator column selects the degree model ("random" reads arg1 as
// the edge probability; "gaussian" reads arg1/arg2 as mean and sigma of
// the degree distribution). Each case is repeated with seeds 0..repeats-1,
// one fresh graph per seed, every algorithm running against the same
// read-only graph instance.
//
// Cases fan out across a bounded worker pool. This is safe because
// graphs are immutable once generated and every algorithm owns its
// per-call state; no two runs ever share a mutable residual network.
//
// Collected results can be aggregated across repeats (mean and standard
// deviation of matching sizes and of each trend position), exported to
// a spreadsheet, or rendered as an HTML trend chart for side-by-side
// comparison of online heuristics against the flow optimum.
package bench
