package bench

import (
	"fmt"
	"sync"

	"github.com/matchlab/bimatch/bigraph"
	"github.com/matchlab/bimatch/match"
)

// RunGraph evaluates every algorithm against one populated graph and
// returns a Result per algorithm. The graph is shared read-only; each
// algorithm owns its transient state, so failures are attributed to the
// strategy that produced them.
func RunGraph(g *bigraph.Dense, algs []match.Algorithm, caseID int, seed int64) ([]Result, error) {
	if len(algs) == 0 {
		return nil, ErrNoAlgorithms
	}

	results := make([]Result, 0, len(algs))
	for _, alg := range algs {
		size, trend, err := alg.Run(g)
		if err != nil {
			return nil, fmt.Errorf("bench: case %d seed %d: %s: %w", caseID, seed, alg.Name(), err)
		}
		results = append(results, Result{
			CaseID:       caseID,
			Algorithm:    alg.Name(),
			Seed:         seed,
			MatchingSize: size,
			Trend:        trend,
		})
	}

	return results, nil
}

// job is one (case, seed) evaluation unit of a suite run.
type job struct {
	c    Case
	seed int64
}

// RunSuite executes every case of a suite: each case is repeated with
// seeds 0..Repeats-1, one freshly generated graph per seed, all
// algorithms on each graph. Jobs fan out across Options.Workers
// goroutines; result order is deterministic regardless of scheduling.
func RunSuite(cases []Case, algs []match.Algorithm, opts ...Option) ([]Result, error) {
	if len(algs) == 0 {
		return nil, ErrNoAlgorithms
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var jobs []job
	for _, c := range cases {
		for seed := int64(0); seed < int64(c.Repeats); seed++ {
			jobs = append(jobs, job{c: c, seed: seed})
		}
	}
	o.Logger.Info("running suite", "cases", len(cases), "graphs", len(jobs), "algorithms", len(algs), "workers", o.Workers)

	// One result slot per job keeps output ordering independent of the
	// worker schedule.
	perJob := make([][]Result, len(jobs))
	errs := make([]error, len(jobs))

	var wg sync.WaitGroup
	sem := make(chan struct{}, o.Workers)
	for i, jb := range jobs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, jb job) {
			defer wg.Done()
			defer func() { <-sem }()
			perJob[i], errs[i] = runJob(jb, algs)
		}(i, jb)
	}
	wg.Wait()

	var results []Result
	for i, err := range errs {
		if err != nil {
			return nil, err
		}
		results = append(results, perJob[i]...)
		o.Logger.Debug("graph done", "case", jobs[i].c.ID, "seed", jobs[i].seed)
	}
	o.Logger.Info("suite complete", "results", len(results))

	return results, nil
}

// runJob generates the job's graph and evaluates all algorithms on it.
func runJob(jb job, algs []match.Algorithm) ([]Result, error) {
	g, err := jb.c.Generator.Generate(jb.c.SizeLeft, jb.c.SizeRight, jb.seed)
	if err != nil {
		return nil, fmt.Errorf("bench: case %d seed %d: generate: %w", jb.c.ID, jb.seed, err)
	}

	return RunGraph(g, algs, jb.c.ID, jb.seed)
}
