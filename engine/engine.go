package engine

import (
	"context"
	"time"

	"github.com/katalvlaran/cyberank/compress"
	"github.com/katalvlaran/cyberank/entropy"
	"github.com/katalvlaran/cyberank/graph"
	"github.com/katalvlaran/cyberank/karma"
	"github.com/katalvlaran/cyberank/rank"
	"github.com/katalvlaran/cyberank/stake"
	"github.com/katalvlaran/cyberank/stationary"
	"github.com/katalvlaran/cyberank/weight"
)

// Result holds the engine's four caller-visible outputs (spec §6):
// rank, entropy, and light are per-node; karma is per-user.
type Result struct {
	Rank       []float64
	Entropy    []float64
	Light      []float64
	Karma      []float64
	Iterations int
}

// Run executes the nine-stage pipeline once over ds, returning the
// caller-visible outputs of spec §6. ds must already be validated
// (graph.NewDataset or graph.FromCounts); Run itself performs no
// precondition checks beyond what rank.Solve validates
// (dampingFactor, tolerance — spec §7 NumericalDegeneracy).
//
// ctx is checked between stages only; the pipeline itself has no
// internal suspension points besides the rank solver's own iteration
// loop (spec §5), so cancellation granularity is coarse by design.
func Run(ctx context.Context, ds *graph.Dataset, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// NumericalDegeneracy is rejected before any stage allocates scratch.
	if o.dampingFactor <= 0 || o.dampingFactor >= 1 {
		return nil, &EngineError{Kind: NumericalDegeneracy, Err: rank.ErrBadDamping}
	}
	if o.tolerance <= 0 {
		return nil, &EngineError{Kind: NumericalDegeneracy, Err: rank.ErrBadTolerance}
	}

	log := newStageLog(o.logger, ds)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stages 1-2: per-node total outbound/inbound stake.
	start := time.Now()
	t := stake.Aggregate(ds, o.workers)
	log.stage("stake.aggregate", start)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: stationary weight S[c] — engine-owned scratch, computed
	// for pipeline fidelity but not part of the caller-visible output
	// (spec §3 Lifecycles: S is released before return).
	start = time.Now()
	_ = stationary.Compute(t.TotalOut, t.TotalIn, o.dampingFactor, o.workers)
	log.stage("stationary.compute", start)

	// Stage 4: entropy field.
	start = time.Now()
	ent := entropy.Compute(ds, t.TotalOut, t.TotalIn, o.workers)
	log.stage("entropy.compute", start)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 5: local edge weight w[e].
	start = time.Now()
	w := weight.Compute(ds, t.TotalOut, t.TotalIn, o.workers)
	log.stage("weight.compute", start)

	// Stage 6: inbound compression.
	start = time.Now()
	view := compress.Build(ds, t.TotalOut, o.workers)
	log.stage("compress.build", start)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 7: power-method rank solver.
	start = time.Now()
	result, err := rank.Solve(ds.NumNodes(), view,
		rank.WithDampingFactor(o.dampingFactor),
		rank.WithTolerance(o.tolerance),
		rank.WithMaxIterations(o.maxIterations),
		rank.WithWorkers(o.workers),
	)
	log.stage("rank.solve", start)
	if err != nil {
		return nil, &EngineError{Kind: NumericalDegeneracy, Err: err}
	}

	// Stage 8: light and karma.
	start = time.Now()
	light := karma.Light(result.Rank, ent)
	k := karma.Accumulate(ds, light, w, o.workers)
	log.stage("karma.accumulate", start)

	log.done(result)

	return &Result{
		Rank:       result.Rank,
		Entropy:    ent,
		Light:      light,
		Karma:      k,
		Iterations: result.Iterations,
	}, nil
}
