// File: rank.go
// Role: the power-method solver itself (spec §4.7), structured exactly
// like dijkstra.Dijkstra: validate Options, build a runner holding all
// mutable state, then init()+process() in a numbered-step main loop.
package rank

import (
	"github.com/katalvlaran/cyberank/compress"
	"github.com/katalvlaran/cyberank/internal/parallel"
	"github.com/katalvlaran/cyberank/numeric"
)

// State is the solver's state machine: INIT → ITERATING →
// {ITERATING, CONVERGED}. There is no error state (spec §4.7).
type State int

const (
	// StateInit is the solver before the first iteration.
	StateInit State = iota
	// StateIterating is the solver mid-iteration. Solve's caller sees
	// it only when the iteration cap is reached before δ ≤ tolerance.
	StateIterating
	// StateConverged is the solver after δ ≤ tolerance.
	StateConverged
)

// Result is the outcome of Solve.
type Result struct {
	Rank       []float64
	Iterations int
	State      State
}

// Solve runs the power-method iteration of spec §4.7 to convergence,
// or until the iteration cap is reached (Result.State then stays
// StateIterating).
//
// Preconditions (spec §7 NumericalDegeneracy, checked before any
// allocation): dampingFactor ∈ (0, 1), tolerance > 0.
func Solve(numNodes int, comp compress.View, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	r := &runner{
		n:    numNodes,
		comp: comp,
		opts: o,
	}
	r.init()
	r.process()
	r.normalize()

	return &Result{Rank: r.r, Iterations: r.iterations, State: r.state}, nil
}

// runner holds the mutable state for one Solve execution: the ping-pong
// rank buffers and the constants derived from the damping factor.
type runner struct {
	n    int
	comp compress.View
	opts Options

	r0     float64 // uniform default rank (1-d)/N
	rTilde float64 // dangling-mass-corrected default, added every iteration

	r, rNext   []float64 // ping-pong pair; r is "current", rNext is "next"
	iterations int
	state      State
}

// init sets up the dangling-mass correction and the initial uniform
// rank vector (spec §4.7).
func (r *runner) init() {
	n := r.n
	d := r.opts.dampingFactor

	dangling := 0
	for c := 0; c < n; c++ {
		if r.comp.Count[c] == 0 {
			dangling++
		}
	}

	r.r0 = (1 - d) / float64(n)
	r.rTilde = d*r.r0*(float64(dangling)/float64(n)) + r.r0

	r.r = make([]float64, n)
	r.rNext = make([]float64, n)
	for c := range r.r {
		r.r[c] = r.r0
	}
	r.state = StateInit
}

// process iterates the per-node update until the L∞ delta between
// successive rank vectors falls to or below tolerance, or the
// iteration cap is hit.
func (r *runner) process() {
	tol := r.opts.tolerance

	for {
		r.state = StateIterating
		r.step()
		r.iterations++

		delta := numeric.LInfDiff(r.r, r.rNext)
		r.r, r.rNext = r.rNext, r.r // swap buffer roles

		if delta <= tol {
			r.state = StateConverged
			return
		}
		if r.opts.maxIterations > 0 && r.iterations >= r.opts.maxIterations {
			return
		}
	}
}

// normalize divides the converged rank vector by its own sum Z so that
// Σrank == 1 exactly up to floating-point roundoff (spec §8 property 4;
// the explicit "/ Z" in scenario S3's formula). The fixed-rTilde
// dangling approximation does not itself preserve Σrank == 1 across
// iterations, so this one-shot correction is applied once, after the
// iteration has settled rather than every step.
func (r *runner) normalize() {
	var z float64
	for _, v := range r.r {
		z += v
	}
	if z == 0 {
		return
	}
	for i := range r.r {
		r.r[i] /= z
	}
}

// step computes one R' from R, data-parallel over target nodes c.
func (r *runner) step() {
	d := r.opts.dampingFactor
	rTilde := r.rTilde
	comp := r.comp
	cur := r.r
	next := r.rNext

	parallel.For(r.n, r.opts.workers, func(c int) {
		if comp.Count[c] == 0 {
			next[c] = rTilde
			return
		}
		var acc float64
		for _, link := range comp.Slice(c) {
			acc += cur[link.FromIndex] * link.Weight
		}
		next[c] = d*acc + rTilde
	})
}
