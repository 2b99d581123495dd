// File: options.go
// Role: functional configuration for Solve, mirroring dijkstra's
// Options/Option pattern.
package rank

import "errors"

// Sentinel errors returned by Solve.
var (
	// ErrBadDamping indicates dampingFactor is outside (0, 1) — spec §7
	// NumericalDegeneracy, rejected before any allocation.
	ErrBadDamping = errors.New("rank: dampingFactor must be in (0, 1)")

	// ErrBadTolerance indicates tolerance <= 0 — spec §7
	// NumericalDegeneracy, rejected before any allocation.
	ErrBadTolerance = errors.New("rank: tolerance must be positive")
)

// Options configures one Solve invocation.
type Options struct {
	dampingFactor float64
	tolerance     float64
	maxIterations int
	workers       int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the package defaults: damping 0.85, tolerance
// 1e-6, an effectively unbounded iteration cap, and sequential
// execution. Callers always override dampingFactor/tolerance for a real
// run; the defaults exist so zero-value Options still behave sanely.
func DefaultOptions() Options {
	return Options{
		dampingFactor: 0.85,
		tolerance:     1e-6,
		maxIterations: 1_000_000,
		workers:       1,
	}
}

// WithDampingFactor sets α ∈ (0, 1).
func WithDampingFactor(d float64) Option {
	return func(o *Options) { o.dampingFactor = d }
}

// WithTolerance sets the L∞ convergence threshold (spec typical range
// 1e-3 to 1e-7).
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.tolerance = tol }
}

// WithMaxIterations caps the number of iterations as a safety valve;
// not part of the spec's state machine (which has no error state), but
// a bound a production driver needs. 0 or negative leaves the current
// cap (1,000,000 by default) in place; the cap cannot be disabled.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.maxIterations = n
		}
	}
}

// WithWorkers caps the number of goroutines used to parallelize each
// iteration's per-node update (spec §5: data-parallel over nodes,
// barrier between iterations).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// validate applies spec §7's NumericalDegeneracy checks.
func (o Options) validate() error {
	if o.dampingFactor <= 0 || o.dampingFactor >= 1 {
		return ErrBadDamping
	}
	if o.tolerance <= 0 {
		return ErrBadTolerance
	}
	return nil
}
