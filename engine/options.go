// File: options.go
// Role: functional configuration for Run, the same pattern every
// stage's Options struct uses, collected at the orchestration layer.
package engine

import "log/slog"

// Options configures one Run invocation.
type Options struct {
	dampingFactor float64
	tolerance     float64
	maxIterations int
	workers       int
	logger        *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions mirrors rank.DefaultOptions: damping 0.85, tolerance
// 1e-6, a 1,000,000 iteration cap, sequential execution, no logger.
func DefaultOptions() Options {
	return Options{
		dampingFactor: 0.85,
		tolerance:     1e-6,
		maxIterations: 1_000_000,
		workers:       1,
	}
}

// WithDampingFactor sets α ∈ (0, 1) for the rank stage.
func WithDampingFactor(d float64) Option {
	return func(o *Options) { o.dampingFactor = d }
}

// WithTolerance sets the rank solver's L∞ convergence threshold.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.tolerance = tol }
}

// WithMaxIterations caps the rank solver's iteration count.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.maxIterations = n
		}
	}
}

// WithWorkers caps the goroutine pool size every stage's
// internal/parallel.For call uses.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithLogger attaches a *slog.Logger for per-stage timing/shape
// diagnostics. A nil logger (the default) keeps Run silent.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}
