// File: log.go
// Role: nil-safe per-stage timing diagnostics via log/slog. Logging
// never gates control flow (spec §10.3 ambient stack): every branch
// Run can take is identical whether or not a logger is attached.
package engine

import (
	"log/slog"
	"time"

	"github.com/katalvlaran/cyberank/graph"
	"github.com/katalvlaran/cyberank/rank"
)

type stageLog struct {
	logger *slog.Logger
	ds     *graph.Dataset
}

func newStageLog(l *slog.Logger, ds *graph.Dataset) *stageLog {
	return &stageLog{logger: l, ds: ds}
}

func (s *stageLog) stage(name string, start time.Time) {
	if s.logger == nil {
		return
	}
	s.logger.Debug("engine.stage",
		"stage", name,
		"elapsed", time.Since(start),
		"nodes", s.ds.NumNodes(),
		"edges", s.ds.NumEdges(),
	)
}

func (s *stageLog) done(result *rank.Result) {
	if s.logger == nil {
		return
	}
	s.logger.Info("engine.run complete",
		"nodes", s.ds.NumNodes(),
		"edges", s.ds.NumEdges(),
		"users", s.ds.NumUsers(),
		"iterations", result.Iterations,
		"converged", result.State == rank.StateConverged,
	)
}
