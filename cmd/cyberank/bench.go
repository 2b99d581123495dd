package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/cyberank/engine"
	"github.com/spf13/cobra"
)

func benchCmd() *cobra.Command {
	var configPath, dbPath, fixtureName string
	var damping, tolerance float64
	var maxIterations, workers int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run the pipeline once and report per-stage timing (spec §2's stage table)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			applyRunFlags(cfg, cmd, dbPath, fixtureName, "text", damping, tolerance, maxIterations, workers)

			ds, err := loadDataset(cfg.DB, cfg.Fixture)
			if err != nil {
				return fmt.Errorf("load dataset: %w", err)
			}

			logger := newLogger(true)
			result, err := engine.Run(context.Background(), ds,
				engine.WithDampingFactor(cfg.DampingFactor),
				engine.WithTolerance(cfg.Tolerance),
				engine.WithMaxIterations(cfg.MaxIterations),
				engine.WithWorkers(cfg.Workers),
				engine.WithLogger(logger),
			)
			if err != nil {
				return fmt.Errorf("run engine: %w", err)
			}

			logger.Info("bench summary",
				slog.Int("nodes", ds.NumNodes()),
				slog.Int("edges", ds.NumEdges()),
				slog.Int("iterations", result.Iterations),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML run config")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (overrides --fixture)")
	cmd.Flags().StringVar(&fixtureName, "fixture", "", "named literal scenario to run when --db is absent (S1, S2, S3, S4, S6; default S2)")
	cmd.Flags().Float64Var(&damping, "damping", 0.85, "damping factor alpha in (0,1)")
	cmd.Flags().Float64Var(&tolerance, "tolerance", 1e-6, "L-infinity convergence tolerance")
	cmd.Flags().IntVar(&maxIterations, "max-iterations", 1_000_000, "iteration cap for the rank solver")
	cmd.Flags().IntVar(&workers, "workers", 1, "goroutine worker count per stage")

	return cmd
}
