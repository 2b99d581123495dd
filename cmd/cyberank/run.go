package main

import (
	"context"
	"fmt"

	"github.com/katalvlaran/cyberank/convert"
	"github.com/katalvlaran/cyberank/engine"
	"github.com/spf13/cobra"
)

func runCmd() *cobra.Command {
	var configPath, dbPath, fixtureName, format string
	var damping, tolerance float64
	var maxIterations, workers int
	var verbose bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the rank/entropy/light/karma pipeline once and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			applyRunFlags(cfg, cmd, dbPath, fixtureName, format, damping, tolerance, maxIterations, workers)

			ds, err := loadDataset(cfg.DB, cfg.Fixture)
			if err != nil {
				return fmt.Errorf("load dataset: %w", err)
			}

			result, err := engine.Run(context.Background(), ds,
				engine.WithDampingFactor(cfg.DampingFactor),
				engine.WithTolerance(cfg.Tolerance),
				engine.WithMaxIterations(cfg.MaxIterations),
				engine.WithWorkers(cfg.Workers),
				engine.WithLogger(newLogger(verbose)),
			)
			if err != nil {
				return fmt.Errorf("run engine: %w", err)
			}

			if cfg.Format == "json" {
				data, err := convert.EncodeResult(result)
				if err != nil {
					return fmt.Errorf("encode result: %w", err)
				}
				fmt.Println(string(data))
				return nil
			}

			printResultTable(ds, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML run config")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (overrides --fixture)")
	cmd.Flags().StringVar(&fixtureName, "fixture", "", "named literal scenario to run when --db is absent (S1, S2, S3, S4, S6; default S2)")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or json")
	cmd.Flags().Float64Var(&damping, "damping", 0.85, "damping factor alpha in (0,1)")
	cmd.Flags().Float64Var(&tolerance, "tolerance", 1e-6, "L-infinity convergence tolerance")
	cmd.Flags().IntVar(&maxIterations, "max-iterations", 1_000_000, "iteration cap for the rank solver")
	cmd.Flags().IntVar(&workers, "workers", 1, "goroutine worker count per stage")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "emit per-stage timing diagnostics to stderr")

	return cmd
}

// applyRunFlags overlays flags the user actually set on top of cfg,
// which may already carry values loaded from --config.
func applyRunFlags(cfg *RunConfig, cmd *cobra.Command, dbPath, fixtureName, format string, damping, tolerance float64, maxIterations, workers int) {
	if cmd.Flags().Changed("db") || cfg.DB == "" {
		cfg.DB = dbPath
	}
	if cmd.Flags().Changed("fixture") || cfg.Fixture == "" {
		cfg.Fixture = fixtureName
	}
	if cmd.Flags().Changed("format") || cfg.Format == "" {
		cfg.Format = format
	}
	if cmd.Flags().Changed("damping") || cfg.DampingFactor == 0 {
		cfg.DampingFactor = damping
	}
	if cmd.Flags().Changed("tolerance") || cfg.Tolerance == 0 {
		cfg.Tolerance = tolerance
	}
	if cmd.Flags().Changed("max-iterations") || cfg.MaxIterations == 0 {
		cfg.MaxIterations = maxIterations
	}
	if cmd.Flags().Changed("workers") || cfg.Workers == 0 {
		cfg.Workers = workers
	}
}

func printResultTable(ds interface {
	NumNodes() int
	NumUsers() int
}, result *engine.Result) {
	fmt.Printf("iterations: %d\n\n", result.Iterations)
	fmt.Println("node  rank          entropy       light")
	for c := 0; c < ds.NumNodes(); c++ {
		fmt.Printf("%4d  %.10f  %.10f  %.10f\n", c, result.Rank[c], result.Entropy[c], result.Light[c])
	}
	fmt.Println()
	fmt.Println("user  karma")
	for u := 0; u < ds.NumUsers(); u++ {
		fmt.Printf("%4d  %.10f\n", u, result.Karma[u])
	}
}
