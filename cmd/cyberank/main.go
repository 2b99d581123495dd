// Command cyberank runs the stake-weighted rank/entropy/light/karma
// pipeline over a graph loaded from a SQLite store or a named literal
// scenario, and reports its per-stage timing.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "cyberank",
		Short: "Stake-weighted knowledge-graph ranking engine",
	}

	root.AddCommand(runCmd())
	root.AddCommand(benchCmd())
	root.AddCommand(seedCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
