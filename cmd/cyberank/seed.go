package main

import (
	"fmt"

	"github.com/katalvlaran/cyberank/graph"
	"github.com/katalvlaran/cyberank/store"
	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	var dbPath, fixtureName string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Materialize a named fixture scenario into a SQLite database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				return fmt.Errorf("--db is required")
			}
			if fixtureName == "" {
				fixtureName = "S2"
			}
			ds, err := fixtureByName(fixtureName)
			if err != nil {
				return err
			}

			s, err := store.Open(dbPath)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer s.Close()

			if err := seedStore(s, ds); err != nil {
				return fmt.Errorf("seed store: %w", err)
			}
			fmt.Printf("seeded %s: %d nodes, %d edges, %d users into %s\n",
				fixtureName, ds.NumNodes(), ds.NumEdges(), ds.NumUsers(), dbPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path to write into")
	cmd.Flags().StringVar(&fixtureName, "fixture", "S2", "named literal scenario to seed (S1, S2, S3, S4, S6)")

	return cmd
}

// seedStore materializes a validated dataset's users/nodes/cyberlinks
// rows into s, stamping a fresh UUID per cyberlink via store.InsertLink.
func seedStore(s *store.Store, ds *graph.Dataset) error {
	for u := 0; u < ds.NumUsers(); u++ {
		if err := s.InsertUser(u, ds.Stake(uint64(u))); err != nil {
			return err
		}
	}
	for c := 0; c < ds.NumNodes(); c++ {
		if err := s.InsertNode(c); err != nil {
			return err
		}
	}
	for c := 0; c < ds.NumNodes(); c++ {
		start, count := ds.OutSlice(c)
		for e := start; e < start+count; e++ {
			target := ds.OutTarget(e)
			author := ds.OutAuthor(e)
			if _, err := s.InsertLink(c, int(target), int(author)); err != nil {
				return err
			}
		}
	}
	return nil
}
