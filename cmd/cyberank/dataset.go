package main

import (
	"fmt"

	"github.com/katalvlaran/cyberank/fixtures"
	"github.com/katalvlaran/cyberank/graph"
	"github.com/katalvlaran/cyberank/store"
)

// fixtureByName looks up one of the named literal scenarios (spec §8's
// S1-S4, S6) for quick runs without a database.
func fixtureByName(name string) (*graph.Dataset, error) {
	switch name {
	case "S1":
		return fixtures.S1()
	case "S2":
		return fixtures.S2()
	case "S3":
		return fixtures.S3()
	case "S4":
		return fixtures.S4()
	case "S6":
		return fixtures.S6()
	default:
		return nil, fmt.Errorf("unknown fixture %q (want one of S1, S2, S3, S4, S6)", name)
	}
}

// loadDataset resolves a dataset from dbPath (if non-empty) or
// fixtureName, preferring the database when both are given.
func loadDataset(dbPath, fixtureName string) (*graph.Dataset, error) {
	if dbPath != "" {
		s, err := store.Open(dbPath)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		defer s.Close()
		return s.LoadDataset()
	}
	if fixtureName == "" {
		fixtureName = "S2"
	}
	return fixtureByName(fixtureName)
}
