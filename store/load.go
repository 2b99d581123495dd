package store

import (
	"fmt"

	"github.com/katalvlaran/cyberank/graph"
)

// LoadDataset reads the users/nodes/cyberlinks tables and assembles a
// graph.Dataset. The outbound query is ordered by (source, target) and
// the inbound query by (target, source), so InSource arrives already
// sorted per node without an extra in-memory sort step.
func (s *Store) LoadDataset() (*graph.Dataset, error) {
	numNodes, err := s.countRows("nodes")
	if err != nil {
		return nil, err
	}
	numUsers, err := s.countRows("users")
	if err != nil {
		return nil, err
	}

	stakes := make([]uint64, numUsers)
	userRows, err := s.db.Query("SELECT id, stake FROM users ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("store: query users: %w", err)
	}
	defer userRows.Close()
	for userRows.Next() {
		var id int
		var stake uint64
		if err := userRows.Scan(&id, &stake); err != nil {
			return nil, fmt.Errorf("store: scan user: %w", err)
		}
		if id < 0 || id >= numUsers {
			return nil, fmt.Errorf("store: user id %d out of range [0,%d)", id, numUsers)
		}
		stakes[id] = stake
	}
	if err := userRows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate users: %w", err)
	}

	outCount := make([]uint32, numNodes)
	var outTarget, outAuthor []uint64
	outRows, err := s.db.Query("SELECT source, target, author FROM cyberlinks ORDER BY source, target")
	if err != nil {
		return nil, fmt.Errorf("store: query outbound links: %w", err)
	}
	defer outRows.Close()
	for outRows.Next() {
		var source, target, author int
		if err := outRows.Scan(&source, &target, &author); err != nil {
			return nil, fmt.Errorf("store: scan outbound link: %w", err)
		}
		outCount[source]++
		outTarget = append(outTarget, uint64(target))
		outAuthor = append(outAuthor, uint64(author))
	}
	if err := outRows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate outbound links: %w", err)
	}

	inCount := make([]uint32, numNodes)
	var inSource, inAuthor []uint64
	inRows, err := s.db.Query("SELECT target, source, author FROM cyberlinks ORDER BY target, source")
	if err != nil {
		return nil, fmt.Errorf("store: query inbound links: %w", err)
	}
	defer inRows.Close()
	for inRows.Next() {
		var target, source, author int
		if err := inRows.Scan(&target, &source, &author); err != nil {
			return nil, fmt.Errorf("store: scan inbound link: %w", err)
		}
		inCount[target]++
		inSource = append(inSource, uint64(source))
		inAuthor = append(inAuthor, uint64(author))
	}
	if err := inRows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate inbound links: %w", err)
	}

	ds, err := graph.FromCounts(&graph.RawCounts{
		Stakes:    stakes,
		NumNodes:  numNodes,
		NumEdges:  len(outTarget),
		OutCount:  outCount,
		OutTarget: outTarget,
		OutAuthor: outAuthor,
		InCount:   inCount,
		InSource:  inSource,
		InAuthor:  inAuthor,
	})
	if err != nil {
		return nil, fmt.Errorf("store: assemble dataset: %w", err)
	}
	return ds, nil
}

func (s *Store) countRows(table string) (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		return 0, fmt.Errorf("store: count %s: %w", table, err)
	}
	return n, nil
}
