package store

import (
	"fmt"

	"github.com/google/uuid"
)

// InsertUser inserts a user row with the given stake.
func (s *Store) InsertUser(id int, stake uint64) error {
	_, err := s.db.Exec("INSERT INTO users (id, stake) VALUES (?, ?)", id, stake)
	if err != nil {
		return fmt.Errorf("store: insert user %d: %w", id, err)
	}
	return nil
}

// InsertNode inserts a content node row.
func (s *Store) InsertNode(id int) error {
	_, err := s.db.Exec("INSERT INTO nodes (id) VALUES (?)", id)
	if err != nil {
		return fmt.Errorf("store: insert node %d: %w", id, err)
	}
	return nil
}

// InsertLink inserts a cyberlink authored by author, from source to
// target, stamping a fresh UUID as its primary key, and returns that
// ID.
func (s *Store) InsertLink(source, target, author int) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO cyberlinks (id, source, target, author) VALUES (?, ?, ?, ?)",
		id, source, target, author,
	)
	if err != nil {
		return "", fmt.Errorf("store: insert link %s: %w", id, err)
	}
	return id, nil
}
