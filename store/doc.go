// Package store is the persistence boundary spec §1 explicitly treats
// as an external collaborator: an embedded SQLite-backed loader that
// turns a users/nodes/cyberlinks schema into a graph.Dataset the core
// engine can consume.
//
// Grounded on ehrlich-b-wingthing/internal/store's Open/migrate shape
// (database/sql over modernc.org/sqlite, a pure-Go driver with no cgo
// dependency, plus an embedded migrations directory applied
// idempotently via a schema_migrations table); cyberlink IDs are
// stamped with github.com/google/uuid the way leanlp-BTC-coinjoin
// stamps transaction-adjacent identifiers.
package store
