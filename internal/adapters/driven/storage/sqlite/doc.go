// Package sqlite provides the SQLite-backed catalog store.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation
// that requires no CGO, enabling easy cross-compilation. A single
// database file holds two tables:
//
//   - files: one row per catalogued file or folder, keyed by path
//   - meta:  key/value metadata (root rebuild markers, last index time)
//
// # Schema
//
// The schema is managed through versioned migrations stored in the
// migrations/ directory.
//
// # Data Location
//
// By default, the database is stored at ~/.vocalis/data/catalog.db
//
// # Concurrency
//
// The store is opened per logical operation and the design assumes a
// single process accesses the file at a time; SQLite WAL mode provides
// the database-level locking.
package sqlite
