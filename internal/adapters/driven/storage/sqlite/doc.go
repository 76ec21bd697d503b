// Package sqlite provides a unified SQLite-based implementation of the
// storage driven ports.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO, enabling easy cross-compilation. It implements multiple
// store interfaces through a single database connection:
//
//   - DocumentStore: document persistence
//   - GapStore: knowledge-gap persistence
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Field collections and transcripts are stored as
// JSON columns; everything queried on is a real column.
//
// # Data Location
//
// By default, the database is stored at ~/.stayform/data/stayform.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking
// provided by SQLite in WAL mode.
package sqlite
