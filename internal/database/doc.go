// Package database owns the SQLite connection and schema setup.
//
// NewDatabase opens (and creates, on first run) the single local
// database file and migrates the three tables. The returned handle is
// held for the process lifetime and injected into the repositories
// under database/authors, database/books and database/sales; those
// packages contain all query logic.
package database
