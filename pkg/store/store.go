// Package store persists WN-LMF lexical resources in SQLite and loads them
// back. Loading prefers a handful of bulk queries against the known
// physical schema; when those assumptions do not hold it falls back to the
// store's own export interface and reparses the exchange format.
package store

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// Store is a SQLite-backed lexicon store. Reads are side-effect free;
// Commit is the only writer and runs in a single transaction.
type Store struct {
	db  *sql.DB
	log *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger replaces the default slog logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// New wraps an open database handle and applies migrations. Close closes
// the handle, so callers that want to keep it open should not call Close.
func New(db *sql.DB, opts ...Option) (*Store, error) {
	s := &Store{db: db, log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	if err := initSchema(db); err != nil {
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return s, nil
}

// Open opens (or creates) the database file at path and applies migrations.
func Open(path string, opts ...Option) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	s, err := New(db, opts...)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// DB exposes the underlying handle for tests and migrations tooling.
func (s *Store) DB() *sql.DB { return s.db }

func initSchema(db *sql.DB) error {
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return err
	}
	for _, stmt := range strings.Split(migrationsSQL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	_, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion))
	return err
}

// HasLexicon reports whether a lexicon with the given id is stored.
func (s *Store) HasLexicon(id string) (bool, error) {
	var one int
	err := s.db.QueryRow(`SELECT 1 FROM lexicons WHERE id = ?`, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, &StoreError{Op: "has lexicon", Err: err}
	}
	return true, nil
}

// Lexicons returns the stored lexicon ids in insertion order.
func (s *Store) Lexicons() ([]string, error) {
	rows, err := s.db.Query(`SELECT id FROM lexicons ORDER BY rowid`)
	if err != nil {
		return nil, &StoreError{Op: "list lexicons", Err: err}
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, &StoreError{Op: "list lexicons", Err: err}
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "list lexicons", Err: err}
	}
	return ids, nil
}
