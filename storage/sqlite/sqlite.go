// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sqlite implements a storage.Backend using a SQLite database with a
// single key-value table.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	// Register the sqlite3 driver.
	_ "github.com/mattn/go-sqlite3"

	"github.com/ianlewis/go-phrasebook/storage"
)

// ErrSQLite wraps errors returned by the database.
var ErrSQLite = errors.New("sqlite")

const schema = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// Backend is a storage.Backend backed by SQLite.
type Backend struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at path. The special path
// ":memory:" opens a private in-memory database.
func Open(path string) (*Backend, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %q: %w", ErrSQLite, path, err)
	}
	// A single connection keeps ":memory:" databases from being split
	// across connections.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: creating schema: %w", ErrSQLite, err)
	}
	return &Backend{db: db}, nil
}

// Get implements [storage.Backend.Get].
func (b *Backend) Get(key string) (string, error) {
	var value string
	err := b.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %q", storage.ErrNotFound, key)
	}
	if err != nil {
		return "", fmt.Errorf("%w: reading %q: %w", ErrSQLite, key, err)
	}
	return value, nil
}

// Set implements [storage.Backend.Set].
func (b *Backend) Set(key, value string) error {
	_, err := b.db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("%w: writing %q: %w", ErrSQLite, key, err)
	}
	return nil
}

// Remove implements [storage.Backend.Remove].
func (b *Backend) Remove(key string) error {
	if _, err := b.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("%w: removing %q: %w", ErrSQLite, key, err)
	}
	return nil
}

// Close closes the database.
func (b *Backend) Close() error {
	if err := b.db.Close(); err != nil {
		return fmt.Errorf("%w: closing: %w", ErrSQLite, err)
	}
	return nil
}
