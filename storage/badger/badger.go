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

// Package badger implements a storage.Backend using the Badger key-value
// store.
package badger

import (
	"errors"
	"fmt"

	badgerdb "github.com/dgraph-io/badger/v4"

	"github.com/ianlewis/go-phrasebook/storage"
)

// ErrBadger wraps errors returned by Badger.
var ErrBadger = errors.New("badger")

// Backend is a storage.Backend backed by a Badger database directory.
type Backend struct {
	db *badgerdb.DB
}

// Open opens (or creates) a Badger database in the directory dir.
func Open(dir string) (*Backend, error) {
	return open(badgerdb.DefaultOptions(dir).WithLogger(nil))
}

// OpenInMemory opens a Badger database that is held entirely in memory.
func OpenInMemory() (*Backend, error) {
	return open(badgerdb.DefaultOptions("").WithInMemory(true).WithLogger(nil))
}

func open(opts badgerdb.Options) (*Backend, error) {
	db, err := badgerdb.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %q: %w", ErrBadger, opts.Dir, err)
	}
	return &Backend{db: db}, nil
}

// Get implements [storage.Backend.Get].
func (b *Backend) Get(key string) (string, error) {
	var value []byte
	err := b.db.View(func(txn *badgerdb.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badgerdb.ErrKeyNotFound) {
		return "", fmt.Errorf("%w: %q", storage.ErrNotFound, key)
	}
	if err != nil {
		return "", fmt.Errorf("%w: reading %q: %w", ErrBadger, key, err)
	}
	return string(value), nil
}

// Set implements [storage.Backend.Set].
func (b *Backend) Set(key, value string) error {
	err := b.db.Update(func(txn *badgerdb.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("%w: writing %q: %w", ErrBadger, key, err)
	}
	return nil
}

// Remove implements [storage.Backend.Remove].
func (b *Backend) Remove(key string) error {
	err := b.db.Update(func(txn *badgerdb.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("%w: removing %q: %w", ErrBadger, key, err)
	}
	return nil
}

// Close closes the database.
func (b *Backend) Close() error {
	if err := b.db.Close(); err != nil {
		return fmt.Errorf("%w: closing: %w", ErrBadger, err)
	}
	return nil
}
