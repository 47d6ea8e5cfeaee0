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

// Package bolt implements a storage.Backend using bbolt, an embedded B+ tree
// database. All keys are stored in a single bucket and every write is its own
// transaction.
package bolt

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	bbolt "go.etcd.io/bbolt"

	"github.com/ianlewis/go-phrasebook/storage"
)

var bucketName = []byte("phrasebook")

// ErrBolt wraps errors returned by the bbolt database.
var ErrBolt = errors.New("bolt")

// Backend is a storage.Backend backed by a bbolt database file.
type Backend struct {
	db *bbolt.DB
}

// Open opens (or creates) the bbolt database at path.
func Open(path string) (*Backend, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("%w: opening %q: %w", ErrBolt, path, err)
	}
	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: creating bucket: %w", ErrBolt, err)
	}
	return &Backend{db: db}, nil
}

// Get implements [storage.Backend.Get].
func (b *Backend) Get(key string) (string, error) {
	var value string
	var found bool
	err := b.db.View(func(tx *bbolt.Tx) error {
		// Seek is used rather than Get so that empty values can be told
		// apart from missing keys. Values are only valid for the life of the
		// transaction; converting to a string copies the data.
		k, v := tx.Bucket(bucketName).Cursor().Seek([]byte(key))
		if k != nil && bytes.Equal(k, []byte(key)) {
			value = string(v)
			found = true
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: reading %q: %w", ErrBolt, key, err)
	}
	if !found {
		return "", fmt.Errorf("%w: %q", storage.ErrNotFound, key)
	}
	return value, nil
}

// Set implements [storage.Backend.Set].
func (b *Backend) Set(key, value string) error {
	err := b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("%w: writing %q: %w", ErrBolt, key, err)
	}
	return nil
}

// Remove implements [storage.Backend.Remove].
func (b *Backend) Remove(key string) error {
	err := b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("%w: removing %q: %w", ErrBolt, key, err)
	}
	return nil
}

// Close closes the database.
func (b *Backend) Close() error {
	if err := b.db.Close(); err != nil {
		return fmt.Errorf("%w: closing: %w", ErrBolt, err)
	}
	return nil
}
