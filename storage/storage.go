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

// Package storage defines the durable key-value storage used to persist
// phrasebook state.
//
// A Backend is a simple string key-value store similar to a browser's local
// storage. Implementations are provided for an in-memory map, an absent
// backend (Nop), and for the embedded databases bbolt, SQLite and Badger in
// sub-packages.
package storage

import (
	"errors"
	"io"
)

var (
	// ErrNotFound indicates that a key has no value.
	ErrNotFound = errors.New("key not found")

	// ErrQuotaExceeded indicates that a value could not be written because
	// the backend is full.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)

// Backend is a durable string key-value store.
type Backend interface {
	// Get returns the value for key. If the key has no value ErrNotFound is
	// returned.
	Get(key string) (string, error)

	// Set sets the value for key, replacing any existing value.
	Set(key, value string) error

	// Remove deletes the key. Removing a key that has no value is not an
	// error.
	Remove(key string) error
}

// BackendCloser is a Backend that holds resources which must be released.
type BackendCloser interface {
	Backend
	io.Closer
}
