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

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ianlewis/go-phrasebook/storage"
	"github.com/ianlewis/go-phrasebook/storage/badger"
	"github.com/ianlewis/go-phrasebook/storage/bolt"
	"github.com/ianlewis/go-phrasebook/storage/sqlite"
)

const (
	backendBolt   = "bolt"
	backendSQLite = "sqlite"
	backendBadger = "badger"
	backendMemory = "memory"
	backendNone   = "none"
)

var backends = []string{
	backendBolt,
	backendSQLite,
	backendBadger,
	backendMemory,
	backendNone,
}

// openBackend opens the storage backend of the given kind under dir. File
// based backends create dir if needed.
func openBackend(kind, dir string) (storage.Backend, error) {
	switch kind {
	case backendMemory:
		return storage.NewMemory(), nil
	case backendNone:
		return storage.Nop{}, nil
	case backendBolt, backendSQLite, backendBadger:
	default:
		return nil, fmt.Errorf("%w: %w: backend %q", ErrFlagParse, ErrUnsupported, kind)
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %w", ErrPhrasebook, err)
	}

	var b storage.Backend
	var err error
	switch kind {
	case backendBolt:
		b, err = bolt.Open(filepath.Join(dir, "phrasebook.db"))
	case backendSQLite:
		b, err = sqlite.Open(filepath.Join(dir, "phrasebook.sqlite"))
	case backendBadger:
		b, err = badger.Open(filepath.Join(dir, "badger"))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s storage: %w", ErrPhrasebook, kind, err)
	}
	return b, nil
}
