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

// Package store implements the phrasebook's persisted user state: saved
// phrases, saved vocabulary words and recent searches.
//
// Each collection is held in memory and written in full to its own key in a
// storage.Backend after every change. The in-memory state is the source of
// truth. Stored data that is missing or malformed loads as an empty
// collection and write failures are logged rather than returned, so a Store
// keeps working even when its backend does not.
//
// A Store is not safe for concurrent use.
package store

import (
	"errors"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/ianlewis/go-phrasebook/storage"
)

// Storage keys for each collection.
const (
	PhrasesKey  = "chinese-phrasebook-saved"
	WordsKey    = "chinese-phrasebook-saved-words"
	SearchesKey = "recentSearches"
)

// Collection identifies one of the Store's collections.
type Collection int

const (
	// PhrasesCollection is the saved phrases collection.
	PhrasesCollection Collection = iota

	// WordsCollection is the saved words collection.
	WordsCollection

	// SearchesCollection is the recent searches list.
	SearchesCollection
)

// String returns the collection's name.
func (c Collection) String() string {
	switch c {
	case PhrasesCollection:
		return "phrases"
	case WordsCollection:
		return "words"
	case SearchesCollection:
		return "searches"
	default:
		return "unknown"
	}
}

// Option configures a Store.
type Option func(*env)

// WithLogger sets the logger used to report load and write failures. By
// default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(e *env) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithClock sets the function used to timestamp saves and usage.
func WithClock(now func() time.Time) Option {
	return func(e *env) {
		if now != nil {
			e.now = now
		}
	}
}

// Store owns the persisted collections.
type Store struct {
	Phrases  *Phrases
	Words    *Words
	Searches *Searches

	env *env
}

// New creates a Store backed by b and loads every collection from it. A nil
// backend behaves as storage.Nop.
func New(b storage.Backend, opts ...Option) *Store {
	if b == nil {
		b = storage.Nop{}
	}
	e := &env{
		backend: b,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:     time.Now,
	}
	for _, o := range opts {
		o(e)
	}

	return &Store{
		Phrases:  loadPhrases(e),
		Words:    loadWords(e),
		Searches: loadSearches(e),
		env:      e,
	}
}

// Subscribe registers fn to be called after any collection changes.
// Subscribers are called in the order they subscribed. The returned function
// removes the subscription.
func (s *Store) Subscribe(fn func(Collection)) (cancel func()) {
	id := s.env.nextID
	s.env.nextID++
	s.env.subscribers = append(s.env.subscribers, subscriber{id: id, fn: fn})
	return func() {
		s.env.subscribers = slices.DeleteFunc(s.env.subscribers, func(sub subscriber) bool {
			return sub.id == id
		})
	}
}

type subscriber struct {
	id int
	fn func(Collection)
}

// env is state shared by the Store's collections.
type env struct {
	backend storage.Backend
	logger  *slog.Logger
	now     func() time.Time

	subscribers []subscriber
	nextID      int
}

// load reads the raw value for key. It returns false if there is no usable
// value.
func (e *env) load(key string) (string, bool) {
	v, err := e.backend.Get(key)
	if errors.Is(err, storage.ErrNotFound) {
		e.logger.Debug("no stored data", "key", key)
		return "", false
	}
	if err != nil {
		e.logger.Error("reading stored data", "key", key, "error", err)
		return "", false
	}
	return v, true
}

// discard logs that the stored value for key was unusable.
func (e *env) discard(key string, err error) {
	e.logger.Warn("discarding malformed stored data", "key", key, "error", err)
}

// write persists a collection and notifies subscribers. Write failures are
// logged and otherwise ignored.
func (e *env) write(c Collection, key string, encode func() ([]byte, error)) {
	b, err := encode()
	if err == nil {
		err = e.backend.Set(key, string(b))
	}
	if err != nil {
		e.logger.Error("persisting collection", "collection", c.String(), "key", key, "error", err)
	}
	e.notify(c)
}

// remove deletes a collection's key and notifies subscribers.
func (e *env) remove(c Collection, key string) {
	if err := e.backend.Remove(key); err != nil {
		e.logger.Error("removing collection", "collection", c.String(), "key", key, "error", err)
	}
	e.notify(c)
}

func (e *env) notify(c Collection) {
	// Subscribers may cancel while being notified.
	for _, sub := range slices.Clone(e.subscribers) {
		sub.fn(c)
	}
}
