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

// Package testutil contains helpers shared by the phrasebook's tests.
package testutil

import (
	"errors"
	"testing"

	"github.com/ianlewis/go-phrasebook/storage"
)

// TestBackend runs the common storage.Backend conformance tests against the
// backend returned by newBackend. newBackend is called once per subtest.
func TestBackend(t *testing.T, newBackend func(t *testing.T) storage.Backend) {
	t.Helper()

	t.Run("get missing", func(t *testing.T) {
		b := newBackend(t)
		if _, err := b.Get("missing"); !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("Get: got %v, want %v", err, storage.ErrNotFound)
		}
	})

	t.Run("set and get", func(t *testing.T) {
		b := newBackend(t)
		for _, kv := range [][2]string{
			{"recentSearches", `["ni hao"]`},
			{"chinese-phrasebook-saved", `[]`},
			{"unicode", "你好 nǐ hǎo"},
			{"empty", ""},
		} {
			if err := b.Set(kv[0], kv[1]); err != nil {
				t.Fatalf("Set(%q): %v", kv[0], err)
			}
			v, err := b.Get(kv[0])
			if err != nil {
				t.Fatalf("Get(%q): %v", kv[0], err)
			}
			if got, want := v, kv[1]; got != want {
				t.Errorf("Get(%q): got %q, want %q", kv[0], got, want)
			}
		}
	})

	t.Run("overwrite", func(t *testing.T) {
		b := newBackend(t)
		if err := b.Set("k", "first"); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if err := b.Set("k", "second"); err != nil {
			t.Fatalf("Set: %v", err)
		}
		v, err := b.Get("k")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got, want := v, "second"; got != want {
			t.Errorf("Get: got %q, want %q", got, want)
		}
	})

	t.Run("remove", func(t *testing.T) {
		b := newBackend(t)
		if err := b.Set("k", "v"); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if err := b.Remove("k"); err != nil {
			t.Fatalf("Remove: %v", err)
		}
		if _, err := b.Get("k"); !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("Get: got %v, want %v", err, storage.ErrNotFound)
		}
		// Removing a missing key is not an error.
		if err := b.Remove("k"); err != nil {
			t.Fatalf("Remove: %v", err)
		}
	})
}
