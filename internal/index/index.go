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

package index

import (
	"strings"

	"github.com/ianlewis/go-phrasebook/internal/folding"
)

type entry[V any] struct {
	value V

	// keys are the normalized values of the indexed fields.
	keys []string
}

// Index is a generic substring index. Matches are returned in the order the
// values were given to NewIndex.
type Index[V any] struct {
	entries []entry[V]
}

// NewIndex creates an index over values. fields extract the text fields that
// queries are matched against. Field values are normalized once up front.
func NewIndex[V any](values []V, fields ...func(V) string) *Index[V] {
	entries := make([]entry[V], 0, len(values))
	for _, v := range values {
		keys := make([]string, 0, len(fields))
		for _, f := range fields {
			if s := f(v); s != "" {
				keys = append(keys, folding.Normalize(s))
			}
		}
		entries = append(entries, entry[V]{
			value: v,
			keys:  keys,
		})
	}

	return &Index[V]{
		entries: entries,
	}
}

// Len returns the number of values in the index.
func (idx *Index[V]) Len() int {
	return len(idx.entries)
}

// Search returns the values where the normalized query is a substring of any
// of the value's normalized fields. An empty query matches every value.
func (idx *Index[V]) Search(query string) []V {
	q := folding.Normalize(query)

	var result []V
	for _, e := range idx.entries {
		if q == "" || matches(e.keys, q) {
			result = append(result, e.value)
		}
	}
	return result
}

func matches(keys []string, q string) bool {
	for _, k := range keys {
		if strings.Contains(k, q) {
			return true
		}
	}
	return false
}
