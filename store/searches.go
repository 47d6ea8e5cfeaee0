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

package store

import (
	"slices"
	"strings"
)

// MaxRecentSearches is the maximum number of recent searches kept.
const MaxRecentSearches = 10

// Searches is the recent searches list, most recent first. Terms are unique
// ignoring case.
type Searches struct {
	env   *env
	terms []string
}

func loadSearches(e *env) *Searches {
	s := &Searches{env: e}
	if v, ok := e.load(SearchesKey); ok {
		terms, err := decodeSearches([]byte(v))
		if err != nil {
			e.discard(SearchesKey, err)
		}
		s.terms = terms
	}
	return s
}

// Add adds term to the front of the list. The term is trimmed and blank
// terms are ignored. An existing entry that differs only in case is replaced
// so the list keeps the most recent casing.
func (s *Searches) Add(term string) {
	term = strings.TrimSpace(term)
	if term == "" {
		return
	}
	terms := make([]string, 0, len(s.terms)+1)
	terms = append(terms, term)
	for _, t := range s.terms {
		if !strings.EqualFold(t, term) {
			terms = append(terms, t)
		}
	}
	if len(terms) > MaxRecentSearches {
		terms = terms[:MaxRecentSearches]
	}
	s.terms = terms
	s.persist()
}

// Remove removes entries exactly equal to term.
func (s *Searches) Remove(term string) {
	s.terms = slices.DeleteFunc(s.terms, func(t string) bool {
		return t == term
	})
	s.persist()
}

// List returns the recent searches, most recent first.
func (s *Searches) List() []string {
	return slices.Clone(s.terms)
}

// Len returns the number of recent searches.
func (s *Searches) Len() int {
	return len(s.terms)
}

// ClearAll empties the list and removes its storage key.
func (s *Searches) ClearAll() {
	s.terms = nil
	s.env.remove(SearchesCollection, SearchesKey)
}

func (s *Searches) persist() {
	s.env.write(SearchesCollection, SearchesKey, func() ([]byte, error) {
		return encodeSearches(s.terms)
	})
}
