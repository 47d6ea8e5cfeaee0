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

package search

import (
	"github.com/ianlewis/go-phrasebook/internal/folding"
	"github.com/ianlewis/go-phrasebook/internal/index"
	"github.com/ianlewis/go-phrasebook/phrase"
)

// Result is the result of a global phrase search.
type Result struct {
	// Active is false when there is no search in progress, i.e. the query was
	// blank. Phrases is always empty in that case.
	Active bool

	// Query is the query as given by the user.
	Query string

	Phrases []*phrase.Phrase
}

// Empty returns true if a search is active but nothing matched.
func (r Result) Empty() bool {
	return r.Active && len(r.Phrases) == 0
}

// Index is a global phrase search index.
type Index struct {
	idx *index.Index[*phrase.Phrase]
}

// NewIndex builds a search index over phrases.
func NewIndex(phrases []*phrase.Phrase) *Index {
	fs := make([]func(*phrase.Phrase) string, len(PhraseFields))
	for i, f := range PhraseFields {
		fs[i] = f
	}
	return &Index{
		idx: index.NewIndex(phrases, fs...),
	}
}

// Search searches the index. A blank query yields an inactive Result.
func (i *Index) Search(query string) Result {
	if folding.IsBlank(query) {
		return Result{Query: query}
	}
	return Result{
		Active:  true,
		Query:   query,
		Phrases: i.idx.Search(query),
	}
}
