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

package phrasebook

import (
	"errors"
	"fmt"

	"github.com/ianlewis/go-phrasebook/dataset"
	"github.com/ianlewis/go-phrasebook/phrase"
	"github.com/ianlewis/go-phrasebook/search"
)

// ErrNotFound indicates that a situation, word category or phrase does not
// exist.
var ErrNotFound = errors.New("not found")

// Phrasebook provides searching and browsing of a dataset.
type Phrasebook struct {
	ds    *dataset.Dataset
	index *search.Index
}

// New returns a new Phrasebook over ds. If ds is nil the built-in dataset is
// used.
func New(ds *dataset.Dataset) *Phrasebook {
	if ds == nil {
		ds = dataset.Default()
	}
	return &Phrasebook{
		ds:    ds,
		index: search.NewIndex(ds.Phrases()),
	}
}

// Dataset returns the phrasebook's dataset.
func (p *Phrasebook) Dataset() *dataset.Dataset {
	return p.ds
}

// Search searches all phrases in every situation.
func (p *Phrasebook) Search(query string) search.Result {
	return p.index.Search(query)
}

// Situations returns all situations in display order.
func (p *Phrasebook) Situations() []*phrase.Situation {
	return p.ds.Situations()
}

// Situation returns the situation with the given ID.
func (p *Phrasebook) Situation(id phrase.Category) (*phrase.Situation, error) {
	s := p.ds.Situation(id)
	if s == nil {
		return nil, fmt.Errorf("%w: situation %q", ErrNotFound, id)
	}
	return s, nil
}

// Phrases returns every phrase in situation order.
func (p *Phrasebook) Phrases() []*phrase.Phrase {
	return p.ds.Phrases()
}

// Phrase returns the phrase with the given ID.
func (p *Phrasebook) Phrase(id string) (*phrase.Phrase, error) {
	ph := p.ds.Phrase(id)
	if ph == nil {
		return nil, fmt.Errorf("%w: phrase %q", ErrNotFound, id)
	}
	return ph, nil
}

// WordCategories returns all word categories in display order.
func (p *Phrasebook) WordCategories() []*phrase.WordCategory {
	return p.ds.WordCategories()
}

// WordCategory returns the word category with the given ID.
func (p *Phrasebook) WordCategory(id string) (*phrase.WordCategory, error) {
	c := p.ds.WordCategory(id)
	if c == nil {
		return nil, fmt.Errorf("%w: word category %q", ErrNotFound, id)
	}
	return c, nil
}

// Word returns the word in the category with the given Chinese text.
func (p *Phrasebook) Word(categoryID, chinese string) (*phrase.Word, error) {
	c, err := p.WordCategory(categoryID)
	if err != nil {
		return nil, err
	}
	for _, w := range c.Words {
		if w.Chinese == chinese {
			return w, nil
		}
	}
	return nil, fmt.Errorf("%w: word %q in %q", ErrNotFound, chinese, categoryID)
}

// SituationPhrases returns the phrases of a situation that have at least one
// of the given tags and match query. Empty tags or a blank query do not
// filter.
func (p *Phrasebook) SituationPhrases(id phrase.Category, query string, tags []phrase.Tag) ([]*phrase.Phrase, error) {
	s, err := p.Situation(id)
	if err != nil {
		return nil, err
	}
	phrases := search.FilterTags(s.Phrases, tags, search.PhraseTags)
	return search.Filter(phrases, query, search.PhraseFields...), nil
}

// CategoryWords returns the words of a word category that have at least one
// of the given tags and match query.
func (p *Phrasebook) CategoryWords(id, query string, tags []phrase.Tag) ([]*phrase.Word, error) {
	c, err := p.WordCategory(id)
	if err != nil {
		return nil, err
	}
	words := search.FilterTags(c.Words, tags, search.WordTags)
	return search.Filter(words, query, search.WordFields...), nil
}
