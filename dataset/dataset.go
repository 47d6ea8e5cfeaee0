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

// Package dataset provides the phrasebook's static content.
//
// A Dataset is read-only. Accessors return fresh slices so callers may
// reorder or filter results without affecting the dataset, but the phrase and
// word values they point to are shared and must not be modified.
package dataset

import (
	"github.com/ianlewis/go-phrasebook/phrase"
)

// Dataset is an immutable collection of situations and word categories.
type Dataset struct {
	situations []*phrase.Situation
	categories []*phrase.WordCategory

	phrasesByID map[string]*phrase.Phrase
}

// New returns a new Dataset over the given situations and word categories.
// Each phrase's Category is set from its owning situation.
func New(situations []*phrase.Situation, categories []*phrase.WordCategory) *Dataset {
	d := &Dataset{
		situations:  situations,
		categories:  categories,
		phrasesByID: map[string]*phrase.Phrase{},
	}
	for _, s := range situations {
		for _, p := range s.Phrases {
			p.Category = s.ID
			d.phrasesByID[p.ID] = p
		}
	}
	for _, c := range categories {
		for _, w := range c.Words {
			if w.Category == "" {
				w.Category = c.Name
			}
		}
	}
	return d
}

var defaultDataset = New(situations, wordCategories)

// Default returns the built-in phrasebook dataset.
func Default() *Dataset {
	return defaultDataset
}

// Situations returns all situations in display order.
func (d *Dataset) Situations() []*phrase.Situation {
	return append([]*phrase.Situation(nil), d.situations...)
}

// Situation returns the situation with the given ID or nil.
func (d *Dataset) Situation(id phrase.Category) *phrase.Situation {
	for _, s := range d.situations {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Phrases returns every phrase in situation order.
func (d *Dataset) Phrases() []*phrase.Phrase {
	var phrases []*phrase.Phrase
	for _, s := range d.situations {
		phrases = append(phrases, s.Phrases...)
	}
	return phrases
}

// Phrase returns the phrase with the given ID or nil.
func (d *Dataset) Phrase(id string) *phrase.Phrase {
	return d.phrasesByID[id]
}

// WordCategories returns all word categories in display order.
func (d *Dataset) WordCategories() []*phrase.WordCategory {
	return append([]*phrase.WordCategory(nil), d.categories...)
}

// WordCategory returns the word category with the given ID or nil.
func (d *Dataset) WordCategory(id string) *phrase.WordCategory {
	for _, c := range d.categories {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Words returns every word in category order.
func (d *Dataset) Words() []*phrase.Word {
	var words []*phrase.Word
	for _, c := range d.categories {
		words = append(words, c.Words...)
	}
	return words
}
