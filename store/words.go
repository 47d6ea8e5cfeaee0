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
	"time"

	"github.com/ianlewis/go-phrasebook/phrase"
)

// WordType is the discriminator stored with every saved word.
const WordType = "word"

// SavedWord is a vocabulary word saved by the user.
type SavedWord struct {
	phrase.Word

	// ID is the word's synthetic identifier. See [phrase.WordID].
	ID      string
	SavedAt time.Time

	// Type is always WordType.
	Type string
}

// Words is the saved words collection. Words are unique by ID and kept in
// the order they were saved.
type Words struct {
	env   *env
	words []*SavedWord
}

func loadWords(e *env) *Words {
	ws := &Words{env: e}
	if v, ok := e.load(WordsKey); ok {
		words, err := decodeWords([]byte(v), e.logger)
		if err != nil {
			e.discard(WordsKey, err)
		}
		ws.words = words
	}
	return ws
}

// Save saves w under the given ID. Saving an ID that is already saved does
// nothing. A word without Chinese text is not saved. Save returns true if the
// word was added.
func (ws *Words) Save(id string, w *phrase.Word) bool {
	if !validWord(id, w) || ws.index(id) >= 0 {
		return false
	}
	word := *w
	word.Tags = slices.Clone(w.Tags)
	ws.words = append(ws.words, &SavedWord{
		Word:    word,
		ID:      id,
		SavedAt: ws.env.now(),
		Type:    WordType,
	})
	ws.persist()
	return true
}

// Remove removes the word with the given ID. Removing a word that is not
// saved does nothing.
func (ws *Words) Remove(id string) {
	i := ws.index(id)
	if i < 0 {
		return
	}
	ws.words = slices.Delete(ws.words, i, i+1)
	ws.persist()
}

// IsSaved returns true if the word with the given ID is saved.
func (ws *Words) IsSaved(id string) bool {
	return ws.index(id) >= 0
}

// Get returns a copy of the saved word with the given ID.
func (ws *Words) Get(id string) (SavedWord, bool) {
	i := ws.index(id)
	if i < 0 {
		return SavedWord{}, false
	}
	return ws.words[i].clone(), true
}

// List returns all saved words in the order they were saved.
func (ws *Words) List() []SavedWord {
	result := make([]SavedWord, 0, len(ws.words))
	for _, w := range ws.words {
		result = append(result, w.clone())
	}
	return result
}

// Len returns the number of saved words.
func (ws *Words) Len() int {
	return len(ws.words)
}

// ClearAll removes every saved word.
func (ws *Words) ClearAll() {
	ws.words = nil
	ws.persist()
}

func (ws *Words) index(id string) int {
	return slices.IndexFunc(ws.words, func(w *SavedWord) bool {
		return w.ID == id
	})
}

// clone returns a copy of w that shares no memory with it.
func (w *SavedWord) clone() SavedWord {
	c := *w
	c.Tags = slices.Clone(w.Tags)
	return c
}

func (ws *Words) persist() {
	ws.env.write(WordsCollection, WordsKey, func() ([]byte, error) {
		return encodeWords(ws.words)
	})
}
