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

// DefaultRecentlyUsedLimit is the number of phrases returned by RecentlyUsed
// when no limit is given.
const DefaultRecentlyUsedLimit = 10

// SavedPhrase is a phrase saved by the user.
type SavedPhrase struct {
	phrase.Phrase

	SavedAt  time.Time
	Note     string
	Favorite bool

	// UsageCount is the number of times the phrase was used.
	UsageCount int

	// LastUsed is the time the phrase was last used. It is the zero time if
	// the phrase was never used.
	LastUsed time.Time
}

// Used returns true if the phrase has been used at least once.
func (p *SavedPhrase) Used() bool {
	return !p.LastUsed.IsZero()
}

// Phrases is the saved phrases collection. Phrases are unique by ID and kept
// in the order they were saved.
type Phrases struct {
	env     *env
	phrases []*SavedPhrase
}

func loadPhrases(e *env) *Phrases {
	ps := &Phrases{env: e}
	if v, ok := e.load(PhrasesKey); ok {
		phrases, err := decodePhrases([]byte(v), e.logger)
		if err != nil {
			e.discard(PhrasesKey, err)
		}
		ps.phrases = phrases
	}
	return ps
}

// Save saves p with an optional note. Saving a phrase that is already saved
// does nothing. A phrase without an ID or Chinese text, or with an empty
// variant, is not saved. Save returns true if the phrase was added.
func (ps *Phrases) Save(p *phrase.Phrase, note string) bool {
	if !validPhrase(p) || ps.index(p.ID) >= 0 {
		return false
	}
	ps.phrases = append(ps.phrases, &SavedPhrase{
		Phrase:  clonePhrase(*p),
		SavedAt: ps.env.now(),
		Note:    note,
	})
	ps.persist()
	return true
}

// Remove removes the phrase with the given ID. Removing a phrase that is not
// saved does nothing.
func (ps *Phrases) Remove(id string) {
	i := ps.index(id)
	if i < 0 {
		return
	}
	ps.phrases = slices.Delete(ps.phrases, i, i+1)
	ps.persist()
}

// IsSaved returns true if the phrase with the given ID is saved.
func (ps *Phrases) IsSaved(id string) bool {
	return ps.index(id) >= 0
}

// Get returns a copy of the saved phrase with the given ID.
func (ps *Phrases) Get(id string) (SavedPhrase, bool) {
	i := ps.index(id)
	if i < 0 {
		return SavedPhrase{}, false
	}
	return ps.phrases[i].clone(), true
}

// ToggleFavorite flips the favorite flag of the phrase with the given ID.
func (ps *Phrases) ToggleFavorite(id string) {
	ps.update(id, func(p *SavedPhrase) {
		p.Favorite = !p.Favorite
	})
}

// UpdateNote replaces the note of the phrase with the given ID.
func (ps *Phrases) UpdateNote(id, note string) {
	ps.update(id, func(p *SavedPhrase) {
		p.Note = note
	})
}

// RecordUsage increments the usage count of the phrase with the given ID and
// sets its last used time to now.
func (ps *Phrases) RecordUsage(id string) {
	ps.update(id, func(p *SavedPhrase) {
		p.UsageCount++
		p.LastUsed = ps.env.now()
	})
}

// List returns all saved phrases in the order they were saved.
func (ps *Phrases) List() []SavedPhrase {
	return ps.filter(func(*SavedPhrase) bool { return true })
}

// Favorites returns the saved phrases marked as favorite in the order they
// were saved.
func (ps *Phrases) Favorites() []SavedPhrase {
	return ps.filter(func(p *SavedPhrase) bool { return p.Favorite })
}

// RecentlyUsed returns at most limit used phrases, most recently used first.
// Phrases that were never used are not included. A limit of zero or less
// means DefaultRecentlyUsedLimit.
func (ps *Phrases) RecentlyUsed(limit int) []SavedPhrase {
	if limit <= 0 {
		limit = DefaultRecentlyUsedLimit
	}
	used := ps.filter((*SavedPhrase).Used)
	slices.SortStableFunc(used, func(a, b SavedPhrase) int {
		return b.LastUsed.Compare(a.LastUsed)
	})
	if len(used) > limit {
		used = used[:limit]
	}
	return used
}

// Len returns the number of saved phrases.
func (ps *Phrases) Len() int {
	return len(ps.phrases)
}

// ClearAll removes every saved phrase.
func (ps *Phrases) ClearAll() {
	ps.phrases = nil
	ps.persist()
}

func (ps *Phrases) index(id string) int {
	return slices.IndexFunc(ps.phrases, func(p *SavedPhrase) bool {
		return p.ID == id
	})
}

func (ps *Phrases) update(id string, fn func(*SavedPhrase)) {
	i := ps.index(id)
	if i < 0 {
		return
	}
	fn(ps.phrases[i])
	ps.persist()
}

func (ps *Phrases) filter(keep func(*SavedPhrase) bool) []SavedPhrase {
	var result []SavedPhrase
	for _, p := range ps.phrases {
		if keep(p) {
			result = append(result, p.clone())
		}
	}
	return result
}

// clone returns a copy of p that shares no memory with it.
func (p *SavedPhrase) clone() SavedPhrase {
	c := *p
	c.Phrase = clonePhrase(p.Phrase)
	return c
}

func clonePhrase(p phrase.Phrase) phrase.Phrase {
	p.Tags = slices.Clone(p.Tags)
	if p.Variant != nil {
		v := *p.Variant
		p.Variant = &v
	}
	return p
}

func (ps *Phrases) persist() {
	ps.env.write(PhrasesCollection, PhrasesKey, func() ([]byte, error) {
		return encodePhrases(ps.phrases)
	})
}
