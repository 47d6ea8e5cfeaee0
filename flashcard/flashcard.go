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

// Package flashcard implements shuffled flashcard drills over the phrasebook
// content.
package flashcard

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/ianlewis/go-phrasebook/dataset"
	"github.com/ianlewis/go-phrasebook/phrase"
	"github.com/ianlewis/go-phrasebook/store"
)

// ErrInvalidMode indicates an unknown drill mode.
var ErrInvalidMode = errors.New("invalid mode")

// VocabularyCategory is the category of every word card.
const VocabularyCategory = "vocabulary"

// Mode selects the content of a deck.
type Mode string

const (
	// Phrases drills every phrase of every situation.
	Phrases Mode = "phrases"

	// Words drills every vocabulary word.
	Words Mode = "words"
)

// ParseMode parses a drill mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case Phrases, Words:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Card is a single flashcard. The front shows Chinese and the back shows the
// pinyin and English.
type Card struct {
	ID       string
	Chinese  string
	Pinyin   string
	English  string
	Category string
}

// Deck is a shuffled sequence of cards with a current position.
type Deck struct {
	ds    *dataset.Dataset
	mode  Mode
	rng   *rand.Rand
	cards []Card

	// order is the unshuffled card list.
	order []Card

	index   int
	flipped bool
}

// NewDeck returns a shuffled deck of the dataset's phrases or words. If rng
// is nil a randomly seeded source is used.
func NewDeck(ds *dataset.Dataset, mode Mode, rng *rand.Rand) (*Deck, error) {
	if _, err := ParseMode(string(mode)); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	d := &Deck{
		ds:   ds,
		mode: mode,
		rng:  rng,
	}
	switch mode {
	case Phrases:
		for _, p := range ds.Phrases() {
			d.order = append(d.order, Card{
				ID:       p.ID,
				Chinese:  p.Chinese,
				Pinyin:   p.Pinyin,
				English:  p.English,
				Category: string(p.Category),
			})
		}
	case Words:
		for i, w := range ds.Words() {
			d.order = append(d.order, Card{
				ID:       "word-" + strconv.Itoa(i),
				Chinese:  w.Chinese,
				Pinyin:   w.Pinyin,
				English:  w.English,
				Category: VocabularyCategory,
			})
		}
	}
	d.Shuffle()
	return d, nil
}

// Mode returns the deck's mode.
func (d *Deck) Mode() Mode {
	return d.mode
}

// Len returns the number of cards in the deck.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Index returns the position of the current card.
func (d *Deck) Index() int {
	return d.index
}

// Current returns the current card. It returns false if the deck is empty.
func (d *Deck) Current() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	return d.cards[d.index], true
}

// Flip turns the current card over.
func (d *Deck) Flip() {
	d.flipped = !d.flipped
}

// Flipped returns true if the back of the current card is showing.
func (d *Deck) Flipped() bool {
	return d.flipped
}

// Next moves to the next card, wrapping around at the end. The new card is
// shown front side up.
func (d *Deck) Next() {
	if len(d.cards) == 0 {
		return
	}
	d.index = (d.index + 1) % len(d.cards)
	d.flipped = false
}

// Prev moves to the previous card, wrapping around at the start.
func (d *Deck) Prev() {
	if len(d.cards) == 0 {
		return
	}
	d.index = (d.index - 1 + len(d.cards)) % len(d.cards)
	d.flipped = false
}

// Shuffle reshuffles the deck and returns to the first card front side up.
func (d *Deck) Shuffle() {
	cards := append([]Card(nil), d.order...)
	// Fisher-Yates
	for i := len(cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
	d.cards = cards
	d.index = 0
	d.flipped = false
}

// IsSaved returns true if the current card is saved in s.
func (d *Deck) IsSaved(s *store.Store) bool {
	c, ok := d.Current()
	if !ok {
		return false
	}
	if d.mode == Words {
		return s.Words.IsSaved(c.ID)
	}
	return s.Phrases.IsSaved(c.ID)
}

// ToggleSaved saves the current card in s, or removes it if it is already
// saved. It returns whether the card is saved afterwards.
func (d *Deck) ToggleSaved(s *store.Store) bool {
	c, ok := d.Current()
	if !ok {
		return false
	}

	switch d.mode {
	case Words:
		if s.Words.IsSaved(c.ID) {
			s.Words.Remove(c.ID)
			return false
		}
		return s.Words.Save(c.ID, &phrase.Word{
			Chinese:  c.Chinese,
			Pinyin:   c.Pinyin,
			English:  c.English,
			Category: c.Category,
		})
	default:
		if s.Phrases.IsSaved(c.ID) {
			s.Phrases.Remove(c.ID)
			return false
		}
		p := d.ds.Phrase(c.ID)
		if p == nil {
			return false
		}
		return s.Phrases.Save(p, "")
	}
}
