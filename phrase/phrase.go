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

// Package phrase defines the phrasebook's data model.
//
// Phrases are grouped into situations (e.g. dining, transport) and basic
// vocabulary words are grouped into word categories. All values in this
// package describe static content and are never mutated once loaded.
package phrase

// Politeness is the register of a phrase.
type Politeness string

const (
	// Casual is informal speech used with friends and peers.
	Casual Politeness = "casual"

	// Polite is the default courteous register.
	Polite Politeness = "polite"

	// VeryPolite is formal speech used with elders or in service settings.
	VeryPolite Politeness = "very-polite"
)

// Valid returns true if p is one of the known politeness levels.
func (p Politeness) Valid() bool {
	switch p {
	case Casual, Polite, VeryPolite:
		return true
	default:
		return false
	}
}

// Category identifies the situation that a phrase belongs to.
type Category string

// Situation categories.
const (
	Food        Category = "food"
	Transport   Category = "transport"
	Hotel       Category = "hotel"
	Shopping    Category = "shopping"
	Emergency   Category = "emergency"
	Social      Category = "social"
	Dating      Category = "dating"
	Weather     Category = "weather"
	Nature      Category = "nature"
	Tech        Category = "tech"
	Facilities  Category = "facilities"
	Attractions Category = "attractions"
	Custom      Category = "custom"
)

// Variant is an alternate rendering of a phrase used in a secondary locale.
type Variant struct {
	// Locale is the BCP 47 tag of the locale, e.g. zh-TW.
	Locale  string
	Chinese string
	Pinyin  string
}

// Phrase is a single phrasebook entry.
type Phrase struct {
	// ID uniquely identifies the phrase across the whole dataset.
	ID       string
	Chinese  string
	Pinyin   string
	English  string
	Category Category

	// Politeness is empty when the phrase has no particular register.
	Politeness Politeness

	// CulturalNote may contain light HTML markup.
	CulturalNote string

	// Variant is nil when the phrase is the same in every locale.
	Variant *Variant

	Tags      []Tag
	Emergency bool
}

// HasTag returns true if the phrase is labeled with t.
func (p *Phrase) HasTag(t Tag) bool {
	for _, pt := range p.Tags {
		if pt == t {
			return true
		}
	}
	return false
}

// Situation is a named real-world context grouping related phrases.
type Situation struct {
	ID          Category
	Name        string
	Icon        string
	Description string
	Color       string
	Phrases     []*Phrase
}

// Word is a basic vocabulary word.
type Word struct {
	Chinese string
	Pinyin  string
	English string

	// Category is the display name of the word's category.
	Category string

	Tags []Tag
}

// WordCategory is a named group of vocabulary words.
type WordCategory struct {
	ID          string
	Name        string
	Icon        string
	Description string
	Words       []*Word
}

// WordID returns the identifier used for a saved word. Words have no
// identifier of their own so the ID is synthesized from the category ID and
// the word's Chinese text.
func WordID(categoryID, chinese string) string {
	return categoryID + "-" + chinese
}
