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

package dataset

import (
	"testing"

	"github.com/ianlewis/go-phrasebook/phrase"
)

func TestDefault_uniqueIDs(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for _, p := range Default().Phrases() {
		if p.ID == "" {
			t.Errorf("phrase %q has no ID", p.Chinese)
		}
		if seen[p.ID] {
			t.Errorf("duplicate phrase ID %q", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestDefault_phraseCategory(t *testing.T) {
	t.Parallel()

	for _, s := range Default().Situations() {
		for _, p := range s.Phrases {
			if p.Category != s.ID {
				t.Errorf("phrase %q: category %q, want %q", p.ID, p.Category, s.ID)
			}
			if p.Politeness != "" && !p.Politeness.Valid() {
				t.Errorf("phrase %q: invalid politeness %q", p.ID, p.Politeness)
			}
		}
	}
}

func TestDefault_wordCategory(t *testing.T) {
	t.Parallel()

	for _, c := range Default().WordCategories() {
		for _, w := range c.Words {
			if w.Category != c.Name {
				t.Errorf("word %q: category %q, want %q", w.Chinese, w.Category, c.Name)
			}
		}
	}
}

func TestDataset_lookup(t *testing.T) {
	t.Parallel()

	d := New([]*phrase.Situation{
		{
			ID: phrase.Social,
			Phrases: []*phrase.Phrase{
				{ID: "greet-1", Chinese: "你好", Pinyin: "nǐ hǎo", English: "hello"},
			},
		},
	}, []*phrase.WordCategory{
		{ID: "numbers", Name: "Numbers", Words: []*phrase.Word{{Chinese: "一"}}},
	})

	p := d.Phrase("greet-1")
	if p == nil {
		t.Fatalf("Phrase: got nil")
	}
	if got, want := p.Category, phrase.Social; got != want {
		t.Errorf("Category: got %q, want %q", got, want)
	}
	if d.Phrase("missing") != nil {
		t.Errorf("Phrase(%q): got non-nil", "missing")
	}
	if d.Situation(phrase.Food) != nil {
		t.Errorf("Situation(%q): got non-nil", phrase.Food)
	}
	if d.WordCategory("numbers") == nil {
		t.Errorf("WordCategory(%q): got nil", "numbers")
	}
	if got, want := len(d.Words()), 1; got != want {
		t.Errorf("Words: got %d, want %d", got, want)
	}
}

func TestDataset_Situations_copy(t *testing.T) {
	t.Parallel()

	d := Default()
	s := d.Situations()
	s[0] = nil
	if d.Situations()[0] == nil {
		t.Errorf("Situations: modifying the result modified the dataset")
	}
}
