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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ianlewis/go-phrasebook/phrase"
)

var testPhrases = []*phrase.Phrase{
	{
		ID:      "greet-1",
		Chinese: "你好",
		Pinyin:  "nǐ hǎo",
		English: "hello",
		Tags:    []phrase.Tag{phrase.TagGreetings, phrase.TagBasic},
	},
	{
		ID:      "pay-1",
		Chinese: "买单",
		Pinyin:  "mǎidān",
		English: "the bill",
		Variant: &phrase.Variant{Locale: "zh-TW", Chinese: "結帳", Pinyin: "jiézhàng"},
		Tags:    []phrase.Tag{phrase.TagPayment},
	},
	{
		ID:      "food-1",
		Chinese: "好吃",
		Pinyin:  "hǎochī",
		English: "delicious",
	},
	{
		ID:      "help-1",
		Chinese: "救命",
		Pinyin:  "jiùmìng",
		English: "help",
		Tags:    []phrase.Tag{phrase.TagUrgent},
	},
}

func ids(phrases []*phrase.Phrase) []string {
	var result []string
	for _, p := range phrases {
		result = append(result, p.ID)
	}
	return result
}

func TestFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{
			name:     "blank query",
			query:    "  \t",
			expected: []string{"greet-1", "pay-1", "food-1", "help-1"},
		},
		{
			name:     "preserves order",
			query:    "hao",
			expected: []string{"greet-1", "food-1"},
		},
		{
			name:     "any field",
			query:    "HELLO",
			expected: []string{"greet-1"},
		},
		{
			name:     "variant text",
			query:    "jiezhang",
			expected: []string{"pay-1"},
		},
		{
			name:     "no match",
			query:    "xyz",
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := ids(Filter(testPhrases, test.query, PhraseFields...))
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Errorf("Filter (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestFilter_words(t *testing.T) {
	t.Parallel()

	words := []*phrase.Word{
		{Chinese: "女儿", Pinyin: "nǚ'ér", English: "daughter"},
		{Chinese: "绿色", Pinyin: "lǜsè", English: "green"},
		{Chinese: "一", Pinyin: "yī", English: "one"},
	}

	got := Filter(words, "lv", WordFields...)
	if diff := cmp.Diff([]*phrase.Word{words[1]}, got); diff != "" {
		t.Errorf("Filter (-want, +got):\n%s", diff)
	}
}

func TestFilterTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		active   []phrase.Tag
		expected []string
	}{
		{
			name:     "no filters",
			active:   nil,
			expected: []string{"greet-1", "pay-1", "food-1", "help-1"},
		},
		{
			name:     "single tag",
			active:   []phrase.Tag{phrase.TagPayment},
			expected: []string{"pay-1"},
		},
		{
			name:     "logical or",
			active:   []phrase.Tag{phrase.TagUrgent, phrase.TagGreetings},
			expected: []string{"greet-1", "help-1"},
		},
		{
			name:     "no match",
			active:   []phrase.Tag{phrase.TagSizing},
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := ids(FilterTags(testPhrases, test.active, PhraseTags))
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Errorf("FilterTags (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestAvailableTags(t *testing.T) {
	t.Parallel()

	got := AvailableTags(testPhrases, PhraseTags)
	want := []phrase.Tag{phrase.TagBasic, phrase.TagGreetings, phrase.TagPayment, phrase.TagUrgent}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AvailableTags (-want, +got):\n%s", diff)
	}
}

func TestToggleTag(t *testing.T) {
	t.Parallel()

	active := ToggleTag(nil, phrase.TagUrgent)
	active = ToggleTag(active, phrase.TagPayment)
	if diff := cmp.Diff([]phrase.Tag{phrase.TagUrgent, phrase.TagPayment}, active); diff != "" {
		t.Errorf("ToggleTag (-want, +got):\n%s", diff)
	}

	removed := ToggleTag(active, phrase.TagUrgent)
	if diff := cmp.Diff([]phrase.Tag{phrase.TagPayment}, removed); diff != "" {
		t.Errorf("ToggleTag (-want, +got):\n%s", diff)
	}

	// The original slice is not modified.
	if diff := cmp.Diff([]phrase.Tag{phrase.TagUrgent, phrase.TagPayment}, active); diff != "" {
		t.Errorf("ToggleTag modified input (-want, +got):\n%s", diff)
	}
}

func TestIndex_Search(t *testing.T) {
	t.Parallel()

	idx := NewIndex(testPhrases)

	tests := []struct {
		name     string
		query    string
		expected Result
	}{
		{
			name:  "no query",
			query: "",
			expected: Result{
				Active: false,
				Query:  "",
			},
		},
		{
			name:  "whitespace query",
			query: "   ",
			expected: Result{
				Active: false,
				Query:  "   ",
			},
		},
		{
			name:  "results",
			query: "hao",
			expected: Result{
				Active:  true,
				Query:   "hao",
				Phrases: []*phrase.Phrase{testPhrases[0], testPhrases[2]},
			},
		},
		{
			name:  "zero results",
			query: "goodbye",
			expected: Result{
				Active: true,
				Query:  "goodbye",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := idx.Search(test.query)
			if diff := cmp.Diff(test.expected, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Search (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestResult_Empty(t *testing.T) {
	t.Parallel()

	if (Result{}).Empty() {
		t.Errorf("inactive result: Empty() = true, want false")
	}
	if !(Result{Active: true, Query: "x"}).Empty() {
		t.Errorf("active result with no phrases: Empty() = false, want true")
	}
	if (Result{Active: true, Phrases: testPhrases[:1]}).Empty() {
		t.Errorf("active result with phrases: Empty() = true, want false")
	}
}
