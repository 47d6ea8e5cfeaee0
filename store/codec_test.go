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
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ianlewis/go-phrasebook/phrase"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEncodePhrases(t *testing.T) {
	t.Parallel()

	b, err := encodePhrases([]*SavedPhrase{
		{Phrase: *greet, SavedAt: testTime},
		{
			Phrase: phrase.Phrase{
				ID:         "food-2",
				Chinese:    "买单",
				Pinyin:     "mǎidān",
				English:    "The bill, please",
				Category:   phrase.Food,
				Politeness: phrase.Polite,
				Variant:    &phrase.Variant{Locale: "zh-TW", Chinese: "結帳", Pinyin: "jiézhàng"},
				Tags:       []phrase.Tag{phrase.TagPayment},
			},
			SavedAt:    testTime,
			Favorite:   true,
			UsageCount: 2,
			LastUsed:   testTime.Add(90 * time.Minute),
		},
	})
	if err != nil {
		t.Fatalf("encodePhrases: %v", err)
	}

	want := `[` +
		`{"id":"greet-1","chinese":"你好","pinyin":"nǐ hǎo","english":"hello","category":"social",` +
		`"savedAt":"2025-03-14T09:26:53.589Z","usageCount":0},` +
		`{"id":"food-2","chinese":"买单","pinyin":"mǎidān","english":"The bill, please","category":"food",` +
		`"politeness":"polite","variant":{"locale":"zh-TW","chinese":"結帳","pinyin":"jiézhàng"},` +
		`"tags":["payment"],"savedAt":"2025-03-14T09:26:53.589Z","isFavorite":true,"usageCount":2,` +
		`"lastUsed":"2025-03-14T10:56:53.589Z"}` +
		`]`
	if diff := cmp.Diff(want, string(b)); diff != "" {
		t.Errorf("encodePhrases (-want, +got):\n%s", diff)
	}
}

func TestEncodeWords(t *testing.T) {
	t.Parallel()

	b, err := encodeWords([]*SavedWord{{
		Word:    phrase.Word{Chinese: "一", Pinyin: "yī", English: "one", Category: "Numbers"},
		ID:      "numbers-一",
		SavedAt: testTime,
	}})
	if err != nil {
		t.Fatalf("encodeWords: %v", err)
	}

	want := `[{"id":"numbers-一","chinese":"一","pinyin":"yī","english":"one","category":"Numbers",` +
		`"savedAt":"2025-03-14T09:26:53.589Z","type":"word"}]`
	if diff := cmp.Diff(want, string(b)); diff != "" {
		t.Errorf("encodeWords (-want, +got):\n%s", diff)
	}
}

func TestEncodeSearches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		terms    []string
		expected string
	}{
		{nil, `[]`},
		{[]string{}, `[]`},
		{[]string{"ni hao", "water"}, `["ni hao","water"]`},
	}

	for _, test := range tests {
		b, err := encodeSearches(test.terms)
		if err != nil {
			t.Fatalf("encodeSearches: %v", err)
		}
		if got, want := string(b), test.expected; got != want {
			t.Errorf("encodeSearches(%q): got %s, want %s", test.terms, got, want)
		}
	}
}

func TestDecodePhrases(t *testing.T) {
	t.Parallel()

	const savedAt = `"savedAt":"2025-03-14T09:26:53.589Z"`

	tests := []struct {
		name     string
		data     string
		expected []*SavedPhrase
		logs     []string
	}{
		{
			name:     "empty",
			data:     `[]`,
			expected: nil,
		},
		{
			name: "all fields",
			data: `[{"id":"food-2","chinese":"买单","pinyin":"mǎidān","english":"The bill","category":"food",` +
				`"politeness":"very-polite","culturalNote":"Wave <b>here</b>",` +
				`"variant":{"locale":"zh-TW","chinese":"結帳","pinyin":"jiézhàng"},"tags":["payment",3,"","requests"],` +
				`"isEmergency":true,` + savedAt + `,"note":"mine","isFavorite":true,"usageCount":4,` +
				`"lastUsed":"2025-03-14T18:26:53.589+09:00"}]`,
			expected: []*SavedPhrase{{
				Phrase: phrase.Phrase{
					ID:           "food-2",
					Chinese:      "买单",
					Pinyin:       "mǎidān",
					English:      "The bill",
					Category:     phrase.Food,
					Politeness:   phrase.VeryPolite,
					CulturalNote: "Wave <b>here</b>",
					Variant:      &phrase.Variant{Locale: "zh-TW", Chinese: "結帳", Pinyin: "jiézhàng"},
					Tags:         []phrase.Tag{phrase.TagPayment, phrase.TagRequests},
					Emergency:    true,
				},
				SavedAt:    testTime,
				Note:       "mine",
				Favorite:   true,
				UsageCount: 4,
				LastUsed:   testTime,
			}},
		},
		{
			name: "empty pinyin and english",
			data: `[{"id":"x-1","chinese":"嗯","pinyin":"","english":"",` + savedAt + `}]`,
			expected: []*SavedPhrase{{
				Phrase:  phrase.Phrase{ID: "x-1", Chinese: "嗯"},
				SavedAt: testTime,
			}},
		},
		{
			name: "invalid records skipped",
			data: `[` +
				`{"chinese":"你好","pinyin":"nǐ hǎo","english":"hello",` + savedAt + `},` +
				`{"id":"","chinese":"你好","pinyin":"nǐ hǎo","english":"hello",` + savedAt + `},` +
				`{"id":"a","chinese":"","pinyin":"nǐ hǎo","english":"hello",` + savedAt + `},` +
				`{"id":"b","chinese":"你好","pinyin":1,"english":"hello",` + savedAt + `},` +
				`{"id":"c","chinese":"你好","pinyin":"nǐ hǎo",` + savedAt + `},` +
				`{"id":"d","chinese":"你好","pinyin":"nǐ hǎo","english":"hello"},` +
				`{"id":"e","chinese":"你好","pinyin":"nǐ hǎo","english":"hello","savedAt":"yesterday"},` +
				`"greet-1",` +
				`null,` +
				`{"id":"greet-1","chinese":"你好","pinyin":"nǐ hǎo","english":"hello","category":"social",` + savedAt + `}` +
				`]`,
			expected: []*SavedPhrase{{
				Phrase:  *greet,
				SavedAt: testTime,
			}},
			logs: []string{"skipping saved phrase"},
		},
		{
			name: "invalid optional fields dropped",
			data: `[{"id":"greet-1","chinese":"你好","pinyin":"nǐ hǎo","english":"hello","category":"social",` +
				savedAt + `,"politeness":"rude","usageCount":"3","isFavorite":"yes","lastUsed":"never",` +
				`"tags":"greetings","variant":{"locale":"zh-TW"}}]`,
			expected: []*SavedPhrase{{
				Phrase:  *greet,
				SavedAt: testTime,
			}},
			logs: []string{"ignoring invalid saved phrase fields"},
		},
		{
			name: "negative usage count dropped",
			data: `[{"id":"greet-1","chinese":"你好","pinyin":"nǐ hǎo","english":"hello","category":"social",` +
				savedAt + `,"usageCount":-1}]`,
			expected: []*SavedPhrase{{
				Phrase:  *greet,
				SavedAt: testTime,
			}},
			logs: []string{"ignoring invalid saved phrase fields"},
		},
		{
			name: "duplicates keep first",
			data: `[` +
				`{"id":"greet-1","chinese":"你好","pinyin":"nǐ hǎo","english":"hello","category":"social",` + savedAt + `,"note":"first"},` +
				`{"id":"greet-1","chinese":"你好","pinyin":"nǐ hǎo","english":"hello","category":"social",` + savedAt + `,"note":"second"}` +
				`]`,
			expected: []*SavedPhrase{{
				Phrase:  *greet,
				SavedAt: testTime,
				Note:    "first",
			}},
			logs: []string{"skipping duplicate saved phrase"},
		},
		{
			name: "pinyin only variant",
			data: `[{"id":"greet-1","chinese":"你好","pinyin":"nǐ hǎo","english":"hello","category":"social",` +
				savedAt + `,"variant":{"locale":"zh-TW","chinese":"","pinyin":"ní hǎo"}}]`,
			expected: []*SavedPhrase{{
				Phrase: phrase.Phrase{
					ID:       greet.ID,
					Chinese:  greet.Chinese,
					Pinyin:   greet.Pinyin,
					English:  greet.English,
					Category: greet.Category,
					Variant:  &phrase.Variant{Locale: "zh-TW", Pinyin: "ní hǎo"},
				},
				SavedAt: testTime,
			}},
		},
		{
			name: "legacy taiwan pinyin only",
			data: `[{"id":"thanks-1","chinese":"谢谢","pinyin":"xièxie","english":"thank you",` + savedAt + `,` +
				`"taiwanPinyin":"xièxiè"}]`,
			expected: []*SavedPhrase{{
				Phrase: phrase.Phrase{
					ID:      "thanks-1",
					Chinese: "谢谢",
					Pinyin:  "xièxie",
					English: "thank you",
					Variant: &phrase.Variant{Locale: "zh-TW", Pinyin: "xièxiè"},
				},
				SavedAt: testTime,
			}},
		},
		{
			name: "legacy taiwan fields",
			data: `[{"id":"thanks-1","chinese":"谢谢","pinyin":"xièxie","english":"thank you",` + savedAt + `,` +
				`"taiwanChinese":"謝謝","taiwanPinyin":"xièxiè"}]`,
			expected: []*SavedPhrase{{
				Phrase: phrase.Phrase{
					ID:      "thanks-1",
					Chinese: "谢谢",
					Pinyin:  "xièxie",
					English: "thank you",
					Variant: &phrase.Variant{Locale: "zh-TW", Chinese: "謝謝", Pinyin: "xièxiè"},
				},
				SavedAt: testTime,
			}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			var logs bytes.Buffer
			got, err := decodePhrases([]byte(test.data), slog.New(slog.NewTextHandler(&logs, nil)))
			if err != nil {
				t.Fatalf("decodePhrases: %v", err)
			}
			if diff := cmp.Diff(test.expected, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("decodePhrases (-want, +got):\n%s", diff)
			}
			for _, msg := range test.logs {
				if !strings.Contains(logs.String(), msg) {
					t.Errorf("expected log %q, got:\n%s", msg, logs.String())
				}
			}
		})
	}
}

func TestDecodePhrases_malformed(t *testing.T) {
	t.Parallel()

	for _, data := range []string{``, `{}`, `"[]"`, `42`, `[{]`, `[1, 2`, `null`} {
		_, err := decodePhrases([]byte(data), discardLogger())
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("decodePhrases(%q): got %v, want %v", data, err, ErrMalformed)
		}
	}
}

func TestDecodeWords(t *testing.T) {
	t.Parallel()

	data := `[` +
		`{"id":"numbers-一","chinese":"一","pinyin":"yī","english":"one","category":"Numbers",` +
		`"tags":["numbers"],"savedAt":"2025-03-14T09:26:53.589Z","type":"word"},` +
		`{"id":"colors-红色","chinese":"红色","pinyin":"hóngsè","english":"red","category":"Colors",` +
		`"savedAt":"2025-03-14T09:26:53.589Z"},` +
		`{"id":"numbers-一","chinese":"一","pinyin":"yī","english":"one","category":"Numbers",` +
		`"savedAt":"2025-03-14T09:26:53.589Z","type":"word"},` +
		`{"id":"food-1","chinese":"你好","pinyin":"nǐ hǎo","english":"hello",` +
		`"savedAt":"2025-03-14T09:26:53.589Z","type":"phrase"},` +
		`{"chinese":"二","pinyin":"èr","english":"two","savedAt":"2025-03-14T09:26:53.589Z"}` +
		`]`

	got, err := decodeWords([]byte(data), discardLogger())
	if err != nil {
		t.Fatalf("decodeWords: %v", err)
	}

	want := []*SavedWord{
		{
			Word: phrase.Word{
				Chinese:  "一",
				Pinyin:   "yī",
				English:  "one",
				Category: "Numbers",
				Tags:     []phrase.Tag{phrase.TagNumbers},
			},
			ID:      "numbers-一",
			SavedAt: testTime,
			Type:    WordType,
		},
		{
			Word: phrase.Word{
				Chinese:  "红色",
				Pinyin:   "hóngsè",
				English:  "red",
				Category: "Colors",
			},
			ID:      "colors-红色",
			SavedAt: testTime,
			Type:    WordType,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("decodeWords (-want, +got):\n%s", diff)
	}
}

func TestDecodeSearches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		expected []string
	}{
		{
			name:     "empty",
			data:     `[]`,
			expected: nil,
		},
		{
			name:     "non strings skipped",
			data:     `["hello", 1, null, {"a":"b"}, ["c"], true, "water"]`,
			expected: []string{"hello", "water"},
		},
		{
			name:     "blank and duplicate skipped",
			data:     `["  hello ", "", "   ", "HELLO", "water"]`,
			expected: []string{"hello", "water"},
		},
		{
			name:     "escapes",
			data:     `["ni hǎo", "tab\tsep"]`,
			expected: []string{"ni hǎo", "tab\tsep"},
		},
		{
			name:     "truncated",
			data:     `["1","2","3","4","5","6","7","8","9","10","11","12"]`,
			expected: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := decodeSearches([]byte(test.data))
			if err != nil {
				t.Fatalf("decodeSearches: %v", err)
			}
			if diff := cmp.Diff(test.expected, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("decodeSearches (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeSearches_malformed(t *testing.T) {
	t.Parallel()

	for _, data := range []string{``, `"hello"`, `{"terms":[]}`, `["a",`} {
		if _, err := decodeSearches([]byte(data)); !errors.Is(err, ErrMalformed) {
			t.Errorf("decodeSearches(%q): got %v, want %v", data, err, ErrMalformed)
		}
	}
}
