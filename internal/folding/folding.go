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

// Package folding implements text folding used to compare phrasebook text
// independent of case and pinyin tone marks.
package folding

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// toneVowels maps tone-marked pinyin vowels to their base vowel. The ü family
// maps to v as it is typed on pinyin keyboards.
var toneVowels = map[rune]rune{
	'ā': 'a', 'á': 'a', 'ǎ': 'a', 'à': 'a',
	'ē': 'e', 'é': 'e', 'ě': 'e', 'è': 'e',
	'ī': 'i', 'í': 'i', 'ǐ': 'i', 'ì': 'i',
	'ō': 'o', 'ó': 'o', 'ǒ': 'o', 'ò': 'o',
	'ū': 'u', 'ú': 'u', 'ǔ': 'u', 'ù': 'u',
	'ü': 'v', 'ǖ': 'v', 'ǘ': 'v', 'ǚ': 'v', 'ǜ': 'v',
}

// FoldTone returns the base vowel for a lower case tone-marked vowel. All
// other runes are returned unchanged.
func FoldTone(r rune) rune {
	if b, ok := toneVowels[r]; ok {
		return b
	}
	return r
}

// ToneFolder returns a [transform.Transformer] that replaces lower case
// tone-marked vowels with their base vowel.
func ToneFolder() transform.Transformer {
	return runes.Map(FoldTone)
}

// Normalizer returns a [transform.Transformer] that composes the input
// (NFC), lower-cases it and folds tone marks. A new Transformer must be
// created for each use as the returned value is stateful.
func Normalizer() transform.Transformer {
	return transform.Chain(norm.NFC, cases.Lower(language.Und), ToneFolder())
}

// Normalize returns the comparison key for s. Normalize("Nǐ Hǎo") and
// Normalize("ni hao") are equal.
func Normalize(s string) string {
	folded, _, err := transform.String(Normalizer(), s)
	if err != nil {
		// Transforming a string in memory should not fail. Fall back to
		// simple case folding rather than surfacing an error.
		return strings.Map(FoldTone, strings.ToLower(s))
	}
	return folded
}

// IsBlank returns true if s is empty or contains only whitespace.
func IsBlank(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}
