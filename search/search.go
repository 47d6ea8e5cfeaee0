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

// Package search implements filtering of phrasebook content by free text
// query and by tags.
//
// Matching is diacritic and case insensitive: a query matches an item when
// the normalized query is a substring of the normalized value of any of the
// item's text fields. Results always preserve the input order.
package search

import (
	"slices"

	"github.com/ianlewis/go-phrasebook/internal/folding"
	"github.com/ianlewis/go-phrasebook/internal/index"
	"github.com/ianlewis/go-phrasebook/phrase"
)

// Field extracts a searchable text field from an item.
type Field[T any] func(T) string

// Filter returns the items matching query. A blank query returns items
// unchanged.
func Filter[T any](items []T, query string, fields ...Field[T]) []T {
	if folding.IsBlank(query) {
		return items
	}
	fs := make([]func(T) string, len(fields))
	for i, f := range fields {
		fs[i] = f
	}
	return index.NewIndex(items, fs...).Search(query)
}

// FilterTags returns the items labeled with at least one of the active tags.
// An empty active set returns items unchanged.
func FilterTags[T any](items []T, active []phrase.Tag, tags func(T) []phrase.Tag) []T {
	if len(active) == 0 {
		return items
	}
	var result []T
	for _, item := range items {
		for _, t := range tags(item) {
			if slices.Contains(active, t) {
				result = append(result, item)
				break
			}
		}
	}
	return result
}

// AvailableTags returns the sorted set of tags used by items.
func AvailableTags[T any](items []T, tags func(T) []phrase.Tag) []phrase.Tag {
	var result []phrase.Tag
	for _, item := range items {
		for _, t := range tags(item) {
			if !slices.Contains(result, t) {
				result = append(result, t)
			}
		}
	}
	slices.Sort(result)
	return result
}

// ToggleTag returns a copy of active with tag added if absent, or removed if
// present.
func ToggleTag(active []phrase.Tag, tag phrase.Tag) []phrase.Tag {
	if i := slices.Index(active, tag); i >= 0 {
		return slices.Delete(slices.Clone(active), i, i+1)
	}
	return append(slices.Clone(active), tag)
}

// PhraseFields are the text fields that phrase queries are matched against.
var PhraseFields = []Field[*phrase.Phrase]{
	func(p *phrase.Phrase) string { return p.Chinese },
	func(p *phrase.Phrase) string { return p.Pinyin },
	func(p *phrase.Phrase) string { return p.English },
	func(p *phrase.Phrase) string {
		if p.Variant == nil {
			return ""
		}
		return p.Variant.Chinese
	},
	func(p *phrase.Phrase) string {
		if p.Variant == nil {
			return ""
		}
		return p.Variant.Pinyin
	},
}

// WordFields are the text fields that word queries are matched against.
var WordFields = []Field[*phrase.Word]{
	func(w *phrase.Word) string { return w.Chinese },
	func(w *phrase.Word) string { return w.Pinyin },
	func(w *phrase.Word) string { return w.English },
}

// PhraseTags returns a phrase's tags.
func PhraseTags(p *phrase.Phrase) []phrase.Tag { return p.Tags }

// WordTags returns a word's tags.
func WordTags(w *phrase.Word) []phrase.Tag { return w.Tags }
