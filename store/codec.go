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
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/buger/jsonparser"

	"github.com/ianlewis/go-phrasebook/phrase"
)

var (
	// ErrMalformed indicates that a stored collection is not a JSON array.
	ErrMalformed = errors.New("malformed collection")

	// ErrInvalidRecord indicates that a stored record is missing a required
	// field or a required field has the wrong type.
	ErrInvalidRecord = errors.New("invalid record")
)

// timeLayout is ISO-8601 in UTC with millisecond precision.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeLayout)
}

type variantRecord struct {
	Locale  string `json:"locale,omitempty"`
	Chinese string `json:"chinese"`
	Pinyin  string `json:"pinyin"`
}

type phraseRecord struct {
	ID           string         `json:"id"`
	Chinese      string         `json:"chinese"`
	Pinyin       string         `json:"pinyin"`
	English      string         `json:"english"`
	Category     string         `json:"category,omitempty"`
	Politeness   string         `json:"politeness,omitempty"`
	CulturalNote string         `json:"culturalNote,omitempty"`
	Variant      *variantRecord `json:"variant,omitempty"`
	Tags         []phrase.Tag   `json:"tags,omitempty"`
	Emergency    bool           `json:"isEmergency,omitempty"`
	SavedAt      string         `json:"savedAt"`
	Note         string         `json:"note,omitempty"`
	Favorite     bool           `json:"isFavorite,omitempty"`
	UsageCount   int            `json:"usageCount"`
	LastUsed     string         `json:"lastUsed,omitempty"`
}

type wordRecord struct {
	ID       string       `json:"id"`
	Chinese  string       `json:"chinese"`
	Pinyin   string       `json:"pinyin"`
	English  string       `json:"english"`
	Category string       `json:"category"`
	Tags     []phrase.Tag `json:"tags,omitempty"`
	SavedAt  string       `json:"savedAt"`
	Type     string       `json:"type"`
}

func encodePhrases(phrases []*SavedPhrase) ([]byte, error) {
	records := make([]phraseRecord, 0, len(phrases))
	for _, p := range phrases {
		r := phraseRecord{
			ID:           p.ID,
			Chinese:      p.Chinese,
			Pinyin:       p.Pinyin,
			English:      p.English,
			Category:     string(p.Category),
			Politeness:   string(p.Politeness),
			CulturalNote: p.CulturalNote,
			Tags:         p.Tags,
			Emergency:    p.Emergency,
			SavedAt:      formatTime(p.SavedAt),
			Note:         p.Note,
			Favorite:     p.Favorite,
			UsageCount:   p.UsageCount,
			LastUsed:     formatTime(p.LastUsed),
		}
		if p.Variant != nil {
			r.Variant = &variantRecord{
				Locale:  p.Variant.Locale,
				Chinese: p.Variant.Chinese,
				Pinyin:  p.Variant.Pinyin,
			}
		}
		records = append(records, r)
	}
	b, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encoding phrases: %w", err)
	}
	return b, nil
}

func encodeWords(words []*SavedWord) ([]byte, error) {
	records := make([]wordRecord, 0, len(words))
	for _, w := range words {
		records = append(records, wordRecord{
			ID:       w.ID,
			Chinese:  w.Chinese,
			Pinyin:   w.Pinyin,
			English:  w.English,
			Category: w.Category,
			Tags:     w.Tags,
			SavedAt:  formatTime(w.SavedAt),
			Type:     WordType,
		})
	}
	b, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encoding words: %w", err)
	}
	return b, nil
}

func encodeSearches(terms []string) ([]byte, error) {
	if terms == nil {
		terms = []string{}
	}
	b, err := json.Marshal(terms)
	if err != nil {
		return nil, fmt.Errorf("encoding searches: %w", err)
	}
	return b, nil
}

// eachRecord calls fn for every element of the JSON array in data. The
// document must be well formed and its top level value must be an array.
func eachRecord(data []byte, fn func(value []byte, typ jsonparser.ValueType)) error {
	if !json.Valid(data) {
		return fmt.Errorf("%w: invalid JSON", ErrMalformed)
	}
	_, typ, _, err := jsonparser.Get(data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if typ != jsonparser.Array {
		return fmt.Errorf("%w: got %s, want array", ErrMalformed, typ)
	}
	_, err = jsonparser.ArrayEach(data, func(value []byte, typ jsonparser.ValueType, _ int, _ error) {
		fn(value, typ)
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return nil
}

// validPhrase reports whether p satisfies the required fields checked by
// decodePhrase.
func validPhrase(p *phrase.Phrase) bool {
	if p == nil || p.ID == "" || p.Chinese == "" {
		return false
	}
	return p.Variant == nil || validVariant(p.Variant)
}

// validVariant reports whether v has Chinese text or pinyin. Either may be
// absent when a locale only differs in one of them.
func validVariant(v *phrase.Variant) bool {
	return v.Chinese != "" || v.Pinyin != ""
}

// validWord reports whether w can be saved under id and loaded back.
func validWord(id string, w *phrase.Word) bool {
	return w != nil && id != "" && w.Chinese != ""
}

// decodePhrases decodes a stored saved phrases collection. Invalid records
// are logged and skipped. If the collection itself is malformed an error is
// returned along with no phrases.
func decodePhrases(data []byte, logger *slog.Logger) ([]*SavedPhrase, error) {
	var phrases []*SavedPhrase
	seen := map[string]bool{}
	err := eachRecord(data, func(value []byte, typ jsonparser.ValueType) {
		if typ != jsonparser.Object {
			logger.Warn("skipping saved phrase", "key", PhrasesKey, "error", fmt.Errorf("%w: got %s, want object", ErrInvalidRecord, typ))
			return
		}
		d := &fieldDecoder{data: value}
		p := decodePhrase(d)
		if d.err != nil {
			logger.Warn("skipping saved phrase", "key", PhrasesKey, "error", d.err)
			return
		}
		if len(d.dropped) > 0 {
			logger.Warn("ignoring invalid saved phrase fields", "key", PhrasesKey, "id", p.ID, "fields", d.dropped)
		}
		if seen[p.ID] {
			logger.Warn("skipping duplicate saved phrase", "key", PhrasesKey, "id", p.ID)
			return
		}
		seen[p.ID] = true
		phrases = append(phrases, p)
	})
	if err != nil {
		return nil, err
	}
	return phrases, nil
}

func decodePhrase(d *fieldDecoder) *SavedPhrase {
	p := &SavedPhrase{}
	p.ID = d.requiredString("id", false)
	p.Chinese = d.requiredString("chinese", false)
	p.Pinyin = d.requiredString("pinyin", true)
	p.English = d.requiredString("english", true)
	p.SavedAt = d.requiredTime("savedAt")

	p.Category = phrase.Category(d.str("category"))
	if pol := phrase.Politeness(d.str("politeness")); pol != "" {
		if pol.Valid() {
			p.Politeness = pol
		} else {
			d.drop("politeness")
		}
	}
	p.CulturalNote = d.str("culturalNote")
	p.Tags = d.tags("tags")
	p.Emergency = d.boolean("isEmergency")
	p.Note = d.str("note")
	p.Favorite = d.boolean("isFavorite")
	p.UsageCount = d.count("usageCount")
	p.LastUsed = d.timestamp("lastUsed")

	if v, ok := d.object("variant"); ok {
		vd := &fieldDecoder{data: v}
		variant := &phrase.Variant{
			Locale:  vd.str("locale"),
			Chinese: vd.str("chinese"),
			Pinyin:  vd.str("pinyin"),
		}
		if len(vd.dropped) > 0 || !validVariant(variant) {
			d.drop("variant")
		} else {
			p.Variant = variant
		}
	} else {
		// Records written by older versions store the Taiwan variant in
		// flat fields.
		variant := &phrase.Variant{
			Locale:  "zh-TW",
			Chinese: d.str("taiwanChinese"),
			Pinyin:  d.str("taiwanPinyin"),
		}
		if validVariant(variant) {
			p.Variant = variant
		}
	}

	return p
}

// decodeWords decodes a stored saved words collection. Invalid records are
// logged and skipped.
func decodeWords(data []byte, logger *slog.Logger) ([]*SavedWord, error) {
	var words []*SavedWord
	seen := map[string]bool{}
	err := eachRecord(data, func(value []byte, typ jsonparser.ValueType) {
		if typ != jsonparser.Object {
			logger.Warn("skipping saved word", "key", WordsKey, "error", fmt.Errorf("%w: got %s, want object", ErrInvalidRecord, typ))
			return
		}
		d := &fieldDecoder{data: value}
		w := &SavedWord{Type: WordType}
		w.ID = d.requiredString("id", false)
		w.Chinese = d.requiredString("chinese", false)
		w.Pinyin = d.requiredString("pinyin", true)
		w.English = d.requiredString("english", true)
		w.SavedAt = d.requiredTime("savedAt")
		w.Category = d.str("category")
		w.Tags = d.tags("tags")
		if t := d.str("type"); t != "" && t != WordType {
			d.fail(fmt.Errorf("%w: unexpected type %q", ErrInvalidRecord, t))
		}
		if d.err != nil {
			logger.Warn("skipping saved word", "key", WordsKey, "error", d.err)
			return
		}
		if len(d.dropped) > 0 {
			logger.Warn("ignoring invalid saved word fields", "key", WordsKey, "id", w.ID, "fields", d.dropped)
		}
		if seen[w.ID] {
			logger.Warn("skipping duplicate saved word", "key", WordsKey, "id", w.ID)
			return
		}
		seen[w.ID] = true
		words = append(words, w)
	})
	if err != nil {
		return nil, err
	}
	return words, nil
}

// decodeSearches decodes the stored recent searches. Non-string and blank
// entries are skipped, duplicates (ignoring case) keep the first occurrence
// and the list is truncated to MaxRecentSearches.
func decodeSearches(data []byte) ([]string, error) {
	var terms []string
	err := eachRecord(data, func(value []byte, typ jsonparser.ValueType) {
		if typ != jsonparser.String || len(terms) >= MaxRecentSearches {
			return
		}
		s, err := jsonparser.ParseString(value)
		if err != nil {
			return
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		for _, t := range terms {
			if strings.EqualFold(t, s) {
				return
			}
		}
		terms = append(terms, s)
	})
	if err != nil {
		return nil, err
	}
	return terms, nil
}

// fieldDecoder extracts fields from a single JSON object. Problems with
// required fields are recorded in err and the record should be rejected.
// Optional fields with the wrong type are recorded in dropped and read as
// their zero value.
type fieldDecoder struct {
	data    []byte
	err     error
	dropped []string
}

func (d *fieldDecoder) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

func (d *fieldDecoder) drop(key string) {
	d.dropped = append(d.dropped, key)
}

// lookup returns the raw value of key. ok is false if the key is absent or
// null. wrongType is true if the value is present but not of type want.
func (d *fieldDecoder) lookup(key string, want jsonparser.ValueType) (value []byte, ok, wrongType bool) {
	v, typ, _, err := jsonparser.Get(d.data, key)
	if err != nil || typ == jsonparser.NotExist || typ == jsonparser.Null {
		return nil, false, false
	}
	if typ != want {
		return nil, false, true
	}
	return v, true, false
}

func (d *fieldDecoder) requiredString(key string, allowEmpty bool) string {
	v, ok, wrongType := d.lookup(key, jsonparser.String)
	if !ok {
		if wrongType {
			d.fail(fmt.Errorf("%w: %q is not a string", ErrInvalidRecord, key))
		} else {
			d.fail(fmt.Errorf("%w: missing %q", ErrInvalidRecord, key))
		}
		return ""
	}
	s, err := jsonparser.ParseString(v)
	if err != nil {
		d.fail(fmt.Errorf("%w: %q: %w", ErrInvalidRecord, key, err))
		return ""
	}
	if s == "" && !allowEmpty {
		d.fail(fmt.Errorf("%w: empty %q", ErrInvalidRecord, key))
	}
	return s
}

func (d *fieldDecoder) requiredTime(key string) time.Time {
	s := d.requiredString(key, false)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		d.fail(fmt.Errorf("%w: %q: %w", ErrInvalidRecord, key, err))
		return time.Time{}
	}
	return t
}

func (d *fieldDecoder) str(key string) string {
	v, ok, wrongType := d.lookup(key, jsonparser.String)
	if wrongType {
		d.drop(key)
	}
	if !ok {
		return ""
	}
	s, err := jsonparser.ParseString(v)
	if err != nil {
		d.drop(key)
		return ""
	}
	return s
}

func (d *fieldDecoder) timestamp(key string) time.Time {
	s := d.str(key)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		d.drop(key)
		return time.Time{}
	}
	return t
}

func (d *fieldDecoder) boolean(key string) bool {
	v, ok, wrongType := d.lookup(key, jsonparser.Boolean)
	if wrongType {
		d.drop(key)
	}
	if !ok {
		return false
	}
	b, err := jsonparser.ParseBoolean(v)
	if err != nil {
		d.drop(key)
		return false
	}
	return b
}

// count reads a non-negative integer.
func (d *fieldDecoder) count(key string) int {
	v, ok, wrongType := d.lookup(key, jsonparser.Number)
	if wrongType {
		d.drop(key)
	}
	if !ok {
		return 0
	}
	n, err := jsonparser.ParseInt(v)
	if err != nil || n < 0 {
		d.drop(key)
		return 0
	}
	return int(n)
}

func (d *fieldDecoder) object(key string) ([]byte, bool) {
	v, ok, wrongType := d.lookup(key, jsonparser.Object)
	if wrongType {
		d.drop(key)
	}
	return v, ok
}

// tags reads an array of strings. Non-string elements are skipped.
func (d *fieldDecoder) tags(key string) []phrase.Tag {
	v, ok, wrongType := d.lookup(key, jsonparser.Array)
	if wrongType {
		d.drop(key)
	}
	if !ok {
		return nil
	}
	var tags []phrase.Tag
	_, _ = jsonparser.ArrayEach(v, func(value []byte, typ jsonparser.ValueType, _ int, _ error) {
		if typ != jsonparser.String {
			return
		}
		if s, err := jsonparser.ParseString(value); err == nil && s != "" {
			tags = append(tags, phrase.Tag(s))
		}
	})
	return tags
}
