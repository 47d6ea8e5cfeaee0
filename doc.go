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

// Package phrasebook implements a Mandarin Chinese travel phrasebook.
//
// The phrasebook content is organized into:
//  1. Situations, real-world contexts such as ordering food or taking a taxi,
//     each holding a list of phrases. See package phrase.
//  2. Word categories holding basic vocabulary such as numbers and colors.
//  3. User state: saved phrases, saved words and recent searches. See
//     package store.
//
// Searching is diacritic and case insensitive so a query typed without tone
// marks, e.g. "ni hao", matches the pinyin "nǐ hǎo". Queries also match the
// Chinese characters, the English translation and any regional variant of a
// phrase.
package phrasebook
