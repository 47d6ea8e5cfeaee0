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
	"github.com/ianlewis/go-phrasebook/phrase"
)

var wordCategories = []*phrase.WordCategory{
	{
		ID:          "numbers",
		Name:        "Numbers",
		Icon:        "hash",
		Description: "Counting from one to ten and beyond",
		Words: []*phrase.Word{
			{Chinese: "一", Pinyin: "yī", English: "one", Tags: []phrase.Tag{phrase.TagEssential, phrase.TagNumbers}},
			{Chinese: "二", Pinyin: "èr", English: "two", Tags: []phrase.Tag{phrase.TagEssential, phrase.TagNumbers}},
			{Chinese: "三", Pinyin: "sān", English: "three", Tags: []phrase.Tag{phrase.TagNumbers}},
			{Chinese: "四", Pinyin: "sì", English: "four", Tags: []phrase.Tag{phrase.TagNumbers}},
			{Chinese: "五", Pinyin: "wǔ", English: "five", Tags: []phrase.Tag{phrase.TagNumbers}},
			{Chinese: "十", Pinyin: "shí", English: "ten", Tags: []phrase.Tag{phrase.TagNumbers}},
			{Chinese: "一百", Pinyin: "yìbǎi", English: "one hundred", Tags: []phrase.Tag{phrase.TagNumbers}},
		},
	},
	{
		ID:          "people",
		Name:        "People",
		Icon:        "user",
		Description: "Pronouns and family",
		Words: []*phrase.Word{
			{Chinese: "我", Pinyin: "wǒ", English: "I, me", Tags: []phrase.Tag{phrase.TagEssential, phrase.TagPeople}},
			{Chinese: "你", Pinyin: "nǐ", English: "you", Tags: []phrase.Tag{phrase.TagEssential, phrase.TagPeople}},
			{Chinese: "他", Pinyin: "tā", English: "he, him", Tags: []phrase.Tag{phrase.TagPeople}},
			{Chinese: "女儿", Pinyin: "nǚ'ér", English: "daughter", Tags: []phrase.Tag{phrase.TagPeople}},
			{Chinese: "朋友", Pinyin: "péngyou", English: "friend", Tags: []phrase.Tag{phrase.TagPeople}},
		},
	},
	{
		ID:          "time",
		Name:        "Time & Days",
		Icon:        "calendar",
		Description: "Days of the week and telling time",
		Words: []*phrase.Word{
			{Chinese: "今天", Pinyin: "jīntiān", English: "today", Tags: []phrase.Tag{phrase.TagEssential, phrase.TagDays}},
			{Chinese: "明天", Pinyin: "míngtiān", English: "tomorrow", Tags: []phrase.Tag{phrase.TagDays}},
			{Chinese: "昨天", Pinyin: "zuótiān", English: "yesterday", Tags: []phrase.Tag{phrase.TagDays}},
			{Chinese: "星期一", Pinyin: "xīngqī yī", English: "Monday", Tags: []phrase.Tag{phrase.TagDays}},
			{Chinese: "点", Pinyin: "diǎn", English: "o'clock", Tags: []phrase.Tag{phrase.TagTime}},
		},
	},
	{
		ID:          "colors",
		Name:        "Colors",
		Icon:        "palette",
		Description: "Common colors",
		Words: []*phrase.Word{
			{Chinese: "红色", Pinyin: "hóngsè", English: "red", Tags: []phrase.Tag{phrase.TagColors}},
			{Chinese: "绿色", Pinyin: "lǜsè", English: "green", Tags: []phrase.Tag{phrase.TagColors}},
			{Chinese: "蓝色", Pinyin: "lánsè", English: "blue", Tags: []phrase.Tag{phrase.TagColors}},
			{Chinese: "白色", Pinyin: "báisè", English: "white", Tags: []phrase.Tag{phrase.TagColors}},
		},
	},
	{
		ID:          "verbs",
		Name:        "Verbs",
		Icon:        "activity",
		Description: "Everyday actions",
		Words: []*phrase.Word{
			{Chinese: "去", Pinyin: "qù", English: "to go", Tags: []phrase.Tag{phrase.TagEssential, phrase.TagVerbs}},
			{Chinese: "吃", Pinyin: "chī", English: "to eat", Tags: []phrase.Tag{phrase.TagEssential, phrase.TagVerbs}},
			{Chinese: "喝", Pinyin: "hē", English: "to drink", Tags: []phrase.Tag{phrase.TagVerbs}},
			{Chinese: "买", Pinyin: "mǎi", English: "to buy", Tags: []phrase.Tag{phrase.TagVerbs}},
			{Chinese: "要", Pinyin: "yào", English: "to want", Tags: []phrase.Tag{phrase.TagEssential, phrase.TagVerbs}},
		},
	},
}
