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

func taiwan(chinese, pinyin string) *phrase.Variant {
	return &phrase.Variant{
		Locale:  "zh-TW",
		Chinese: chinese,
		Pinyin:  pinyin,
	}
}

var situations = []*phrase.Situation{
	{
		ID:          phrase.Social,
		Name:        "Social",
		Icon:        "users",
		Description: "Greetings, introductions and small talk",
		Color:       "social",
		Phrases: []*phrase.Phrase{
			{
				ID:           "social-1",
				Chinese:      "你好",
				Pinyin:       "nǐ hǎo",
				English:      "Hello",
				Politeness:   phrase.Polite,
				CulturalNote: "Use <b>您好</b> (nín hǎo) with elders or in formal settings.",
				Tags:         []phrase.Tag{phrase.TagBasic, phrase.TagGreetings},
			},
			{
				ID:         "social-2",
				Chinese:    "谢谢",
				Pinyin:     "xièxie",
				English:    "Thank you",
				Politeness: phrase.Polite,
				Tags:       []phrase.Tag{phrase.TagBasic, phrase.TagPolite},
			},
			{
				ID:           "social-3",
				Chinese:      "不客气",
				Pinyin:       "bú kèqi",
				English:      "You're welcome",
				Politeness:   phrase.Polite,
				CulturalNote: "Close friends often just say <i>没事</i> (méi shì).",
				Tags:         []phrase.Tag{phrase.TagBasic, phrase.TagPolite},
			},
			{
				ID:         "social-4",
				Chinese:    "再见",
				Pinyin:     "zàijiàn",
				English:    "Goodbye",
				Politeness: phrase.Casual,
				Tags:       []phrase.Tag{phrase.TagBasic, phrase.TagFarewells},
			},
			{
				ID:         "social-5",
				Chinese:    "我叫……",
				Pinyin:     "wǒ jiào...",
				English:    "My name is...",
				Politeness: phrase.Casual,
				Tags:       []phrase.Tag{phrase.TagBasic, phrase.TagGreetings},
			},
			{
				ID:         "social-6",
				Chinese:    "很高兴认识你",
				Pinyin:     "hěn gāoxìng rènshi nǐ",
				English:    "Nice to meet you",
				Politeness: phrase.Polite,
				Tags:       []phrase.Tag{phrase.TagGreetings, phrase.TagCompliments},
			},
			{
				ID:         "social-7",
				Chinese:    "对不起",
				Pinyin:     "duìbuqǐ",
				English:    "Sorry",
				Politeness: phrase.Polite,
				Tags:       []phrase.Tag{phrase.TagBasic, phrase.TagPolite},
			},
		},
	},
	{
		ID:          phrase.Food,
		Name:        "Food & Dining",
		Icon:        "utensils",
		Description: "Ordering, paying and dietary needs",
		Color:       "food",
		Phrases: []*phrase.Phrase{
			{
				ID:         "food-1",
				Chinese:    "菜单",
				Pinyin:     "càidān",
				English:    "Menu, please",
				Politeness: phrase.Polite,
				Tags:       []phrase.Tag{phrase.TagRequests},
			},
			{
				ID:         "food-2",
				Chinese:    "买单",
				Pinyin:     "mǎidān",
				English:    "The bill, please",
				Politeness: phrase.Casual,
				Variant:    taiwan("結帳", "jiézhàng"),
				Tags:       []phrase.Tag{phrase.TagPayment, phrase.TagRequests},
			},
			{
				ID:           "food-3",
				Chinese:      "我对花生过敏",
				Pinyin:       "wǒ duì huāshēng guòmǐn",
				English:      "I'm allergic to peanuts",
				Politeness:   phrase.Polite,
				CulturalNote: "Peanut oil is common in cooking. Ask whether dishes are cooked with <b>花生油</b>.",
				Tags:         []phrase.Tag{phrase.TagAllergies, phrase.TagUrgent},
			},
			{
				ID:         "food-4",
				Chinese:    "不要辣",
				Pinyin:     "bú yào là",
				English:    "Not spicy",
				Politeness: phrase.Casual,
				Tags:       []phrase.Tag{phrase.TagRequests, phrase.TagFoodTypes},
			},
			{
				ID:      "food-5",
				Chinese: "我吃素",
				Pinyin:  "wǒ chī sù",
				English: "I'm vegetarian",
				Tags:    []phrase.Tag{phrase.TagFoodTypes, phrase.TagAllergies},
			},
			{
				ID:         "food-6",
				Chinese:    "很好吃",
				Pinyin:     "hěn hǎochī",
				English:    "Delicious",
				Politeness: phrase.Casual,
				Tags:       []phrase.Tag{phrase.TagCompliments},
			},
			{
				ID:      "food-7",
				Chinese: "可以刷卡吗？",
				Pinyin:  "kěyǐ shuākǎ ma?",
				English: "Can I pay by card?",
				Tags:    []phrase.Tag{phrase.TagPayment, phrase.TagQuestions},
			},
		},
	},
	{
		ID:          phrase.Transport,
		Name:        "Transport",
		Icon:        "train",
		Description: "Taxis, trains and asking for directions",
		Color:       "transport",
		Phrases: []*phrase.Phrase{
			{
				ID:      "transport-1",
				Chinese: "地铁站在哪里？",
				Pinyin:  "dìtiě zhàn zài nǎlǐ?",
				English: "Where is the subway station?",
				Variant: taiwan("捷運站在哪裡？", "jiéyùn zhàn zài nǎlǐ?"),
				Tags:    []phrase.Tag{phrase.TagDirections, phrase.TagQuestions},
			},
			{
				ID:      "transport-2",
				Chinese: "请去这个地址",
				Pinyin:  "qǐng qù zhège dìzhǐ",
				English: "Please go to this address",
				Tags:    []phrase.Tag{phrase.TagDirections, phrase.TagRequests},
			},
			{
				ID:      "transport-3",
				Chinese: "一张票",
				Pinyin:  "yì zhāng piào",
				English: "One ticket",
				Tags:    []phrase.Tag{phrase.TagBooking, phrase.TagNumbers},
			},
			{
				ID:      "transport-4",
				Chinese: "左转",
				Pinyin:  "zuǒ zhuǎn",
				English: "Turn left",
				Tags:    []phrase.Tag{phrase.TagDirections},
			},
			{
				ID:      "transport-5",
				Chinese: "右转",
				Pinyin:  "yòu zhuǎn",
				English: "Turn right",
				Tags:    []phrase.Tag{phrase.TagDirections},
			},
			{
				ID:      "transport-6",
				Chinese: "下一班车几点？",
				Pinyin:  "xià yì bān chē jǐ diǎn?",
				English: "When is the next one?",
				Tags:    []phrase.Tag{phrase.TagTime, phrase.TagQuestions},
			},
		},
	},
	{
		ID:          phrase.Hotel,
		Name:        "Hotel",
		Icon:        "bed",
		Description: "Checking in, rooms and requests",
		Color:       "hotel",
		Phrases: []*phrase.Phrase{
			{
				ID:         "hotel-1",
				Chinese:    "我有预订",
				Pinyin:     "wǒ yǒu yùdìng",
				English:    "I have a reservation",
				Politeness: phrase.Polite,
				Tags:       []phrase.Tag{phrase.TagBooking},
			},
			{
				ID:      "hotel-2",
				Chinese: "几点退房？",
				Pinyin:  "jǐ diǎn tuìfáng?",
				English: "What time is checkout?",
				Tags:    []phrase.Tag{phrase.TagTime, phrase.TagQuestions},
			},
			{
				ID:      "hotel-3",
				Chinese: "Wi-Fi 密码是什么？",
				Pinyin:  "Wi-Fi mìmǎ shì shénme?",
				English: "What is the Wi-Fi password?",
				Tags:    []phrase.Tag{phrase.TagQuestions},
			},
			{
				ID:      "hotel-4",
				Chinese: "空调坏了",
				Pinyin:  "kōngtiáo huài le",
				English: "The air conditioning is broken",
				Variant: taiwan("冷氣壞了", "lěngqì huài le"),
				Tags:    []phrase.Tag{phrase.TagProblems, phrase.TagComplaints},
			},
		},
	},
	{
		ID:          phrase.Shopping,
		Name:        "Shopping",
		Icon:        "shopping-bag",
		Description: "Prices, sizes and bargaining",
		Color:       "shopping",
		Phrases: []*phrase.Phrase{
			{
				ID:      "shopping-1",
				Chinese: "多少钱？",
				Pinyin:  "duōshao qián?",
				English: "How much?",
				Tags:    []phrase.Tag{phrase.TagBasic, phrase.TagPayment, phrase.TagQuestions},
			},
			{
				ID:           "shopping-2",
				Chinese:      "太贵了",
				Pinyin:       "tài guì le",
				English:      "Too expensive",
				Politeness:   phrase.Casual,
				CulturalNote: "Bargaining is expected at markets but <em>not</em> in malls.",
				Tags:         []phrase.Tag{phrase.TagBargaining},
			},
			{
				ID:      "shopping-3",
				Chinese: "便宜一点吧",
				Pinyin:  "piányi yìdiǎn ba",
				English: "A little cheaper, please",
				Tags:    []phrase.Tag{phrase.TagBargaining, phrase.TagRequests},
			},
			{
				ID:      "shopping-4",
				Chinese: "有大号的吗？",
				Pinyin:  "yǒu dà hào de ma?",
				English: "Do you have a larger size?",
				Tags:    []phrase.Tag{phrase.TagSizing, phrase.TagQuestions},
			},
			{
				ID:      "shopping-5",
				Chinese: "我只是看看",
				Pinyin:  "wǒ zhǐshì kànkan",
				English: "I'm just looking",
				Tags:    []phrase.Tag{phrase.TagBasic},
			},
		},
	},
	{
		ID:          phrase.Emergency,
		Name:        "Emergency",
		Icon:        "siren",
		Description: "Getting help quickly",
		Color:       "emergency",
		Phrases: []*phrase.Phrase{
			{
				ID:        "emergency-1",
				Chinese:   "救命！",
				Pinyin:    "jiùmìng!",
				English:   "Help!",
				Emergency: true,
				Tags:      []phrase.Tag{phrase.TagUrgent},
			},
			{
				ID:           "emergency-2",
				Chinese:      "请叫救护车",
				Pinyin:       "qǐng jiào jiùhùchē",
				English:      "Please call an ambulance",
				Emergency:    true,
				CulturalNote: "The ambulance number in mainland China is <b>120</b>.",
				Tags:         []phrase.Tag{phrase.TagUrgent, phrase.TagRequests},
			},
			{
				ID:        "emergency-3",
				Chinese:   "我迷路了",
				Pinyin:    "wǒ mílù le",
				English:   "I'm lost",
				Emergency: true,
				Tags:      []phrase.Tag{phrase.TagProblems, phrase.TagDirections},
			},
			{
				ID:        "emergency-4",
				Chinese:   "医院在哪里？",
				Pinyin:    "yīyuàn zài nǎlǐ?",
				English:   "Where is the hospital?",
				Emergency: true,
				Tags:      []phrase.Tag{phrase.TagUrgent, phrase.TagDirections, phrase.TagQuestions},
			},
			{
				ID:        "emergency-5",
				Chinese:   "我的护照丢了",
				Pinyin:    "wǒ de hùzhào diū le",
				English:   "I lost my passport",
				Emergency: true,
				Tags:      []phrase.Tag{phrase.TagProblems},
			},
		},
	},
}
