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

package phrase

import (
	"strings"
)

// Tag is a classification label used for filtering phrases and words.
type Tag string

// Phrase tags.
const (
	TagBasic       Tag = "basic"
	TagPolite      Tag = "polite"
	TagUrgent      Tag = "urgent"
	TagPayment     Tag = "payment"
	TagDirections  Tag = "directions"
	TagQuestions   Tag = "questions"
	TagProblems    Tag = "problems"
	TagNumbers     Tag = "numbers"
	TagTime        Tag = "time"
	TagFoodTypes   Tag = "food-types"
	TagAllergies   Tag = "allergies"
	TagRequests    Tag = "requests"
	TagCompliments Tag = "compliments"
	TagGreetings   Tag = "greetings"
	TagFarewells   Tag = "farewells"
	TagBooking     Tag = "booking"
	TagBargaining  Tag = "bargaining"
	TagSizing      Tag = "sizing"
	TagComplaints  Tag = "complaints"
)

// Word tags.
const (
	TagEssential Tag = "essential"
	TagPeople    Tag = "people"
	TagPlaces    Tag = "places"
	TagColors    Tag = "colors"
	TagDays      Tag = "days"
	TagVerbs     Tag = "verbs"
)

var tagLabels = map[Tag]string{
	TagBasic:       "Basic",
	TagPolite:      "Polite",
	TagUrgent:      "Urgent",
	TagPayment:     "Payment",
	TagDirections:  "Directions",
	TagQuestions:   "Questions",
	TagProblems:    "Problems",
	TagNumbers:     "Numbers",
	TagTime:        "Time",
	TagFoodTypes:   "Food Types",
	TagAllergies:   "Allergies",
	TagRequests:    "Requests",
	TagCompliments: "Compliments",
	TagGreetings:   "Greetings",
	TagFarewells:   "Farewells",
	TagBooking:     "Booking",
	TagBargaining:  "Bargaining",
	TagSizing:      "Sizing",
	TagComplaints:  "Complaints",
	TagEssential:   "Essential",
	TagPeople:      "People",
	TagPlaces:      "Places",
	TagColors:      "Colors",
	TagDays:        "Days",
	TagVerbs:       "Verbs",
}

// Label returns the display label for the tag. Unknown tags are title-cased
// with dashes replaced by spaces.
func (t Tag) Label() string {
	if l, ok := tagLabels[t]; ok {
		return l
	}
	parts := strings.Split(string(t), "-")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}
