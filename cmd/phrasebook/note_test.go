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

package main

import (
	"testing"
)

func TestRenderNote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		note     string
		expected string
	}{
		{
			name:     "plain",
			note:     "Tipping is not expected.",
			expected: "Tipping is not expected.",
		},
		{
			name:     "inline formatting",
			note:     "Say <b>谢谢</b> to the driver.",
			expected: "Say 谢谢 to the driver.",
		},
		{
			name:     "script removed",
			note:     "Bow slightly.<script>alert(1)</script>",
			expected: "Bow slightly.",
		},
		{
			name:     "link removed",
			note:     `<a href="javascript:alert(1)">Tea</a> is free.`,
			expected: "Tea is free.",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if got, want := renderNote(test.note), test.expected; got != want {
				t.Errorf("renderNote(%q): got %q, want %q", test.note, got, want)
			}
		})
	}
}
