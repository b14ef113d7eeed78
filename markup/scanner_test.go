// Copyright 2026 The go-wordtranslator Authors
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

package markup

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func scanAll(s *Scanner) []Token {
	var tokens []Token
	for s.Scan() {
		tokens = append(tokens, s.Token())
	}
	return tokens
}

func TestScanner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []Token
		rest     string
	}{
		{
			name:  "empty",
			input: "",
		},
		{
			name:  "text only",
			input: "  casa ",
			rest:  "casa",
		},
		{
			name: "section and word",
			input: `'articleWRD'><tr class='wrtopsection'><td colspan='3'>` +
				`<span class="ph" data-ph='sMainMeanings'>Principal  Translations</span></td></tr>` +
				`<tr class="even"><td class='FrWrd'>casa <em class='POS2 tooltip'>nf</em></td>tail `,
			expected: []Token{
				{},
				{Classes: []string{"wrtopsection"}},
				{},
				{
					Classes: []string{"ph"},
					Markers: []string{"sMainMeanings"},
					Content: "Principal Translations",
				},
				{},
				{},
				{},
				{Classes: []string{"even"}},
				{Classes: []string{"FrWrd"}, Content: "casa"},
				{Classes: []string{"POS2", "tooltip"}, Content: "nf"},
				{},
			},
			rest: "tail",
		},
		{
			name:  "attribute boundaries",
			input: `span data-class='x' class='y' class="z w">text<`,
			expected: []Token{
				{Classes: []string{"y", "z", "w"}, Content: "text"},
			},
		},
		{
			name:  "unterminated quote",
			input: `span class='y>text<`,
			expected: []Token{
				{Content: "text"},
			},
		},
		{
			name:  "unquoted value",
			input: `span class=y>text<`,
			expected: []Token{
				{Content: "text"},
			},
		},
		{
			name:  "unterminated tag",
			input: `td>casa<em class='POS2'`,
			expected: []Token{
				{Content: "casa"},
			},
			rest: "em class='POS2'",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			s := NewScanner(test.input)
			if diff := cmp.Diff(test.expected, scanAll(s)); diff != "" {
				t.Errorf("tokens (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.rest, s.Rest()); diff != "" {
				t.Errorf("Rest (-want, +got):\n%s", diff)
			}
			// A finished Scanner stays finished.
			if s.Scan() {
				t.Errorf("Scan: want false after end")
			}
		})
	}
}

func TestScanner_All(t *testing.T) {
	t.Parallel()

	s := NewScanner(`a class='x'>one<b class='y'>two<c class='z'>three<`)
	var got []string
	for tok := range s.All() {
		got = append(got, tok.Content)
		if tok.Content == "two" {
			break
		}
	}
	if diff := cmp.Diff([]string{"one", "two"}, got); diff != "" {
		t.Fatalf("All (-want, +got):\n%s", diff)
	}

	// The sequence is not restartable: iteration resumes where it stopped.
	if !s.Scan() {
		t.Fatalf("Scan: want true")
	}
	if diff := cmp.Diff(Token{Classes: []string{"z"}, Content: "three"}, s.Token()); diff != "" {
		t.Fatalf("Token (-want, +got):\n%s", diff)
	}
}
