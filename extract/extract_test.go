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

package extract

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wordtranslator/go-wordtranslator/entry"
)

const article = `'articleWRD'>` +
	`<tr class='wrtopsection'><td colspan='3'><span class='ph' data-ph='sMainMeanings'>Principal Translations</span></td></tr>` +
	`<tr class='langHeader'><td class='FrWrd'><span class='ph'>Spanish</span></td><td></td>` +
	`<td class='ToWrd'><span class='ph'>English</span></td></tr>` +
	`<tr class='even' id='es:1'><td class='FrWrd'>casa <em class='POS2'>nf</em></td>` +
	`<td>(edificio)<span class='dsense'>(vivienda)</span></td>` +
	`<td class='ToWrd'>house <em class='POS2'>n</em></td></tr>` +
	`<tr class='even'><td class='FrEx'>Mi casa es grande &amp; bonita.</td></tr>` +
	`<tr class='even'><td class='ToEx'>My house is big and pretty.</td></tr>` +
	`<tr class='odd' id='es:2'><td class='FrWrd'>hogar <em class='POS2'>nm</em></td>` +
	`<td><span class='Fr2'>figurado</span> (familia)</td>` +
	`<td class='ToWrd'>home <em class='POS2'>n</em></td></tr>` +
	`<tr class='odd'><td></td><td></td><td class='ToWrd'>hearth <em class='POS2'>n</em></td></tr>` +
	`<tr class='wrtopsection'><td colspan='3'><span class='ph' data-ph='sCmpdForms'>Compound Forms:</span></td></tr>` +
	`<tr class='even' id='es:3'><td class='FrWrd'>casa de campo <em class='POS2'>nf</em></td><td>(rural)</td>` +
	`<td class='ToWrd'>country house <em class='POS2'>n</em></td></tr>` +
	`<tr class='even'><td class='ToEx'>Me voy a (<i>mi</i> casa de campo).</td></tr>`

func articleTranslation() *entry.Translation {
	return &entry.Translation{
		FromLang: "es",
		ToLang:   "en",
		FromWord: "casa",
		Sections: []*entry.EntrySection{
			{
				SectionType: entry.PrincipalTranslations,
				EntryWords: []*entry.EntryWord{
					{
						FromWord: entry.FromWord{Word: "casa", Grammar: "nf"},
						Context:  "edificio",
						ToWords: []*entry.ToWord{
							{Word: "house", Grammar: "n", Note: "vivienda"},
						},
						FromExamples: []string{"Mi casa es grande & bonita."},
						ToExamples:   []string{"My house is big and pretty."},
					},
					{
						FromWord: entry.FromWord{Word: "hogar", Grammar: "nm"},
						Tone:     "figurado",
						Context:  "familia",
						ToWords: []*entry.ToWord{
							{Word: "home", Grammar: "n"},
							{Word: "hearth", Grammar: "n"},
						},
						FromExamples: []string{},
						ToExamples:   []string{},
					},
				},
			},
			{
				SectionType: entry.CompoundForms,
				EntryWords: []*entry.EntryWord{
					{
						FromWord: entry.FromWord{Word: "casa de campo", Grammar: "nf"},
						Context:  "rural",
						ToWords: []*entry.ToWord{
							{Word: "country house", Grammar: "n"},
						},
						FromExamples: []string{},
						ToExamples:   []string{"Me voy a (mi casa de campo)."},
					},
				},
			},
		},
	}
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected *entry.Translation
	}{
		{
			name:     "article",
			input:    article,
			expected: articleTranslation(),
		},
		{
			name:     "empty",
			input:    "",
			expected: entry.New("es", "en", "casa"),
		},
		{
			name: "section only",
			input: `'articleWRD'><tr class='wrtopsection'><td colspan='3'>` +
				`<span class='ph' data-ph='sPhrasalVerbs'>Phrasal verbs</span></td></tr>`,
			expected: &entry.Translation{
				FromLang: "es",
				ToLang:   "en",
				FromWord: "casa",
				Sections: []*entry.EntrySection{
					{
						SectionType: entry.PhrasalVerbs,
						EntryWords:  []*entry.EntryWord{},
					},
				},
			},
		},
		{
			name: "translation before source word",
			input: `'articleWRD'><tr class='wrtopsection'><td colspan='3'>` +
				`<span class='ph' data-ph='sAddTrans'>Additional Translations</span></td></tr>` +
				`<tr class='even'><td class='ToWrd'>house <em class='POS2'>n</em></td></tr>`,
			expected: &entry.Translation{
				FromLang: "es",
				ToLang:   "en",
				FromWord: "casa",
				Sections: []*entry.EntrySection{
					{
						SectionType: entry.AdditionalTranslations,
						EntryWords:  []*entry.EntryWord{},
					},
				},
			},
		},
		{
			name: "target example before next source word",
			input: `'articleWRD'><tr class='wrtopsection'><td colspan='3'>` +
				`<span class='ph' data-ph='sMainMeanings'>Principal Translations</span></td></tr>` +
				`<tr class='even'><td class='FrWrd'>uno <em class='POS2'>adj</em></td>` +
				`<td class='ToWrd'>one <em class='POS2'>adj</em></td></tr>` +
				`<tr class='even'><td class='ToEx'>Example for uno.` +
				`<td class='FrWrd'>dos <em class='POS2'>adj</em></td>` +
				`<td class='ToWrd'>two <em class='POS2'>adj</em></td></tr>`,
			expected: &entry.Translation{
				FromLang: "es",
				ToLang:   "en",
				FromWord: "casa",
				Sections: []*entry.EntrySection{
					{
						SectionType: entry.PrincipalTranslations,
						EntryWords: []*entry.EntryWord{
							{
								FromWord: entry.FromWord{Word: "uno", Grammar: "adj"},
								ToWords: []*entry.ToWord{
									{Word: "one", Grammar: "adj"},
								},
								FromExamples: []string{},
								ToExamples:   []string{"Example for uno."},
							},
							{
								FromWord: entry.FromWord{Word: "dos", Grammar: "adj"},
								ToWords: []*entry.ToWord{
									{Word: "two", Grammar: "adj"},
								},
								FromExamples: []string{},
								ToExamples:   []string{},
							},
						},
					},
				},
			},
		},
		{
			name: "target example at end of input",
			input: `'articleWRD'><tr class='wrtopsection'><td colspan='3'>` +
				`<span class='ph' data-ph='sMainMeanings'>Principal Translations</span></td></tr>` +
				`<tr class='even'><td class='FrWrd'>uno <em class='POS2'>adj</em></td>` +
				`<td class='ToWrd'>one <em class='POS2'>adj</em></td></tr>` +
				`<tr class='even'><td class='ToEx'>Example for uno.</td></tr>`,
			expected: &entry.Translation{
				FromLang: "es",
				ToLang:   "en",
				FromWord: "casa",
				Sections: []*entry.EntrySection{
					{
						SectionType: entry.PrincipalTranslations,
						EntryWords: []*entry.EntryWord{
							{
								FromWord: entry.FromWord{Word: "uno", Grammar: "adj"},
								ToWords: []*entry.ToWord{
									{Word: "one", Grammar: "adj"},
								},
								FromExamples: []string{},
								ToExamples:   []string{"Example for uno."},
							},
						},
					},
				},
			},
		},
		{
			name:     "source word before section",
			input:    `'articleWRD'><tr class='even'><td class='FrWrd'>casa <em class='POS2'>nf</em></td></tr>`,
			expected: entry.New("es", "en", "casa"),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := New(nil).Extract(test.input, "es", "en", "casa")
			if err != nil {
				t.Fatalf("Extract: %v", err)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Extract (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestExtractor_Extract_deterministic(t *testing.T) {
	t.Parallel()

	x := New(nil)
	first, err := x.Extract(article, "es", "en", "casa")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	second, err := x.Extract(article, "es", "en", "casa")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("Extract (-first, +second):\n%s", diff)
	}
}

func TestExtractor_Extract_order(t *testing.T) {
	t.Parallel()

	got, err := New(nil).Extract(article, "es", "en", "casa")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	var words []string
	for _, s := range got.Sections {
		for _, w := range s.EntryWords {
			for _, tw := range w.ToWords {
				words = append(words, string(s.SectionType)+"/"+w.FromWord.Word+"/"+tw.Word)
			}
		}
	}
	want := []string{
		"principal_translations/casa/house",
		"principal_translations/hogar/home",
		"principal_translations/hogar/hearth",
		"compound_forms/casa de campo/country house",
	}
	if diff := cmp.Diff(want, words); diff != "" {
		t.Fatalf("order (-want, +got):\n%s", diff)
	}
}

func TestExtractor_Extract_strict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		issue string
	}{
		{
			name:  "complete",
			input: article,
		},
		{
			name:  "no sections",
			input: `'articleWRD'><p>nothing</p>`,
			issue: "no sections",
		},
		{
			name: "section without words",
			input: `'articleWRD'><tr class='wrtopsection'><td colspan='3'>` +
				`<span class='ph' data-ph='sPhrasalVerbs'>Phrasal verbs</span></td></tr>`,
			issue: "section 0 (phrasal_verbs) has no entry words",
		},
		{
			name: "word without translations",
			input: `'articleWRD'><tr class='wrtopsection'><td colspan='3'>` +
				`<span class='ph' data-ph='sMainMeanings'>Principal Translations</span></td></tr>` +
				`<tr class='even'><td class='FrWrd'>casa <em class='POS2'>nf</em></td></tr>`,
			issue: `entry word "casa" has no translations`,
		},
		{
			name: "dropped translation",
			input: `'articleWRD'><tr class='wrtopsection'><td colspan='3'>` +
				`<span class='ph' data-ph='sMainMeanings'>Principal Translations</span></td></tr>` +
				`<tr class='even'><td class='ToWrd'>house <em class='POS2'>n</em></td></tr>`,
			issue: `to_word "house" dropped: no entry word`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			x := New(&Options{Strict: true})
			got, err := x.Extract(test.input, "es", "en", "casa")
			if test.issue == "" {
				if err != nil {
					t.Fatalf("Extract: %v", err)
				}
				return
			}

			if !errors.Is(err, ErrIncomplete) {
				t.Fatalf("Extract: want error %v, got %v", ErrIncomplete, err)
			}
			if !strings.Contains(err.Error(), test.issue) {
				t.Errorf("Extract: want error containing %q, got %q", test.issue, err)
			}
			if got == nil {
				t.Errorf("Extract: want partial tree, got nil")
			}
		})
	}
}

func TestExtractor_Extract_logging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	input := `'articleWRD'><tr class='even'><td class='ToWrd'>house <em class='POS2'>n</em></td></tr>`
	if _, err := New(&Options{Logger: log}).Extract(input, "es", "en", "casa"); err != nil {
		t.Fatalf("Extract: %v", err)
	}

	for _, want := range []string{
		"msg=classified rule=to_word",
		"msg=classified rule=to_grammar",
		"msg=dropped field=to_word value=house",
	} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("log: want %q in\n%s", want, buf.String())
		}
	}
}
