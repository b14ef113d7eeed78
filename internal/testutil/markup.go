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

package testutil

import (
	"fmt"
	"strings"
)

// Word is a source word row of a test article.
type Word struct {
	FromWord    string
	FromGrammar string

	// Context is the text of the middle cell, including parentheses.
	Context string

	// Note is the sense of the first translation, including parentheses.
	Note string

	ToWord    string
	ToGrammar string

	// More are additional translations written as continuation rows.
	More []ToWord

	FromExamples []string
	ToExamples   []string
}

// ToWord is an additional translation row of a test article.
type ToWord struct {
	Word    string
	Grammar string
}

// Section is a section of a test article.
type Section struct {
	// Marker is the data-ph marker of the section header, for example
	// "sMainMeanings".
	Marker string
	Label  string
	Words  []Word
}

// MakeArticle returns a raw dictionary document containing the sections in
// the markup the dictionary site uses.
func MakeArticle(sections ...Section) string {
	var b strings.Builder
	b.WriteString(`<html><head><title>test</title></head><body>`)
	b.WriteString(`<table class="WRD" id="articleWRD">`)
	for _, s := range sections {
		fmt.Fprintf(&b, `<tr class="wrtopsection"><td colspan="3"><strong>`+
			`<span class="ph" data-ph="%s">%s</span></strong></td></tr>`, s.Marker, s.Label)
		b.WriteString(`<tr class="langHeader"><td class="FrWrd"><span class="ph">From</span></td>` +
			`<td></td><td class="ToWrd"><span class="ph">To</span></td></tr>`)

		for i, w := range s.Words {
			class := "even"
			if i%2 == 1 {
				class = "odd"
			}
			fmt.Fprintf(&b, `<tr class="%s"><td class="FrWrd"><strong>%s</strong> <em class="POS2">%s</em></td>`,
				class, w.FromWord, w.FromGrammar)
			fmt.Fprintf(&b, `<td>%s`, w.Context)
			if w.Note != "" {
				fmt.Fprintf(&b, ` <span class="dsense">%s</span>`, w.Note)
			}
			fmt.Fprintf(&b, `</td><td class="ToWrd">%s <em class="POS2">%s</em></td></tr>`, w.ToWord, w.ToGrammar)

			for _, tw := range w.More {
				fmt.Fprintf(&b, `<tr class="%s"><td>&nbsp;</td><td>&nbsp;</td>`+
					`<td class="ToWrd">%s <em class="POS2">%s</em></td></tr>`, class, tw.Word, tw.Grammar)
			}
			for _, ex := range w.FromExamples {
				fmt.Fprintf(&b, `<tr class="%s"><td>&nbsp;</td><td colspan="2" class="FrEx">%s</td></tr>`, class, ex)
			}
			for _, ex := range w.ToExamples {
				fmt.Fprintf(&b, `<tr class="%s"><td>&nbsp;</td><td colspan="2" class="ToEx">%s</td></tr>`, class, ex)
			}
		}
	}
	b.WriteString(`</table><div id="collinsdiv">Collins</div></body></html>`)
	return b.String()
}
