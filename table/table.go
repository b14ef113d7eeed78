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

package table

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/wordtranslator/go-wordtranslator/entry"
)

const (
	startCell = "│ "
	nextCell  = " │ "
	endCell   = " │"

	// cellPadding is the width a column adds to a row besides its text.
	cellPadding = 3
)

const (
	horizontal  = '─'
	leftTee     = '├'
	rightTee    = '┤'
	downTee     = '┬'
	upTee       = '┴'
	topLeft     = '┌'
	topRight    = '┐'
	bottomLeft  = '└'
	bottomRight = '┘'
)

// widths holds the maximum display width of each field.
type widths struct {
	section     int
	fromWord    int
	fromGrammar int
	tone        int
	context     int
	toWord      int
	toGrammar   int
	note        int
	fromExample int
	toExample   int
}

// columns returns the widths of the columns before the note.
func (w widths) columns() [6]int {
	return [6]int{w.fromWord, w.fromGrammar, w.tone, w.context, w.toWord, w.toGrammar}
}

// wordRow returns the width of a word row.
func (w widths) wordRow() int {
	n := len([]rune(startCell)) + w.note + len([]rune(endCell))
	for _, c := range w.columns() {
		n += c + cellPadding
	}
	return n
}

// row returns the width of every row of the table.
func (w widths) row() int {
	border := len([]rune(startCell)) + len([]rune(endCell))
	return max(
		border+w.section,
		w.wordRow(),
		border+w.fromExample,
		border+w.toExample,
	)
}

// boundaries returns the positions of the column separators in a row.
func (w widths) boundaries() [6]int {
	var b [6]int
	pos := 0
	for i, c := range w.columns() {
		pos += c + cellPadding
		b[i] = pos
	}
	return b
}

// Render returns t rendered as a table.
func Render(t *entry.Translation) string {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false

	r := &renderer{
		cond: cond,
		w:    measure(cond, t),
	}
	r.width = r.w.row()
	r.render(t)
	return r.b.String()
}

func measure(cond *runewidth.Condition, t *entry.Translation) widths {
	var w widths
	for _, s := range t.Sections {
		w.section = max(w.section, cond.StringWidth(string(s.SectionType)))
		for _, e := range s.EntryWords {
			w.fromWord = max(w.fromWord, cond.StringWidth(e.FromWord.Word))
			w.fromGrammar = max(w.fromGrammar, cond.StringWidth(e.FromWord.Grammar))
			w.tone = max(w.tone, cond.StringWidth(e.Tone))
			w.context = max(w.context, cond.StringWidth(e.Context))
			for _, tw := range e.ToWords {
				w.toWord = max(w.toWord, cond.StringWidth(tw.Word))
				w.toGrammar = max(w.toGrammar, cond.StringWidth(tw.Grammar))
				w.note = max(w.note, cond.StringWidth(tw.Note))
			}
			for _, ex := range e.FromExamples {
				w.fromExample = max(w.fromExample, cond.StringWidth(ex))
			}
			for _, ex := range e.ToExamples {
				w.toExample = max(w.toExample, cond.StringWidth(ex))
			}
		}
	}
	return w
}

type renderer struct {
	cond  *runewidth.Condition
	w     widths
	width int
	b     strings.Builder
}

func (r *renderer) render(t *entry.Translation) {
	r.border(topLeft, topRight)
	for i, s := range t.Sections {
		lastSection := i == len(t.Sections)-1

		r.line(string(s.SectionType))
		if len(s.EntryWords) == 0 {
			r.closeBlock(lastSection)
			continue
		}
		r.separator(downTee)

		for j, e := range s.EntryWords {
			r.word(e)
			r.separator(upTee)
			for _, ex := range e.FromExamples {
				r.line(ex)
			}
			r.border(leftTee, rightTee)
			for _, ex := range e.ToExamples {
				r.line(ex)
			}

			if j < len(s.EntryWords)-1 {
				r.separator(downTee)
				continue
			}
			r.closeBlock(lastSection)
		}
	}
	if len(t.Sections) == 0 {
		r.border(bottomLeft, bottomRight)
	}
}

// closeBlock ends a section with the bottom border if it is the last one.
func (r *renderer) closeBlock(last bool) {
	if last {
		r.border(bottomLeft, bottomRight)
		return
	}
	r.border(leftTee, rightTee)
}

// word writes one row per translation of e. The shared fields are only
// written on the first row.
func (r *renderer) word(e *entry.EntryWord) {
	noteWidth := r.w.note + r.width - r.w.wordRow()
	shared := [4]string{e.FromWord.Word, e.FromWord.Grammar, e.Tone, e.Context}
	for i, tw := range e.ToWords {
		if i > 0 {
			shared = [4]string{}
		}
		r.b.WriteString(startCell)
		r.pad(shared[0], r.w.fromWord)
		r.b.WriteString(nextCell)
		r.pad(shared[1], r.w.fromGrammar)
		r.b.WriteString(nextCell)
		r.pad(shared[2], r.w.tone)
		r.b.WriteString(nextCell)
		r.pad(shared[3], r.w.context)
		r.b.WriteString(nextCell)
		r.pad(tw.Word, r.w.toWord)
		r.b.WriteString(nextCell)
		r.pad(tw.Grammar, r.w.toGrammar)
		r.b.WriteString(nextCell)
		r.pad(tw.Note, noteWidth)
		r.b.WriteString(endCell)
		r.b.WriteByte('\n')
	}
}

// line writes a full width row.
func (r *renderer) line(s string) {
	r.b.WriteString(startCell)
	r.pad(s, r.width-len([]rune(startCell))-len([]rune(endCell)))
	r.b.WriteString(endCell)
	r.b.WriteByte('\n')
}

func (r *renderer) pad(s string, width int) {
	r.b.WriteString(s)
	if n := width - r.cond.StringWidth(s); n > 0 {
		r.b.WriteString(strings.Repeat(" ", n))
	}
}

// rule returns a horizontal rule of the row width.
func (r *renderer) rule(left, right rune) []rune {
	line := make([]rune, r.width)
	for i := range line {
		line[i] = horizontal
	}
	line[0] = left
	line[len(line)-1] = right
	return line
}

func (r *renderer) border(left, right rune) {
	r.b.WriteString(string(r.rule(left, right)))
	r.b.WriteByte('\n')
}

// separator writes a rule with tee overwritten at each column boundary.
func (r *renderer) separator(tee rune) {
	line := r.rule(leftTee, rightTee)
	for _, pos := range r.w.boundaries() {
		line[pos] = tee
	}
	r.b.WriteString(string(line))
	r.b.WriteByte('\n')
}
