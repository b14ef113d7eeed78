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
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/wordtranslator/go-wordtranslator/entry"
)

// Class names used by the article markup.
const (
	classTopSection  = "wrtopsection"
	classFromWord    = "FrWrd"
	classToWord      = "ToWrd"
	classPhrase      = "ph"
	classFromExample = "FrEx"
	classToExample   = "ToEx"
	classTooltip     = "tooltip"
	classTone        = "Fr2"
	classGrammar     = "POS2"
	classSense       = "dsense"
)

// sectionMarkers maps data-ph markers to section types, in the order they
// are checked.
var sectionMarkers = []struct {
	marker      string
	sectionType entry.SectionType
}{
	{"sMainMeanings", entry.PrincipalTranslations},
	{"sAddTrans", entry.AdditionalTranslations},
	{"sCmpdForms", entry.CompoundForms},
	{"sPhrasalVerbs", entry.PhrasalVerbs},
}

// field is the kind of a recognized field.
type field int

const (
	fieldNone field = iota
	fieldSection
	fieldFromWord
	fieldFromGrammar
	fieldToWord
	fieldToGrammar
	fieldTone
	fieldContext
	fieldNote
	fieldFromExample
	fieldToExample
)

var fieldNames = [...]string{
	fieldNone:        "none",
	fieldSection:     "section_type",
	fieldFromWord:    "from_word",
	fieldFromGrammar: "from_grammar",
	fieldToWord:      "to_word",
	fieldToGrammar:   "to_grammar",
	fieldTone:        "tone",
	fieldContext:     "context",
	fieldNote:        "note",
	fieldFromExample: "from_example",
	fieldToExample:   "to_example",
}

func (f field) String() string {
	if int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return "unknown"
}

// classSet is an insertion ordered set of class names.
type classSet []string

func (c classSet) has(name string) bool {
	return slices.Contains(c, name)
}

func (c *classSet) add(names ...string) {
	for _, n := range names {
		if !c.has(n) {
			*c = append(*c, n)
		}
	}
}

func (c *classSet) remove(name string) {
	*c = slices.DeleteFunc(*c, func(n string) bool { return n == name })
}

func (c *classSet) reset() {
	*c = nil
}

// state is the work state of a single extraction run.
type state struct {
	// classes accumulates class names since the last commit.
	classes classSet

	// markers and content belong to the current token.
	markers []string
	content string

	last        field
	penultimate field

	section         entry.SectionType
	fromWord        string
	fromGrammar     string
	fromGrammarSeen bool
	toWord          string
	toGrammar       string
	tone            string
	context         string
	note            string
	fromExample     string
	toExample       string
}

func (s *state) recognize(f field) {
	s.penultimate, s.last = s.last, f
}

// triggers reports whether the current token should be classified. Grammar
// tags of a source word may have no text.
func (s *state) triggers() bool {
	return s.content != "" || s.fromGrammarPosition()
}

func (s *state) fromGrammarPosition() bool {
	return s.classes.has(classGrammar) && s.fromWord != ""
}

// outcome tells the run what to do after a rule was applied.
type outcome int

const (
	// commitFields runs the commit phase.
	commitFields outcome = iota

	// nextToken moves on to the next token without committing.
	nextToken
)

// rule is a guarded classification step.
type rule struct {
	name  string
	match func(*state) bool
	apply func(*state) outcome
}

// rules are tried in order. The first rule that matches is applied.
var rules = []rule{
	{
		name: "section",
		match: func(s *state) bool {
			return s.classes.has(classTopSection) && sectionType(s.markers) != ""
		},
		apply: func(s *state) outcome {
			s.section = sectionType(s.markers)
			s.recognize(fieldSection)
			return commitFields
		},
	},
	{
		name: "from_word",
		match: func(s *state) bool {
			return s.classes.has(classFromWord) && !s.classes.has(classPhrase)
		},
		apply: func(s *state) outcome {
			s.fromWord = s.content
			s.toWord = ""
			s.recognize(fieldFromWord)
			return commitFields
		},
	},
	{
		name: "to_word",
		match: func(s *state) bool {
			return s.classes.has(classToWord) && !s.classes.has(classPhrase)
		},
		apply: func(s *state) outcome {
			s.fromWord = ""
			s.toWord = s.content
			s.recognize(fieldToWord)
			return commitFields
		},
	},
	{
		name: "from_example",
		match: func(s *state) bool {
			return s.classes.has(classFromExample)
		},
		apply: func(s *state) outcome {
			s.fromExample = s.content
			s.recognize(fieldFromExample)
			return commitFields
		},
	},
	{
		name: "to_example_tooltip",
		match: func(s *state) bool {
			return s.classes.has(classToExample) && s.classes.has(classTooltip)
		},
		apply: func(s *state) outcome {
			s.classes.remove(classTooltip)
			return nextToken
		},
	},
	{
		name: "to_example",
		match: func(s *state) bool {
			return s.classes.has(classToExample)
		},
		apply: func(s *state) outcome {
			s.toExample = s.content
			s.recognize(fieldToExample)
			s.classes.reset()
			return nextToken
		},
	},
	{
		name: "to_example_continuation",
		match: func(s *state) bool {
			return s.toExample != "" && s.last == fieldToExample && len(s.classes) == 0
		},
		apply: func(s *state) outcome {
			if !strings.HasSuffix(s.toExample, "(") {
				s.toExample += " "
			}
			s.toExample += s.content
			return nextToken
		},
	},
	{
		name: "tone",
		match: func(s *state) bool {
			return s.classes.has(classTone) && len(s.classes) == 1
		},
		apply: func(s *state) outcome {
			s.tone = s.content
			s.recognize(fieldTone)
			return commitFields
		},
	},
	{
		name:  "from_grammar",
		match: (*state).fromGrammarPosition,
		apply: func(s *state) outcome {
			s.fromGrammar = s.content
			s.fromGrammarSeen = true
			s.recognize(fieldFromGrammar)
			return commitFields
		},
	},
	{
		name: "to_grammar",
		match: func(s *state) bool {
			return s.classes.has(classGrammar) && s.toWord != ""
		},
		apply: func(s *state) outcome {
			s.toGrammar = s.content
			s.recognize(fieldToGrammar)
			return commitFields
		},
	},
	{
		name: "note",
		match: func(s *state) bool {
			return s.classes.has(classSense)
		},
		apply: func(s *state) outcome {
			s.note = s.content
			s.recognize(fieldNote)
			return commitFields
		},
	},
	{
		name: "note_continuation",
		match: func(s *state) bool {
			return len(s.classes) == 0 && s.note != ""
		},
		apply: func(s *state) outcome {
			s.note += s.content
			s.recognize(fieldNote)
			return commitFields
		},
	},
	{
		name: "from_word_continuation",
		match: func(s *state) bool {
			return len(s.classes) == 0 && s.fromWord != ""
		},
		apply: func(s *state) outcome {
			s.fromWord += " " + s.content
			s.recognize(fieldFromWord)
			return commitFields
		},
	},
	{
		name: "context",
		match: func(s *state) bool {
			if len(s.classes) != 0 {
				return false
			}
			return (s.last == fieldFromGrammar && s.penultimate == fieldFromWord) ||
				(s.last == fieldTone && s.penultimate == fieldFromGrammar)
		},
		apply: func(s *state) outcome {
			tone, context, note := splitContext(s.content)
			if tone != "" {
				s.tone = tone
			}
			if note != "" {
				s.note = note
			}
			s.context = context
			s.recognize(fieldContext)
			return commitFields
		},
	},
}

// classify applies the first matching rule. Content that no rule matches is
// dropped and the commit phase still runs.
func classify(s *state) (string, outcome) {
	for _, r := range rules {
		if r.match(s) {
			return r.name, r.apply(s)
		}
	}
	return "", commitFields
}

func sectionType(markers []string) entry.SectionType {
	for _, m := range sectionMarkers {
		if slices.Contains(markers, m.marker) {
			return m.sectionType
		}
	}
	return ""
}

// splitContext splits tone and note off of a context text. Text before a
// trailing parenthesized part is the tone. A second parenthesized group
// directly after the first is the note.
func splitContext(text string) (tone, context, note string) {
	context = text
	if !strings.HasPrefix(context, "(") && strings.HasSuffix(context, ")") {
		if i := strings.Index(context, "("); i >= 0 {
			tone = strings.TrimSpace(context[:i])
			context = context[i:]
		}
	}
	if strings.HasPrefix(context, "(") && strings.HasSuffix(context, ")") {
		if i := strings.Index(context, ")("); i >= 0 {
			note = context[i+1:]
			context = context[:i+1]
		}
	}
	return tone, context, note
}

// delimiters are the pairs stripped from the ends of context and note text.
var delimiters = map[rune]rune{
	'(': ')',
	'[': ']',
	'{': '}',
}

// trimDelimiters removes one pair of enclosing delimiters from s.
func trimDelimiters(s string) string {
	first, n := utf8.DecodeRuneInString(s)
	last, m := utf8.DecodeLastRuneInString(s)
	if len(s) < n+m {
		return s
	}
	closing, ok := delimiters[first]
	if !ok || last != closing {
		return s
	}
	return s[n : len(s)-m]
}
