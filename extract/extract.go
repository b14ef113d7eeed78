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
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/k3a/html2text"

	"github.com/wordtranslator/go-wordtranslator/entry"
	"github.com/wordtranslator/go-wordtranslator/markup"
)

// ErrIncomplete is returned in strict mode when the extracted entry tree has
// missing parts or fields had to be dropped.
var ErrIncomplete = errors.New("incomplete entry")

// Options are options for the Extractor.
type Options struct {
	// Strict makes Extract return an error wrapping ErrIncomplete when the
	// tree is incomplete. Otherwise incomplete parts are logged and skipped.
	Strict bool

	// Logger receives debug logs of classification and commits. A nil
	// Logger discards logs.
	Logger *slog.Logger
}

// DefaultOptions is the default options for the Extractor.
var DefaultOptions = &Options{}

// Extractor builds entry trees from normalized article markup.
type Extractor struct {
	strict bool
	log    *slog.Logger
}

// New returns a new Extractor. If opts is nil, DefaultOptions is used.
func New(opts *Options) *Extractor {
	if opts == nil {
		opts = DefaultOptions
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Extractor{
		strict: opts.Strict,
		log:    log,
	}
}

// Extract classifies the tokens of the normalized markup s and returns the
// entry tree for word. Each call uses its own work state.
//
// In strict mode an incomplete tree is returned together with an error
// wrapping ErrIncomplete.
func (x *Extractor) Extract(s, fromLang, toLang, word string) (*entry.Translation, error) {
	r := &run{
		log: x.log,
		tr:  entry.New(fromLang, toLang, word),
	}

	sc := markup.NewScanner(s)
	for tok := range sc.All() {
		r.next(tok)
	}
	r.flushToExample()
	if rest := sc.Rest(); rest != "" {
		r.log.Debug("unterminated markup", "rest", rest)
	}

	if x.strict {
		r.check()
		if len(r.issues) > 0 {
			return r.tr, fmt.Errorf("%w: %s", ErrIncomplete, strings.Join(r.issues, "; "))
		}
	}
	return r.tr, nil
}

// run is a single extraction.
type run struct {
	log    *slog.Logger
	st     state
	tr     *entry.Translation
	issues []string
}

func (r *run) next(tok markup.Token) {
	st := &r.st

	// A pending target example is complete once a tagged token follows it.
	if st.toExample != "" && st.last == fieldToExample && len(st.classes) > 0 {
		r.flushToExample()
		st.classes.reset()
	}

	st.classes.add(tok.Classes...)
	st.markers = tok.Markers
	st.content = html2text.HTMLEntitiesToText(tok.Content)

	if !st.triggers() {
		return
	}

	name, out := classify(st)
	if r.log.Enabled(context.Background(), slog.LevelDebug) {
		r.log.Debug("classified",
			"rule", name,
			"classes", []string(st.classes),
			"content", st.content,
		)
	}
	if out == commitFields {
		r.commit()
	}
}

// flushToExample attaches a pending target example to the last entry word.
// Every commit flushes first, so the last entry word is still the one the
// example was read for.
func (r *run) flushToExample() {
	st := &r.st
	if st.toExample == "" {
		return
	}
	if w := r.entryWord(fieldToExample, st.toExample); w != nil {
		w.ToExamples = append(w.ToExamples, st.toExample)
	}
	st.toExample = ""
}

// commit attaches completed fields to the tree.
func (r *run) commit() {
	st := &r.st

	r.flushToExample()

	if st.section != "" {
		r.tr.AddSection(st.section)
		r.log.Debug("committed", "field", fieldSection, "value", st.section)
		st.section = ""
	}

	if st.tone != "" {
		if w := r.entryWord(fieldTone, st.tone); w != nil {
			w.Tone = st.tone
		}
		st.tone = ""
	}

	if st.context != "" {
		text := trimDelimiters(st.context)
		if w := r.entryWord(fieldContext, text); w != nil {
			w.Context = text
		}
		st.context = ""
	}

	if st.fromExample != "" {
		if w := r.entryWord(fieldFromExample, st.fromExample); w != nil {
			w.FromExamples = append(w.FromExamples, st.fromExample)
		}
		st.fromExample = ""
	}

	if st.fromGrammarSeen && st.fromWord != "" {
		if sec := r.tr.LastSection(); sec != nil {
			sec.AddEntryWord(entry.FromWord{
				Word:    st.fromWord,
				Grammar: st.fromGrammar,
			})
			r.log.Debug("committed", "field", fieldFromWord, "value", st.fromWord)
		} else {
			r.drop(fieldFromWord, st.fromWord, "no section")
		}
		st.fromWord = ""
		st.fromGrammar = ""
		st.fromGrammarSeen = false
	}

	if st.toGrammar != "" && st.toWord != "" {
		if w := r.entryWord(fieldToWord, st.toWord); w != nil {
			w.ToWords = append(w.ToWords, &entry.ToWord{
				Word:    st.toWord,
				Grammar: st.toGrammar,
				Note:    trimDelimiters(st.note),
			})
		}
		st.toWord = ""
		st.toGrammar = ""
		st.note = ""
	}

	st.classes.reset()
}

// entryWord returns the entry word that a field attaches to. It returns nil
// and records the dropped field if there is none.
func (r *run) entryWord(f field, value string) *entry.EntryWord {
	w := r.tr.LastEntryWord()
	if w == nil {
		reason := "no entry word"
		if r.tr.LastSection() == nil {
			reason = "no section"
		}
		r.drop(f, value, reason)
		return nil
	}
	r.log.Debug("committed", "field", f, "value", value)
	return w
}

func (r *run) drop(f field, value, reason string) {
	r.log.Debug("dropped", "field", f, "value", value, "reason", reason)
	r.issues = append(r.issues, fmt.Sprintf("%s %q dropped: %s", f, value, reason))
}

// check records missing parts of the tree.
func (r *run) check() {
	if len(r.tr.Sections) == 0 {
		r.issues = append(r.issues, "no sections")
		return
	}
	for i, sec := range r.tr.Sections {
		if len(sec.EntryWords) == 0 {
			r.issues = append(r.issues, fmt.Sprintf("section %d (%s) has no entry words", i, sec.SectionType))
			continue
		}
		for _, w := range sec.EntryWords {
			if len(w.ToWords) == 0 {
				r.issues = append(r.issues, fmt.Sprintf("entry word %q has no translations", w.FromWord.Word))
			}
		}
	}
}
