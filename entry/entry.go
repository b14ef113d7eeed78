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

package entry

// SectionType labels a group of entries in a dictionary article.
type SectionType string

const (
	// PrincipalTranslations holds the main meanings of the headword.
	PrincipalTranslations = SectionType("principal_translations")

	// AdditionalTranslations holds less common meanings.
	AdditionalTranslations = SectionType("additional_translations")

	// CompoundForms holds multi-word expressions containing the headword.
	CompoundForms = SectionType("compound_forms")

	// PhrasalVerbs holds phrasal verbs built on the headword.
	PhrasalVerbs = SectionType("phrasal_verbs")
)

// Translation is the root of an entry tree. It is created once per
// extraction and only grows by appending sections.
type Translation struct {
	FromLang string          `json:"from_lang"`
	ToLang   string          `json:"to_lang"`
	FromWord string          `json:"from_word"`
	Sections []*EntrySection `json:"entry_sections"`
}

// EntrySection is a labeled group of entry words.
type EntrySection struct {
	SectionType SectionType  `json:"section_type"`
	EntryWords  []*EntryWord `json:"entry_words"`
}

// EntryWord is a source language word with its translations, usage
// information and examples.
type EntryWord struct {
	FromWord     FromWord  `json:"from_word"`
	Tone         string    `json:"tone"`
	Context      string    `json:"context"`
	ToWords      []*ToWord `json:"to_words"`
	FromExamples []string  `json:"from_examples"`
	ToExamples   []string  `json:"to_examples"`
}

// FromWord is a source language word and its grammatical tag.
type FromWord struct {
	Word    string `json:"from_word"`
	Grammar string `json:"from_grammar"`
}

// ToWord is a single target language translation of an EntryWord.
type ToWord struct {
	Word    string `json:"to_word"`
	Grammar string `json:"to_grammar"`
	Note    string `json:"note"`
}

// New returns an empty Translation for the given language pair and headword.
func New(fromLang, toLang, word string) *Translation {
	return &Translation{
		FromLang: fromLang,
		ToLang:   toLang,
		FromWord: word,
		Sections: []*EntrySection{},
	}
}

// AddSection appends a new, empty section and returns it.
func (t *Translation) AddSection(st SectionType) *EntrySection {
	s := &EntrySection{
		SectionType: st,
		EntryWords:  []*EntryWord{},
	}
	t.Sections = append(t.Sections, s)
	return s
}

// LastSection returns the most recently appended section or nil if there is
// none yet.
func (t *Translation) LastSection() *EntrySection {
	if len(t.Sections) == 0 {
		return nil
	}
	return t.Sections[len(t.Sections)-1]
}

// LastEntryWord returns the most recently appended entry word of the last
// section or nil.
func (t *Translation) LastEntryWord() *EntryWord {
	s := t.LastSection()
	if s == nil {
		return nil
	}
	return s.LastEntryWord()
}

// AddEntryWord appends a new entry word for w.
func (s *EntrySection) AddEntryWord(w FromWord) *EntryWord {
	e := &EntryWord{
		FromWord:     w,
		ToWords:      []*ToWord{},
		FromExamples: []string{},
		ToExamples:   []string{},
	}
	s.EntryWords = append(s.EntryWords, e)
	return e
}

// LastEntryWord returns the most recently appended entry word or nil.
func (s *EntrySection) LastEntryWord() *EntryWord {
	if len(s.EntryWords) == 0 {
		return nil
	}
	return s.EntryWords[len(s.EntryWords)-1]
}

// Counts returns the number of sections, entry words and translations in the
// tree.
func (t *Translation) Counts() (sections, words, toWords int) {
	for _, s := range t.Sections {
		sections++
		for _, e := range s.EntryWords {
			words++
			toWords += len(e.ToWords)
		}
	}
	return sections, words, toWords
}
