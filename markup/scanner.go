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
	"iter"
	"strings"

	"github.com/wordtranslator/go-wordtranslator/internal/folding"
)

// Token is a tag of the markup and the text that follows it.
type Token struct {
	// Classes are the names listed in the tag's class attributes.
	Classes []string

	// Markers are the values listed in the tag's data-ph attributes.
	Markers []string

	// Content is the trimmed text between the tag and the next tag. It is
	// empty if the tag is immediately followed by another tag.
	Content string
}

var (
	classAttributes  = []string{"class"}
	markerAttributes = []string{"data-ph"}

	// decorations are dropped from text content.
	decorations = []rune{'⇒', 'ⓘ'}
)

// Scanner scans normalized markup from start to end, one tag at a time. A
// Scanner cannot be restarted and should only be read by one consumer.
type Scanner struct {
	src  string
	pos  int
	tok  Token
	rest string
	done bool
}

// NewScanner returns a new Scanner reading the normalized markup.
func NewScanner(normalized string) *Scanner {
	return &Scanner{src: normalized}
}

// Scan advances the Scanner to the next token. It returns false when there
// are no more tags followed by text.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}

	rem := s.src[s.pos:]
	gt := strings.IndexByte(rem, '>')
	if gt < 0 {
		s.finish(rem)
		return false
	}
	header := rem[:gt]
	after := rem[gt+1:]
	lt := strings.IndexByte(after, '<')
	if lt < 0 {
		s.finish(after)
		return false
	}

	s.tok = Token{
		Classes: attributeValues(header, classAttributes),
		Markers: attributeValues(header, markerAttributes),
		Content: folding.Fold(after[:lt], decorations...),
	}
	s.pos += gt + 1 + lt + 1
	return true
}

// Token returns the token read by the last call to Scan.
func (s *Scanner) Token() Token {
	return s.tok
}

// Rest returns the trimmed text left after the last tag once scanning is
// done. It is only useful for diagnostics.
func (s *Scanner) Rest() string {
	return s.rest
}

// All returns an iterator over the remaining tokens.
func (s *Scanner) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for s.Scan() {
			if !yield(s.Token()) {
				return
			}
		}
	}
}

func (s *Scanner) finish(rest string) {
	s.done = true
	s.tok = Token{}
	s.rest = folding.Fold(rest, decorations...)
	s.pos = len(s.src)
}

// attributeValues returns the whitespace separated values of the named
// attributes in a tag header. Values may be single or double quoted.
func attributeValues(header string, names []string) []string {
	var values []string
	for _, name := range names {
		prefix := name + "="
		h := header
		for {
			i := strings.Index(h, prefix)
			if i < 0 {
				break
			}
			h = h[i+len(prefix):]
			if at := len(header) - len(h) - len(prefix); at > 0 && !isAttributeBoundary(header, at-1) {
				continue
			}
			if h == "" || (h[0] != '"' && h[0] != '\'') {
				continue
			}
			quote := h[0]
			h = h[1:]
			j := strings.IndexByte(h, quote)
			if j < 0 {
				break
			}
			values = append(values, strings.Fields(h[:j])...)
			h = h[j+1:]
		}
	}
	return values
}

// isAttributeBoundary reports whether the byte at i ends the previous
// attribute or tag name so that an attribute name can start after it.
func isAttributeBoundary(header string, i int) bool {
	switch header[i] {
	case ' ', '\t', '\n', '\r', '"', '\'':
		return true
	}
	return false
}
