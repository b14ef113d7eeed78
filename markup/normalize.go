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
	"errors"
	"fmt"
	"strings"
)

// ErrMarkupShape indicates that the document does not have the expected
// shape. This usually means the upstream document format changed.
var ErrMarkupShape = errors.New("unexpected markup shape")

const (
	// StartMarker marks the start of the article.
	StartMarker = "'articleWRD'"

	// EndMarker marks the end of the article.
	EndMarker = "id='collinsdiv'"
)

type replacement struct {
	old, new string
}

var (
	// noise is removed from the whole document.
	noise = []replacement{
		{"&nbsp;", ""},
		{"<strong>", ""},
		{"</strong>", ""},
		{"<STRONG>", ""},
		{"</STRONG>", ""},
		{"<TD", "<td"},
		{"</TD>", "</td>"},
		{" =", "="},
		{"= ", "="},
		{"⇒", ""},
		{"ⓘ", ""},
		{"  ", " "},
	}

	// quoting rewrites the attribute values the scanner and marker removal
	// depend on to a single quoting style.
	quoting = []replacement{
		{`"FrWrd"`, "'FrWrd'"},
		{`"ToWrd"`, "'ToWrd'"},
		{`"POS2"`, "'POS2'"},
		{`"articleWRD"`, StartMarker},
		{`id="collinsdiv"`, EndMarker},
	}

	// punctuation is applied after tags have been removed.
	punctuation = []replacement{
		{" , ", ", "},
	}
)

// markerSpan describes a span of markup in which inner tags are removed so
// that the text of a field is not split across several tags.
type markerSpan struct {
	// open is the distinguishing attribute that starts the span.
	open string

	// close ends the span.
	close string

	// boundary must not come before close.
	boundary string

	// inclusive spans include open and close themselves.
	inclusive bool
}

var (
	wordMarker = markerSpan{
		open:     "'FrWrd'",
		close:    "'POS2'",
		boundary: "</td>",
	}
	translationMarker = markerSpan{
		open:     "'ToWrd'",
		close:    "'POS2'",
		boundary: "</td>",
	}
	contextMarker = markerSpan{
		open:      "<span title=",
		close:     "</span>",
		boundary:  "</td>",
		inclusive: true,
	}
)

// Normalize returns the article part of the raw document with noise removed.
// It returns an error wrapping ErrMarkupShape if the start or end marker of
// the article cannot be found.
func Normalize(raw string) (string, error) {
	s := raw + " "
	s = replaceAll(s, noise)
	s = replaceAll(s, quoting)

	start := strings.Index(s, StartMarker)
	if start < 0 {
		return "", fmt.Errorf("%w: missing start marker %q", ErrMarkupShape, StartMarker)
	}
	s = s[start:]
	end := strings.Index(s, EndMarker)
	if end < 0 {
		return "", fmt.Errorf("%w: missing end marker %q", ErrMarkupShape, EndMarker)
	}
	s = s[:end]

	s, _ = removeEmptyAnchors(s)
	s, _ = wordMarker.removeAll(s)
	s, _ = translationMarker.removeAll(s)
	s, _ = contextMarker.removeAll(s)

	return replaceAll(s, punctuation), nil
}

// replaceAll applies each replacement until no instance of its old value is
// left.
func replaceAll(s string, rs []replacement) string {
	for _, r := range rs {
		for strings.Contains(s, r.old) {
			s = strings.ReplaceAll(s, r.old, r.new)
		}
	}
	return s
}

// removeEmptyAnchors removes <a ...></a> wrappers with no content and
// returns the number removed. An enclosing anchor is checked again after an
// inner one is removed so nested empty anchors are all removed.
func removeEmptyAnchors(s string) (string, int) {
	const (
		open  = "<a "
		close = "></a>"
	)

	var n, cursor int
	for {
		i := strings.Index(s[cursor:], open)
		if i < 0 {
			return s, n
		}
		i += cursor
		j := strings.IndexByte(s[i:], '>')
		if j < 0 {
			return s, n
		}
		j += i

		if !strings.HasPrefix(s[j:], close) {
			cursor = j + 1
			continue
		}

		s = s[:i] + s[j+len(close):]
		n++
		cursor = i
		if k := strings.LastIndex(s[:i], open); k >= 0 {
			cursor = k
		}
	}
}

// removeAll removes the inner tags of every instance of the span and returns
// the number of instances changed. An instance whose close marker is missing
// or comes after the boundary is left as is.
func (m markerSpan) removeAll(s string) (string, int) {
	var n, cursor int
	for {
		i := strings.Index(s[cursor:], m.open)
		if i < 0 {
			return s, n
		}
		i += cursor

		start := i + len(m.open)
		if m.inclusive {
			start = i
		}
		cursor = i + len(m.open)

		j := strings.Index(s[start:], m.close)
		k := strings.Index(s[start:], m.boundary)
		if j < 0 || k < 0 || j > k {
			continue
		}
		end := start + j
		if m.inclusive {
			end += len(m.close)
		}

		before := len(s)
		s = stripTags(s, start, end)
		if len(s) < before {
			n++
			// The open marker may have been removed along with the tags in
			// which case the next instance can start right at i.
			if m.inclusive && !strings.HasPrefix(s[i:], m.open) {
				cursor = i
			}
		}
	}
}

// stripTags removes every tag lying wholly inside s[start:end]. Text between
// the tags is kept.
func stripTags(s string, start, end int) string {
	for {
		i := strings.IndexByte(s[start:end], '<')
		if i < 0 {
			return s
		}
		i += start
		j := strings.IndexByte(s[i:end], '>')
		if j < 0 {
			return s
		}
		j += i
		s = s[:i] + s[j+1:]
		end -= j + 1 - i
	}
}
