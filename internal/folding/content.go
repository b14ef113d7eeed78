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

// Package folding implements text transformers applied to the text content
// found between markup tags.
package folding

import (
	"slices"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// ContentFolder trims the text content of a tag. It drops leading and
// trailing whitespace, replaces each internal whitespace span with a single
// ASCII space and removes any rune listed in Drop.
type ContentFolder struct {
	// Drop lists runes that are removed from the output. A dropped rune does
	// not end a whitespace span.
	Drop []rune

	// started is true once a rune has been emitted.
	started bool

	// pendingSpace is true while inside a whitespace span after the first
	// emitted rune.
	pendingSpace bool
}

// NewContentFolder returns a ContentFolder dropping the given runes.
func NewContentFolder(drop ...rune) *ContentFolder {
	return &ContentFolder{Drop: drop}
}

// Transform implements [transform.Transformer.Transform].
func (f *ContentFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nDst, nSrc int
	for nSrc < len(src) {
		c, size := utf8.DecodeRune(src[nSrc:])
		if c == utf8.RuneError && size <= 1 && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}

		switch {
		case slices.Contains(f.Drop, c):
			nSrc += size
			continue
		case unicode.IsSpace(c):
			nSrc += size
			if f.started {
				f.pendingSpace = true
			}
			continue
		}

		need := utf8.RuneLen(c)
		if f.pendingSpace {
			need++
		}
		if nDst+need > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		if f.pendingSpace {
			dst[nDst] = ' '
			nDst++
			f.pendingSpace = false
		}
		// RuneError is re-encoded as U+FFFD which may be longer than size.
		nDst += utf8.EncodeRune(dst[nDst:], c)
		nSrc += size
		f.started = true
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (f *ContentFolder) Reset() {
	f.started = false
	f.pendingSpace = false
}

// Fold applies a ContentFolder dropping the given runes to s.
func Fold(s string, drop ...rune) string {
	out, _, err := transform.String(NewContentFolder(drop...), s)
	if err != nil {
		// transform.String only fails on transformer errors other than short
		// buffers, which ContentFolder never returns.
		return s
	}
	return out
}
