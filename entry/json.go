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

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// ErrUnescape indicates that a string is not a valid escaped value.
var ErrUnescape = errors.New("invalid escaped string")

// Escape returns s quoted as a JSON string value without the surrounding
// quotes. Every rune outside of ASCII is written as a \uXXXX escape, using a
// surrogate pair for runes outside of the Basic Multilingual Plane.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			switch {
			case r < 0x20:
				writeUnicodeEscape(&b, r)
			case r < utf8.RuneSelf:
				b.WriteRune(r)
			case r > 0xffff:
				r1, r2 := utf16.EncodeRune(r)
				writeUnicodeEscape(&b, r1)
				writeUnicodeEscape(&b, r2)
			default:
				writeUnicodeEscape(&b, r)
			}
		}
	}
	return b.String()
}

// Unescape reverses Escape.
func Unescape(s string) (string, error) {
	var out string
	if err := json.Unmarshal([]byte(`"`+s+`"`), &out); err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrUnescape, s, err)
	}
	return out, nil
}

func writeUnicodeEscape(b *strings.Builder, r rune) {
	b.WriteString(`\u`)
	b.WriteByte(hexDigits[(r>>12)&0xf])
	b.WriteByte(hexDigits[(r>>8)&0xf])
	b.WriteByte(hexDigits[(r>>4)&0xf])
	b.WriteByte(hexDigits[r&0xf])
}

// Decoded returns a copy of t with every string field passed through Escape.
func (t *Translation) Decoded() *Translation {
	d := New(Escape(t.FromLang), Escape(t.ToLang), Escape(t.FromWord))
	for _, s := range t.Sections {
		ds := d.AddSection(SectionType(Escape(string(s.SectionType))))
		for _, e := range s.EntryWords {
			de := ds.AddEntryWord(FromWord{
				Word:    Escape(e.FromWord.Word),
				Grammar: Escape(e.FromWord.Grammar),
			})
			de.Tone = Escape(e.Tone)
			de.Context = Escape(e.Context)
			for _, w := range e.ToWords {
				de.ToWords = append(de.ToWords, &ToWord{
					Word:    Escape(w.Word),
					Grammar: Escape(w.Grammar),
					Note:    Escape(w.Note),
				})
			}
			for _, ex := range e.FromExamples {
				de.FromExamples = append(de.FromExamples, Escape(ex))
			}
			for _, ex := range e.ToExamples {
				de.ToExamples = append(de.ToExamples, Escape(ex))
			}
		}
	}
	return d
}

// DecodedJSON returns t as indented JSON in which every non-ASCII character
// is written as a \u escape sequence.
func (t *Translation) DecodedJSON() ([]byte, error) {
	b, err := t.marshalIndent()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.Grow(len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		b = b[size:]
		if r < utf8.RuneSelf {
			buf.WriteRune(r)
			continue
		}
		// Non-ASCII runes only appear inside JSON strings.
		var sb strings.Builder
		if r > 0xffff {
			r1, r2 := utf16.EncodeRune(r)
			writeUnicodeEscape(&sb, r1)
			writeUnicodeEscape(&sb, r2)
		} else {
			writeUnicodeEscape(&sb, r)
		}
		buf.WriteString(sb.String())
	}
	return buf.Bytes(), nil
}

// EncodedJSON returns t as indented JSON that contains literal characters
// rather than \u escape sequences. Control characters remain escaped so that
// the output stays valid JSON.
func (t *Translation) EncodedJSON() ([]byte, error) {
	b, err := t.marshalIndent()
	if err != nil {
		return nil, err
	}
	return literalizeEscapes(b), nil
}

func (t *Translation) marshalIndent() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(t); err != nil {
		return nil, fmt.Errorf("encoding translation: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// literalizeEscapes rewrites \uXXXX escapes of printable characters in
// JSON text as the characters themselves.
func literalizeEscapes(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); {
		if b[i] != '\\' || i+1 >= len(b) {
			out = append(out, b[i])
			i++
			continue
		}
		if b[i+1] != 'u' {
			// Copy the escape whole so that an escaped backslash is never
			// mistaken for the start of a \u sequence.
			out = append(out, b[i], b[i+1])
			i += 2
			continue
		}
		r, ok := parseHex4(b[i+2:])
		if !ok {
			out = append(out, b[i], b[i+1])
			i += 2
			continue
		}
		n := 6
		if utf16.IsSurrogate(r) {
			if i+12 > len(b) || b[i+6] != '\\' || b[i+7] != 'u' {
				out = append(out, b[i:i+n]...)
				i += n
				continue
			}
			r2, ok := parseHex4(b[i+8:])
			if !ok {
				out = append(out, b[i:i+n]...)
				i += n
				continue
			}
			r = utf16.DecodeRune(r, r2)
			n = 12
		}
		if r < 0x20 {
			out = append(out, b[i:i+n]...)
		} else {
			out = utf8.AppendRune(out, r)
		}
		i += n
	}
	return out
}

func parseHex4(b []byte) (rune, bool) {
	if len(b) < 4 {
		return 0, false
	}
	v, err := strconv.ParseUint(string(b[:4]), 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(v), true
}
