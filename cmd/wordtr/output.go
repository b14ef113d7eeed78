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

package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	listing "github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/wordtranslator/go-wordtranslator/entry"
	"github.com/wordtranslator/go-wordtranslator/table"
)

// Output formats.
const (
	formatTable       = "table"
	formatJSON        = "json"
	formatJSONDecoded = "json-decoded"
	formatSummary     = "summary"
)

var formats = []string{formatTable, formatJSON, formatJSONDecoded, formatSummary}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Usage:   "output `FORMAT` (" + strings.Join(formats, ", ") + ")",
		Aliases: []string{"f"},
		Value:   formatTable,
		Action: func(_ *cli.Context, v string) error {
			if !slices.Contains(formats, v) {
				return fmt.Errorf("%w: unknown format %q", ErrFlagParse, v)
			}
			return nil
		},
	}
}

func strictFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:               "strict",
		Usage:              "fail on incomplete translations",
		DisableDefaultText: true,
	}
}

// writeTranslation writes t to w in the given format.
func writeTranslation(w io.Writer, t *entry.Translation, format string) error {
	var out []byte
	var err error
	switch format {
	case formatJSON:
		out, err = t.EncodedJSON()
	case formatJSONDecoded:
		out, err = t.DecodedJSON()
	case formatSummary:
		return writeSummary(w, t)
	default:
		out = []byte(strings.TrimSuffix(table.Render(t), "\n"))
	}
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n", out); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// writeSummary writes one line per entry word.
func writeSummary(w io.Writer, t *entry.Translation) error {
	sections, words, toWords := t.Counts()
	if _, err := fmt.Fprintf(w, "%s (%s-%s): %d sections, %d words, %d translations\n",
		t.FromWord, t.FromLang, t.ToLang, sections, words, toWords); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	if words == 0 {
		return nil
	}

	tbl := listing.New("Section", "Word", "Grammar", "Translations").WithWriter(w)
	for _, s := range t.Sections {
		for _, e := range s.EntryWords {
			var tr []string
			for _, tw := range e.ToWords {
				tr = append(tr, tw.Word)
			}
			tbl.AddRow(s.SectionType, e.FromWord.Word, e.FromWord.Grammar, strings.Join(tr, ", "))
		}
	}
	tbl.Print()
	return nil
}
