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
	"os"

	"github.com/urfave/cli/v2"

	wordtranslator "github.com/wordtranslator/go-wordtranslator"
	"github.com/wordtranslator/go-wordtranslator/extract"
)

func extractCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     "Extract a translation from a saved document",
		ArgsUsage: "FROM TO WORD FILE",
		Description: `Extract the translation of WORD from the FROM language to the TO language
from a saved dictionary document. If FILE is "-" the document is read from
standard input.`,
		Flags: []cli.Flag{
			formatFlag(),
			strictFlag(),
		},
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 4 {
				return fmt.Errorf("%w: expected FROM TO WORD FILE", ErrFlagParse)
			}
			args := c.Args().Slice()
			from, to, word, path := args[0], args[1], args[2], args[3]

			raw, err := readDocument(c, path)
			if err != nil {
				return err
			}

			opts := &wordtranslator.Options{
				Extract: &extract.Options{
					Strict: c.Bool("strict"),
					Logger: a.log,
				},
			}
			t, err := wordtranslator.Extract(raw, from, to, word, opts)
			if err != nil {
				return err
			}
			return writeTranslation(c.App.Writer, t, c.String("format"))
		},
	}
}

func readDocument(c *cli.Context, path string) (string, error) {
	var r io.Reader = c.App.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("error opening %q: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("error reading %q: %w", path, err)
	}
	return string(b), nil
}
