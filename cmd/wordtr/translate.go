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
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	wordtranslator "github.com/wordtranslator/go-wordtranslator"
	"github.com/wordtranslator/go-wordtranslator/extract"
)

func translateCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:      "translate",
		Usage:     "Translate words",
		ArgsUsage: "FROM TO WORD...",
		Description: `Retrieve the translations of each WORD from the FROM language to the TO
language and print them.`,
		Flags: []cli.Flag{
			formatFlag(),
			strictFlag(),
			&cli.StringFlag{
				Name:  "offline",
				Usage: "read documents from `DIR` instead of the network",
			},
			&cli.BoolFlag{
				Name:               "no-cache",
				Usage:              "do not use the document cache",
				DisableDefaultText: true,
			},
		},
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 3 {
				return fmt.Errorf("%w: expected FROM TO WORD...", ErrFlagParse)
			}
			args := c.Args().Slice()
			from, to, words := args[0], args[1], args[2:]

			opts := &wordtranslator.Options{
				Extract: &extract.Options{
					Strict: c.Bool("strict"),
					Logger: a.log,
				},
			}
			translations, errs := wordtranslator.RetrieveAll(c.Context, a.fetcher(c), from, to, words, opts)
			for _, t := range translations {
				if err := writeTranslation(c.App.Writer, t, c.String("format")); err != nil {
					return err
				}
			}
			for _, err := range errs {
				a.log.Error("translating", "err", err)
			}
			return errors.Join(errs...)
		},
	}
}
