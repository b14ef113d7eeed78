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
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/wordtranslator/go-wordtranslator/fetch"
	"github.com/wordtranslator/go-wordtranslator/internal/config"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError

	// ExitCodeNotFound is the exit code used when a word has no document.
	ExitCodeNotFound
)

// ErrWordtr is a parent error for all command errors.
var ErrWordtr = errors.New("wordtr")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrWordtr)

var copyrightNames = []string{
	"2026 The go-wordtranslator Authors",
}

// app holds the state shared by the commands.
type app struct {
	cfg *config.Config
	log *slog.Logger
}

// before loads the configuration and sets up logging.
func (a *app) before(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if lvl := c.String("log-level"); lvl != "" {
		cfg.Log.Level = lvl
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		}
	}

	log, err := newLogger(c.App.ErrWriter, cfg.Log)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log
	return nil
}

// fetcher returns the fetcher for the command flags.
func (a *app) fetcher(c *cli.Context) fetch.Fetcher {
	if dir := c.String("offline"); dir != "" {
		a.log.Debug("reading documents offline", "dir", dir)
		return fetch.NewFileFetcher(dir)
	}

	var f fetch.Fetcher = fetch.NewHTTPFetcher(&fetch.HTTPOptions{
		BaseURL:   a.cfg.Fetch.BaseURL,
		Timeout:   a.cfg.Fetch.Timeout,
		UserAgent: a.cfg.Fetch.UserAgent,
		Logger:    a.log,
	})
	if a.cfg.Cache.Disabled || c.Bool("no-cache") {
		return f
	}

	dir := a.cfg.Cache.Dir
	if dir == "" {
		dir = cacheLocation()
	}
	if dir == "" {
		a.log.Warn("no cache directory found, caching disabled")
		return f
	}
	return fetch.NewCache(f, dir, &fetch.CacheOptions{Logger: a.log})
}

func newWordtrApp() *cli.App {
	a := &app{}
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Translate words with WordReference.",
		Description: strings.Join([]string{
			"WordReference translation extractor written in Go.",
			"http://github.com/wordtranslator/go-wordtranslator",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "read configuration from `FILE`",
				Aliases: []string{"c"},
				EnvVars: []string{config.PathEnv},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log `LEVEL` (debug, info, warn, error)",
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelpCommand: true,
		Before:          a.before,
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}
			return cli.ShowAppHelp(c)
		},
		Commands: []*cli.Command{
			translateCommand(a),
			extractCommand(a),
		},
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		},
	}
}

// exitCode returns the process exit code for err.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitCodeSuccess
	case errors.Is(err, ErrFlagParse):
		return ExitCodeFlagParseError
	case errors.Is(err, fetch.ErrNotFound):
		return ExitCodeNotFound
	default:
		return ExitCodeUnknownError
	}
}
