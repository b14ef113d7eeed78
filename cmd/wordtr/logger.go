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
	"log/slog"
	"time"

	charmlog "github.com/charmbracelet/log"

	"github.com/wordtranslator/go-wordtranslator/internal/config"
)

// newLogger returns a logger writing to w with the configured level and
// format.
func newLogger(w io.Writer, cfg config.LogConfig) (*slog.Logger, error) {
	level, err := charmlog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFlagParse, err)
	}

	logger := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           level,
		Prefix:          "wordtr",
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
	switch cfg.Format {
	case "json":
		logger.SetFormatter(charmlog.JSONFormatter)
	case "logfmt":
		logger.SetFormatter(charmlog.LogfmtFormatter)
	default:
		logger.SetFormatter(charmlog.TextFormatter)
	}
	return slog.New(logger), nil
}
