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

// Package config loads the configuration of the wordtr command.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"slices"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// PathEnv is the environment variable naming the configuration file.
const PathEnv = "WORDTR_CONFIG"

// ErrInvalid indicates an invalid configuration value.
var ErrInvalid = errors.New("invalid config")

// Config is the root configuration.
type Config struct {
	Fetch FetchConfig `yaml:"fetch"`
	Cache CacheConfig `yaml:"cache"`
	Log   LogConfig   `yaml:"log"`
}

// FetchConfig holds settings for requesting documents.
type FetchConfig struct {
	BaseURL   string        `yaml:"base_url"   env:"WORDTR_BASE_URL"   env-default:"https://www.wordreference.com"`
	Timeout   time.Duration `yaml:"timeout"    env:"WORDTR_TIMEOUT"    env-default:"30s"`
	UserAgent string        `yaml:"user_agent" env:"WORDTR_USER_AGENT" env-default:"go-wordtranslator"`
}

// CacheConfig holds settings for the document cache.
type CacheConfig struct {
	// Disabled turns the cache off. Zero values take env-default values so
	// the cache is on unless disabled.
	Disabled bool `yaml:"disabled" env:"WORDTR_CACHE_DISABLED"`

	// Dir is the cache directory. The command picks a per-user directory
	// when it is empty.
	Dir string `yaml:"dir" env:"WORDTR_CACHE_DIR"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"WORDTR_LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"WORDTR_LOG_FORMAT" env-default:"text"`
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json", "logfmt"}
)

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags). If path is empty
// the WORDTR_CONFIG environment variable is used. Without a file the
// configuration is loaded from ENV and defaults only.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		path = os.Getenv(PathEnv)
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Fetch.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: fetch.base_url %q", ErrInvalid, c.Fetch.BaseURL)
	}
	if c.Fetch.Timeout <= 0 {
		return fmt.Errorf("%w: fetch.timeout must be positive", ErrInvalid)
	}
	if !slices.Contains(logLevels, c.Log.Level) {
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	if !slices.Contains(logFormats, c.Log.Format) {
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}
