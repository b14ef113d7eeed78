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

package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ianlewis/go-dictzip"
)

// CacheOptions are options for the Cache.
type CacheOptions struct {
	// Logger receives cache hit and miss logs. A nil Logger discards logs.
	Logger *slog.Logger
}

// DefaultCacheOptions is the default options for the Cache.
var DefaultCacheOptions = &CacheOptions{}

// Cache is a Fetcher that stores documents fetched by another Fetcher in a
// local directory.
type Cache struct {
	next  Fetcher
	dir   string
	files *FileFetcher
	log   *slog.Logger
}

// NewCache returns a Cache storing documents fetched by next in dir. If opts
// is nil, DefaultCacheOptions is used.
func NewCache(next Fetcher, dir string, opts *CacheOptions) *Cache {
	if opts == nil {
		opts = DefaultCacheOptions
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Cache{
		next:  next,
		dir:   dir,
		files: NewFileFetcher(dir),
		log:   log.With("fetcher", "cache"),
	}
}

// Fetch returns the stored document for word or fetches and stores it.
// Failing to store a document is logged and does not fail the fetch.
func (c *Cache) Fetch(ctx context.Context, from, to, word string) (string, error) {
	doc, err := c.files.Fetch(ctx, from, to, word)
	switch {
	case err == nil:
		c.log.Debug("cache hit", "from", from, "to", to, "word", word)
		return doc, nil
	case !errors.Is(err, ErrNotFound):
		return "", err
	}

	c.log.Debug("cache miss", "from", from, "to", to, "word", word)
	doc, err = c.next.Fetch(ctx, from, to, word)
	if err != nil {
		return "", err
	}

	if err := c.store(from, to, word, doc); err != nil {
		c.log.Warn("storing document", "word", word, "err", err)
	}
	return doc, nil
}

// store writes doc compressed with dictzip. The file is written to a
// temporary file first so readers never see a partial document.
func (c *Cache) store(from, to, word, doc string) error {
	path := DocumentPath(c.dir, from, to, word) + ".html.dz"
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	f, err := os.CreateTemp(filepath.Dir(path), ".doc.*")
	if err != nil {
		return fmt.Errorf("creating cache file: %w", err)
	}
	defer os.Remove(f.Name())
	defer f.Close()

	z, err := dictzip.NewWriter(f)
	if err != nil {
		return fmt.Errorf("creating cache file: %w", err)
	}
	if _, err := io.WriteString(z, doc); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	if err := z.Close(); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}

	if err := os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	return nil
}
