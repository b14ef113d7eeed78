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
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// documentExts are the file extensions of documents in the order they are
// looked up.
var documentExts = []string{".html.dz", ".html.gz", ".html", ".HTML"}

// DocumentPath returns the path of the document for word in dir without the
// file extension.
func DocumentPath(dir, from, to, word string) string {
	return filepath.Join(dir, from+to, url.PathEscape(word))
}

// FileFetcher reads documents from a local directory.
type FileFetcher struct {
	dir string
}

// NewFileFetcher returns a FileFetcher reading documents from dir.
func NewFileFetcher(dir string) *FileFetcher {
	return &FileFetcher{dir: dir}
}

// Fetch reads the document for word. It returns an error wrapping
// ErrNotFound if no document exists.
func (f *FileFetcher) Fetch(ctx context.Context, from, to, word string) (string, error) {
	if err := validate(from, to, word); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrFetch, err)
	}

	path := findDocumentPath(DocumentPath(f.dir, from, to, word))
	if path == "" {
		return "", fmt.Errorf("%w: %s%s/%s", ErrNotFound, from, to, word)
	}

	doc, err := readDocument(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFetch, err)
	}
	return doc, nil
}

func findDocumentPath(base string) string {
	for _, ext := range documentExts {
		path := base + ext
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func readDocument(path string) (string, error) {
	var r io.ReadCloser
	var err error
	r, err = os.Open(path)
	if err != nil {
		return "", fmt.Errorf("error opening %q: %w", path, err)
	}
	defer r.Close()

	// dictzip files are gzip files with an extra header field.
	switch strings.ToLower(filepath.Ext(path)) {
	case ".dz", ".gz":
		r, err = gzip.NewReader(r)
		if err != nil {
			return "", fmt.Errorf("error opening %q: %w", path, err)
		}
		defer r.Close()
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("error reading %q: %w", path, err)
	}
	return string(b), nil
}
