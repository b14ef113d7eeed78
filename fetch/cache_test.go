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
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type countingFetcher struct {
	calls int
	doc   string
	err   error
}

func (f *countingFetcher) Fetch(context.Context, string, string, string) (string, error) {
	f.calls++
	return f.doc, f.err
}

func TestCache_Fetch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	next := &countingFetcher{doc: "<html>casa</html>"}
	c := NewCache(next, dir, nil)

	for i := range 2 {
		got, err := c.Fetch(context.Background(), "es", "en", "casa")
		if err != nil {
			t.Fatalf("Fetch %d: %v", i, err)
		}
		if diff := cmp.Diff(next.doc, got); diff != "" {
			t.Fatalf("Fetch %d (-want, +got):\n%s", i, diff)
		}
	}

	if next.calls != 1 {
		t.Fatalf("next calls: want 1, got %d", next.calls)
	}
	if _, err := os.Stat(DocumentPath(dir, "es", "en", "casa") + ".html.dz"); err != nil {
		t.Fatalf("cached document: %v", err)
	}

	// The stored document can be read without the cache.
	got, err := NewFileFetcher(dir).Fetch(context.Background(), "es", "en", "casa")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if diff := cmp.Diff(next.doc, got); diff != "" {
		t.Fatalf("Fetch (-want, +got):\n%s", diff)
	}
}

func TestCache_Fetch_error(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	next := &countingFetcher{err: ErrNotFound}
	c := NewCache(next, dir, nil)

	for range 2 {
		if _, err := c.Fetch(context.Background(), "es", "en", "perro"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("Fetch: want error %v, got %v", ErrNotFound, err)
		}
	}
	if next.calls != 2 {
		t.Fatalf("next calls: want 2, got %d", next.calls)
	}
	if _, err := os.Stat(DocumentPath(dir, "es", "en", "perro") + ".html.dz"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("cached document: want %v, got %v", os.ErrNotExist, err)
	}
}
