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
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wordtranslator/go-wordtranslator/internal/testutil"
)

func TestFileFetcher_Fetch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts *testutil.MakeDocOptions
	}{
		{
			name: "plain",
		},
		{
			name: "dictzip",
			opts: &testutil.MakeDocOptions{DictZip: true},
		},
		{
			name: "gzip extension",
			opts: &testutil.MakeDocOptions{DictZip: true, Ext: ".html.gz"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			doc := "<html>casa ñ</html>"
			testutil.MakeDoc(t, dir, "es", "en", "casa", doc, test.opts)

			got, err := NewFileFetcher(dir).Fetch(context.Background(), "es", "en", "casa")
			if err != nil {
				t.Fatalf("Fetch: %v", err)
			}
			if diff := cmp.Diff(doc, got); diff != "" {
				t.Fatalf("Fetch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestFileFetcher_Fetch_errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	f := NewFileFetcher(dir)

	if _, err := f.Fetch(context.Background(), "es", "en", "casa"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Fetch: want error %v, got %v", ErrNotFound, err)
	}

	// Not a gzip file.
	path := filepath.Join(dir, "esen", "roto.html.dz")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("<html>"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := f.Fetch(context.Background(), "es", "en", "roto"); !errors.Is(err, ErrFetch) {
		t.Fatalf("Fetch: want error %v, got %v", ErrFetch, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := f.Fetch(ctx, "es", "en", "casa"); !errors.Is(err, context.Canceled) {
		t.Fatalf("Fetch: want error %v, got %v", context.Canceled, err)
	}
}

func TestDocumentPath(t *testing.T) {
	t.Parallel()

	got := DocumentPath("cache", "es", "en", "casa/campo")
	want := filepath.Join("cache", "esen", "casa%2Fcampo")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("DocumentPath (-want, +got):\n%s", diff)
	}
}
