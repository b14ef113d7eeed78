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

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-dictzip"
)

// MakeDocOptions are options for MakeDoc.
type MakeDocOptions struct {
	// Ext is an optional file extension for the document. Defaults to
	// '.html.dz' if DictZip is true. Otherwise '.html'.
	Ext string

	// DictZip indicates that the document should be compressed with DictZip.
	DictZip bool
}

// GetExt returns the file extension of the document.
func (o *MakeDocOptions) GetExt() string {
	if o != nil {
		if o.Ext != "" {
			return o.Ext
		}
		if o.DictZip {
			return ".html.dz"
		}
	}
	return ".html"
}

// MakeDoc writes doc to {dir}/{from}{to}/{word}{ext} and returns the path.
func MakeDoc(t *testing.T, dir, from, to, word, doc string, opts *MakeDocOptions) string {
	t.Helper()

	path := filepath.Join(dir, from+to, word+opts.GetExt())
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if opts != nil && opts.DictZip {
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := z.Write([]byte(doc)); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
		return path
	}

	if _, err := f.WriteString(doc); err != nil {
		t.Fatal(err)
	}
	return path
}
