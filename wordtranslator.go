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

package wordtranslator

import (
	"context"
	"fmt"

	"github.com/wordtranslator/go-wordtranslator/entry"
	"github.com/wordtranslator/go-wordtranslator/extract"
	"github.com/wordtranslator/go-wordtranslator/fetch"
	"github.com/wordtranslator/go-wordtranslator/markup"
)

// Options are options for retrieving and extracting translations.
type Options struct {
	// Extract are the options for the extractor. Defaults to
	// extract.DefaultOptions.
	Extract *extract.Options
}

// DefaultOptions is the default options.
var DefaultOptions = &Options{
	Extract: extract.DefaultOptions,
}

// Retrieve fetches the document for word once and extracts its translation.
// Fetch errors are returned as is.
func Retrieve(ctx context.Context, f fetch.Fetcher, from, to, word string, opts *Options) (*entry.Translation, error) {
	raw, err := f.Fetch(ctx, from, to, word)
	if err != nil {
		return nil, err
	}
	return Extract(raw, from, to, word, opts)
}

// RetrieveAll retrieves the translations of several words in order. It
// returns the successfully retrieved translations along with any errors that
// occurred.
func RetrieveAll(ctx context.Context, f fetch.Fetcher, from, to string, words []string, opts *Options) ([]*entry.Translation, []error) {
	var translations []*entry.Translation
	var errs []error
	for _, word := range words {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		t, err := Retrieve(ctx, f, from, to, word, opts)
		if err != nil {
			errs = append(errs, fmt.Errorf("%q: %w", word, err))
			continue
		}
		translations = append(translations, t)
	}
	return translations, errs
}

// Extract extracts the translation of word from the raw document. It returns
// an error wrapping markup.ErrMarkupShape if the document has no article.
func Extract(raw, from, to, word string, opts *Options) (*entry.Translation, error) {
	if opts == nil {
		opts = DefaultOptions
	}

	normalized, err := markup.Normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("extracting %q: %w", word, err)
	}

	t, err := extract.New(opts.Extract).Extract(normalized, from, to, word)
	if err != nil {
		return t, fmt.Errorf("extracting %q: %w", word, err)
	}
	return t, nil
}
