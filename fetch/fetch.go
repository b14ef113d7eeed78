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
)

var (
	// ErrFetch indicates that a document could not be retrieved.
	ErrFetch = errors.New("fetch")

	// ErrNotFound indicates that no document exists for the word.
	ErrNotFound = errors.New("document not found")

	// ErrInvalidRequest indicates that the language pair or word is empty.
	ErrInvalidRequest = errors.New("invalid request")
)

// Fetcher retrieves the raw markup document of a word.
type Fetcher interface {
	// Fetch returns the document for word in the from to language pair.
	Fetch(ctx context.Context, from, to, word string) (string, error)
}

// FetcherFunc is an adapter to allow the use of ordinary functions as
// Fetchers.
type FetcherFunc func(ctx context.Context, from, to, word string) (string, error)

// Fetch calls f(ctx, from, to, word).
func (f FetcherFunc) Fetch(ctx context.Context, from, to, word string) (string, error) {
	return f(ctx, from, to, word)
}

func validate(from, to, word string) error {
	switch {
	case from == "":
		return fmt.Errorf("%w: empty source language", ErrInvalidRequest)
	case to == "":
		return fmt.Errorf("%w: empty target language", ErrInvalidRequest)
	case word == "":
		return fmt.Errorf("%w: empty word", ErrInvalidRequest)
	}
	return nil
}
