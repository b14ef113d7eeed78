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

// Package wordtranslator implements a library for extracting structured
// translations from WordReference style dictionary documents in pure Go.
//
// Extracting a translation has several steps:
//  1. The raw document is fetched by a [fetch.Fetcher].
//  2. The article part of the document is cut out and cleaned by
//     [markup.Normalize].
//  3. The article is split into tags and their text by a [markup.Scanner].
//  4. Tags are classified and assembled into an entry tree by an
//     [extract.Extractor].
//
// The resulting [entry.Translation] can be written as JSON or rendered as a
// text table with [table.Render].
//
// The extraction is best effort. A document using unexpected markup results
// in an incomplete tree rather than an error unless strict mode is enabled
// with [extract.Options].
package wordtranslator
