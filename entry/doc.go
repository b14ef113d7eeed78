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

// Package entry implements the entry tree of a bilingual dictionary article.
//
// A tree is made of four levels:
//  1. A Translation for a language pair and headword.
//  2. Ordered EntrySections, each labeled with a SectionType.
//  3. Ordered EntryWords: a source word with its grammatical tag, tone,
//     context and examples.
//  4. Ordered ToWords: the translations of an EntryWord.
//
// There are no explicit indices in a dictionary article so document order is
// the only ordering signal. All sequences in the tree are append-only.
//
// A Translation serializes to JSON in two views. The encoded view keeps
// literal characters (EncodedJSON). The decoded view escapes every non-ASCII
// character (DecodedJSON, Decoded and Escape).
package entry
