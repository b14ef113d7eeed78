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

// Package extract builds entry trees from normalized article markup.
//
// Tokens produced by [markup.Scanner] are classified by an ordered set of
// rules. Class names seen since the last commit are accumulated and the
// first rule matching the accumulated classes and the current token decides
// which field the token's text belongs to. Completed fields are then
// committed to the tree: sections, entry words, translations, and the
// context, tone, and examples of the last entry word.
//
// Fields that cannot be attached, such as a translation appearing before
// any source word, are dropped. In strict mode they are reported as an
// error wrapping [ErrIncomplete].
package extract
