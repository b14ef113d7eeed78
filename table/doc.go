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

// Package table renders entry trees as text tables drawn with box-drawing
// characters.
//
// Each entry word is rendered as one row per translation with the columns
// source word, source grammar, tone, context, translation, translation
// grammar, and note. Examples are rendered as full width rows below the
// word. Widths are terminal display widths so tables line up in a monospace
// terminal.
package table
