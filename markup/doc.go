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

// Package markup implements reading dictionary article markup.
//
// Reading happens in two steps:
//  1. Normalize cuts the article out of the full document and removes
//     decorative noise and tags that would split a field's text in two.
//  2. A Scanner walks the normalized markup tag by tag. Each Token carries
//     the class names and data-ph markers found in the tag header and the
//     trimmed text that follows the tag.
//
// This is not a general purpose HTML parser. It only understands the shape
// of the article markup and reports ErrMarkupShape when that shape is not
// found.
package markup
