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

// Package fetch retrieves raw dictionary documents.
//
// [HTTPFetcher] requests documents from the dictionary site, [FileFetcher]
// reads them from a local directory, and [Cache] stores fetched documents
// in a local directory compressed with dictzip. Documents in a directory are
// laid out as:
//
//	{dir}/{from}{to}/{word}.html
//	{dir}/{from}{to}/{word}.html.dz
//
// Compressed documents may be gzip or dictzip files.
package fetch
