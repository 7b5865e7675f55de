// Copyright 2026 Vantry Commerce
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


// Package search implements the catalog ranking engine.
//
// The Engine type scores catalog entries against a free-text query by
// combining:
//   - Lexical overlap between expanded query tokens and item text
//   - Semantic similarity against deterministic token embeddings
//   - Additive merchandising boosters driven by item metrics
//
// Queries are expanded with registered synonyms and edit-distance-1
// vocabulary matches before scoring, and facet buckets are aggregated over
// the ranked result set.
package search
