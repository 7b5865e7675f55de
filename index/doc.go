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


// Package index defines the index writer contract shared by the full-reindex
// job and the incremental processor, plus an in-memory reference writer.
//
// Writers support two write paths with different isolation:
//
//   - Full reindex: BeginFullReindex opens a staging area; WriteBatch calls
//     accumulate there, invisible to live readers, until FinalizeFullReindex
//     atomically swaps the staged documents live (or RollbackFullReindex
//     discards them).
//   - Incremental: ReplaceCatalogDocuments and DeleteCatalog touch the live
//     index directly, bypassing staging.
//
// Reads of the live index are never affected by in-progress staged writes.
// The contract does not serialize a concurrent full reindex against
// incremental writes; callers that run both must coordinate externally.
package index
