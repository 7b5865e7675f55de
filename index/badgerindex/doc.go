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


// Package badgerindex implements the index.Writer contract on BadgerDB.
//
// Staging uses a generation-pointer scheme: each catalog's documents live
// under a generation-prefixed key, and a single metadata key names the live
// generation. BeginFullReindex starts writing under the next generation;
// FinalizeFullReindex atomically repoints the metadata key and garbage
// collects the old generation's keys; RollbackFullReindex deletes the staged
// keys and leaves the pointer untouched. Readers resolve the pointer first,
// so staged writes are invisible until finalize commits.
//
// Document buckets are stored as JSON-encoded lists, one value per catalog.
package badgerindex
