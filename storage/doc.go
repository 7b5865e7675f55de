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


// Package storage holds the catalog read model fed by the ingestion
// pipeline and consumed by the ranking engine.
//
// The CatalogRepository interface decouples the pipeline from the backing
// store. The in-memory implementation is what the CLI and the HTTP gateway
// use when running locally; production deployments can substitute a
// datastore-backed implementation without touching the pipeline.
//
// The pipeline is the sole writer: the ranking engine only ever calls List.
package storage
