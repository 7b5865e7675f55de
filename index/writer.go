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


package index

import (
	"context"

	"github.com/vantry/shopsearch/core"
)

// Writer is the pluggable index backend. Implementations must honor the
// staging protocol described in the package documentation.
type Writer interface {
	// BeginFullReindex enters staging mode. Subsequent WriteBatch calls
	// accumulate into a staging area invisible to live readers. Calling it
	// while already staging discards the previous staging content.
	BeginFullReindex(ctx context.Context) error

	// WriteBatch upserts documents into the active target: staging while a
	// full reindex is in progress, the live index otherwise. Documents are
	// grouped per catalog ID; within one catalog's document list, a document
	// with a matching ID replaces the previous version and new IDs append.
	WriteBatch(ctx context.Context, documents []core.IndexDocument) error

	// FinalizeFullReindex atomically swaps the staged documents live and
	// exits staging mode. No-op when not staging.
	FinalizeFullReindex(ctx context.Context) error

	// RollbackFullReindex discards the staging content and exits staging
	// mode, leaving the live index untouched. No-op when not staging.
	RollbackFullReindex(ctx context.Context) error

	// ReplaceCatalogDocuments replaces one catalog's live documents
	// wholesale, bypassing staging.
	ReplaceCatalogDocuments(ctx context.Context, id core.CatalogID, documents []core.IndexDocument) error

	// DeleteCatalog removes a catalog's documents from the live index.
	// Deleting an absent catalog is not an error.
	DeleteCatalog(ctx context.Context, id core.CatalogID) error

	// Close releases resources held by the writer.
	Close() error
}
