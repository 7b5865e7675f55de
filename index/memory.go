package index

import (
	"context"
	"sync"

	"github.com/vantry/shopsearch/core"
)

// InMemoryWriter is the reference Writer implementation. It keeps the live
// and staging indexes as per-catalog document lists and is safe for
// concurrent use.
type InMemoryWriter struct {
	mu      sync.RWMutex
	live    map[core.CatalogID][]core.IndexDocument
	stage   map[core.CatalogID][]core.IndexDocument
	staging bool
	closed  bool
}

var _ Writer = (*InMemoryWriter)(nil)

// NewInMemoryWriter creates an empty in-memory writer.
func NewInMemoryWriter() *InMemoryWriter {
	return &InMemoryWriter{
		live: make(map[core.CatalogID][]core.IndexDocument),
	}
}

// BeginFullReindex opens a fresh staging area.
func (w *InMemoryWriter) BeginFullReindex(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrWriterClosed
	}

	w.stage = make(map[core.CatalogID][]core.IndexDocument)
	w.staging = true
	return nil
}

// WriteBatch upserts documents into staging when a reindex is in progress,
// otherwise into the live index.
func (w *InMemoryWriter) WriteBatch(ctx context.Context, documents []core.IndexDocument) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrWriterClosed
	}

	target := w.live
	if w.staging {
		target = w.stage
	}
	for _, doc := range documents {
		target[doc.CatalogID] = upsertDocument(target[doc.CatalogID], doc)
	}
	return nil
}

// FinalizeFullReindex swaps the staging area live.
func (w *InMemoryWriter) FinalizeFullReindex(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrWriterClosed
	}
	if !w.staging {
		return nil
	}

	w.live = w.stage
	w.stage = nil
	w.staging = false
	return nil
}

// RollbackFullReindex discards the staging area.
func (w *InMemoryWriter) RollbackFullReindex(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrWriterClosed
	}

	w.stage = nil
	w.staging = false
	return nil
}

// ReplaceCatalogDocuments replaces one catalog's live documents.
func (w *InMemoryWriter) ReplaceCatalogDocuments(ctx context.Context, id core.CatalogID, documents []core.IndexDocument) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrWriterClosed
	}

	w.live[id] = append([]core.IndexDocument(nil), documents...)
	return nil
}

// DeleteCatalog removes one catalog from the live index.
func (w *InMemoryWriter) DeleteCatalog(ctx context.Context, id core.CatalogID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrWriterClosed
	}

	delete(w.live, id)
	return nil
}

// Close marks the writer closed.
func (w *InMemoryWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	w.live = nil
	w.stage = nil
	w.staging = false
	return nil
}

// Snapshot returns a copy of the live index. Staged writes are not visible.
func (w *InMemoryWriter) Snapshot() map[core.CatalogID][]core.IndexDocument {
	w.mu.RLock()
	defer w.mu.RUnlock()

	snapshot := make(map[core.CatalogID][]core.IndexDocument, len(w.live))
	for id, docs := range w.live {
		snapshot[id] = append([]core.IndexDocument(nil), docs...)
	}
	return snapshot
}

// upsertDocument replaces the bucket entry sharing the document's ID, or
// appends when the ID is new.
func upsertDocument(bucket []core.IndexDocument, doc core.IndexDocument) []core.IndexDocument {
	for i, existing := range bucket {
		if existing.ID == doc.ID {
			bucket[i] = doc
			return bucket
		}
	}
	return append(bucket, doc)
}
