package badgerindex

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/dgraph-io/badger/v4"

	"github.com/vantry/shopsearch/core"
	"github.com/vantry/shopsearch/index"
)

// Writer is a persistent index.Writer on BadgerDB. It owns its backend:
// Close closes the underlying database.
type Writer struct {
	backend *Backend
	logger  *slog.Logger

	mu       sync.Mutex
	liveGen  uint64
	stageGen uint64
	staging  bool
}

var _ index.Writer = (*Writer)(nil)

// Option configures a Writer.
type Option func(*Writer) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(w *Writer) error {
		if logger == nil {
			logger = slog.Default()
		}
		w.logger = logger
		return nil
	}
}

// NewWriter creates a writer on an open backend, resuming the live
// generation persisted by a previous run.
func NewWriter(backend *Backend, opts ...Option) (*Writer, error) {
	w := &Writer{
		backend: backend,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(w); err != nil {
			return nil, err
		}
	}

	liveGen, err := loadGeneration(backend)
	if err != nil {
		return nil, fmt.Errorf("load live generation: %w", err)
	}
	w.liveGen = liveGen
	return w, nil
}

// BeginFullReindex starts staging under the next generation. A reindex
// already in progress is discarded first.
func (w *Writer) BeginFullReindex(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.backend.IsClosed() {
		return index.ErrWriterClosed
	}

	stageGen := w.liveGen + 1
	if err := w.deleteGeneration(stageGen); err != nil {
		return fmt.Errorf("clear staging generation: %w", err)
	}

	w.stageGen = stageGen
	w.staging = true
	w.logger.Debug("full reindex staging opened", "generation", stageGen)
	return nil
}

// WriteBatch upserts documents into the active generation.
func (w *Writer) WriteBatch(ctx context.Context, documents []core.IndexDocument) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.backend.IsClosed() {
		return index.ErrWriterClosed
	}

	generation := w.liveGen
	if w.staging {
		generation = w.stageGen
	}

	grouped := make(map[core.CatalogID][]core.IndexDocument)
	order := make([]core.CatalogID, 0, len(documents))
	for _, doc := range documents {
		if _, ok := grouped[doc.CatalogID]; !ok {
			order = append(order, doc.CatalogID)
		}
		grouped[doc.CatalogID] = append(grouped[doc.CatalogID], doc)
	}

	return w.backend.Update(func(tx *badger.Txn) error {
		for _, id := range order {
			key := makeCatalogKey(generation, id)
			bucket, err := readBucket(tx, key)
			if err != nil {
				return err
			}
			for _, doc := range grouped[id] {
				bucket = upsertDocument(bucket, doc)
			}
			if err := writeBucket(tx, key, bucket); err != nil {
				return err
			}
		}
		return nil
	})
}

// FinalizeFullReindex repoints the live generation at the staged one and
// garbage collects the previous generation's keys.
func (w *Writer) FinalizeFullReindex(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.backend.IsClosed() {
		return index.ErrWriterClosed
	}
	if !w.staging {
		return nil
	}

	oldGen := w.liveGen
	err := w.backend.Update(func(tx *badger.Txn) error {
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], w.stageGen)
		if err := tx.Set([]byte(generationKey), buf[:]); err != nil {
			return err
		}
		return deleteGenerationTx(tx, oldGen)
	})
	if err != nil {
		return fmt.Errorf("finalize reindex: %w", err)
	}

	w.liveGen = w.stageGen
	w.staging = false
	w.logger.Debug("full reindex finalized", "generation", w.liveGen)
	return nil
}

// RollbackFullReindex deletes the staged keys, leaving the live generation
// pointer untouched.
func (w *Writer) RollbackFullReindex(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.backend.IsClosed() {
		return index.ErrWriterClosed
	}
	if !w.staging {
		return nil
	}

	if err := w.deleteGeneration(w.stageGen); err != nil {
		return fmt.Errorf("rollback reindex: %w", err)
	}
	w.staging = false
	w.logger.Debug("full reindex rolled back", "generation", w.stageGen)
	return nil
}

// ReplaceCatalogDocuments replaces one catalog's live bucket, bypassing
// staging.
func (w *Writer) ReplaceCatalogDocuments(ctx context.Context, id core.CatalogID, documents []core.IndexDocument) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.backend.IsClosed() {
		return index.ErrWriterClosed
	}

	key := makeCatalogKey(w.liveGen, id)
	return w.backend.Update(func(tx *badger.Txn) error {
		if len(documents) == 0 {
			return tx.Delete(key)
		}
		return writeBucket(tx, key, documents)
	})
}

// DeleteCatalog removes one catalog's live bucket.
func (w *Writer) DeleteCatalog(ctx context.Context, id core.CatalogID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.backend.IsClosed() {
		return index.ErrWriterClosed
	}

	return w.backend.Update(func(tx *badger.Txn) error {
		return tx.Delete(makeCatalogKey(w.liveGen, id))
	})
}

// Close closes the underlying database.
func (w *Writer) Close() error {
	return w.backend.Close()
}

// Snapshot returns a copy of the live index. Staged writes are not visible.
func (w *Writer) Snapshot() (map[core.CatalogID][]core.IndexDocument, error) {
	w.mu.Lock()
	liveGen := w.liveGen
	w.mu.Unlock()

	if w.backend.IsClosed() {
		return nil, index.ErrWriterClosed
	}

	snapshot := make(map[core.CatalogID][]core.IndexDocument)
	prefix := makeGenerationPrefix(liveGen)
	err := w.backend.View(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()
			id, err := catalogIDFromKey(item.Key(), prefix)
			if err != nil {
				return err
			}
			err = item.Value(func(value []byte) error {
				var bucket []core.IndexDocument
				if err := json.Unmarshal(value, &bucket); err != nil {
					return fmt.Errorf("decode document bucket: %w", err)
				}
				snapshot[id] = bucket
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// deleteGeneration removes every catalog bucket of one generation.
func (w *Writer) deleteGeneration(generation uint64) error {
	return w.backend.Update(func(tx *badger.Txn) error {
		return deleteGenerationTx(tx, generation)
	})
}

func deleteGenerationTx(tx *badger.Txn, generation uint64) error {
	prefix := makeGenerationPrefix(generation)
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	opts.PrefetchValues = false

	var keys [][]byte
	iter := tx.NewIterator(opts)
	for iter.Rewind(); iter.Valid(); iter.Next() {
		keys = append(keys, iter.Item().KeyCopy(nil))
	}
	iter.Close()

	for _, key := range keys {
		if err := tx.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

func loadGeneration(backend *Backend) (uint64, error) {
	var generation uint64
	err := backend.View(func(tx *badger.Txn) error {
		item, err := tx.Get([]byte(generationKey))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			if len(value) != 8 {
				return fmt.Errorf("malformed generation value of %d bytes", len(value))
			}
			generation = binary.BigEndian.Uint64(value)
			return nil
		})
	})
	return generation, err
}

func readBucket(tx *badger.Txn, key []byte) ([]core.IndexDocument, error) {
	item, err := tx.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var bucket []core.IndexDocument
	err = item.Value(func(value []byte) error {
		return json.Unmarshal(value, &bucket)
	})
	if err != nil {
		return nil, fmt.Errorf("decode document bucket: %w", err)
	}
	return bucket, nil
}

func writeBucket(tx *badger.Txn, key []byte, bucket []core.IndexDocument) error {
	value, err := json.Marshal(bucket)
	if err != nil {
		return fmt.Errorf("encode document bucket: %w", err)
	}
	return tx.Set(key, value)
}

// catalogIDFromKey parses the catalog ID suffix of a bucket key.
func catalogIDFromKey(key, prefix []byte) (core.CatalogID, error) {
	raw := string(key[len(prefix):])
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed bucket key %q: %w", key, err)
	}
	return core.CatalogID(id), nil
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
