package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/vantry/shopsearch/core"
	"github.com/vantry/shopsearch/embedding"
	"github.com/vantry/shopsearch/embedding/openai"
	"github.com/vantry/shopsearch/index/badgerindex"
	"github.com/vantry/shopsearch/pipeline"
	"github.com/vantry/shopsearch/search"
	"github.com/vantry/shopsearch/seed"
)

var (
	dbPath         = flag.String("db", "./catalog_index", "path to BadgerDB index directory")
	batchSize      = flag.Int("batch-size", 5, "events per published batch")
	vectorsOut     = flag.String("vectors-out", "", "write per-catalog embedding vectors as JSON to this file")
	embeddingHost  = flag.String("embedding-host", "", "embedding service host URL (deterministic embedder when empty)")
	embeddingModel = flag.String("embedding-model", "embeddinggemma", "embedding model name")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

// publishBatched pushes events through the bus in fixed-size batches, the
// same shape a catalog feed would deliver them in.
func publishBatched(ctx context.Context, bus *pipeline.EventBus, events []core.CatalogEvent, size int) error {
	for start := 0; start < len(events); start += size {
		end := min(start+size, len(events))
		if err := bus.PublishBatch(ctx, events[start:end]); err != nil {
			return err
		}
	}
	return nil
}

// writeVectors embeds each event's searchable copy and writes the vectors
// keyed by catalog ID, for offline loading into the catalog's Vector field.
func writeVectors(ctx context.Context, embedder embedding.Embedder, events []core.CatalogEvent, path string) error {
	texts := make([]string, len(events))
	for i, event := range events {
		texts[i] = event.Name + " " + event.Description
	}

	vectors, err := embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return fmt.Errorf("embed catalog copy: %w", err)
	}

	byID := make(map[core.CatalogID][]float64, len(events))
	for i, event := range events {
		byID[event.ID] = vectors[i]
	}

	payload, err := json.MarshalIndent(byID, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

func main() {
	ctx := context.Background()

	backend, err := badgerindex.OpenBackend(*dbPath, false)
	if err != nil {
		panic(err)
	}
	defer backend.Close()

	writer, err := badgerindex.NewWriter(backend)
	if err != nil {
		panic(err)
	}

	processor, err := pipeline.NewIncrementalProcessor(
		writer,
		pipeline.NewDocumentBuilder(search.DefaultSynonyms()),
		[]string{"en-US", "de-DE"},
		[]string{"USD", "EUR"},
	)
	if err != nil {
		panic(err)
	}

	bus := pipeline.NewEventBus()
	defer bus.Subscribe(processor)()

	events := seed.SampleEvents()
	if err := publishBatched(ctx, bus, events, *batchSize); err != nil {
		panic(err)
	}
	slog.Info("seeded catalog index", "db", *dbPath, "events", len(events))

	if *vectorsOut != "" {
		var embedder embedding.Embedder = embedding.Deterministic{}
		if *embeddingHost != "" {
			embedder, err = openai.NewEmbedder(embedding.NewConfig(
				embedding.WithHost(*embeddingHost),
				embedding.WithModel(*embeddingModel),
			))
			if err != nil {
				panic(err)
			}
		}

		if err := writeVectors(ctx, embedder, events, *vectorsOut); err != nil {
			panic(err)
		}
		slog.Info("wrote catalog vectors", "path", *vectorsOut)
	}
}
