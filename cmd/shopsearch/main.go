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


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/vantry/shopsearch/gateway"
	"github.com/vantry/shopsearch/index"
	"github.com/vantry/shopsearch/index/badgerindex"
	"github.com/vantry/shopsearch/pipeline"
	"github.com/vantry/shopsearch/reindex"
	"github.com/vantry/shopsearch/search"
	"github.com/vantry/shopsearch/seed"
	"github.com/vantry/shopsearch/storage"
)

func main() {
	app := &cli.App{
		Name:  "shopsearch",
		Usage: "Catalog search engine with incremental indexing",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Rank the sample catalog against a query",
				ArgsUsage: "[query terms...]",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "no-fuzzy",
						Usage: "Disable edit-distance query expansion",
					},
					&cli.BoolFlag{
						Name:  "case-sensitive",
						Usage: "Match query tokens case-sensitively",
					},
				},
			},
			{
				Name:   "reindex",
				Usage:  "Run a full reindex of the sample events into a BadgerDB index",
				Action: reindexCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB index directory",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:  "locale",
						Usage: "Locale to index documents for",
						Value: cli.NewStringSlice("en-US"),
					},
					&cli.StringSliceFlag{
						Name:  "currency",
						Usage: "Currency to index documents for",
						Value: cli.NewStringSlice("USD"),
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of catalogs to process in each batch",
						Value: reindex.DefaultBatchSize,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N catalogs",
						Value: 1,
					},
				},
			},
			{
				Name:   "serve",
				Usage:  "Serve the search HTTP API over the sample catalog",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "port",
						Aliases: []string{"p"},
						Usage:   "HTTP listen port",
						Value:   8080,
					},
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to BadgerDB index directory (in-memory index when empty)",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()
	query := strings.Join(c.Args().Slice(), " ")

	engine, err := search.NewEngine()
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}
	defer engine.Release()

	response, err := engine.Rank(ctx, query, seed.SampleCatalogs(),
		search.WithFuzzy(!c.Bool("no-fuzzy")),
		search.WithCaseSensitive(c.Bool("case-sensitive")),
		search.WithFaceting(
			search.FacetConfig{Field: "domain"},
			search.FacetConfig{Field: "tags", Limit: 5},
		),
	)
	if err != nil {
		return fmt.Errorf("ranking failed: %w", err)
	}

	fmt.Printf("Found %d hits\n", len(response.Results))
	for i, hit := range response.Results {
		fmt.Printf("%d: '%s' (%d)[%0.3f] lex=%0.3f sem=%0.3f boost=%0.3f\n",
			i, hit.Name, hit.ID, hit.Score,
			hit.Breakdown.Lexical, hit.Breakdown.Semantic, hit.Breakdown.Booster)
	}
	if len(response.Expansions) > 0 {
		fmt.Printf("Expanded with: %s\n", strings.Join(response.Expansions, ", "))
	}
	for field, buckets := range response.Facets {
		fmt.Printf("%s:", field)
		for _, bucket := range buckets {
			fmt.Printf(" %s(%d)", bucket.Value, bucket.Count)
		}
		fmt.Println()
	}
	return nil
}

func reindexCommand(c *cli.Context) error {
	ctx := context.Background()

	backend, err := badgerindex.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open index database: %w", err)
	}
	defer backend.Close()

	writer, err := badgerindex.NewWriter(backend)
	if err != nil {
		return fmt.Errorf("failed to create index writer: %w", err)
	}

	store := pipeline.NewSnapshotStore()
	for _, event := range seed.SampleEvents() {
		store.Apply(event)
	}

	job, err := reindex.NewJob(
		store,
		pipeline.NewDocumentBuilder(search.DefaultSynonyms()),
		writer,
		c.StringSlice("locale"),
		c.StringSlice("currency"),
		reindex.WithProgress(reindex.NewProgressTracker(os.Stderr, c.Int("report-interval"))),
	)
	if err != nil {
		return fmt.Errorf("failed to create reindex job: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	fmt.Fprintf(os.Stderr, "Catalogs: %d\n", store.Size())
	fmt.Fprintln(os.Stderr)

	if err := job.Start(ctx, c.Int("batch-size")); err != nil {
		return fmt.Errorf("reindex failed: %w", err)
	}
	return nil
}

func serveCommand(c *cli.Context) error {
	ctx := context.Background()

	repo := storage.NewMemoryRepository()
	defer repo.Close()

	store := pipeline.NewSnapshotStore()
	if err := pipeline.ApplyCatalogEvents(ctx, repo, seed.SampleEvents(), store); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	var writer index.Writer = index.NewInMemoryWriter()
	if dbPath := c.String("db"); dbPath != "" {
		backend, err := badgerindex.OpenBackend(dbPath, false)
		if err != nil {
			return fmt.Errorf("failed to open index database: %w", err)
		}
		defer backend.Close()

		writer, err = badgerindex.NewWriter(backend)
		if err != nil {
			return fmt.Errorf("failed to create index writer: %w", err)
		}
	}

	engine, err := search.NewEngine()
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}
	defer engine.Release()

	controller, err := gateway.NewController(repo, engine,
		gateway.WithFaceting(
			search.FacetConfig{Field: "domain"},
			search.FacetConfig{Field: "category", Limit: 10},
			search.FacetConfig{Field: "tags", Limit: 10},
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create controller: %w", err)
	}

	job, err := reindex.NewJob(
		store,
		pipeline.NewDocumentBuilder(search.DefaultSynonyms()),
		writer,
		[]string{"en-US", "de-DE"},
		[]string{"USD", "EUR"},
	)
	if err != nil {
		return fmt.Errorf("failed to create reindex job: %w", err)
	}

	server := gateway.NewServer(controller, job, slog.Default())
	addr := fmt.Sprintf(":%d", c.Int("port"))

	slog.Info("listening", "addr", addr)
	return http.ListenAndServe(addr, server)
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
