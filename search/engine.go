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


package search

import (
	"context"
	"log/slog"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/vantry/shopsearch/analysis"
	"github.com/vantry/shopsearch/core"
	"github.com/vantry/shopsearch/dictionary"
)

// Response is the result of one ranking call.
type Response struct {
	// Results holds the surviving items sorted by descending score. Items
	// with equal scores keep their input order.
	Results []core.RankedCatalog
	// Facets maps each configured facet field to its sorted buckets.
	// Nil when no faceting was requested.
	Facets map[string][]core.FacetBucket
	// Expansions lists the tokens added by synonym and fuzzy expansion,
	// i.e. scoring tokens that were not part of the original query.
	Expansions []string
}

// Engine ranks catalog entries against free-text queries. It is safe for
// concurrent use and caches the tokenized corpus vocabulary between calls
// over an unchanged catalog.
type Engine struct {
	defaults *dictionary.SynonymDictionary
	pool     *ants.Pool
	logger   *slog.Logger

	mu       sync.Mutex
	vocabFP  uint64
	vocabCS  bool
	vocab    []string
	released bool
}

// DefaultSynonyms returns the built-in synonym dictionary merged into every
// ranking call.
func DefaultSynonyms() *dictionary.SynonymDictionary {
	d := dictionary.New()
	d.Add("js", []string{"javascript", "node", "nodejs"})
	d.Add("ts", []string{"typescript"})
	d.Add("db", []string{"database"})
	return d
}

// NewEngine creates a ranking engine.
func NewEngine(opts ...Option) (*Engine, error) {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		defaults: DefaultSynonyms(),
		pool:     pool,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			e.Release()
			return nil, err
		}
	}

	return e, nil
}

// resizePool replaces the scoring pool with one of the given size.
func (e *Engine) resizePool(size int) error {
	pool, err := ants.NewPool(size)
	if err != nil {
		return err
	}
	if e.pool != nil {
		e.pool.Release()
	}
	e.pool = pool
	return nil
}

// Release releases the scoring pool. The engine must not be used afterwards.
func (e *Engine) Release() {
	e.mu.Lock()
	e.released = true
	e.mu.Unlock()
	if e.pool != nil {
		e.pool.Release()
	}
}

// Rank scores every catalog item against the query and returns the ranked,
// faceted response.
//
// An empty (or whitespace-only) query is the browse fallback: every item is
// returned in input order with score 1, full lexical credit, no semantic
// contribution, and its booster sum, and facets are aggregated over that
// unfiltered set.
func (e *Engine) Rank(ctx context.Context, query string, items []core.Catalog, opts ...RankOption) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.mu.Lock()
	released := e.released
	e.mu.Unlock()
	if released {
		return nil, ErrEngineReleased
	}

	options := defaultRankOptions()
	for _, opt := range opts {
		opt(&options)
	}

	normalized := strings.TrimSpace(query)
	if !options.caseSensitive {
		normalized = strings.ToLower(normalized)
	}

	if normalized == "" {
		return e.browse(items, options), nil
	}

	tokens := analysis.Tokenize(normalized, options.caseSensitive)
	vocabulary := e.vocabulary(items, options.caseSensitive)

	combined := dictionary.New()
	combined.Merge(e.defaults)
	combined.Merge(options.synonyms)

	expanded, expansions := ExpandQuery(tokens, combined, vocabulary, options.allowFuzzy)
	queryVector := analysis.EmbedTokens(expanded)

	e.logger.Debug("ranking query",
		"tokens", len(tokens),
		"expanded", len(expanded),
		"items", len(items),
	)

	scored := make([]core.RankedCatalog, len(items))
	var wg sync.WaitGroup
	for i := range items {
		wg.Add(1)
		item := items[i]
		slot := &scored[i]
		task := func() {
			defer wg.Done()
			*slot = scoreItem(item, expanded, queryVector, options)
		}
		if err := e.pool.Submit(task); err != nil {
			// Pool saturated or released mid-call: score inline so the
			// call still completes with identical results.
			task()
		}
	}
	wg.Wait()

	results := make([]core.RankedCatalog, 0, len(scored))
	for _, entry := range scored {
		if entry.Score > 0 {
			results = append(results, entry)
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return &Response{
		Results:    results,
		Facets:     BuildFacets(results, options.faceting),
		Expansions: expansions,
	}, nil
}

// browse returns every item unranked, in input order.
func (e *Engine) browse(items []core.Catalog, options rankOptions) *Response {
	results := make([]core.RankedCatalog, len(items))
	for i, item := range items {
		results[i] = core.RankedCatalog{
			Catalog: item,
			Score:   1,
			Breakdown: core.ScoreBreakdown{
				Lexical: 1,
				Booster: boosterScore(item, options.boosters),
			},
		}
	}

	return &Response{
		Results:    results,
		Facets:     BuildFacets(results, options.faceting),
		Expansions: []string{},
	}
}

// vocabulary returns the corpus vocabulary, rebuilding it only when the
// catalog fingerprint changes.
func (e *Engine) vocabulary(items []core.Catalog, caseSensitive bool) []string {
	fp := corpusFingerprint(items, caseSensitive)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.vocab != nil && fp == e.vocabFP && caseSensitive == e.vocabCS {
		return e.vocab
	}

	e.vocab = buildVocabulary(items, caseSensitive)
	e.vocabFP = fp
	e.vocabCS = caseSensitive
	return e.vocab
}

// scoreItem computes the three sub-scores and the combined score for one
// item. The combined score weights lexical and semantic but adds the booster
// sum unweighted.
func scoreItem(item core.Catalog, expanded []string, queryVector []float64, options rankOptions) core.RankedCatalog {
	haystack := itemHaystack(item)
	if !options.caseSensitive {
		haystack = strings.ToLower(haystack)
	}

	var matched int
	for _, token := range expanded {
		if strings.Contains(haystack, token) {
			matched++
		}
	}
	var lexical float64
	if len(expanded) > 0 {
		lexical = float64(matched) / float64(len(expanded))
	}

	semantic := analysis.Cosine(queryVector, itemVector(item))
	booster := boosterScore(item, options.boosters)

	return core.RankedCatalog{
		Catalog: item,
		Score:   options.lexicalWeight*lexical + options.semanticWeight*semantic + booster,
		Breakdown: core.ScoreBreakdown{
			Lexical:  lexical,
			Semantic: semantic,
			Booster:  booster,
		},
	}
}

// itemVector resolves the item's semantic vector: its own embedding when
// present, otherwise the token-averaged embedding of its tags.
func itemVector(item core.Catalog) []float64 {
	if len(item.Vector) > 0 {
		return item.Vector
	}

	tags := make([]string, len(item.Tags))
	for i, tag := range item.Tags {
		tags[i] = strings.ToLower(tag)
	}
	return analysis.EmbedTokens(tags)
}
