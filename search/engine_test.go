package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantry/shopsearch/core"
	"github.com/vantry/shopsearch/dictionary"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(WithPoolSize(2))
	require.NoError(t, err)
	t.Cleanup(engine.Release)
	return engine
}

func testCatalog() []core.Catalog {
	return []core.Catalog{
		{
			ID:          1,
			Name:        "Streams starter kit",
			Description: "Audio streams for live listening rooms",
			Tags:        []string{"streams", "audio"},
			Domain:      core.DomainProduct,
			Category:    "audio",
		},
		{
			ID:          2,
			Name:        "NodeJS services handbook",
			Description: "Patterns for building nodejs backends",
			Tags:        []string{"nodejs", "backend"},
			Domain:      core.DomainEditorial,
			Category:    "guides",
		},
		{
			ID:          3,
			Name:        "Ceramic mug",
			Description: "Stoneware mug, 350ml",
			Tags:        []string{"kitchen"},
			Domain:      core.DomainProduct,
			Category:    "home",
			Vector:      []float64{0, 0, 0},
		},
	}
}

func TestRankEmptyQueryBrowse(t *testing.T) {
	engine := newTestEngine(t)
	items := testCatalog()

	for _, query := range []string{"", "   ", "\t\n"} {
		resp, err := engine.Rank(context.Background(), query, items)
		require.NoError(t, err)
		require.Len(t, resp.Results, len(items))
		assert.Empty(t, resp.Expansions)

		for i, entry := range resp.Results {
			assert.Equal(t, items[i].ID, entry.ID, "browse keeps input order")
			assert.Equal(t, 1.0, entry.Score)
			assert.Equal(t, 1.0, entry.Breakdown.Lexical)
			assert.Zero(t, entry.Breakdown.Semantic)
		}
	}
}

func TestRankLexicalMatch(t *testing.T) {
	engine := newTestEngine(t)

	resp, err := engine.Rank(context.Background(), "ceramic mug", testCatalog(),
		WithBoosters(), WithFuzzy(false))
	require.NoError(t, err)
	require.NotEmpty(t, resp.Results)

	assert.Equal(t, core.CatalogID(3), resp.Results[0].ID)
	assert.Equal(t, 1.0, resp.Results[0].Breakdown.Lexical)
}

func TestRankFuzzyExpansion(t *testing.T) {
	engine := newTestEngine(t)
	items := testCatalog()

	t.Run("misspelling reaches neighbors", func(t *testing.T) {
		resp, err := engine.Rank(context.Background(), "streems", items, WithBoosters())
		require.NoError(t, err)

		assert.Contains(t, resp.Expansions, "streams")
		require.NotEmpty(t, resp.Results)
		assert.Equal(t, core.CatalogID(1), resp.Results[0].ID)
		assert.Positive(t, resp.Results[0].Breakdown.Lexical)
	})

	t.Run("disabled fuzzy skips neighbors", func(t *testing.T) {
		resp, err := engine.Rank(context.Background(), "streems", items,
			WithBoosters(), WithFuzzy(false))
		require.NoError(t, err)

		assert.NotContains(t, resp.Expansions, "streams")
	})
}

func TestRankDefaultSynonyms(t *testing.T) {
	engine := newTestEngine(t)

	resp, err := engine.Rank(context.Background(), "js", testCatalog(),
		WithBoosters(), WithFuzzy(false))
	require.NoError(t, err)

	assert.Contains(t, resp.Expansions, "nodejs")
	require.NotEmpty(t, resp.Results)
	assert.Equal(t, core.CatalogID(2), resp.Results[0].ID)
}

func TestRankCallerSynonymsLayerOnDefaults(t *testing.T) {
	engine := newTestEngine(t)

	custom := dictionary.New()
	custom.Add("cup", []string{"mug"})

	resp, err := engine.Rank(context.Background(), "cup", testCatalog(),
		WithBoosters(), WithFuzzy(false), WithWeights(1, 0), WithSynonyms(custom))
	require.NoError(t, err)

	assert.Contains(t, resp.Expansions, "mug")
	require.NotEmpty(t, resp.Results)
	assert.Equal(t, core.CatalogID(3), resp.Results[0].ID)
}

func TestRankBoosterDominance(t *testing.T) {
	engine := newTestEngine(t)

	items := []core.Catalog{
		{
			ID:   10,
			Name: "Plain speaker",
			Tags: []string{"audio"},
		},
		{
			ID:   11,
			Name: "Popular speaker",
			Tags: []string{"audio"},
			Metrics: &core.CatalogMetrics{
				Popularity:      1,
				InventoryHealth: 1,
			},
		},
	}

	resp, err := engine.Rank(context.Background(), "speaker", items, WithFuzzy(false))
	require.NoError(t, err)
	require.Len(t, resp.Results, 2)

	assert.Equal(t, core.CatalogID(11), resp.Results[0].ID)
	assert.Greater(t, resp.Results[0].Breakdown.Booster, 0.5,
		"merchandising signal should outweigh textual ties")
	assert.Equal(t, resp.Results[0].Breakdown.Lexical, resp.Results[1].Breakdown.Lexical)
}

func TestRankCustomWeights(t *testing.T) {
	engine := newTestEngine(t)

	resp, err := engine.Rank(context.Background(), "ceramic", testCatalog(),
		WithBoosters(), WithFuzzy(false), WithWeights(1, 0))
	require.NoError(t, err)
	require.NotEmpty(t, resp.Results)

	top := resp.Results[0]
	assert.Equal(t, core.CatalogID(3), top.ID)
	assert.Equal(t, top.Breakdown.Lexical, top.Score,
		"with weights 1/0 and no boosters the score is purely lexical")
}

func TestRankDropsNonPositiveScores(t *testing.T) {
	engine := newTestEngine(t)

	// The zero vector on this item forces semantic to 0, boosters are
	// disabled, and the query shares no tokens with it.
	items := []core.Catalog{
		{
			ID:          3,
			Name:        "Ceramic mug",
			Description: "Stoneware mug",
			Tags:        []string{"kitchen"},
			Vector:      []float64{0, 0, 0},
		},
	}

	resp, err := engine.Rank(context.Background(), "gravel", items,
		WithBoosters(), WithFuzzy(false))
	require.NoError(t, err)

	assert.Empty(t, resp.Results)
}

func TestRankStableOrderOnTies(t *testing.T) {
	engine := newTestEngine(t)

	items := []core.Catalog{
		{ID: 1, Name: "alpha widget", Vector: []float64{0, 0, 0}},
		{ID: 2, Name: "alpha widget", Vector: []float64{0, 0, 0}},
		{ID: 3, Name: "alpha widget", Vector: []float64{0, 0, 0}},
	}

	resp, err := engine.Rank(context.Background(), "widget", items,
		WithBoosters(), WithFuzzy(false))
	require.NoError(t, err)
	require.Len(t, resp.Results, 3)

	for i, entry := range resp.Results {
		assert.Equal(t, items[i].ID, entry.ID)
	}
}

func TestRankCaseSensitive(t *testing.T) {
	engine := newTestEngine(t)

	items := []core.Catalog{
		{ID: 1, Name: "ACME Widget", Vector: []float64{0, 0, 0}},
	}

	t.Run("insensitive by default", func(t *testing.T) {
		resp, err := engine.Rank(context.Background(), "acme", items,
			WithBoosters(), WithFuzzy(false))
		require.NoError(t, err)
		require.Len(t, resp.Results, 1)
	})

	t.Run("sensitive respects casing", func(t *testing.T) {
		resp, err := engine.Rank(context.Background(), "acme", items,
			WithBoosters(), WithFuzzy(false), WithCaseSensitive(true))
		require.NoError(t, err)
		assert.Empty(t, resp.Results)
	})
}

func TestRankFaceting(t *testing.T) {
	engine := newTestEngine(t)
	items := testCatalog()

	resp, err := engine.Rank(context.Background(), "", items, WithFaceting(
		FacetConfig{Field: "tags", Limit: 3, PinnedValues: []string{"backend"}},
		FacetConfig{Field: "domain"},
	))
	require.NoError(t, err)
	require.Contains(t, resp.Facets, "tags")
	require.Contains(t, resp.Facets, "domain")

	tags := resp.Facets["tags"]
	require.Len(t, tags, 3, "limit truncates after sorting")
	assert.Equal(t, "backend", tags[0].Value, "pinned buckets sort first")
	assert.True(t, tags[0].Pinned)

	domains := resp.Facets["domain"]
	require.Len(t, domains, 2)
	assert.Equal(t, string(core.DomainProduct), domains[0].Value)
	assert.Equal(t, 2, domains[0].Count)
}

func TestRankNoFacetingRequested(t *testing.T) {
	engine := newTestEngine(t)

	resp, err := engine.Rank(context.Background(), "", testCatalog())
	require.NoError(t, err)
	assert.Nil(t, resp.Facets)
}

func TestRankAfterRelease(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)
	engine.Release()

	_, err = engine.Rank(context.Background(), "anything", testCatalog())
	require.ErrorIs(t, err, ErrEngineReleased)
}

func TestRankCanceledContext(t *testing.T) {
	engine := newTestEngine(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Rank(ctx, "anything", testCatalog())
	require.ErrorIs(t, err, context.Canceled)
}

func TestVocabularyCache(t *testing.T) {
	engine := newTestEngine(t)
	items := testCatalog()

	first := engine.vocabulary(items, false)
	second := engine.vocabulary(items, false)
	assert.Equal(t, &first[0], &second[0], "unchanged catalog reuses the cached vocabulary")

	items[0].Name = "Renamed kit"
	third := engine.vocabulary(items, false)
	assert.Contains(t, third, "renamed")
}
