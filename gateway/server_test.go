package gateway

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantry/shopsearch/core"
	"github.com/vantry/shopsearch/index"
	"github.com/vantry/shopsearch/pipeline"
	"github.com/vantry/shopsearch/reindex"
	"github.com/vantry/shopsearch/search"
	"github.com/vantry/shopsearch/storage"
)

func newTestServer(t *testing.T) (*Server, *pipeline.SnapshotStore) {
	t.Helper()

	repo := storage.NewMemoryRepository(
		core.Catalog{ID: 1, Name: "Espresso machine", Description: "Countertop espresso machine", Tags: []string{"coffee"}, Category: "kitchen", Domain: core.DomainProduct},
		core.Catalog{ID: 2, Name: "Pour-over kettle", Description: "Gooseneck kettle", Tags: []string{"coffee"}, Category: "kitchen", Domain: core.DomainProduct},
		core.Catalog{ID: 3, Name: "Brewing guide", Description: "How to brew espresso at home", Tags: []string{"coffee", "guide"}, Category: "guides", Domain: core.DomainEditorial},
	)
	t.Cleanup(func() { repo.Close() })

	engine, err := search.NewEngine()
	require.NoError(t, err)
	t.Cleanup(engine.Release)

	controller, err := NewController(repo, engine,
		WithFaceting(search.FacetConfig{Field: "category", Limit: 5}))
	require.NoError(t, err)

	store := pipeline.NewSnapshotStore()
	store.Apply(core.CatalogEvent{ID: 1, Domain: core.DomainProduct, Name: "Espresso machine"})

	job, err := reindex.NewJob(store, pipeline.NewDocumentBuilder(nil), index.NewInMemoryWriter(),
		[]string{"en-US"}, []string{"USD"})
	require.NoError(t, err)

	return NewServer(controller, job, nil), store
}

func TestHealthEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestSearchEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search?q=espresso", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var payload SearchPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))

	assert.Equal(t, "espresso", payload.Query)
	require.NotZero(t, payload.Total)
	assert.Len(t, payload.Items, payload.Total)
	assert.Contains(t, payload.Facets, "category")
}

func TestSearchEndpointEmptyQueryBrowses(t *testing.T) {
	server, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var payload SearchPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, 3, payload.Total, "empty query returns the whole catalog")
}

func TestAutocompleteEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search/autocomplete?q=kettle", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var suggestions []Suggestion
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &suggestions))
	require.Len(t, suggestions, 1)
	assert.Equal(t, "Pour-over kettle", suggestions[0].Label)
}

func TestReindexEndpoints(t *testing.T) {
	server, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/reindex", nil))
	require.Equal(t, http.StatusAccepted, rec.Code)

	// The job runs in the background; poll the status endpoint.
	deadline := time.After(2 * time.Second)
	for {
		rec = httptest.NewRecorder()
		server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reindex/status", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var status struct {
			State     string `json:"state"`
			Processed int    `json:"processed"`
			Total     int    `json:"total"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
		if status.State == string(reindex.StateCompleted) {
			assert.Equal(t, 1, status.Total)
			assert.Equal(t, status.Total, status.Processed)
			break
		}

		select {
		case <-deadline:
			t.Fatalf("reindex did not complete, last state %q", status.State)
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestReindexBadBatchSize(t *testing.T) {
	server, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/reindex?batchSize=zero", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestControllerNilDependencies(t *testing.T) {
	engine, err := search.NewEngine()
	require.NoError(t, err)
	defer engine.Release()

	_, err = NewController(nil, engine)
	require.ErrorIs(t, err, ErrNilRepository)

	repo := storage.NewMemoryRepository()
	defer repo.Close()
	_, err = NewController(repo, nil)
	require.ErrorIs(t, err, ErrNilEngine)
}
