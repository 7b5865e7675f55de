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


package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vantry/shopsearch/core"
	"github.com/vantry/shopsearch/search"
	"github.com/vantry/shopsearch/storage"
)

// SearchPayload is the transport shape of one search response.
type SearchPayload struct {
	Query      string                        `json:"query"`
	Total      int                           `json:"total"`
	Items      []SearchResultView            `json:"items"`
	Facets     map[string][]core.FacetBucket `json:"facets"`
	Expansions []string                      `json:"expansions"`
}

// Controller bridges transport handlers and the ranking engine.
type Controller struct {
	repository storage.CatalogRepository
	engine     *search.Engine
	faceting   []search.FacetConfig
	logger     *slog.Logger
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller) error

// WithFaceting sets the facet configuration applied to every search.
func WithFaceting(configs ...search.FacetConfig) ControllerOption {
	return func(c *Controller) error {
		c.faceting = configs
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// NewController creates a search controller.
func NewController(repository storage.CatalogRepository, engine *search.Engine, opts ...ControllerOption) (*Controller, error) {
	if repository == nil {
		return nil, ErrNilRepository
	}
	if engine == nil {
		return nil, ErrNilEngine
	}

	c := &Controller{
		repository: repository,
		engine:     engine,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Search ranks the current catalog against the query.
func (c *Controller) Search(ctx context.Context, query string) (*SearchPayload, error) {
	catalogs, err := c.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalogs: %w", err)
	}

	var rankOpts []search.RankOption
	if len(c.faceting) > 0 {
		rankOpts = append(rankOpts, search.WithFaceting(c.faceting...))
	}

	response, err := c.engine.Rank(ctx, query, catalogs, rankOpts...)
	if err != nil {
		return nil, fmt.Errorf("rank query: %w", err)
	}

	c.logger.Debug("search served",
		"query", query,
		"catalogs", len(catalogs),
		"results", len(response.Results),
	)

	return &SearchPayload{
		Query:      query,
		Total:      len(response.Results),
		Items:      FormatSearchResults(response.Results),
		Facets:     response.Facets,
		Expansions: response.Expansions,
	}, nil
}

// Autocomplete suggests catalog entries for a partial query.
func (c *Controller) Autocomplete(ctx context.Context, query string) ([]Suggestion, error) {
	catalogs, err := c.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalogs: %w", err)
	}
	return BuildAutocompleteOptions(query, catalogs), nil
}
