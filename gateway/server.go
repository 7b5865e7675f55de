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
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/vantry/shopsearch/reindex"
)

// Server holds dependencies for the HTTP handlers.
type Server struct {
	controller *Controller
	job        *reindex.Job
	router     *chi.Mux
	logger     *slog.Logger
}

// NewServer creates an HTTP server with all routes configured. The reindex
// job may be nil, in which case the reindex endpoints are not registered.
func NewServer(controller *Controller, job *reindex.Job, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		controller: controller,
		job:        job,
		router:     chi.NewRouter(),
		logger:     logger,
	}

	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)
	s.router.Get("/search", s.handleSearch)
	s.router.Get("/search/autocomplete", s.handleAutocomplete)

	if s.job != nil {
		s.router.Post("/reindex", s.handleStartReindex)
		s.router.Get("/reindex/status", s.handleReindexStatus)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	payload, err := s.controller.Search(r.Context(), query)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleAutocomplete(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	suggestions, err := s.controller.Autocomplete(r.Context(), query)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, suggestions)
}

// handleStartReindex kicks off a full reindex in the background and returns
// immediately. Progress and failures are visible on the status endpoint.
func (s *Server) handleStartReindex(w http.ResponseWriter, r *http.Request) {
	batchSize := reindex.DefaultBatchSize
	if raw := r.URL.Query().Get("batchSize"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			s.writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": "batchSize must be a positive integer",
			})
			return
		}
		batchSize = parsed
	}

	go func() {
		if err := s.job.Start(context.Background(), batchSize); err != nil {
			s.logger.Error("background reindex failed", "error", err)
		}
	}()

	s.writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

func (s *Server) handleReindexStatus(w http.ResponseWriter, r *http.Request) {
	status := s.job.Status()
	s.writeJSON(w, http.StatusOK, map[string]any{
		"state":     string(status.State),
		"processed": status.Processed,
		"total":     status.Total,
		"error":     status.Error,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.logger.Error("request failed", "error", err)
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
