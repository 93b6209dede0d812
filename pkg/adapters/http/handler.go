// Copyright Legalease Authors
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/leseb/legalease/pkg/chat"
	"github.com/leseb/legalease/pkg/extractor"
	"github.com/leseb/legalease/pkg/knowledge"
	"github.com/leseb/legalease/pkg/observability/logging"
	"github.com/leseb/legalease/pkg/simplifier"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// maxFormBytes caps the url-encoded bodies of the glossary and chat forms.
const maxFormBytes = 1 << 20

// Options tunes request limits.
type Options struct {
	MaxUploadBytes    int64   // cap on POST /document bodies
	DocumentRateLimit float64 // POST /document requests per second, 0 disables
	DocumentBurst     int
}

// Handler implements the HTTP adapter
type Handler struct {
	logger     *logging.Logger
	mux        *http.ServeMux
	knowledge  *knowledge.Base
	extractor  *extractor.Extractor
	simplifier simplifier.Simplifier
	responder  *chat.Responder
	maxUpload  int64
	docLimiter *rate.Limiter // nil when unlimited
}

// New creates a new HTTP handler
func New(logger *logging.Logger, kb *knowledge.Base, ext *extractor.Extractor, simp simplifier.Simplifier, opts Options) *Handler {
	if simp == nil {
		simp = simplifier.Sentences{}
	}
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 10 << 20
	}

	h := &Handler{
		logger:     logger,
		mux:        http.NewServeMux(),
		knowledge:  kb,
		extractor:  ext,
		simplifier: simp,
		responder:  chat.NewResponder(kb.Topics(), simp),
		maxUpload:  opts.MaxUploadBytes,
	}
	if opts.DocumentRateLimit > 0 {
		burst := opts.DocumentBurst
		if burst <= 0 {
			burst = 1
		}
		h.docLimiter = rate.NewLimiter(rate.Limit(opts.DocumentRateLimit), burst)
	}

	// Register routes
	h.mux.HandleFunc("GET /health", h.handleHealth)

	// Pages
	h.mux.HandleFunc("GET /{$}", h.handleIndex)
	h.mux.HandleFunc("GET /live", h.handleLive)
	h.mux.HandleFunc("GET /nextpage", h.handleNextPage)
	h.mux.HandleFunc("GET /court_updates", h.handleCourtUpdates)

	// Glossary
	h.mux.HandleFunc("GET /glossary", h.handleGlossaryPage)
	h.mux.HandleFunc("POST /glossary", h.handleGlossaryLookup)

	// Documents
	h.mux.HandleFunc("GET /document", h.handleDocumentPage)
	h.mux.HandleFunc("POST /document", h.handleDocumentUpload)
	h.mux.HandleFunc("POST /document/export", h.handleDocumentExport)

	// Chat
	h.mux.HandleFunc("GET /chatbot", h.handleChatPage)
	h.mux.HandleFunc("POST /chatbot", h.handleChat)

	return h
}

// ServeHTTP implements http.Handler
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := r.Header.Get(RequestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}
	w.Header().Set(RequestIDHeader, id)

	logger := h.logger.With("request_id", id)
	r = r.WithContext(logging.NewContext(r.Context(), logger))

	// Log request
	logger.Info("Request",
		"method", r.Method,
		"path", r.URL.Path,
		"remote_addr", r.RemoteAddr)

	// Serve
	h.mux.ServeHTTP(w, r)
}

// log returns the request-scoped logger.
func (h *Handler) log(r *http.Request) *logging.Logger {
	return logging.FromContext(r.Context(), h.logger)
}

// handleHealth handles health check requests
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// writeJSON writes v as a JSON body
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Failed to write response", "error", err)
	}
}

// writeError writes an error response
func (h *Handler) writeError(w http.ResponseWriter, status int, errType, message string) {
	h.writeJSON(w, status, map[string]any{
		"error": map[string]string{
			"type":    errType,
			"message": message,
		},
	})
}
