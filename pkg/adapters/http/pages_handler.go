// Copyright Legalease Authors
// SPDX-License-Identifier: Apache-2.0

package http

import "net/http"

// page is the rendering context of a static page.
type page struct {
	Page string `json:"page"`
}

type livePage struct {
	Page       string `json:"page"`
	UpdatesURL string `json:"updates_url"`
}

// handleIndex handles GET /
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, page{Page: "index"})
}

// handleNextPage handles GET /nextpage
func (h *Handler) handleNextPage(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, page{Page: "nextpage"})
}

// handleLive handles GET /live. The page polls the court updates feed.
func (h *Handler) handleLive(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, livePage{Page: "live", UpdatesURL: "/court_updates"})
}

// handleCourtUpdates handles GET /court_updates
func (h *Handler) handleCourtUpdates(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.knowledge.CourtUpdates())
}
