// Copyright Legalease Authors
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"

	"github.com/leseb/legalease/pkg/knowledge"
)

type glossaryPage struct {
	Page       string  `json:"page"`
	Term       *string `json:"glossary_term"`
	Definition *string `json:"glossary_def"`
}

// handleGlossaryPage handles GET /glossary
func (h *Handler) handleGlossaryPage(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, glossaryPage{Page: "glossary"})
}

// handleGlossaryLookup handles POST /glossary
func (h *Handler) handleGlossaryLookup(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		h.log(r).Error("Failed to parse glossary form", "error", err)
		h.writeFormError(w, err)
		return
	}

	resp := glossaryPage{Page: "glossary"}
	term := knowledge.Normalize(r.PostFormValue("legal_term"))
	if term != "" {
		resp.Term = &term
		if def, ok := h.knowledge.Define(term); ok {
			resp.Definition = &def
		}
	}

	h.log(r).Info("Glossary lookup", "term", term, "found", resp.Definition != nil)
	h.writeJSON(w, http.StatusOK, resp)
}
