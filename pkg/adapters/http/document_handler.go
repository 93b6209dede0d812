// Copyright Legalease Authors
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/leseb/legalease/pkg/export"
	"github.com/leseb/legalease/pkg/extractor"
)

// EmptyDocumentMessage is shown when neither a file nor text was submitted.
const EmptyDocumentMessage = "Upload a .txt, .docx or .pdf file, or paste some text, to see a simplified version."

// UnsupportedNotice accompanies results for files without a decoder.
const UnsupportedNotice = "Only .txt, .docx and .pdf files can be read."

type documentResult struct {
	Original   string `json:"original,omitempty"`
	Simplified string `json:"simplified,omitempty"`
	Filename   string `json:"filename,omitempty"`
	Notice     string `json:"notice,omitempty"`
}

type documentPage struct {
	Page    string         `json:"page"`
	Result  documentResult `json:"result"`
	Message string         `json:"message,omitempty"`
}

// handleDocumentPage handles GET /document
func (h *Handler) handleDocumentPage(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, documentPage{Page: "document"})
}

// handleDocumentUpload handles POST /document
func (h *Handler) handleDocumentUpload(w http.ResponseWriter, r *http.Request) {
	if h.docLimiter != nil && !h.docLimiter.Allow() {
		w.Header().Set("Retry-After", "1")
		h.writeError(w, http.StatusTooManyRequests, "rate_limited", "Too many documents, try again shortly")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	if err := h.parseUploadForm(r); err != nil {
		h.log(r).Error("Failed to parse document form", "error", err)
		h.writeFormError(w, err)
		return
	}

	resp := documentPage{Page: "document"}
	var raw string

	file, header, err := r.FormFile("document")
	switch {
	case err == nil:
		defer file.Close()

		content, err := io.ReadAll(file)
		if err != nil {
			h.log(r).Error("Failed to read uploaded file", "error", err)
			h.writeError(w, http.StatusInternalServerError, "read_error", "Failed to read file content")
			return
		}

		text, err := h.extractor.Extract(r.Context(), header.Filename, content)
		if err != nil {
			h.writeExtractError(w, r, header.Filename, err)
			return
		}
		h.log(r).Info("Document extracted", "filename", header.Filename, "bytes", len(content), "chars", len(text))

		if text == extractor.Unsupported {
			resp.Result = documentResult{
				Original:   text,
				Simplified: text,
				Filename:   header.Filename,
				Notice:     UnsupportedNotice,
			}
			h.writeJSON(w, http.StatusOK, resp)
			return
		}
		raw = text
		resp.Result.Filename = header.Filename
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		// no file part, or a url-encoded body
		raw = r.PostFormValue("plain_text")
	default:
		h.log(r).Error("Failed to get file from form", "error", err)
		h.writeError(w, http.StatusBadRequest, "invalid_request", "Failed to read the uploaded file")
		return
	}

	if strings.TrimSpace(raw) == "" {
		resp.Result = documentResult{}
		resp.Message = EmptyDocumentMessage
		h.writeJSON(w, http.StatusOK, resp)
		return
	}

	simplified, err := h.simplifier.Simplify(r.Context(), raw)
	if err != nil {
		h.log(r).Error("Failed to simplify document", "error", err)
		h.writeError(w, http.StatusBadGateway, "simplification_failed", "Could not simplify the document")
		return
	}

	resp.Result.Original = raw
	resp.Result.Simplified = simplified
	h.writeJSON(w, http.StatusOK, resp)
}

// handleDocumentExport handles POST /document/export
func (h *Handler) handleDocumentExport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	if err := h.parseUploadForm(r); err != nil {
		h.log(r).Error("Failed to parse export form", "error", err)
		h.writeFormError(w, err)
		return
	}

	text := r.PostFormValue("text")
	if strings.TrimSpace(text) == "" {
		h.writeError(w, http.StatusBadRequest, "invalid_request", "Text is required")
		return
	}

	format, err := export.ParseFormat(r.PostFormValue("format"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	file, err := export.Render(format, "Simplified document", text)
	if err != nil {
		h.log(r).Error("Failed to render export", "format", format, "error", err)
		h.writeError(w, http.StatusInternalServerError, "export_failed", "Failed to render the download")
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": file.Name}))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file.Content); err != nil {
		h.log(r).Error("Failed to write export", "error", err)
	}
}

// parseUploadForm accepts both multipart and url-encoded bodies.
func (h *Handler) parseUploadForm(r *http.Request) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		return r.ParseMultipartForm(h.maxUpload)
	}
	return r.ParseForm()
}

// writeFormError maps body parsing failures to a status.
func (h *Handler) writeFormError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		h.writeError(w, http.StatusRequestEntityTooLarge, "request_too_large",
			fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit))
		return
	}
	h.writeError(w, http.StatusBadRequest, "invalid_request", "Failed to parse form")
}

func (h *Handler) writeExtractError(w http.ResponseWriter, r *http.Request, filename string, err error) {
	var parseErr *extractor.DocumentParseError
	if errors.As(err, &parseErr) {
		h.log(r).Warn("Unreadable document", "filename", filename, "format", parseErr.Format, "error", err)
		h.writeError(w, http.StatusUnprocessableEntity, "extraction_failed",
			fmt.Sprintf("Could not read %s: the file is corrupt or is not a valid %s document", filename, strings.ToUpper(parseErr.Format)))
		return
	}
	if errors.Is(err, extractor.ErrDocumentParse) {
		h.log(r).Warn("Unreadable document", "filename", filename, "error", err)
		h.writeError(w, http.StatusUnprocessableEntity, "extraction_failed",
			fmt.Sprintf("Could not read %s", filename))
		return
	}
	h.log(r).Error("Failed to extract document", "filename", filename, "error", err)
	h.writeError(w, http.StatusInternalServerError, "extraction_error", "Failed to extract document text")
}
