// Copyright Legalease Authors
// SPDX-License-Identifier: Apache-2.0

package http

import "net/http"

type chatPage struct {
	Page     string  `json:"page"`
	Response *string `json:"chat_response"`
	Topic    string  `json:"topic,omitempty"`
}

// handleChatPage handles GET /chatbot
func (h *Handler) handleChatPage(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, chatPage{Page: "chatbot"})
}

// handleChat handles POST /chatbot
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		h.log(r).Error("Failed to parse chat form", "error", err)
		h.writeFormError(w, err)
		return
	}

	reply, err := h.responder.Reply(r.Context(), r.PostFormValue("chat_input"))
	if err != nil {
		h.log(r).Error("Failed to answer chat message", "error", err)
		h.writeError(w, http.StatusBadGateway, "simplification_failed", "Could not produce a summary for this question")
		return
	}

	h.log(r).Info("Chat answered", "topic", reply.Topic)
	h.writeJSON(w, http.StatusOK, chatPage{Page: "chatbot", Response: &reply.Text, Topic: reply.Topic})
}
