// Copyright Legalease Authors
// SPDX-License-Identifier: Apache-2.0

// Package mcp exposes the legal assistant as Model Context Protocol tools so
// that AI clients can look up terms, ask questions and simplify text.
package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/leseb/legalease/pkg/chat"
	"github.com/leseb/legalease/pkg/knowledge"
	"github.com/leseb/legalease/pkg/observability/logging"
	"github.com/leseb/legalease/pkg/simplifier"
)

// ErrMissingKnowledge is returned when no knowledge base is provided.
var ErrMissingKnowledge = errors.New("mcp: knowledge base is required")

// Server is the MCP server for the assistant.
type Server struct {
	knowledge  *knowledge.Base
	simplifier simplifier.Simplifier
	responder  *chat.Responder
	logger     *logging.Logger
	server     *mcp.Server
}

// NewServer creates an MCP server. A nil simplifier selects the sentence
// simplifier; a nil logger discards output.
func NewServer(kb *knowledge.Base, simp simplifier.Simplifier, logger *logging.Logger, version string) (*Server, error) {
	if kb == nil {
		return nil, ErrMissingKnowledge
	}
	if simp == nil {
		simp = simplifier.Sentences{}
	}
	if logger == nil {
		logger = logging.Discard()
	}

	impl := &mcp.Implementation{
		Name:    "legalease",
		Version: version,
	}

	s := &Server{
		knowledge:  kb,
		simplifier: simp,
		responder:  chat.NewResponder(kb.Topics(), simp),
		logger:     logger,
		server:     mcp.NewServer(impl, nil),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run serves over stdio until ctx is cancelled or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
