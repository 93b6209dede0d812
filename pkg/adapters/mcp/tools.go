// Copyright Legalease Authors
// SPDX-License-Identifier: Apache-2.0

package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/leseb/legalease/pkg/knowledge"
)

// GlossaryInput is the input schema for glossary_lookup.
type GlossaryInput struct {
	Term string `json:"term" jsonschema:"the legal term to define, e.g. bail or affidavit"`
}

// GlossaryOutput is the output schema for glossary_lookup.
type GlossaryOutput struct {
	Term       string `json:"term"`
	Found      bool   `json:"found"`
	Definition string `json:"definition,omitempty"`
}

// ChatInput is the input schema for legal_chat.
type ChatInput struct {
	Message string `json:"message" jsonschema:"a legal topic or question in plain language"`
}

// ChatOutput is the output schema for legal_chat.
type ChatOutput struct {
	Reply string `json:"reply"`
	Topic string `json:"topic,omitempty"`
}

// SimplifyInput is the input schema for simplify_text.
type SimplifyInput struct {
	Text string `json:"text" jsonschema:"the legal text to simplify"`
}

// SimplifyOutput is the output schema for simplify_text.
type SimplifyOutput struct {
	Simplified string `json:"simplified"`
}

// CourtUpdatesInput is the (empty) input schema for court_updates.
type CourtUpdatesInput struct{}

// CourtUpdatesOutput is the output schema for court_updates.
type CourtUpdatesOutput struct {
	Updates []string `json:"updates"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "glossary_lookup",
		Description: "Define a common legal term in plain language",
	}, s.handleGlossary)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "legal_chat",
		Description: "Answer a question about fundamental rights or common IPC sections",
	}, s.handleChat)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "simplify_text",
		Description: "Shorten legal text to its opening sentences",
	}, s.handleSimplify)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "court_updates",
		Description: "List the latest courtroom updates",
	}, s.handleCourtUpdates)
}

func (s *Server) handleGlossary(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input GlossaryInput,
) (*mcp.CallToolResult, GlossaryOutput, error) {
	term := knowledge.Normalize(input.Term)
	if term == "" {
		return nil, GlossaryOutput{}, fmt.Errorf("term is required")
	}

	def, ok := s.knowledge.Define(term)
	s.logger.Debug("MCP glossary lookup", "term", term, "found", ok)
	return nil, GlossaryOutput{Term: term, Found: ok, Definition: def}, nil
}

func (s *Server) handleChat(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ChatInput,
) (*mcp.CallToolResult, ChatOutput, error) {
	reply, err := s.responder.Reply(ctx, input.Message)
	if err != nil {
		return nil, ChatOutput{}, err
	}
	return nil, ChatOutput{Reply: reply.Text, Topic: reply.Topic}, nil
}

func (s *Server) handleSimplify(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SimplifyInput,
) (*mcp.CallToolResult, SimplifyOutput, error) {
	out, err := s.simplifier.Simplify(ctx, input.Text)
	if err != nil {
		return nil, SimplifyOutput{}, fmt.Errorf("simplify text: %w", err)
	}
	return nil, SimplifyOutput{Simplified: out}, nil
}

func (s *Server) handleCourtUpdates(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ CourtUpdatesInput,
) (*mcp.CallToolResult, CourtUpdatesOutput, error) {
	return nil, CourtUpdatesOutput{Updates: s.knowledge.CourtUpdates()}, nil
}
