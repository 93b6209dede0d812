// Copyright Legalease Authors
// SPDX-License-Identifier: Apache-2.0

package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const uriScheme = "legalease://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "court_updates",
		Name:        "court_updates",
		Description: "Courtroom updates feed",
		MIMEType:    "application/json",
	}, s.handleCourtUpdatesResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "topics",
		Name:        "topics",
		Description: "Keywords the legal chat answers from prepared summaries",
		MIMEType:    "application/json",
	}, s.handleTopicsResource)
}

func (s *Server) handleCourtUpdatesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, s.knowledge.CourtUpdates())
}

func (s *Server) handleTopicsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	topics := s.knowledge.Topics()
	keywords := make([]string, len(topics))
	for i, t := range topics {
		keywords[i] = t.Keyword
	}
	return jsonResource(req.Params.URI, keywords)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
