// Copyright Legalease Authors
// SPDX-License-Identifier: Apache-2.0

// Package chat answers free-text legal questions from pre-planned topic
// summaries, falling back to a simplified echo of the question.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/leseb/legalease/pkg/knowledge"
	"github.com/leseb/legalease/pkg/simplifier"
)

// Prompt is the reply to an empty message.
const Prompt = "Please enter a legal topic or question."

// FallbackPrefix precedes the simplified question when no topic matches.
const FallbackPrefix = "AI Summary: "

// Reply is the outcome of one chat turn.
type Reply struct {
	Text  string
	Topic string // matched keyword, empty for the prompt and the fallback
}

// Responder matches messages against an ordered topic list.
type Responder struct {
	topics     []knowledge.Topic
	simplifier simplifier.Simplifier
}

// NewResponder builds a Responder. Topics are tried in the given order and
// the first keyword contained in a message wins.
func NewResponder(topics []knowledge.Topic, s simplifier.Simplifier) *Responder {
	if s == nil {
		s = simplifier.Sentences{}
	}
	return &Responder{
		topics:     append([]knowledge.Topic(nil), topics...),
		simplifier: s,
	}
}

// Respond returns the reply text for message.
func (r *Responder) Respond(ctx context.Context, message string) (string, error) {
	reply, err := r.Reply(ctx, message)
	if err != nil {
		return "", err
	}
	return reply.Text, nil
}

// Reply is Respond with the matched topic attached.
func (r *Responder) Reply(ctx context.Context, message string) (Reply, error) {
	if strings.TrimSpace(message) == "" {
		return Reply{Text: Prompt}, nil
	}

	lower := knowledge.Normalize(message)
	for _, t := range r.topics {
		if strings.Contains(lower, t.Keyword) {
			return Reply{Text: t.Summary, Topic: t.Keyword}, nil
		}
	}

	simplified, err := r.simplifier.Simplify(ctx, message)
	if err != nil {
		return Reply{}, fmt.Errorf("simplify chat message: %w", err)
	}
	return Reply{Text: FallbackPrefix + simplified}, nil
}
