// Copyright Legalease Authors
// SPDX-License-Identifier: Apache-2.0

package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leseb/legalease/pkg/knowledge"
	"github.com/leseb/legalease/pkg/simplifier"
)

type failingSimplifier struct{ err error }

func (f failingSimplifier) Simplify(context.Context, string) (string, error) { return "", f.err }

func summaryFor(t *testing.T, b *knowledge.Base, keyword string) string {
	t.Helper()
	for _, topic := range b.Topics() {
		if topic.Keyword == keyword {
			return topic.Summary
		}
	}
	t.Fatalf("no topic %q", keyword)
	return ""
}

func TestRespond_TopicMatch(t *testing.T) {
	b := knowledge.Default()
	r := NewResponder(b.Topics(), simplifier.Sentences{})
	section302 := summaryFor(t, b, "ipc section 302")

	for _, msg := range []string{
		"ipc section 302",
		"What does IPC Section 302 say?",
		"tell me about ipc SECTION 302 please. and more. and more.",
	} {
		got, err := r.Respond(context.Background(), msg)
		require.NoError(t, err)
		assert.Equal(t, section302, got, "message %q", msg)
	}
}

func TestRespond_FirstMatchWins(t *testing.T) {
	b := knowledge.Default()
	r := NewResponder(b.Topics(), nil)

	// both keywords present; habeas corpus is earlier in the table
	reply, err := r.Reply(context.Background(), "IPC Section 420 versus Habeas Corpus")
	require.NoError(t, err)
	assert.Equal(t, "habeas corpus", reply.Topic)
	assert.Equal(t, summaryFor(t, b, "habeas corpus"), reply.Text)
}

func TestRespond_OrderIsTableOrder(t *testing.T) {
	topics := []knowledge.Topic{
		{Keyword: "section", Summary: "generic"},
		{Keyword: "ipc section 302", Summary: "specific"},
	}
	got, err := NewResponder(topics, nil).Respond(context.Background(), "ipc section 302")
	require.NoError(t, err)
	assert.Equal(t, "generic", got)
}

func TestRespond_Fallback(t *testing.T) {
	r := NewResponder(knowledge.Default().Topics(), simplifier.Sentences{})

	got, err := r.Respond(context.Background(), "  What is a tort? Is it a crime? Who decides? Why.  ")
	require.NoError(t, err)
	assert.Equal(t, "AI Summary: What is a tort? Is it a crime? Who decides?", got)

	got, err = r.Respond(context.Background(), "contract law")
	require.NoError(t, err)
	assert.Equal(t, "AI Summary: contract law", got)
}

func TestRespond_Empty(t *testing.T) {
	r := NewResponder(knowledge.Default().Topics(), nil)
	for _, msg := range []string{"", "   ", "\n\t"} {
		got, err := r.Respond(context.Background(), msg)
		require.NoError(t, err)
		assert.Equal(t, Prompt, got)
	}
}

func TestRespond_SimplifierError(t *testing.T) {
	cause := errors.New("model offline")
	r := NewResponder(nil, failingSimplifier{err: cause})

	_, err := r.Respond(context.Background(), "anything")
	assert.ErrorIs(t, err, cause)
}
