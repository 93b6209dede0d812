// Copyright Legalease Authors
// SPDX-License-Identifier: Apache-2.0

package simplifier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentences_Simplify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"keeps first three", "One. Two. Three. Four.", "One. Two. Three."},
		{"no punctuation", "No punctuation here", "No punctuation here"},
		{"no boundary is trimmed", "  \tNo punctuation here \n", "No punctuation here"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"fewer than three", "Bail granted. Next date fixed.", "Bail granted. Next date fixed."},
		{"mixed terminators", "Stop! Who goes there? A witness. Sworn in.", "Stop! Who goes there? A witness."},
		{"runs of whitespace collapse", "First.   Second.\n\nThird.\tFourth.", "First. Second. Third."},
		{"terminator without space", "Section 3.2 applies. Bail 5.000 set. Done. Extra.", "Section 3.2 applies. Bail 5.000 set. Done."},
		{"abbreviations split", "See U.S.A. law. Then more. End.", "See U.S.A. law. Then more."},
		{"trailing terminator", "Only one sentence.", "Only one sentence."},
		{"unicode text", "Article 14–18 applies. Équité prevails. Done. More.", "Article 14–18 applies. Équité prevails. Done."},
	}

	s := Sentences{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Simplify(context.Background(), tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitSentences(t *testing.T) {
	assert.Equal(t, []string{"A.", "B?", "C"}, SplitSentences("A. B? C"))
	assert.Equal(t, []string{"no split"}, SplitSentences("no split"))
	assert.Equal(t, []string{""}, SplitSentences(""))
}

func TestFirstSentences_Limit(t *testing.T) {
	assert.Equal(t, "A. B.", FirstSentences("A. B. C.", 2))
	assert.Equal(t, "", FirstSentences("A. B.", 0))
}

func TestStrategies(t *testing.T) {
	assert.Equal(t, []string{"model", "sentences"}, Strategies.Names())

	s, err := Strategies.Build(context.Background(), "sentences", nil)
	require.NoError(t, err)
	assert.IsType(t, Sentences{}, s)

	m, err := Strategies.Build(context.Background(), "model", map[string]string{
		"endpoint":   "http://localhost:11434/v1",
		"model":      "llama3",
		"chunk_size": "250",
	})
	require.NoError(t, err)
	model, ok := m.(*Model)
	require.True(t, ok)
	assert.Equal(t, 250, model.opts.ChunkSize)
	assert.Equal(t, DefaultMinTokens, model.opts.MinTokens)
	assert.Equal(t, DefaultMaxTokens, model.opts.MaxTokens)
}
