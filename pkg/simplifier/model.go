// Copyright Legalease Authors
// SPDX-License-Identifier: Apache-2.0

package simplifier

import (
	"context"
	"fmt"
	"strings"
)

// Defaults for the model strategy.
const (
	DefaultChunkSize = 500
	DefaultMinTokens = 30
	DefaultMaxTokens = 100
)

// Completer produces a bounded-length summary of one chunk of text.
type Completer interface {
	Summarize(ctx context.Context, chunk string, minTokens, maxTokens int) (string, error)
}

// ModelOptions configures Model. Zero values select the defaults.
type ModelOptions struct {
	ChunkSize int // characters (runes) per chunk
	MinTokens int
	MaxTokens int
}

// Model summarises text chunk by chunk with an abstractive model.
type Model struct {
	completer Completer
	opts      ModelOptions
}

// NewModel returns a Model backed by c.
func NewModel(c Completer, opts ModelOptions) *Model {
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = DefaultChunkSize
	}
	if opts.MinTokens <= 0 {
		opts.MinTokens = DefaultMinTokens
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultMaxTokens
	}
	return &Model{completer: c, opts: opts}
}

// Simplify implements Simplifier. Each chunk summary is written as returned,
// followed by a newline.
func (m *Model) Simplify(ctx context.Context, text string) (string, error) {
	var sb strings.Builder
	for i, chunk := range Chunks(text, m.opts.ChunkSize) {
		summary, err := m.completer.Summarize(ctx, chunk, m.opts.MinTokens, m.opts.MaxTokens)
		if err != nil {
			return "", fmt.Errorf("summarize chunk %d: %w", i, err)
		}
		sb.WriteString(summary)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// Chunks splits text into consecutive pieces of at most size runes.
// Empty text yields no chunks.
func Chunks(text string, size int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	chunks := make([]string, 0, (len(runes)+size-1)/size)
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
