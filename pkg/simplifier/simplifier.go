// Copyright Legalease Authors
// SPDX-License-Identifier: Apache-2.0

// Package simplifier shortens legal text for lay readers.
//
// The default strategy keeps the first three sentences. A model-backed
// strategy that summarises fixed-size chunks through an OpenAI-compatible
// endpoint can be selected instead; both satisfy Simplifier.
package simplifier

import (
	"context"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/leseb/legalease/pkg/provider"
)

// Simplifier turns arbitrary text into a shorter rendition.
type Simplifier interface {
	Simplify(ctx context.Context, text string) (string, error)
}

// Strategies holds the available simplifiers, keyed by configuration name.
var Strategies = provider.NewRegistry[Simplifier]("simplifier")

func init() {
	Strategies.Register("sentences", func(_ context.Context, _ map[string]string) (Simplifier, error) {
		return Sentences{}, nil
	})
	Strategies.Register("model", func(_ context.Context, params map[string]string) (Simplifier, error) {
		client := NewOpenAICompleter(params["endpoint"], params["api_key"], params["model"])
		return NewModel(client, ModelOptions{
			ChunkSize: atoi(params["chunk_size"]),
			MinTokens: atoi(params["min_tokens"]),
			MaxTokens: atoi(params["max_tokens"]),
		}), nil
	})
}

// SentenceLimit is how many sentences Sentences keeps.
const SentenceLimit = 3

// Sentences keeps the leading sentences of a text. It is pure and never fails.
type Sentences struct{}

// Simplify implements Simplifier.
func (Sentences) Simplify(_ context.Context, text string) (string, error) {
	return FirstSentences(text, SentenceLimit), nil
}

// FirstSentences trims text, splits it wherever whitespace follows '.', '!'
// or '?', and joins the first n pieces with single spaces. Text without such
// a boundary comes back trimmed and otherwise unchanged.
func FirstSentences(text string, n int) string {
	text = strings.TrimSpace(text)
	if n <= 0 {
		return ""
	}

	pieces := SplitSentences(text)
	if len(pieces) <= 1 {
		return text
	}
	if len(pieces) > n {
		pieces = pieces[:n]
	}
	return strings.Join(pieces, " ")
}

// SplitSentences splits text at every run of whitespace that directly follows
// a sentence terminator. The terminator stays with the preceding piece and
// the whitespace is dropped.
func SplitSentences(text string) []string {
	var (
		pieces []string
		start  int
		prev   rune
	)
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsSpace(r) && isTerminator(prev) {
			pieces = append(pieces, text[start:i])
			j := i
			for j < len(text) {
				r2, s2 := utf8.DecodeRuneInString(text[j:])
				if !unicode.IsSpace(r2) {
					break
				}
				j += s2
			}
			start, i, prev = j, j, 0
			continue
		}
		prev = r
		i += size
	}
	return append(pieces, text[start:])
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
