// Copyright Legalease Authors
// SPDX-License-Identifier: Apache-2.0

package simplifier

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

const summarizePrompt = "You simplify legal text for non-lawyers. Summarize the user's text in plain language " +
	"using between %d and %d tokens. Reply with the summary only."

// OpenAICompleter implements Completer with any OpenAI-compatible chat
// completions backend (OpenAI, vLLM, Ollama).
type OpenAICompleter struct {
	client openai.Client
	model  string
}

// NewOpenAICompleter creates a completer. An empty apiKey is replaced by a
// placeholder because local backends accept any key.
func NewOpenAICompleter(baseURL, apiKey, model string) *OpenAICompleter {
	opts := []option.RequestOption{}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	} else {
		opts = append(opts, option.WithAPIKey("dummy"))
	}

	return &OpenAICompleter{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

// Summarize implements Completer.
func (c *OpenAICompleter) Summarize(ctx context.Context, chunk string, minTokens, maxTokens int) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(fmt.Sprintf(summarizePrompt, minTokens, maxTokens)),
			openai.UserMessage(chunk),
		},
		MaxTokens:   openai.Int(int64(maxTokens)),
		Temperature: openai.Float(0),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
