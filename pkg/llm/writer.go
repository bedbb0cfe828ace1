// Package llm wraps an OpenAI-compatible service behind the two text
// transforms the engine needs: summaries for freshly collected articles and
// full editorial rewrites. Both calls may fail and callers treat failures as
// recoverable per-item conditions.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/umputun/newswatch/pkg/config"
)

// Writer calls the LLM for summaries and rewrites
type Writer struct {
	client *openai.Client
	config config.LLMConfig
}

// NewWriter creates an LLM writer from configuration
func NewWriter(cfg config.LLMConfig) *Writer {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	return &Writer{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}
}

const rewritePrompt = `You are a professional news editor. Rewrite the text below following these guidelines:

1. Fix errors: grammar, spelling, punctuation and agreement
2. Improve clarity: make the text clearer and more direct
3. Keep the journalistic tone: professional, impartial and informative
4. Preserve facts: never invent or alter factual information
5. Improve structure: organize paragraphs logically
6. Remove redundancy: cut unnecessary repetition
7. Keep a similar length: do not shorten or stretch the text much

TITLE: %s

ORIGINAL TEXT:
%s

IMPORTANT: return ONLY the rewritten text, with no extra explanations, comments or meta information.`

const summaryPrompt = `Write a concise summary (2-3 sentences at most) of the following news article:

TITLE: %s

CONTENT:
%s

Return ONLY the summary, without prefixes like "Summary:" or any other explanation.`

// Rewrite produces an edited version of the article text
func (w *Writer) Rewrite(ctx context.Context, title, content string) (string, error) {
	text, err := w.complete(ctx, fmt.Sprintf(rewritePrompt, title, content))
	if err != nil {
		return "", fmt.Errorf("rewrite %q: %w", title, err)
	}
	return text, nil
}

// Summarize produces a short summary of the article text. Only the first
// SummaryInputLimit characters of content are sent.
func (w *Writer) Summarize(ctx context.Context, title, content string) (string, error) {
	if limit := w.config.SummaryInputLimit; limit > 0 && len(content) > limit {
		content = content[:limit]
	}

	text, err := w.complete(ctx, fmt.Sprintf(summaryPrompt, title, content))
	if err != nil {
		return "", fmt.Errorf("summarize %q: %w", title, err)
	}
	return text, nil
}

// complete runs one chat completion and returns the trimmed first choice
func (w *Writer) complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, w.config.Timeout)
	defer cancel()

	resp, err := w.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       w.config.Model,
		Temperature: float32(w.config.Temperature),
		MaxTokens:   w.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from llm")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("blank completion from llm")
	}
	return text, nil
}
