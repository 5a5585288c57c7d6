// Package ai wraps the Gemini client behind a small generator interface
// so handlers can be tested without a live model.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

var (
	// ErrRateLimited is returned when the upstream model rejects the
	// request with HTTP 429.
	ErrRateLimited = errors.New("ai: rate limit exceeded")
	// ErrQuotaExceeded is returned on HTTP 402 (billing/quota).
	ErrQuotaExceeded = errors.New("ai: quota exceeded")
)

// Generator produces a single text completion from a system/user prompt pair.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Client is the Gemini-backed Generator.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient builds a Gemini client for the given model.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY not set")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to init AI client: %w", err)
	}
	return &Client{client: client, model: model}, nil
}

// Generate sends the prompt pair and returns the concatenated text parts
// of the first candidate.
func (c *Client) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(userPrompt), cfg)
	if err != nil {
		return "", classify(err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty response from AI")
	}

	rawText := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			rawText += part.Text
		}
	}
	return rawText, nil
}

// classify maps upstream HTTP status codes onto the package sentinels so
// handlers can surface rate limiting and quota exhaustion distinctly.
func classify(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 429:
			return fmt.Errorf("%w: %s", ErrRateLimited, apiErr.Message)
		case 402:
			return fmt.Errorf("%w: %s", ErrQuotaExceeded, apiErr.Message)
		}
	}
	return err
}

// StripFences removes a markdown code fence wrapper from the model
// output. Gemini loves adding ```json ... ``` around JSON.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
