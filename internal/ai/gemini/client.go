// Package gemini implements the CV review assistant on the Google GenAI
// Gemini backend.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"careerhub/internal/ai"
)

const defaultModel = "gemini-2.5-flash"

type Client struct {
	client    *genai.Client
	modelName string
}

// NewClient creates a Gemini-backed assistant.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	return &Client{client: client, modelName: model}, nil
}

// Review sends the career-coach prompt to Gemini and returns the joined
// text of the response candidates.
func (c *Client) Review(ctx context.Context, cvText, jobDescription string) (string, error) {
	prompt := ai.BuildReviewPrompt(cvText, jobDescription)

	resp, err := c.client.Models.GenerateContent(ctx, c.modelName, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var b strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(text)
		}
	}

	output := strings.TrimSpace(b.String())
	if output == "" {
		return "", errors.New("gemini api returned empty response")
	}
	return output, nil
}
