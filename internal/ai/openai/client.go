// Package openai implements the CV review assistant on top of the
// OpenAI-compatible chat completions API (OpenAI and Groq endpoints).
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"careerhub/internal/ai"
	phttp "careerhub/pkg/http"
)

const (
	openAIEndpoint = "https://api.openai.com/v1/chat/completions"
	groqEndpoint   = "https://api.groq.com/openai/v1/chat/completions"
)

type Client struct {
	endpoint string
	apiKey   string
	model    string
	http     *phttp.Client
}

// NewClient creates a chat-completions backed assistant. groq selects the
// Groq endpoint, anything else uses OpenAI.
func NewClient(provider, apiKey, model string) *Client {
	endpoint := openAIEndpoint
	if provider == "groq" {
		endpoint = groqEndpoint
	}
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		model:    model,
		http:     phttp.NewClient(120 * time.Second),
	}
}

// Review sends the career-coach prompt and returns the model's reply.
// No retries: any failure is reported to the caller, which degrades to
// the rule-based critic.
func (c *Client) Review(ctx context.Context, cvText, jobDescription string) (string, error) {
	prompt := ai.BuildReviewPrompt(cvText, jobDescription)

	reqBody := map[string]interface{}{
		"model": c.model,
		"messages": []map[string]string{
			{
				"role":    "user",
				"content": prompt,
			},
		},
		"temperature": 0.3,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion API error: %d", resp.StatusCode)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	if result.Error.Message != "" {
		return "", fmt.Errorf("completion API error: %s", result.Error.Message)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response from completion API")
	}

	return result.Choices[0].Message.Content, nil
}
