// Package ai generates book discussion questions through an
// OpenAI-compatible chat completions API.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/clubreads/clubreads/pkg/config"
)

// Client talks to an OpenAI-compatible chat completions endpoint.
type Client struct {
	baseURL   string
	apiKey    string
	model     string
	maxTokens int
	client    *http.Client
}

// NewClient returns a new Client configured from cfg.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL:   cfg.AI.BaseURL,
		apiKey:    cfg.AI.APIKey,
		model:     cfg.AI.Model,
		maxTokens: cfg.AI.MaxTokens,
		client: &http.Client{
			Timeout: time.Minute,
		},
	}
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

// QuestionPrompt builds the discussion question prompt for a book.
// Theme context is included only when the book has a theme.
func QuestionPrompt(title, author, themeName, themeDesc string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate 8 thoughtful discussion questions for a book club reading %q by %s.\n\n", title, author)
	if themeName != "" {
		fmt.Fprintf(&b, "The book falls under the theme: %s - %s\n\n", themeName, themeDesc)
	}
	b.WriteString(`Create questions that:
1. Encourage deep analysis of themes and characters
2. Connect the book to broader life experiences
3. Spark interesting debate among readers
4. Range from accessible to thought-provoking
5. Avoid simple yes/no answers

Format: Return ONLY a JSON array of strings, each string being one question. No other text.
Example: ["Question 1?", "Question 2?", ...]`)
	return b.String()
}

// GenerateQuestions asks the model for discussion questions about a book.
func (c *Client) GenerateQuestions(ctx context.Context, title, author, themeName, themeDesc string) ([]string, error) {
	content, err := c.complete(ctx, QuestionPrompt(title, author, themeName, themeDesc))
	if err != nil {
		return nil, err
	}

	return ParseQuestions(content)
}

// complete sends a single-message chat completion and returns the
// assistant's reply.
func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		MaxTokens: c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	url := strings.TrimSuffix(c.baseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	defer resp.Body.Close() // nolint: errcheck

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat completion: %s: %s", resp.Status, strings.TrimSpace(string(data)))
	}

	var cr chatResponse
	if err := json.Unmarshal(data, &cr); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return cr.Choices[0].Message.Content, nil
}
