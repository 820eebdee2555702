// Package mail sends transactional email through a Resend-style HTTP API.
package mail

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

// Client sends email through a Resend-style /emails endpoint.
type Client struct {
	apiURL string
	apiKey string
	from   string
	client *http.Client
}

// NewClient returns a new Client configured from cfg.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		apiURL: cfg.Mail.APIURL,
		apiKey: cfg.Mail.APIKey,
		from:   cfg.Mail.From,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Send delivers one email to one recipient.
func (c *Client) Send(ctx context.Context, to string, e Email) error {
	body, err := json.Marshal(sendRequest{
		From:    c.from,
		To:      []string{to},
		Subject: e.Subject,
		HTML:    e.HTML,
	})
	if err != nil {
		return fmt.Errorf("encode email: %w", err)
	}

	url := strings.TrimSuffix(c.apiURL, "/") + "/emails"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close() // nolint: errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("send email: %s: %s", resp.Status, strings.TrimSpace(string(data)))
	}

	return nil
}
