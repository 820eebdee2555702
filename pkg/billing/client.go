// Package billing integrates with a Stripe-style billing API for the
// premium subscription tier.
package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/clubreads/clubreads/pkg/config"
	"github.com/google/go-querystring/query"
)

// Client talks to a Stripe-style billing API.
type Client struct {
	apiURL    string
	secretKey string
	priceID   string
	publicURL string
	client    *http.Client
}

// NewClient returns a new Client configured from cfg.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		apiURL:    cfg.Billing.APIURL,
		secretKey: cfg.Billing.SecretKey,
		priceID:   cfg.Billing.PriceID,
		publicURL: cfg.HTTP.PublicURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type customerParams struct {
	Email  string `url:"email"`
	UserID string `url:"metadata[user_id]"`
}

type checkoutParams struct {
	Customer   string `url:"customer"`
	Mode       string `url:"mode"`
	Price      string `url:"line_items[0][price]"`
	Quantity   int    `url:"line_items[0][quantity]"`
	SuccessURL string `url:"success_url"`
	CancelURL  string `url:"cancel_url"`
	UserID     string `url:"metadata[user_id]"`
}

type portalParams struct {
	Customer  string `url:"customer"`
	ReturnURL string `url:"return_url"`
}

// CreateCustomer creates a billing customer for a user and returns its id.
func (c *Client) CreateCustomer(ctx context.Context, email, userID string) (string, error) {
	var out struct {
		ID string `json:"id"`
	}
	err := c.post(ctx, "/customers", customerParams{
		Email:  email,
		UserID: userID,
	}, &out)
	if err != nil {
		return "", err
	}

	return out.ID, nil
}

// CreateCheckoutSession starts a subscription checkout and returns the URL
// to redirect the user to. The user id rides along in session metadata so
// the completion webhook can find the profile.
func (c *Client) CreateCheckoutSession(ctx context.Context, customerID, userID string) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	err := c.post(ctx, "/checkout/sessions", checkoutParams{
		Customer:   customerID,
		Mode:       "subscription",
		Price:      c.priceID,
		Quantity:   1,
		SuccessURL: c.publicURL + "/dashboard?upgraded=true",
		CancelURL:  c.publicURL + "/dashboard",
		UserID:     userID,
	}, &out)
	if err != nil {
		return "", err
	}

	return out.URL, nil
}

// CreatePortalSession opens the billing portal for an existing customer and
// returns the URL to redirect the user to.
func (c *Client) CreatePortalSession(ctx context.Context, customerID string) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	err := c.post(ctx, "/billing_portal/sessions", portalParams{
		Customer:  customerID,
		ReturnURL: c.publicURL + "/dashboard",
	}, &out)
	if err != nil {
		return "", err
	}

	return out.URL, nil
}

// post sends a form-encoded request the way the Stripe API expects and
// decodes the JSON response into out.
func (c *Client) post(ctx context.Context, path string, params interface{}, out interface{}) error {
	values, err := query.Values(params)
	if err != nil {
		return fmt.Errorf("encode params: %w", err)
	}

	url := strings.TrimSuffix(c.apiURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(values.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.secretKey, "")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("billing request: %w", err)
	}
	defer resp.Body.Close() // nolint: errcheck

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("billing request: %s: %s", resp.Status, strings.TrimSpace(string(data)))
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
