// Package billing is a thin client for the hosted billing service. It only
// reads and toggles subscriptions and opens checkout sessions; payments are
// handled entirely by the service.
package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type Product struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Prices []Price `json:"prices"`
}

type Price struct {
	ID string `json:"id"`
	// UnitAmount is in the smallest currency unit; nil for custom pricing.
	UnitAmount *int64 `json:"unit_amount"`
}

type Subscription struct {
	ID                string   `json:"id"`
	Status            string   `json:"status"`
	CancelAtPeriodEnd bool     `json:"cancel_at_period_end"`
	CurrentPeriodEnd  string   `json:"current_period_end"`
	Product           *Product `json:"product"`
	Price             *Price   `json:"price"`
}

// Error is a non-2xx answer from the billing service.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("billing: %s (status %d)", e.Message, e.StatusCode)
}

type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		http:    &http.Client{Timeout: 15 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

// GetSubscriptions lists the subscriptions of the user behind accessToken.
func (c *Client) GetSubscriptions(ctx context.Context, accessToken string) ([]Subscription, error) {
	var out struct {
		Subscriptions []Subscription `json:"subscriptions"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/billing/subscriptions", accessToken, nil, &out); err != nil {
		return nil, err
	}
	return out.Subscriptions, nil
}

// GetProducts lists every product with its prices.
func (c *Client) GetProducts(ctx context.Context, accessToken string) ([]Product, error) {
	var out struct {
		Products []Product `json:"products"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/billing/products", accessToken, nil, &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

// UpdateSubscription sets whether the subscription ends with the current period.
func (c *Client) UpdateSubscription(ctx context.Context, accessToken, subscriptionID string, cancelAtPeriodEnd bool) error {
	body := map[string]bool{"cancel_at_period_end": cancelAtPeriodEnd}
	path := "/v1/billing/subscriptions/" + url.PathEscape(subscriptionID)
	return c.do(ctx, http.MethodPatch, path, accessToken, body, nil)
}

// CreateCheckoutSession returns the hosted checkout URL for priceID.
func (c *Client) CreateCheckoutSession(ctx context.Context, accessToken, priceID, redirectURL string) (string, error) {
	body := map[string]string{"price_id": priceID, "redirect_url": redirectURL}
	var out struct {
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodPost, "/v1/billing/checkout", accessToken, body, &out); err != nil {
		return "", err
	}
	if out.URL == "" {
		return "", &Error{StatusCode: http.StatusOK, Message: "checkout session has no url"}
	}
	return out.URL, nil
}

func (c *Client) do(ctx context.Context, method, path, accessToken string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("could not marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("could not create http request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("could not read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp.StatusCode, respBody)
	}
	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}
	return nil
}

func decodeError(status int, body []byte) error {
	var errResp struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil {
		switch {
		case errResp.Error.Message != "":
			return &Error{StatusCode: status, Message: errResp.Error.Message}
		case errResp.Message != "":
			return &Error{StatusCode: status, Message: errResp.Message}
		}
	}
	return &Error{StatusCode: status, Message: http.StatusText(status)}
}
