// Package paypal implements a minimal PayPal Orders v2 client with
// client-credentials token caching.
package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

var (
	// ErrNotConfigured means client credentials are missing.
	ErrNotConfigured = errors.New("payment provider credentials are not configured")
	// ErrProvider wraps upstream failures from the payment API.
	ErrProvider = errors.New("payment provider request failed")
)

type Client struct {
	clientID string
	secret   string
	baseURL  string
	http     *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func New(clientID, secret, baseURL string) *Client {
	return &Client{
		clientID: clientID,
		secret:   secret,
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

// Configured reports whether both credentials are present.
func (c *Client) Configured() bool { return c.clientID != "" && c.secret != "" }

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// token returns a cached access token, fetching a fresh one when the
// cached token is within a minute of expiring.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Until(c.tokenExpiry) > time.Minute {
		return c.accessToken, nil
	}

	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create token request: %w", err)
	}
	req.SetBasicAuth(c.clientID, c.secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: token request returned %d: %s", ErrProvider, resp.StatusCode, raw)
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}

	c.accessToken = tok.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	return c.accessToken, nil
}

// Order is the subset of the orders API response the frontend needs.
type Order struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type orderRequest struct {
	Intent        string `json:"intent"`
	PurchaseUnits []struct {
		Amount struct {
			CurrencyCode string `json:"currency_code"`
			Value        string `json:"value"`
		} `json:"amount"`
	} `json:"purchase_units"`
}

// CreateOrder opens a capture-intent order for the given amount.
func (c *Client) CreateOrder(ctx context.Context, amount, currency string) (*Order, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	var body orderRequest
	body.Intent = "CAPTURE"
	body.PurchaseUnits = make([]struct {
		Amount struct {
			CurrencyCode string `json:"currency_code"`
			Value        string `json:"value"`
		} `json:"amount"`
	}, 1)
	body.PurchaseUnits[0].Amount.CurrencyCode = currency
	body.PurchaseUnits[0].Amount.Value = amount

	return c.doOrder(ctx, http.MethodPost, "/v2/checkout/orders", body)
}

// CaptureOrder finalises payment for a previously created order.
func (c *Client) CaptureOrder(ctx context.Context, orderID string) (*Order, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	return c.doOrder(ctx, http.MethodPost, "/v2/checkout/orders/"+orderID+"/capture", nil)
}

func (c *Client) doOrder(ctx context.Context, method, path string, payload any) (*Order, error) {
	tok, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+tok)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read order response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: %s returned %d: %s", ErrProvider, path, resp.StatusCode, raw)
	}

	var order Order
	if err := json.Unmarshal(raw, &order); err != nil {
		return nil, fmt.Errorf("decode order response: %w", err)
	}
	return &order, nil
}
