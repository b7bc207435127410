// Package llm holds the chat-completion client used by the assistant
// endpoint. It speaks the OpenAI chat completions wire format against a
// configurable base URL.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var (
	// ErrNotConfigured means no API key is set; the feature is degraded,
	// not broken.
	ErrNotConfigured = errors.New("chat completion API key is not configured")
	// ErrRateLimited maps provider quota and rate-limit failures.
	ErrRateLimited = errors.New("chat completion provider rate limited")
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Client struct {
	apiKey  string
	baseURL string
	model   string
	http    *http.Client
}

func New(apiKey, baseURL, model string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool { return c.apiKey != "" }

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type completionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// CreateCompletion sends the conversation and returns the assistant text.
func (c *Client) CreateCompletion(ctx context.Context, messages []Message) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	body, _ := json.Marshal(completionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: 0.7,
		MaxTokens:   500,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var out completionResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode >= 400 || out.Error != nil {
		msg := ""
		if out.Error != nil {
			msg = out.Error.Message
		}
		if isRateLimit(resp.StatusCode, msg) {
			return "", fmt.Errorf("%w: %s", ErrRateLimited, msg)
		}
		return "", fmt.Errorf("chat completion error (status %d): %s", resp.StatusCode, msg)
	}

	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "I'm not sure how to respond to that. Could you try asking in a different way?", nil
	}
	return out.Choices[0].Message.Content, nil
}

// isRateLimit matches quota and rate-limit failures by status code and
// error-message substrings, mirroring how the provider actually reports
// them.
func isRateLimit(status int, msg string) bool {
	if status == http.StatusTooManyRequests {
		return true
	}
	lower := strings.ToLower(msg)
	return strings.Contains(lower, "quota") ||
		strings.Contains(lower, "rate limit") ||
		strings.Contains(lower, "429")
}
