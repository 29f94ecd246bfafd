package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ProxyClient implements Client against a backend proxy that holds the
// provider credential server-side. The proxy carries the same completion
// contract as the direct path: model, system and user strings in, raw text
// out. The pre-shared key is optional; deployments without per-client auth
// leave it empty.
type ProxyClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// ProxyConfig holds configuration for the proxy client.
type ProxyConfig struct {
	APIKey  string // optional pre-shared key, sent as X-API-Key
	BaseURL string
	Timeout time.Duration
}

// DefaultProxyConfig returns sensible defaults for a local proxy.
func DefaultProxyConfig(baseURL string) ProxyConfig {
	return ProxyConfig{
		BaseURL: baseURL,
		Timeout: 2 * time.Minute,
	}
}

// NewProxyClient creates a new proxy client with default config.
func NewProxyClient(baseURL string) *ProxyClient {
	return NewProxyClientWithConfig(DefaultProxyConfig(baseURL))
}

// NewProxyClientWithConfig creates a new proxy client with custom config.
func NewProxyClientWithConfig(config ProxyConfig) *ProxyClient {
	return &ProxyClient{
		apiKey:  config.APIKey,
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

type proxyRequest struct {
	Model  string `json:"model"`
	System string `json:"system"`
	Prompt string `json:"prompt"`
}

type proxyResponse struct {
	Content string `json:"content"`
	Detail  string `json:"detail,omitempty"`
}

// Complete sends one completion request through the proxy.
func (c *ProxyClient) Complete(ctx context.Context, model, system, user string) (string, error) {
	if c.baseURL == "" {
		return "", &APIError{Kind: KindNetwork, Message: "proxy URL not configured"}
	}

	jsonData, err := json.Marshal(proxyRequest{Model: model, System: system, Prompt: user})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/api/complete", bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", networkError(err)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	resp.Body.Close()
	if err != nil {
		return "", networkError(err)
	}

	if resp.StatusCode != http.StatusOK {
		// FastAPI-style proxies put the human-readable cause in "detail".
		var pr proxyResponse
		if json.Unmarshal(body, &pr) == nil && pr.Detail != "" {
			return "", classifyStatus(resp.StatusCode, pr.Detail)
		}
		return "", classifyStatus(resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var pr proxyResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return "", fmt.Errorf("failed to parse response envelope: %w", err)
	}
	return strings.TrimSpace(pr.Content), nil
}
