// Package urlexpand resolves shortened bit.ly links back to their long URLs
// through the bit.ly v3 REST API.
package urlexpand

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL = "http://api.bit.ly"
	apiVersion     = "v3"
)

// Config carries the bit.ly API credentials and response format. It is a
// plain value: build one at startup and hand it to NewClient. There are no
// setters; reconfiguring means constructing a new client.
type Config struct {
	Login   string
	APIKey  string
	Format  string // "txt" or "json"
	BaseURL string // overridable for tests
}

// Client calls the bit.ly expand endpoint.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a bit.ly client from the given config. Zero-value Format
// and BaseURL fall back to "txt" and the public API host.
func NewClient(cfg Config) *Client {
	if cfg.Format == "" {
		cfg.Format = "txt"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// jsonExpandResponse mirrors the relevant slice of the v3 JSON envelope.
type jsonExpandResponse struct {
	StatusCode int    `json:"status_code"`
	StatusTxt  string `json:"status_txt"`
	Data       struct {
		Expand []struct {
			LongURL string `json:"long_url"`
			Error   string `json:"error"`
		} `json:"expand"`
	} `json:"data"`
}

// ExpandHash resolves a bit.ly hash (the path segment of a short link) to
// its long URL.
func (c *Client) ExpandHash(ctx context.Context, hash string) (string, error) {
	hash = strings.TrimSpace(hash)
	if hash == "" {
		return "", fmt.Errorf("hash is required")
	}
	return c.expand(ctx, url.Values{"hash": {hash}})
}

// ExpandURL resolves a full short URL (e.g. "http://bit.ly/abc123") to its
// long URL.
func (c *Client) ExpandURL(ctx context.Context, shortURL string) (string, error) {
	shortURL = strings.TrimSpace(shortURL)
	if shortURL == "" {
		return "", fmt.Errorf("shortUrl is required")
	}
	return c.expand(ctx, url.Values{"shortUrl": {shortURL}})
}

func (c *Client) expand(ctx context.Context, params url.Values) (string, error) {
	params.Set("version", apiVersion)
	params.Set("format", c.cfg.Format)
	params.Set("login", c.cfg.Login)
	params.Set("apiKey", c.cfg.APIKey)

	endpoint := fmt.Sprintf("%s/expand?%s", c.cfg.BaseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("bitly request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("bitly returned status %d", resp.StatusCode)
	}

	if c.cfg.Format == "json" {
		return parseJSONExpand(body)
	}
	// txt format: the body is the long URL itself.
	longURL := strings.TrimSpace(string(body))
	if longURL == "" || strings.EqualFold(longURL, "NOT_FOUND") {
		return "", fmt.Errorf("bitly could not expand the link")
	}
	return longURL, nil
}

func parseJSONExpand(body []byte) (string, error) {
	var envelope jsonExpandResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", fmt.Errorf("bitly returned malformed JSON: %w", err)
	}
	if envelope.StatusCode != http.StatusOK {
		return "", fmt.Errorf("bitly error: %s", envelope.StatusTxt)
	}
	if len(envelope.Data.Expand) == 0 {
		return "", fmt.Errorf("bitly returned no expansion")
	}
	entry := envelope.Data.Expand[0]
	if entry.Error != "" {
		return "", fmt.Errorf("bitly error: %s", entry.Error)
	}
	return entry.LongURL, nil
}
