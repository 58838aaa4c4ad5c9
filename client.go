package docsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultHTTPTimeout = 30 * time.Second

// Client calls the docsearch API.
type Client struct {
	baseURL string
	apiKey  string
	userID  string
	http    *http.Client
}

// NewClient creates a docsearch API client for the given base URL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Search runs a semantic search.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	var resp SearchResponse
	if err := c.post(ctx, "/search", req, &resp); err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return &resp, nil
}

// List returns documents matching the filters, without a query.
func (c *Client) List(ctx context.Context, filters FilterSet, limit int) (*SearchResponse, error) {
	body := struct {
		Filters FilterSet `json:"filters"`
		Limit   int       `json:"limit,omitempty"`
	}{Filters: filters, Limit: limit}

	var resp SearchResponse
	if err := c.post(ctx, "/listing", body, &resp); err != nil {
		return nil, fmt.Errorf("listing: %w", err)
	}
	return &resp, nil
}

// Health checks the API and its backing components.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("health: %w", err)
	}
	c.setHeaders(req)

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("health: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return &APIError{Status: res.StatusCode, Message: "unhealthy"}
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload),
	)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setHeaders(req)

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return decodeAPIError(res)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	if c.userID != "" {
		req.Header.Set("X-User-Id", c.userID)
	}
}

func decodeAPIError(res *http.Response) error {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil || envelope.Error == "" {
		return &APIError{Status: res.StatusCode, Message: res.Status}
	}
	return &APIError{Status: res.StatusCode, Message: envelope.Error}
}
