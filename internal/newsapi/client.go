// Package newsapi fetches Indian headlines from the news search API. A typed
// client with header authentication is retried first; a single direct
// request with the key in the query string is the fallback.
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	newsapicfg "github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/config/newsapi"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/httpclient"
)

// apiKeyHeader carries the key on primary requests.
const apiKeyHeader = "X-Api-Key"

// maxBodySize bounds how much of a response is read.
const maxBodySize = 8 << 20

// Searcher runs a search against the news API.
type Searcher interface {
	Search(ctx context.Context, params SearchParams) (*Response, error)
}

// Client is the primary Searcher. It authenticates with a request header.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// Ensure Client implements Searcher
var _ Searcher = (*Client)(nil)

// Option is a function that configures a Client.
type Option func(*Client)

// WithEndpoint sets the search endpoint.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithAPIKey sets the API key.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new news API client.
func NewClient(opts ...Option) *Client {
	client := &Client{
		endpoint: newsapicfg.DefaultEndpoint,
		httpClient: httpclient.NewClient(&httpclient.ClientConfig{
			Timeout: newsapicfg.DefaultTimeout,
		}),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// NewClientFromConfig creates a client from the news API configuration.
func NewClientFromConfig(cfg *newsapicfg.Config, httpClient *http.Client) *Client {
	return NewClient(
		WithEndpoint(cfg.Endpoint),
		WithAPIKey(cfg.APIKey),
		WithHTTPClient(httpClient),
	)
}

// Search performs a search. A non-200 response or a body whose status is not
// "ok" is an error.
func (c *Client) Search(ctx context.Context, params SearchParams) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.URL.RawQuery = params.Values().Encode()
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	var response Response
	if doErr := doRequest(c.httpClient, req, &response); doErr != nil {
		return nil, fmt.Errorf("search failed: %w", doErr)
	}
	if response.Status != StatusOK {
		return nil, fmt.Errorf("%w: %s: %s", ErrAPIStatus, response.Code, response.Message)
	}

	return &response, nil
}

// doRequest executes req and decodes a 200 JSON body into result.
func doRequest(httpClient *http.Client, req *http.Request, result any) error {
	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if readErr != nil {
		return fmt.Errorf("failed to read response body: %w", readErr)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp Response
		if jsonErr := json.Unmarshal(body, &errResp); jsonErr == nil && errResp.Message != "" {
			return fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("%w %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
