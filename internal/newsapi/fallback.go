package newsapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/news"
)

// Fallback performs one direct request with the key passed as the apiKey
// query parameter. It never retries.
type Fallback struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewFallback creates a Fallback.
func NewFallback(endpoint, apiKey string, httpClient *http.Client) *Fallback {
	return &Fallback{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// Fetch returns the raw articles of one search.
func (f *Fallback) Fetch(ctx context.Context, params SearchParams) ([]news.RawItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	values := params.Values()
	values.Set("apiKey", f.apiKey)
	req.URL.RawQuery = values.Encode()

	var response Response
	if doErr := doRequest(f.httpClient, req, &response); doErr != nil {
		return nil, fmt.Errorf("fallback request failed: %w", doErr)
	}

	return response.Articles, nil
}
