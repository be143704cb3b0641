package newsapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/newsapi"
)

const okBody = `{
  "status": "ok",
  "totalResults": 2,
  "articles": [
    {
      "source": {"id": "the-hindu", "name": "The Hindu"},
      "title": "RBI keeps repo rate unchanged",
      "description": "The central bank held rates as the economy grows",
      "url": "https://example.com/rbi",
      "urlToImage": "https://example.com/rbi.jpg",
      "publishedAt": "2024-02-08T05:30:00Z",
      "content": "Mumbai: The RBI..."
    },
    {
      "source": {"id": null, "name": "NDTV"},
      "title": "India beat Australia in final",
      "description": "Cricket team lifts the trophy",
      "url": "https://example.com/final",
      "publishedAt": "2024-02-07T18:00:00Z"
    }
  ]
}`

func TestClient_Search(t *testing.T) {
	t.Parallel()

	var gotKey, gotQuery, gotLanguage string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Api-Key")
		gotQuery = r.URL.Query().Get("q")
		gotLanguage = r.URL.Query().Get("language")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(okBody))
	}))
	t.Cleanup(server.Close)

	client := newsapi.NewClient(
		newsapi.WithEndpoint(server.URL),
		newsapi.WithAPIKey("secret"),
		newsapi.WithHTTPClient(server.Client()),
	)

	resp, err := client.Search(context.Background(), newsapi.SearchParams{
		Query:    newsapi.BuildQuery(""),
		Language: "en",
		PageSize: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, "secret", gotKey)
	assert.Equal(t, "India OR Indian OR Delhi OR Mumbai OR Bangalore", gotQuery)
	assert.Equal(t, "en", gotLanguage)
	require.Len(t, resp.Articles, 2)
	assert.Equal(t, "The Hindu", resp.Articles[0].Source.Name)
	assert.Equal(t, "https://example.com/rbi.jpg", resp.Articles[0].URLToImage)
	assert.Empty(t, resp.Articles[1].Source.ID)
}

func TestClient_SearchErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{
			name:    "unauthorized",
			status:  http.StatusUnauthorized,
			body:    `{"status":"error","code":"apiKeyInvalid","message":"Your API key is invalid"}`,
			wantErr: newsapi.ErrUnexpectedStatus,
		},
		{
			name:    "server error without body",
			status:  http.StatusBadGateway,
			wantErr: newsapi.ErrUnexpectedStatus,
		},
		{
			name:    "error status in body",
			status:  http.StatusOK,
			body:    `{"status":"error","code":"rateLimited","message":"slow down"}`,
			wantErr: newsapi.ErrAPIStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(server.Close)

			client := newsapi.NewClient(newsapi.WithEndpoint(server.URL), newsapi.WithHTTPClient(server.Client()))
			_, err := client.Search(context.Background(), newsapi.SearchParams{Query: "India"})
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFallback_Fetch(t *testing.T) {
	t.Parallel()

	var gotKey, gotHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("apiKey")
		gotHeader = r.Header.Get("X-Api-Key")
		_, _ = w.Write([]byte(okBody))
	}))
	t.Cleanup(server.Close)

	fallback := newsapi.NewFallback(server.URL, "secret", server.Client())
	articles, err := fallback.Fetch(context.Background(), newsapi.SearchParams{Query: "India"})
	require.NoError(t, err)

	assert.Equal(t, "secret", gotKey)
	assert.Empty(t, gotHeader)
	assert.Len(t, articles, 2)
}

func TestFallback_FetchErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("apiKey") == "bad-json" {
			_, _ = w.Write([]byte("<html>"))
			return
		}
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(server.Close)

	_, err := newsapi.NewFallback(server.URL, "any", server.Client()).Fetch(context.Background(), newsapi.SearchParams{})
	require.ErrorIs(t, err, newsapi.ErrUnexpectedStatus)

	_, err = newsapi.NewFallback(server.URL, "bad-json", server.Client()).Fetch(context.Background(), newsapi.SearchParams{})
	require.Error(t, err)
}
