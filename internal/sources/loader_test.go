package sources_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/sources"
)

func TestDefault_LoadsBuiltInSourcesInOrder(t *testing.T) {
	t.Parallel()

	registry, err := sources.Default()
	require.NoError(t, err)

	assert.Equal(t, []string{"the-hindu", "times-of-india", "indian-express", "ndtv"}, registry.Keys())
	assert.Equal(t, 4, registry.Len())

	toi, ok := registry.Lookup("times-of-india")
	require.True(t, ok)
	assert.Equal(t, "Times of India", toi.Name)
	assert.Equal(t, "the-times-of-india", toi.APIID)
	assert.Equal(t, "https://timesofindia.indiatimes.com/", toi.ScrapeURL)
	assert.Equal(t, "/life-style/health-fitness/", toi.Categories["health"])
	assert.Equal(t, []string{"div.main-content div.card-container"}, toi.Selectors.Articles)

	ndtv, ok := registry.Lookup("ndtv")
	require.True(t, ok)
	assert.Equal(t, []string{"h2.newsHdng", "h3.newsHdng", "h2.headline"}, ndtv.Selectors.Title)
	assert.Equal(t, "div.news_item, div.new_storylising, div.story_list", ndtv.Selectors.ArticleGroup())
}

func TestDefault_EverySourceCoversEveryCategory(t *testing.T) {
	t.Parallel()

	registry, err := sources.Default()
	require.NoError(t, err)

	for _, d := range registry.All() {
		assert.Len(t, d.Categories, 8, d.Key)
		assert.NotEmpty(t, d.Selectors.Link, d.Key)
		assert.NotEmpty(t, d.Selectors.Date, d.Key)
	}
}

func TestRegistry_UnknownKey(t *testing.T) {
	t.Parallel()

	registry, err := sources.Default()
	require.NoError(t, err)

	_, ok := registry.Lookup("bbc")
	assert.False(t, ok)
	assert.Empty(t, registry.APIID("bbc"))
	assert.Equal(t, "ndtv", registry.APIID("ndtv"))
}

func TestDescriptor_URLFor(t *testing.T) {
	t.Parallel()

	d := sources.Descriptor{
		ScrapeURL:  "https://www.thehindu.com/",
		Categories: map[string]string{"sports": "/sport/"},
	}

	assert.Equal(t, "https://www.thehindu.com/sport/", d.URLFor("sports"))
	assert.Equal(t, "https://www.thehindu.com/", d.URLFor("health"))
	assert.Equal(t, "https://www.thehindu.com/", d.URLFor(""))
}

func TestLoader_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sources.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
sources:
  - key: local
    name: Local Daily
    scrape_url: http://localhost:8080/
    categories:
      sports: /sports/
    selectors:
      articles: "article.card, div.card"
      title: h2
`), 0o600))

	registry, err := sources.NewLoader(path).Load()
	require.NoError(t, err)

	d, ok := registry.Lookup("local")
	require.True(t, ok)
	assert.Equal(t, "local", d.APIID)
	assert.Equal(t, []string{"article.card", "div.card"}, d.Selectors.Articles)
	assert.Equal(t, []string{"h2"}, d.Selectors.Title)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name:    "no sources",
			yaml:    "sources: []",
			wantErr: sources.ErrNoSources,
		},
		{
			name: "missing name",
			yaml: `
sources:
  - key: x
    scrape_url: https://x.example/
    selectors: {articles: [div], title: [h2]}
`,
			wantErr: sources.ErrMissingRequiredField,
		},
		{
			name: "bad scheme",
			yaml: `
sources:
  - key: x
    name: X
    scrape_url: ftp://x.example/
    selectors: {articles: [div], title: [h2]}
`,
			wantErr: sources.ErrInvalidURL,
		},
		{
			name: "unknown category",
			yaml: `
sources:
  - key: x
    name: X
    scrape_url: https://x.example/
    categories: {weather: /weather/}
    selectors: {articles: [div], title: [h2]}
`,
			wantErr: sources.ErrUnknownCategory,
		},
		{
			name: "missing title selector",
			yaml: `
sources:
  - key: x
    name: X
    scrape_url: https://x.example/
    selectors: {articles: [div]}
`,
			wantErr: sources.ErrMissingRequiredField,
		},
		{
			name: "duplicate key",
			yaml: `
sources:
  - {key: x, name: X, scrape_url: "https://x.example/", selectors: {articles: [div], title: [h2]}}
  - {key: x, name: Y, scrape_url: "https://y.example/", selectors: {articles: [div], title: [h2]}}
`,
			wantErr: sources.ErrDuplicateSource,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := sources.Parse([]byte(tt.yaml))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoader_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := sources.NewLoader(filepath.Join(t.TempDir(), "nope.yml")).Load()
	require.Error(t, err)
}
