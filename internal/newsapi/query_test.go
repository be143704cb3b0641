package newsapi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/news"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/newsapi"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/sources"
)

func TestBuildQuery(t *testing.T) {
	t.Parallel()

	base := "India OR Indian OR Delhi OR Mumbai OR Bangalore"

	assert.Equal(t, base, newsapi.BuildQuery(""))
	assert.Equal(t, base, newsapi.BuildQuery(news.CategoryGeneral))
	assert.Equal(t, base+" OR sports OR cricket OR ipl OR match OR tournament", newsapi.BuildQuery(news.CategorySports))
	assert.Equal(t, base+" OR science OR research OR scientist OR study OR discovery", newsapi.BuildQuery(news.CategoryScience))
}

func TestBuildParams(t *testing.T) {
	t.Parallel()

	registry, err := sources.Default()
	require.NoError(t, err)

	params := newsapi.BuildParams(news.Query{Source: "times-of-india", Category: "business", Limit: 7}, registry, "en")
	assert.Equal(t, "the-times-of-india", params.Sources)
	assert.Equal(t, 7, params.PageSize)
	assert.Equal(t, "publishedAt", params.SortBy)

	values := params.Values()
	assert.Equal(t, "en", values.Get("language"))
	assert.Equal(t, "7", values.Get("pageSize"))
	assert.Equal(t, "the-times-of-india", values.Get("sources"))
	assert.Contains(t, values.Get("q"), "OR economy OR")

	unknown := newsapi.BuildParams(news.Query{Source: "bbc", Limit: 3}, registry, "en")
	assert.Empty(t, unknown.Sources)
	assert.False(t, unknown.Values().Has("sources"))
}
