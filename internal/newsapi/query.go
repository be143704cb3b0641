package newsapi

import (
	"strings"

	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/news"
)

// SortByPublishedAt orders results newest first.
const SortByPublishedAt = "publishedAt"

// baseTerms keep results about India.
var baseTerms = []string{"India", "Indian", "Delhi", "Mumbai", "Bangalore"}

// categoryTerms widen the query for a specific category.
var categoryTerms = map[string][]string{
	news.CategoryPolitics:      {"politics", "government", "election", "minister", "parliament"},
	news.CategoryBusiness:      {"business", "economy", "market", "finance", "stock"},
	news.CategorySports:        {"sports", "cricket", "ipl", "match", "tournament"},
	news.CategoryEntertainment: {"entertainment", "bollywood", "movie", "film", "actor"},
	news.CategoryTechnology:    {"technology", "tech", "digital", "software", "app"},
	news.CategoryHealth:        {"health", "medical", "doctor", "hospital", "disease"},
	news.CategoryScience:       {"science", "research", "scientist", "study", "discovery"},
}

// BuildQuery returns the OR-joined search expression for category.
func BuildQuery(category string) string {
	terms := append([]string{}, baseTerms...)
	if news.IsSpecific(category) {
		terms = append(terms, categoryTerms[category]...)
	}
	return strings.Join(terms, " OR ")
}

// APIIDResolver maps a source key to its news API identifier, returning ""
// for unknown keys.
type APIIDResolver interface {
	APIID(key string) string
}

// BuildParams derives the search parameters for q.
func BuildParams(q news.Query, resolver APIIDResolver, language string) SearchParams {
	params := SearchParams{
		Query:    BuildQuery(q.Category),
		Language: language,
		PageSize: q.Limit,
		SortBy:   SortByPublishedAt,
	}
	if q.Source != "" && resolver != nil {
		params.Sources = resolver.APIID(q.Source)
	}
	return params
}
