package classifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/classifier"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/news"
)

func TestCategorize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		body  string
		want  string
	}{
		{name: "company keyword", title: "XYZ Company news", want: news.CategoryBusiness},
		{name: "no keywords", title: "Weather update", body: "Clear skies expected", want: news.CategoryGeneral},
		{name: "empty", want: news.CategoryGeneral},
		{name: "case insensitive", title: "BJP wins ELECTION", want: news.CategoryPolitics},
		{name: "body counts", title: "Big day", body: "ISRO announces space research mission", want: news.CategoryScience},
		{name: "highest score wins", title: "Cricket team wins match", body: "market reacts", want: news.CategorySports},
		{name: "substring match", title: "Sportsperson of the year", want: news.CategorySports},
		{name: "tie keeps earlier rule", title: "Minister visits hospital", want: news.CategoryPolitics},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, classifier.Categorize(tt.title, tt.body))
		})
	}
}

func TestCategorize_Deterministic(t *testing.T) {
	t.Parallel()

	first := classifier.Categorize("Bollywood star launches app", "film and tech")
	for range 20 {
		assert.Equal(t, first, classifier.Categorize("Bollywood star launches app", "film and tech"))
	}
}

func TestNew_WithRules(t *testing.T) {
	t.Parallel()

	c := classifier.New(classifier.WithRules([]classifier.Rule{
		{Category: news.CategoryHealth, Keywords: []string{"yoga"}},
	}))

	assert.Equal(t, news.CategoryHealth, c.Categorize("Yoga day", ""))
	assert.Equal(t, news.CategoryGeneral, c.Categorize("Election results", ""))
}

func TestNew_WithRulesNormalizesKeywords(t *testing.T) {
	t.Parallel()

	c := classifier.New(classifier.WithRules([]classifier.Rule{
		{Category: news.CategoryHealth, Keywords: []string{" Yoga ", "", "  "}},
	}))

	assert.Equal(t, news.CategoryHealth, c.Categorize("International yoga day", ""))
	assert.Equal(t, news.CategoryGeneral, c.Categorize("Election results", ""))
}
