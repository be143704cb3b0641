package classifier

import "github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/news"

// Rule maps a category to the keywords that vote for it.
type Rule struct {
	Category string
	Keywords []string
}

// DefaultRules is the keyword table. Order matters: on equal scores the
// earlier rule wins.
var DefaultRules = []Rule{
	{
		Category: news.CategoryPolitics,
		Keywords: []string{"election", "minister", "government", "parliament", "political", "bjp", "congress", "modi"},
	},
	{
		Category: news.CategoryBusiness,
		Keywords: []string{"economy", "market", "stock", "finance", "business", "company", "trade", "rupee"},
	},
	{
		Category: news.CategorySports,
		Keywords: []string{"cricket", "ipl", "sport", "match", "player", "team", "tournament", "athlete"},
	},
	{
		Category: news.CategoryEntertainment,
		Keywords: []string{"movie", "film", "actor", "actress", "bollywood", "cinema", "star", "celebrity"},
	},
	{
		Category: news.CategoryTechnology,
		Keywords: []string{"tech", "technology", "digital", "software", "app", "computer", "internet", "cyber"},
	},
	{
		Category: news.CategoryHealth,
		Keywords: []string{"health", "medical", "doctor", "hospital", "disease", "covid", "vaccine", "medicine"},
	},
	{
		Category: news.CategoryScience,
		Keywords: []string{"science", "research", "scientist", "study", "discovery", "space", "nasa", "isro"},
	},
}
