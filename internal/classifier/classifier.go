// Package classifier assigns a news category to a headline by counting
// keyword hits in its title and description.
package classifier

import (
	"strings"

	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/logger"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/news"
)

// Classifier scores text against an ordered rule table.
type Classifier struct {
	logger logger.Interface
	rules  []Rule
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithRules replaces the keyword table. Keywords are lowercased and trimmed;
// blank ones are dropped.
func WithRules(rules []Rule) Option {
	return func(c *Classifier) {
		c.rules = normalizeRules(rules)
	}
}

func normalizeRules(rules []Rule) []Rule {
	out := make([]Rule, 0, len(rules))
	for _, rule := range rules {
		keywords := make([]string, 0, len(rule.Keywords))
		for _, kw := range rule.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			keywords = append(keywords, kw)
		}
		out = append(out, Rule{Category: rule.Category, Keywords: keywords})
	}
	return out
}

// WithLogger sets the logger used for debug scoring output.
func WithLogger(log logger.Interface) Option {
	return func(c *Classifier) {
		c.logger = log
	}
}

// New creates a Classifier using DefaultRules.
func New(opts ...Option) *Classifier {
	c := &Classifier{
		logger: logger.NewNoOp(),
		rules:  DefaultRules,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultClassifier = New()

// Categorize classifies with the default rule table.
func Categorize(title, body string) string {
	return defaultClassifier.Categorize(title, body)
}

// Categorize returns the category whose keywords occur most often as
// substrings of the lowercased title and body. Each keyword counts once.
// Ties keep the earlier rule; no hits yields "general".
func (c *Classifier) Categorize(title, body string) string {
	text := strings.ToLower(title + " " + body)

	best := news.CategoryGeneral
	bestScore := 0
	for _, rule := range c.rules {
		score := scoreText(text, rule.Keywords)
		if score > bestScore {
			best = rule.Category
			bestScore = score
		}
	}

	c.logger.Debug("Categorized headline",
		"category", best,
		"score", bestScore,
	)

	return best
}

func scoreText(text string, keywords []string) int {
	score := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			score++
		}
	}
	return score
}
