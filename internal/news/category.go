package news

// Category names.
const (
	CategoryGeneral       = "general"
	CategoryPolitics      = "politics"
	CategoryBusiness      = "business"
	CategorySports        = "sports"
	CategoryEntertainment = "entertainment"
	CategoryTechnology    = "technology"
	CategoryHealth        = "health"
	CategoryScience       = "science"
)

var categories = []string{
	CategoryGeneral,
	CategoryPolitics,
	CategoryBusiness,
	CategorySports,
	CategoryEntertainment,
	CategoryTechnology,
	CategoryHealth,
	CategoryScience,
}

// Categories returns the supported categories in display order.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// IsCategory reports whether name is a supported category.
func IsCategory(name string) bool {
	for _, c := range categories {
		if c == name {
			return true
		}
	}
	return false
}

// IsSpecific reports whether name narrows results to one topic, i.e. it is
// set and not "general".
func IsSpecific(name string) bool {
	return name != "" && name != CategoryGeneral
}
