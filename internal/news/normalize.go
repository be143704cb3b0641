package news

const (
	// MaxIDLength caps Item.ID.
	MaxIDLength = 50
	// UnknownSource labels API articles without a source name.
	UnknownSource = "Unknown"
)

// Normalize converts a raw article into an Item. fallbackSource is used when
// the article carries no source name.
func Normalize(raw RawItem, fallbackSource string) Item {
	id := raw.ID
	if id == "" {
		id = raw.URL
	}

	source := raw.Source.Name
	if source == "" {
		source = fallbackSource
	}

	category := raw.Category
	if !IsCategory(category) {
		category = CategoryGeneral
	}

	return Item{
		ID:          Truncate(id, MaxIDLength),
		Title:       CleanText(raw.Title),
		Description: CleanText(raw.Description),
		Content:     CleanText(raw.Content),
		URL:         raw.URL,
		Source:      source,
		Category:    category,
		PublishedAt: FormatDate(raw.PublishedAt),
		ImageURL:    raw.URLToImage,
	}
}
