package news

import (
	"strings"
	"time"
)

const (
	// DisplayLayout is the layout of every successfully parsed date.
	DisplayLayout = "02 Jan 2006, 15:04"
	// ScrapeFallbackLayout formats "today" for cards without a date.
	ScrapeFallbackLayout = "02 Jan 2006"
	// UnknownDate is shown for an empty date.
	UnknownDate = "Unknown"
)

// inputLayouts are tried in order. Numeric fields accept one or two digits.
var inputLayouts = []string{
	"2006-1-2T15:4:5Z",
	"2006-1-2 15:4:5",
	"2 Jan 2006 15:4",
	"2 January 2006",
	"2-1-2006",
	"2/1/2006",
}

// FormatDate renders s in DisplayLayout using the first input layout that
// parses it. Unparseable input is returned unchanged.
func FormatDate(s string) string {
	if s == "" {
		return UnknownDate
	}
	for _, layout := range inputLayouts {
		if t, ok := parseStrict(layout, s); ok {
			return t.Format(DisplayLayout)
		}
	}
	return s
}

// FormatDateLayout is FormatDate with an explicit input layout.
func FormatDateLayout(s, layout string) string {
	if s == "" {
		return UnknownDate
	}
	t, ok := parseStrict(layout, s)
	if !ok {
		return s
	}
	return t.Format(DisplayLayout)
}

// parseStrict is time.Parse without the fractional seconds time.Parse
// accepts after a seconds field the layout does not declare.
func parseStrict(layout, s string) (time.Time, bool) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, false
	}
	if !strings.ContainsAny(layout, ".,") && strings.ContainsAny(s, ".,") {
		return time.Time{}, false
	}
	return t, true
}
