package news

import (
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`(?s)<.*?>`)

// CleanText strips markup tags, collapses whitespace runs to a single space
// and trims the result.
func CleanText(s string) string {
	if s == "" {
		return ""
	}
	return strings.Join(strings.Fields(tagPattern.ReplaceAllString(s, "")), " ")
}

// Truncate returns at most n runes of s.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
