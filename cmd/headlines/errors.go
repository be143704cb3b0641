package headlines

import "errors"

var (
	// ErrInvalidSource is returned for a --source outside the registry
	ErrInvalidSource = errors.New("invalid source")

	// ErrInvalidCategory is returned for an unknown --category
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidLimit is returned for a non-positive --limit
	ErrInvalidLimit = errors.New("limit must be positive")

	// ErrNoFetcher is returned when the selected strategy is not wired
	ErrNoFetcher = errors.New("no fetcher configured")

	// ErrFetchPanicked wraps a panic recovered while fetching
	ErrFetchPanicked = errors.New("fetch failed")
)
