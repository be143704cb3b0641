package sources

import "errors"

var (
	// ErrNoSources indicates no sources were found in the configuration
	ErrNoSources = errors.New("no sources found in configuration")
	// ErrMissingRequiredField indicates a required field is missing
	ErrMissingRequiredField = errors.New("missing required field")
	// ErrInvalidURL indicates a scrape URL that is not absolute http(s)
	ErrInvalidURL = errors.New("invalid scrape url")
	// ErrDuplicateSource indicates two sources share a key
	ErrDuplicateSource = errors.New("duplicate source key")
	// ErrUnknownCategory indicates a category path for an unsupported category
	ErrUnknownCategory = errors.New("unknown category")
)
