package scraper

import "errors"

var (
	// ErrUnknownSource is returned for a source key missing from the registry
	ErrUnknownSource = errors.New("unknown source")
	// ErrUnexpectedStatus is returned when a page does not answer 200
	ErrUnexpectedStatus = errors.New("unexpected status code")
	// ErrEmptyPage is returned when a visit produced no document
	ErrEmptyPage = errors.New("no document received")
	// ErrMissingTitle marks a candidate without a headline
	ErrMissingTitle = errors.New("candidate has no title")
	// ErrInvalidLink marks a candidate whose link cannot be resolved
	ErrInvalidLink = errors.New("candidate link is invalid")
)
