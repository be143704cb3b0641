package newsapi

import "errors"

var (
	// ErrUnexpectedStatus is returned for a non-200 HTTP response
	ErrUnexpectedStatus = errors.New("unexpected status code")
	// ErrAPIStatus is returned when the response body reports a failure
	ErrAPIStatus = errors.New("news api reported an error")
)
