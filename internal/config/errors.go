package config

import "errors"

var (
	// ErrIncompleteConfig is returned when a configuration section is missing
	ErrIncompleteConfig = errors.New("incomplete configuration")
	// ErrNilViper is returned when Load is called without a settings source
	ErrNilViper = errors.New("viper instance is required")
)
