// Package common provides shared utilities for command implementations.
package common

import (
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/config"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/logger"
)

// CommandDeps holds common dependencies for all commands.
type CommandDeps struct {
	Logger logger.Interface
	Config config.Interface
	// RunID tags every log line of one invocation
	RunID string
}

// Validate ensures all required dependencies are present.
func (d CommandDeps) Validate() error {
	if d.Logger == nil {
		return ErrLoggerRequired
	}
	if d.Config == nil {
		return ErrConfigRequired
	}
	return nil
}
