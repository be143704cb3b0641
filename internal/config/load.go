package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/sources"
)

// Load decodes the merged viper settings into a Config, loads the source
// registry and validates the result.
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		return nil, ErrNilViper
	}

	cfg, err := New()
	if err != nil {
		return nil, err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	if decodeErr := decoder.Decode(v.AllSettings()); decodeErr != nil {
		return nil, fmt.Errorf("failed to decode config: %w", decodeErr)
	}

	if cfg.Sources.File != "" {
		registry, loadErr := sources.NewLoader(cfg.Sources.File).Load()
		if loadErr != nil {
			return nil, fmt.Errorf("load sources: %w", loadErr)
		}
		cfg.registry = registry
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("invalid config: %w", validateErr)
	}

	return cfg, nil
}
