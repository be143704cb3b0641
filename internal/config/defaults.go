package config

import (
	"github.com/spf13/viper"

	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/config/app"
	newsapicfg "github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/config/newsapi"
	scrapercfg "github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/config/scraper"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/logger"
)

// SetDefaults registers every configuration key with its default value.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("app.name", app.DefaultName)
	v.SetDefault("app.version", app.DefaultVersion)
	v.SetDefault("app.environment", app.DefaultEnvironment)
	v.SetDefault("app.debug", false)

	v.SetDefault("logger.level", string(logger.DefaultLevel))
	v.SetDefault("logger.encoding", logger.DefaultEncoding)
	v.SetDefault("logger.development", logger.DefaultDevelopment)

	v.SetDefault("newsapi.api_key", "")
	v.SetDefault("newsapi.endpoint", newsapicfg.DefaultEndpoint)
	v.SetDefault("newsapi.language", newsapicfg.DefaultLanguage)
	v.SetDefault("newsapi.max_retries", newsapicfg.DefaultMaxRetries)
	v.SetDefault("newsapi.retry_delay", newsapicfg.DefaultRetryDelay.String())
	v.SetDefault("newsapi.timeout", newsapicfg.DefaultTimeout.String())

	v.SetDefault("scraper.user_agent", scrapercfg.DefaultUserAgent)
	v.SetDefault("scraper.accept", scrapercfg.DefaultAccept)
	v.SetDefault("scraper.accept_language", scrapercfg.DefaultAcceptLanguage)
	v.SetDefault("scraper.timeout", scrapercfg.DefaultTimeout.String())
	v.SetDefault("scraper.workers", scrapercfg.DefaultWorkers)

	v.SetDefault("sources.file", "")
}

// envBindings maps configuration keys to the environment variables that
// override them, in addition to the automatic KEY_NAME mapping.
var envBindings = map[string][]string{
	"app.environment":     {"APP_ENV"},
	"app.debug":           {"APP_DEBUG"},
	"logger.level":        {"LOG_LEVEL"},
	"logger.encoding":     {"LOG_FORMAT"},
	"newsapi.api_key":     {"NEWS_API_KEY"},
	"newsapi.endpoint":    {"NEWS_API_ENDPOINT"},
	"newsapi.timeout":     {"NEWS_API_TIMEOUT"},
	"newsapi.max_retries": {"NEWS_API_MAX_RETRIES"},
	"scraper.user_agent":  {"SCRAPER_USER_AGENT", "USER_AGENT"},
	"scraper.timeout":     {"SCRAPER_TIMEOUT"},
	"scraper.workers":     {"SCRAPER_WORKERS"},
	"sources.file":        {"SOURCES_FILE"},
}

// BindEnv binds the named environment variables to their keys.
func BindEnv(v *viper.Viper) error {
	for key, names := range envBindings {
		args := append([]string{key}, names...)
		if err := v.BindEnv(args...); err != nil {
			return err
		}
	}
	return nil
}
