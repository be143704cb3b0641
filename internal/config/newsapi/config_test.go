package newsapi_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/config/newsapi"
)

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newsapi.New()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, newsapi.DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, time.Second, cfg.RetryDelay)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Empty(t, cfg.APIKey)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  *newsapi.Config
		wantErr bool
	}{
		{name: "with key", config: newsapi.New(newsapi.WithAPIKey("k"))},
		{name: "zero retry delay", config: newsapi.New(newsapi.WithRetryDelay(0))},
		{name: "relative endpoint", config: newsapi.New(newsapi.WithEndpoint("/v2/everything")), wantErr: true},
		{name: "empty endpoint", config: newsapi.New(newsapi.WithEndpoint("")), wantErr: true},
		{name: "no attempts", config: newsapi.New(newsapi.WithMaxRetries(0)), wantErr: true},
		{name: "negative delay", config: newsapi.New(newsapi.WithRetryDelay(-time.Second)), wantErr: true},
		{name: "zero timeout", config: newsapi.New(newsapi.WithTimeout(0)), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
