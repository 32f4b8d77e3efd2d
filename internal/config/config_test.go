package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, "https://www.glassdoor.com", cfg.BaseURL)
	assert.Equal(t, 5, cfg.BatchSize)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 15*time.Second, cfg.NavTimeout)
	assert.Equal(t, 1*time.Second, cfg.RetryDelay)
	assert.Equal(t, 1*time.Second, cfg.PacingDelay)
	assert.Equal(t, 5, cfg.ScrollRounds)
	assert.Equal(t, 2*time.Second, cfg.ScrollWait)
	assert.Equal(t, 60, cfg.ScrapeCap)
	assert.Equal(t, 20, cfg.ScrapeAllThreshold)
	assert.False(t, cfg.FilterByLocation)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{BatchSize: 10, NavTimeout: 30 * time.Second}
	cfg.ApplyDefaults()

	assert.Equal(t, 10, cfg.BatchSize)
	assert.Equal(t, 30*time.Second, cfg.NavTimeout)
	assert.Equal(t, 3, cfg.MaxRetries)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()
	require.NoError(t, cfg.validate())

	bad := &Config{}
	bad.ApplyDefaults()
	bad.ScrapeCap = 10 // below the scrape-all threshold
	assert.Error(t, bad.validate())
}

// Duration knobs in the yaml file are written in Go duration syntax.
func TestUnmarshalYAML_DurationStrings(t *testing.T) {
	doc := []byte(`
base_url: https://www.glassdoor.co.uk
batch_size: 8
nav_timeout: "20s"
retry_delay: "500ms"
pacing_delay: "2s"
scroll_wait: "1s"
filter_by_location: true
`)

	cfg := &Config{}
	require.NoError(t, yaml.Unmarshal(doc, cfg))

	assert.Equal(t, "https://www.glassdoor.co.uk", cfg.BaseURL)
	assert.Equal(t, 8, cfg.BatchSize)
	assert.Equal(t, 20*time.Second, cfg.NavTimeout)
	assert.Equal(t, 500*time.Millisecond, cfg.RetryDelay)
	assert.Equal(t, 2*time.Second, cfg.PacingDelay)
	assert.Equal(t, 1*time.Second, cfg.ScrollWait)
	assert.True(t, cfg.FilterByLocation)
}

func TestUnmarshalYAML_OmittedDurationsStayZero(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, yaml.Unmarshal([]byte("batch_size: 3\n"), cfg))

	assert.Equal(t, 3, cfg.BatchSize)
	assert.Zero(t, cfg.NavTimeout) // filled by ApplyDefaults later
}

func TestUnmarshalYAML_BadDuration(t *testing.T) {
	cfg := &Config{}
	err := yaml.Unmarshal([]byte(`nav_timeout: "fifteen"`), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nav_timeout")
}

func TestLoad_NoConfigFileUsesDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")
	t.Setenv("FILTER_BY_LOCATION", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.BatchSize)
	assert.Equal(t, 15*time.Second, cfg.NavTimeout)
	assert.Empty(t, cfg.TelegramToken)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "token-123")
	t.Setenv("TELEGRAM_CHAT_ID", "42")
	t.Setenv("FILTER_BY_LOCATION", "1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "token-123", cfg.TelegramToken)
	assert.Equal(t, int64(42), cfg.TelegramChatID)
	assert.True(t, cfg.FilterByLocation)
}

func TestLoad_BadChatID(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "token-123")
	t.Setenv("TELEGRAM_CHAT_ID", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}
