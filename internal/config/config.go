// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Target site
	BaseURL  string `yaml:"base_url"`
	Headless bool   `yaml:"headless"`

	// Batch retrieval knobs. Duration knobs are written in Go duration
	// syntax in the yaml file: nav_timeout: "15s".
	BatchSize   int           `yaml:"batch_size"`
	MaxRetries  int           `yaml:"max_retries"`
	NavTimeout  time.Duration `yaml:"nav_timeout"`
	RetryDelay  time.Duration `yaml:"retry_delay"`
	PacingDelay time.Duration `yaml:"pacing_delay"`

	// Results-page lazy loading
	ScrollRounds int           `yaml:"scroll_rounds"`
	ScrollWait   time.Duration `yaml:"scroll_wait"`

	// Scrape-limit policy
	ScrapeCap          int `yaml:"scrape_cap"`
	ScrapeAllThreshold int `yaml:"scrape_all_threshold"`

	// Per-host request throttling
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`

	// Post-filtering
	FilterByLocation bool `yaml:"filter_by_location"`

	// Optional Telegram run reporting
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
}

// Load reads configs/config.yaml if present, overrides from env, and fills
// in defaults. A missing config file is fine; the defaults match the fixed
// knobs the scraper has always run with.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile("configs/config.yaml")
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config.yaml: %w", err)
		}
	}

	//Override with env vars
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}
	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.TelegramChatID = id
	}
	if v := os.Getenv("FILTER_BY_LOCATION"); v == "1" || v == "true" {
		cfg.FilterByLocation = true
	}

	cfg.ApplyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UnmarshalYAML decodes the duration knobs from Go duration strings
// ("15s", "500ms"); yaml.v3 cannot decode those into time.Duration on
// its own.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		BaseURL            string  `yaml:"base_url"`
		Headless           bool    `yaml:"headless"`
		BatchSize          int     `yaml:"batch_size"`
		MaxRetries         int     `yaml:"max_retries"`
		NavTimeout         string  `yaml:"nav_timeout"`
		RetryDelay         string  `yaml:"retry_delay"`
		PacingDelay        string  `yaml:"pacing_delay"`
		ScrollRounds       int     `yaml:"scroll_rounds"`
		ScrollWait         string  `yaml:"scroll_wait"`
		ScrapeCap          int     `yaml:"scrape_cap"`
		ScrapeAllThreshold int     `yaml:"scrape_all_threshold"`
		RequestsPerSecond  float64 `yaml:"requests_per_second"`
		Burst              int     `yaml:"burst"`
		FilterByLocation   bool    `yaml:"filter_by_location"`
		TelegramToken      string  `yaml:"telegram_token"`
		TelegramChatID     int64   `yaml:"telegram_chat_id"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	c.BaseURL = raw.BaseURL
	c.Headless = raw.Headless
	c.BatchSize = raw.BatchSize
	c.MaxRetries = raw.MaxRetries
	c.ScrollRounds = raw.ScrollRounds
	c.ScrapeCap = raw.ScrapeCap
	c.ScrapeAllThreshold = raw.ScrapeAllThreshold
	c.RequestsPerSecond = raw.RequestsPerSecond
	c.Burst = raw.Burst
	c.FilterByLocation = raw.FilterByLocation
	c.TelegramToken = raw.TelegramToken
	c.TelegramChatID = raw.TelegramChatID

	for _, d := range []struct {
		name string
		in   string
		out  *time.Duration
	}{
		{"nav_timeout", raw.NavTimeout, &c.NavTimeout},
		{"retry_delay", raw.RetryDelay, &c.RetryDelay},
		{"pacing_delay", raw.PacingDelay, &c.PacingDelay},
		{"scroll_wait", raw.ScrollWait, &c.ScrollWait},
	} {
		if d.in == "" {
			continue
		}
		parsed, err := time.ParseDuration(d.in)
		if err != nil {
			return fmt.Errorf("%s: %w", d.name, err)
		}
		*d.out = parsed
	}
	return nil
}

// ApplyDefaults fills every zero-valued knob with its documented default.
func (c *Config) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://www.glassdoor.com"
	}
	if c.BatchSize == 0 {
		c.BatchSize = 5
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = 3
	}
	if c.NavTimeout == 0 {
		c.NavTimeout = 15 * time.Second
	}
	if c.RetryDelay == 0 {
		c.RetryDelay = 1 * time.Second
	}
	if c.PacingDelay == 0 {
		c.PacingDelay = 1 * time.Second
	}
	if c.ScrollRounds == 0 {
		c.ScrollRounds = 5
	}
	if c.ScrollWait == 0 {
		c.ScrollWait = 2 * time.Second
	}
	if c.ScrapeCap == 0 {
		c.ScrapeCap = 60
	}
	if c.ScrapeAllThreshold == 0 {
		c.ScrapeAllThreshold = 20
	}
	if c.RequestsPerSecond == 0 {
		c.RequestsPerSecond = 2
	}
	if c.Burst == 0 {
		c.Burst = 2
	}
}

func (c *Config) validate() error {
	if c.BatchSize < 1 {
		return fmt.Errorf("batch_size must be >= 1, got %d", c.BatchSize)
	}
	if c.MaxRetries < 1 {
		return fmt.Errorf("max_retries must be >= 1, got %d", c.MaxRetries)
	}
	if c.ScrapeCap < c.ScrapeAllThreshold {
		return fmt.Errorf("scrape_cap (%d) must be >= scrape_all_threshold (%d)", c.ScrapeCap, c.ScrapeAllThreshold)
	}
	return nil
}
