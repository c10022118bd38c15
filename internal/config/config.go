// Package config provides configuration management for the crawl and merge
// pipeline.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrNoBrand                  = errors.New("spider.brand is required")
	ErrNoSites                  = errors.New("at least one site is required")
	ErrNoEnabledSites           = errors.New("at least one site must be enabled")
	ErrUnknownSite              = errors.New("site name must be 'kijiji' or 'autotrader'")
	ErrInvalidMaxAttempts       = errors.New("retry.max_attempts must be at least 1")
	ErrInvalidInitialDelay      = errors.New("retry.initial_delay_ms must be non-negative")
	ErrInvalidBackoffMultiplier = errors.New("retry.backoff_multiplier must be >= 1.0")
	ErrInvalidTimeout           = errors.New("retry.timeout_sec must be at least 1")
	ErrInvalidPoolBounds        = errors.New("pool.min_workers must be between 1 and pool.max_workers")
	ErrInvalidPagesPerWorker    = errors.New("pool.pages_per_worker must be at least 1")
	ErrMissingOutputDir         = errors.New("output.dir is required")
	ErrInvalidLogLevel          = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete pipeline configuration.
type Config struct {
	Spider     SpiderConfig     `yaml:"spider"`
	Vocabulary VocabularyConfig `yaml:"vocabulary"`
}

// SpiderConfig contains crawl-stage settings.
type SpiderConfig struct {
	Brand    string        `yaml:"brand"`
	Location string        `yaml:"location"`
	Sites    []SiteConfig  `yaml:"sites"`
	Retry    RetryPolicy   `yaml:"retry"`
	Pool     PoolConfig    `yaml:"pool"`
	Output   OutputConfig  `yaml:"output"`
	Logging  LoggingConfig `yaml:"logging"`
}

// SiteConfig represents one listing site adapter.
type SiteConfig struct {
	Name    string `yaml:"name"`
	Enabled bool   `yaml:"enabled"`
}

// RetryPolicy defines retry behavior for page fetches.
type RetryPolicy struct {
	MaxAttempts       int     `yaml:"max_attempts"`
	InitialDelayMs    int     `yaml:"initial_delay_ms"`
	MaxDelayMs        int     `yaml:"max_delay_ms"`
	BackoffMultiplier float64 `yaml:"backoff_multiplier"`
	TimeoutSec        int     `yaml:"timeout_sec"`
}

// PoolConfig bounds the page-fetch worker pool. The pool is sized
// proportionally to the page count and clamped to [MinWorkers, MaxWorkers].
type PoolConfig struct {
	MinWorkers     int `yaml:"min_workers"`
	MaxWorkers     int `yaml:"max_workers"`
	PagesPerWorker int `yaml:"pages_per_worker"`
}

// OutputConfig defines where result files land.
type OutputConfig struct {
	Dir         string `yaml:"dir"`
	PrettyPrint bool   `yaml:"pretty_print"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// VocabularyConfig points at an optional known-model table override.
type VocabularyConfig struct {
	File string `yaml:"file"`
}

// Default returns the configuration used when no file is supplied,
// mirroring the spiders' built-in defaults.
func Default() *Config {
	return &Config{
		Spider: SpiderConfig{
			Brand:    "mini",
			Location: "canada",
			Sites: []SiteConfig{
				{Name: "kijiji", Enabled: true},
				{Name: "autotrader", Enabled: true},
			},
			Retry: RetryPolicy{
				MaxAttempts:       3,
				InitialDelayMs:    500,
				MaxDelayMs:        30000,
				BackoffMultiplier: 2.0,
				TimeoutSec:        10,
			},
			Pool: PoolConfig{
				MinWorkers:     4,
				MaxWorkers:     32,
				PagesPerWorker: 4,
			},
			Output: OutputConfig{
				Dir:         "results",
				PrettyPrint: true,
			},
			Logging: LoggingConfig{
				Level: "info",
			},
		},
	}
}

// Load reads configuration from a YAML file, applies environment
// overrides and validates the result.
func Load(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overlays environment variables (optionally loaded from a .env
// file) onto the configuration. Only operational knobs are overridable.
func (c *Config) ApplyEnv() {
	// Best effort; a missing .env file just means plain env vars.
	_ = godotenv.Load()

	if v := os.Getenv("CARCRAWL_LOG_LEVEL"); v != "" {
		c.Spider.Logging.Level = v
	}

	if v := os.Getenv("CARCRAWL_OUTPUT_DIR"); v != "" {
		c.Spider.Output.Dir = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Spider.Brand == "" {
		return ErrNoBrand
	}

	if len(c.Spider.Sites) == 0 {
		return ErrNoSites
	}

	enabledCount := 0

	for i, site := range c.Spider.Sites {
		if site.Name != "kijiji" && site.Name != "autotrader" {
			return fmt.Errorf("%w: sites[%d] is %q", ErrUnknownSite, i, site.Name)
		}

		if site.Enabled {
			enabledCount++
		}
	}

	if enabledCount == 0 {
		return ErrNoEnabledSites
	}

	if c.Spider.Retry.MaxAttempts < 1 {
		return ErrInvalidMaxAttempts
	}

	if c.Spider.Retry.InitialDelayMs < 0 {
		return ErrInvalidInitialDelay
	}

	if c.Spider.Retry.BackoffMultiplier < 1.0 {
		return ErrInvalidBackoffMultiplier
	}

	if c.Spider.Retry.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	if c.Spider.Pool.MinWorkers < 1 || c.Spider.Pool.MinWorkers > c.Spider.Pool.MaxWorkers {
		return ErrInvalidPoolBounds
	}

	if c.Spider.Pool.PagesPerWorker < 1 {
		return ErrInvalidPagesPerWorker
	}

	if c.Spider.Output.Dir == "" {
		return ErrMissingOutputDir
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Spider.Logging.Level)] {
		return ErrInvalidLogLevel
	}

	return nil
}

// GetEnabledSites returns only enabled sites, in config order.
func (c *Config) GetEnabledSites() []SiteConfig {
	var enabled []SiteConfig

	for _, site := range c.Spider.Sites {
		if site.Enabled {
			enabled = append(enabled, site)
		}
	}

	return enabled
}

// WorkerCount sizes the fetch pool for a page count: one worker per
// PagesPerWorker pages, clamped to the configured bounds. Page fetches are
// independent and network bound, so the pool scales with the crawl rather
// than the host.
func (p *PoolConfig) WorkerCount(pages int) int {
	n := pages / p.PagesPerWorker
	if n < p.MinWorkers {
		n = p.MinWorkers
	}

	if n > p.MaxWorkers {
		n = p.MaxWorkers
	}

	return n
}

// GetRetryDelay calculates exponential backoff delay for attempt number.
func (rp *RetryPolicy) GetRetryDelay(attempt int) time.Duration {
	if attempt <= 1 {
		return 0
	}

	// The first retry (attempt 2) waits the initial delay; the
	// multiplier kicks in from the second retry on.
	delayMs := float64(rp.InitialDelayMs)
	for i := 2; i < attempt; i++ {
		delayMs *= rp.BackoffMultiplier
	}

	if int(delayMs) > rp.MaxDelayMs {
		delayMs = float64(rp.MaxDelayMs)
	}

	return time.Duration(int(delayMs)) * time.Millisecond
}

// GetTimeout returns the per-request timeout duration.
func (rp *RetryPolicy) GetTimeout() time.Duration {
	return time.Duration(rp.TimeoutSec) * time.Second
}

// ResultPath returns the per-site result file path.
func (c *Config) ResultPath(site string) string {
	return fmt.Sprintf("%s/%s_result.json", c.Spider.Output.Dir, site)
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Brand: %s, Location: %s, Sites: %d, Output: %s}",
		c.Spider.Brand,
		c.Spider.Location,
		len(c.Spider.Sites),
		c.Spider.Output.Dir,
	)
}
