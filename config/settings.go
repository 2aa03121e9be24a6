package config

import (
	"fmt"
	"time"
)

// Settings holds the client settings readable from files and environment.
type Settings struct {
	// APIKey is the JewelMusic API key (JEWELMUSIC_API_KEY).
	APIKey string `yaml:"api_key" mapstructure:"api_key"`
	// Environment selects a platform environment: production or sandbox
	// (JEWELMUSIC_ENVIRONMENT).
	Environment string `yaml:"environment" mapstructure:"environment"`
	// BaseURL overrides the environment-derived API base URL
	// (JEWELMUSIC_BASE_URL).
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	// Timeout is the per-request timeout (JEWELMUSIC_TIMEOUT).
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
	// MaxRetries is the retry budget for transient failures
	// (JEWELMUSIC_MAX_RETRIES).
	MaxRetries int `yaml:"max_retries" mapstructure:"max_retries"`
	// UserAgent overrides the default User-Agent header
	// (JEWELMUSIC_USER_AGENT).
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`
	// LogLevel sets SDK log verbosity (JEWELMUSIC_LOG_LEVEL).
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
}

// ApplyDefaults fills in zero-value fields.
func (s *Settings) ApplyDefaults() {
	if s.Environment == "" {
		s.Environment = "production"
	}
	if s.Timeout <= 0 {
		s.Timeout = 30 * time.Second
	}
	if s.MaxRetries < 0 {
		s.MaxRetries = 0
	}
	if s.LogLevel == "" {
		s.LogLevel = "info"
	}
}

// Validate checks that the settings are usable.
func (s *Settings) Validate() error {
	if s.APIKey == "" {
		return fmt.Errorf("config: api_key is required (set JEWELMUSIC_API_KEY)")
	}
	switch s.Environment {
	case "production", "sandbox":
	default:
		return fmt.Errorf("config: environment must be production or sandbox (got: %s)", s.Environment)
	}
	return nil
}
