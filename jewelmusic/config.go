package jewelmusic

import (
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/jewelmusic/jewelmusic-go/config"
	"github.com/jewelmusic/jewelmusic-go/logger"
	"github.com/jewelmusic/jewelmusic-go/validation"
)

// Platform environments.
const (
	EnvironmentProduction = "production"
	EnvironmentSandbox    = "sandbox"
)

const (
	productionBaseURL = "https://api.jewelmusic.art"
	sandboxBaseURL    = "https://api-sandbox.jewelmusic.art"
)

// Config configures a Client.
type Config struct {
	// APIKey is the JewelMusic API key. Required.
	APIKey string `json:"apiKey" validate:"required"`

	// Environment selects the platform environment, production or
	// sandbox. Defaults to production.
	Environment string `json:"environment" validate:"omitempty,oneof=production sandbox"`

	// BaseURL overrides the environment-derived base URL.
	BaseURL string `json:"baseUrl" validate:"omitempty,url"`

	// Timeout is the per-request timeout. Defaults to 30s.
	Timeout time.Duration `json:"timeout"`

	// MaxRetries is the number of retries after the first attempt for
	// transient failures. Defaults to 3; negative disables retries.
	MaxRetries int `json:"maxRetries"`

	// UserAgent overrides the default SDK User-Agent.
	UserAgent string `json:"userAgent"`

	// Headers are additional static headers sent with every request.
	Headers map[string]string `json:"-"`

	// Logger receives SDK log events. Nil means silent.
	Logger *logger.Logger `json:"-"`

	// Tracer records a span per request when set.
	Tracer trace.Tracer `json:"-"`
}

// ApplyDefaults fills in zero-value fields.
func (c *Config) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = EnvironmentProduction
	}
	if c.BaseURL == "" {
		if c.Environment == EnvironmentSandbox {
			c.BaseURL = sandboxBaseURL
		} else {
			c.BaseURL = productionBaseURL
		}
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = 3
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	return validation.Validate(c)
}

// FromEnv builds a Config from JEWELMUSIC_* environment variables, an
// optional .env file, and an optional yaml config file.
func FromEnv() (Config, error) {
	settings, err := config.Load(config.LoaderOptions{})
	if err != nil {
		return Config{}, err
	}

	log := logger.New(&logger.Config{Level: settings.LogLevel}, "jewelmusic")

	return Config{
		APIKey:      settings.APIKey,
		Environment: settings.Environment,
		BaseURL:     settings.BaseURL,
		Timeout:     settings.Timeout,
		MaxRetries:  settings.MaxRetries,
		UserAgent:   settings.UserAgent,
		Logger:      log,
	}, nil
}
