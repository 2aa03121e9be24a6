package httpclient

import (
	"fmt"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/jewelmusic/jewelmusic-go/logger"
	"github.com/jewelmusic/jewelmusic-go/resilience"
	"github.com/jewelmusic/jewelmusic-go/version"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultAPIVersion = "v1"
)

// Config configures the HTTP client.
type Config struct {
	// BaseURL is the API base URL, without the version prefix.
	BaseURL string

	// APIVersion is the path prefix joined between BaseURL and request
	// paths. Defaults to "v1".
	APIVersion string

	// Timeout is the per-request timeout (connect/read/write). Defaults
	// to 30s. Configured once; there is no mid-flight cancellation API
	// beyond the request context.
	Timeout time.Duration

	// Auth configures authentication applied to all requests.
	Auth *AuthConfig

	// UserAgent overrides the default SDK User-Agent header.
	UserAgent string

	// Headers are additional static headers applied to all requests.
	Headers map[string]string

	// Retry configures retry behavior. Nil disables retry.
	Retry *resilience.RetryConfig

	// RateLimiter configures client-side request pacing. Nil disables it.
	RateLimiter *resilience.RateLimiterConfig

	// Logger receives request lifecycle events. Nil means silent.
	Logger *logger.Logger

	// Tracer records a span per request when set.
	Tracer trace.Tracer
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.APIVersion == "" {
		c.APIVersion = defaultAPIVersion
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = version.UserAgent()
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("httpclient: base URL is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("httpclient: timeout must be positive")
	}
	return nil
}

// DefaultRetryConfig returns the retry policy used by the SDK: retry
// network errors, 5xx, and 429 with the platform's linear backoff.
func DefaultRetryConfig() *resilience.RetryConfig {
	cfg := resilience.DefaultRetryConfig()
	cfg.RetryIf = IsRetryable
	return &cfg
}
