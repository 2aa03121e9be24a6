package jewelmusic

import (
	"context"
	"net/http"

	"github.com/jewelmusic/jewelmusic-go/httpclient"
)

// Client is the JewelMusic API client. All resource groups share one
// authenticated transport; the client is safe for concurrent use.
type Client struct {
	transport *httpclient.Client

	Tracks        *TracksService
	Analysis      *AnalysisService
	Copilot       *CopilotService
	Distribution  *DistributionService
	Transcription *TranscriptionService
	Analytics     *AnalyticsService
	User          *UserService
	Webhooks      *WebhooksService
}

// New creates a client for the JewelMusic API.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	retry := httpclient.DefaultRetryConfig()
	retry.MaxRetries = cfg.MaxRetries
	if cfg.MaxRetries < 0 {
		retry = nil
	}

	transport, err := httpclient.New(httpclient.Config{
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
		Auth:      httpclient.BearerAuth(cfg.APIKey),
		UserAgent: cfg.UserAgent,
		Headers:   cfg.Headers,
		Retry:     retry,
		Logger:    cfg.Logger,
		Tracer:    cfg.Tracer,
	})
	if err != nil {
		return nil, err
	}

	c := &Client{transport: transport}
	c.Tracks = &TracksService{client: c}
	c.Analysis = &AnalysisService{client: c}
	c.Copilot = &CopilotService{client: c}
	c.Distribution = &DistributionService{client: c}
	c.Transcription = &TranscriptionService{client: c}
	c.Analytics = &AnalyticsService{client: c}
	c.User = &UserService{client: c}
	c.Webhooks = &WebhooksService{client: c}
	return c, nil
}

// NewFromEnv creates a client configured from JEWELMUSIC_* environment
// variables and optional config files.
func NewFromEnv() (*Client, error) {
	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

// Transport exposes the underlying HTTP transport for requests outside
// the typed resource surface.
func (c *Client) Transport() *httpclient.Client {
	return c.transport
}

// Ping checks API connectivity and authentication.
func (c *Client) Ping(ctx context.Context) (*PingResponse, error) {
	ping, err := do[PingResponse](ctx, c, http.MethodGet, "/ping", nil, nil)
	if err != nil {
		return nil, err
	}
	return &ping, nil
}
