package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/jewelmusic/jewelmusic-go/logger"
	"github.com/jewelmusic/jewelmusic-go/observability"
	"github.com/jewelmusic/jewelmusic-go/resilience"
)

// Client issues authenticated requests against the JewelMusic API. It is
// read-only after construction and safe for concurrent use; in-flight
// requests share only the connection pool, credentials, and retry policy.
type Client struct {
	httpClient *http.Client
	config     Config
	rl         *resilience.RateLimiter
	log        *logger.Logger
}

// New creates a new HTTP client with the given configuration.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}

	c := &Client{
		httpClient: &http.Client{
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
			Timeout:   cfg.Timeout,
		},
		config: cfg,
		log:    log.WithComponent("httpclient"),
	}

	if cfg.RateLimiter != nil {
		c.rl = resilience.NewRateLimiter(*cfg.RateLimiter)
	}

	return c, nil
}

// Do executes a request and returns the response. Retries, when
// configured, happen inside this call; the caller observes a single
// operation whose latency includes any retry attempts. The body is
// encoded once up front so every attempt replays the same bytes, even
// when the caller hands us a one-shot io.Reader or file part.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	body, contentType, err := encodeBody(req.Body)
	if err != nil {
		return nil, &Error{Kind: KindValidation, Message: fmt.Sprintf("encode body: %v", err)}
	}

	if c.config.Retry != nil {
		return resilience.Retry(ctx, *c.config.Retry, func() (*Response, error) {
			return c.doOnce(ctx, req, body, contentType)
		})
	}
	return c.doOnce(ctx, req, body, contentType)
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (c *Client) Unwrap() *http.Client {
	return c.httpClient
}

// doOnce executes a single attempt, pacing through the rate limiter.
func (c *Client) doOnce(ctx context.Context, req Request, body []byte, contentType string) (*Response, error) {
	if c.rl != nil {
		if err := c.rl.Wait(ctx); err != nil {
			return nil, NewNetworkError(err)
		}
	}
	return c.executeRequest(ctx, req, body, contentType)
}

// executeRequest builds and sends the HTTP request.
func (c *Client) executeRequest(ctx context.Context, req Request, body []byte, contentType string) (*Response, error) {
	requestID := uuid.NewString()

	httpReq, err := c.buildRequest(ctx, req, requestID, body, contentType)
	if err != nil {
		return nil, err
	}

	ctx, finish := c.startSpan(ctx, req, requestID)
	httpReq = httpReq.WithContext(ctx)

	start := time.Now()
	c.log.Debug("request", logger.Fields(
		logger.FieldMethod, req.Method,
		logger.FieldPath, req.Path,
		logger.FieldRequestID, requestID,
	))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		netErr := NewNetworkError(err)
		finish(0, netErr)
		c.log.Warn("request failed", logger.Fields(
			logger.FieldMethod, req.Method,
			logger.FieldPath, req.Path,
			logger.FieldRequestID, requestID,
			logger.FieldError, err.Error(),
		))
		return nil, netErr
	}
	defer func() { _ = resp.Body.Close() }()

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		netErr := NewNetworkError(fmt.Errorf("read response body: %w", err))
		finish(resp.StatusCode, netErr)
		return nil, netErr
	}

	result := &Response{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Body:       body,
		RequestID:  requestID,
	}

	classErr := ClassifyResponse(resp.StatusCode, body, resp.Header)
	finish(resp.StatusCode, errOrNil(classErr))

	c.log.Debug("response", logger.Fields(
		logger.FieldMethod, req.Method,
		logger.FieldPath, req.Path,
		logger.FieldStatus, resp.StatusCode,
		logger.FieldRequestID, requestID,
		logger.FieldDuration, time.Since(start).Milliseconds(),
	))

	if classErr != nil {
		return result, classErr
	}
	return result, nil
}

// startSpan starts a request span when tracing is configured. The
// returned finish func records status and error and ends the span.
func (c *Client) startSpan(ctx context.Context, req Request, requestID string) (context.Context, func(status int, err error)) {
	if c.config.Tracer == nil {
		return ctx, func(int, error) {}
	}

	ctx, span := c.config.Tracer.Start(ctx, "jewelmusic.request")
	span.SetAttributes(
		attribute.String(observability.AttrHTTPMethod, req.Method),
		attribute.String(observability.AttrHTTPPath, req.Path),
		attribute.String(observability.AttrRequestID, requestID),
	)
	return ctx, func(status int, err error) {
		if status > 0 {
			span.SetAttributes(attribute.Int(observability.AttrHTTPStatus, status))
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}

// buildRequest constructs an *http.Request from the client config, the
// request, and the pre-encoded body snapshot.
func (c *Client) buildRequest(ctx context.Context, req Request, requestID string, body []byte, contentType string) (*http.Request, error) {
	url := c.resolveURL(req.Path)

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, bodyReader)
	if err != nil {
		return nil, &Error{Kind: KindValidation, Message: fmt.Sprintf("create request: %v", err)}
	}

	// Query parameters; empty values are dropped rather than sent.
	if len(req.Query) > 0 {
		q := httpReq.URL.Query()
		for k, v := range req.Query {
			if v != "" {
				q.Set(k, v)
			}
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.config.UserAgent)
	httpReq.Header.Set("X-Request-ID", requestID)

	for k, v := range c.config.Headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	// Multipart bodies carry their own boundary content type; JSON for
	// everything else with a body.
	if body != nil && httpReq.Header.Get("Content-Type") == "" && contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	c.config.Auth.apply(httpReq)

	return httpReq, nil
}

// resolveURL joins base URL, version prefix, and path.
func (c *Client) resolveURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	base := strings.TrimRight(c.config.BaseURL, "/")
	path = strings.TrimLeft(path, "/")
	if c.config.APIVersion != "" && !strings.HasPrefix(path, c.config.APIVersion+"/") && path != c.config.APIVersion {
		path = c.config.APIVersion + "/" + path
	}
	return base + "/" + path
}

// encodeBody snapshots a body value into bytes and a content type.
// One-shot sources (io.Reader, multipart file parts) are drained here,
// exactly once, so retry attempts can replay them.
func encodeBody(body any) ([]byte, string, error) {
	if body == nil {
		return nil, "", nil
	}
	switch v := body.(type) {
	case *MultipartBody:
		r, contentType, err := v.encode()
		if err != nil {
			return nil, "", err
		}
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, "", err
		}
		return data, contentType, nil
	case io.Reader:
		data, err := io.ReadAll(v)
		if err != nil {
			return nil, "", err
		}
		return data, "", nil
	case []byte:
		return v, "", nil
	case string:
		return []byte(v), "text/plain", nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, "", err
		}
		return data, "application/json", nil
	}
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}

func errOrNil(e *Error) error {
	if e == nil {
		return nil
	}
	return e
}
