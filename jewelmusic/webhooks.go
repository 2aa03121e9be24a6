package jewelmusic

import (
	"context"
	"net/http"
	"strings"

	"github.com/jewelmusic/jewelmusic-go/validation"
)

// WebhooksService manages webhook endpoints and delivery history.
// Signature verification for received deliveries lives in the webhook
// package.
type WebhooksService struct {
	client *Client
}

// CreateWebhookParams describes a new webhook endpoint.
type CreateWebhookParams struct {
	URL         string            `json:"url" validate:"required,url"`
	Events      []string          `json:"events" validate:"required,min=1"`
	Secret      string            `json:"secret,omitempty"`
	Active      *bool             `json:"active,omitempty"`
	Description string            `json:"description,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
}

// UpdateWebhookParams updates webhook endpoint fields.
type UpdateWebhookParams struct {
	URL         string            `json:"url,omitempty" validate:"omitempty,url"`
	Events      []string          `json:"events,omitempty"`
	Secret      string            `json:"secret,omitempty"`
	Active      *bool             `json:"active,omitempty"`
	Description string            `json:"description,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
}

// ListWebhooksParams filters and pages the webhook listing.
type ListWebhooksParams struct {
	PageParams
	Active *bool    `json:"active,omitempty"`
	Events []string `json:"events,omitempty"`
}

// ListDeliveriesParams filters and pages the delivery history.
type ListDeliveriesParams struct {
	PageParams
	Status    string `json:"status,omitempty"`
	EventType string `json:"eventType,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// TestResult reports the outcome of a webhook test delivery.
type TestResult struct {
	DeliveryID string `json:"deliveryId"`
	Status     string `json:"status"`
	StatusCode int    `json:"statusCode,omitempty"`
	Duration   int    `json:"durationMs,omitempty"`
}

// StatisticsParams selects a window for delivery statistics.
type StatisticsParams struct {
	Period    string `json:"period,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	GroupBy   string `json:"groupBy,omitempty"`
}

// WebhookStatistics summarizes a webhook's delivery outcomes.
type WebhookStatistics struct {
	Total       int64            `json:"total"`
	Succeeded   int64            `json:"succeeded"`
	Failed      int64            `json:"failed"`
	SuccessRate float64          `json:"successRate,omitempty"`
	ByEvent     map[string]int64 `json:"byEvent,omitempty"`
}

// EventType describes one subscribable webhook event type.
type EventType struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// List lists webhook endpoints.
func (s *WebhooksService) List(ctx context.Context, params *ListWebhooksParams) (*Page[WebhookEndpoint], error) {
	query := map[string]string{}
	if params != nil {
		query = map[string]string{
			"page":    pageValue(params.Page),
			"perPage": pageValue(params.PerPage),
			"events":  strings.Join(params.Events, ","),
		}
		if params.Active != nil {
			if *params.Active {
				query["active"] = "true"
			} else {
				query["active"] = "false"
			}
		}
	}
	return doPage[WebhookEndpoint](ctx, s.client, "/webhooks", query)
}

// Get retrieves a webhook endpoint by ID.
func (s *WebhooksService) Get(ctx context.Context, webhookID string) (*WebhookEndpoint, error) {
	wh, err := do[WebhookEndpoint](ctx, s.client, http.MethodGet, "/webhooks/"+webhookID, nil, nil)
	if err != nil {
		return nil, err
	}
	return &wh, nil
}

// Create registers a new webhook endpoint. The response includes the
// signing secret; store it for verification.
func (s *WebhooksService) Create(ctx context.Context, params CreateWebhookParams) (*WebhookEndpoint, error) {
	if err := validation.Validate(params); err != nil {
		return nil, err
	}
	wh, err := do[WebhookEndpoint](ctx, s.client, http.MethodPost, "/webhooks", nil, params)
	if err != nil {
		return nil, err
	}
	return &wh, nil
}

// Update changes a webhook endpoint's configuration.
func (s *WebhooksService) Update(ctx context.Context, webhookID string, params UpdateWebhookParams) (*WebhookEndpoint, error) {
	if err := validation.Validate(params); err != nil {
		return nil, err
	}
	wh, err := do[WebhookEndpoint](ctx, s.client, http.MethodPut, "/webhooks/"+webhookID, nil, params)
	if err != nil {
		return nil, err
	}
	return &wh, nil
}

// Delete removes a webhook endpoint.
func (s *WebhooksService) Delete(ctx context.Context, webhookID string) error {
	_, err := do[struct{}](ctx, s.client, http.MethodDelete, "/webhooks/"+webhookID, nil, nil)
	return err
}

// Test sends a test event to the endpoint. An empty event type sends
// the platform's webhook.test event.
func (s *WebhooksService) Test(ctx context.Context, webhookID, eventType string) (*TestResult, error) {
	if eventType == "" {
		eventType = "webhook.test"
	}
	body := map[string]string{"eventType": eventType}
	result, err := do[TestResult](ctx, s.client, http.MethodPost, "/webhooks/"+webhookID+"/test", nil, body)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Deliveries lists a webhook's delivery history.
func (s *WebhooksService) Deliveries(ctx context.Context, webhookID string, params *ListDeliveriesParams) (*Page[WebhookDelivery], error) {
	query := map[string]string{}
	if params != nil {
		query = map[string]string{
			"page":      pageValue(params.Page),
			"perPage":   pageValue(params.PerPage),
			"status":    params.Status,
			"eventType": params.EventType,
			"startDate": params.StartDate,
			"endDate":   params.EndDate,
		}
	}
	return doPage[WebhookDelivery](ctx, s.client, "/webhooks/"+webhookID+"/deliveries", query)
}

// GetDelivery retrieves one delivery attempt.
func (s *WebhooksService) GetDelivery(ctx context.Context, webhookID, deliveryID string) (*WebhookDelivery, error) {
	delivery, err := do[WebhookDelivery](ctx, s.client, http.MethodGet,
		"/webhooks/"+webhookID+"/deliveries/"+deliveryID, nil, nil)
	if err != nil {
		return nil, err
	}
	return &delivery, nil
}

// Statistics summarizes a webhook's delivery outcomes over a window.
func (s *WebhooksService) Statistics(ctx context.Context, webhookID string, params *StatisticsParams) (*WebhookStatistics, error) {
	query := map[string]string{}
	if params != nil {
		query = map[string]string{
			"period":    params.Period,
			"startDate": params.StartDate,
			"endDate":   params.EndDate,
			"groupBy":   params.GroupBy,
		}
	}
	stats, err := do[WebhookStatistics](ctx, s.client, http.MethodGet, "/webhooks/"+webhookID+"/statistics", query, nil)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// Redeliver retries a failed delivery.
func (s *WebhooksService) Redeliver(ctx context.Context, webhookID, deliveryID string) (*WebhookDelivery, error) {
	delivery, err := do[WebhookDelivery](ctx, s.client, http.MethodPost,
		"/webhooks/"+webhookID+"/deliveries/"+deliveryID+"/retry", nil, nil)
	if err != nil {
		return nil, err
	}
	return &delivery, nil
}

// EventTypes lists the subscribable webhook event types.
func (s *WebhooksService) EventTypes(ctx context.Context) ([]EventType, error) {
	return do[[]EventType](ctx, s.client, http.MethodGet, "/webhooks/events/types", nil, nil)
}
