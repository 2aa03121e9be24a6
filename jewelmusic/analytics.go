package jewelmusic

import (
	"context"
	"net/http"
	"strings"

	"github.com/jewelmusic/jewelmusic-go/validation"
)

// AnalyticsService provides streaming and royalty analytics.
type AnalyticsService struct {
	client *Client
}

// AnalyticsQuery selects a date range and grouping for analytics.
type AnalyticsQuery struct {
	// StartDate is the inclusive range start (YYYY-MM-DD). Required.
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	// EndDate is the inclusive range end (YYYY-MM-DD). Required.
	EndDate     string   `json:"endDate" validate:"required,datetime=2006-01-02"`
	GroupBy     string   `json:"groupBy,omitempty"`
	Platforms   []string `json:"platforms,omitempty"`
	Territories []string `json:"territories,omitempty"`
	Tracks      []string `json:"tracks,omitempty"`
	Metrics     []string `json:"metrics,omitempty"`
}

// RoyaltyReportParams configures a royalty report query.
type RoyaltyReportParams struct {
	StartDate      string   `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate        string   `json:"endDate" validate:"required,datetime=2006-01-02"`
	Currency       string   `json:"currency,omitempty"`
	IncludePending bool     `json:"includePending,omitempty"`
	GroupBy        string   `json:"groupBy,omitempty"`
	Platforms      []string `json:"platforms,omitempty"`
}

// RoyaltyReport is one period's royalty statement.
type RoyaltyReport struct {
	ID        string        `json:"id"`
	Period    string        `json:"period"`
	Currency  string        `json:"currency"`
	Total     float64       `json:"total"`
	Pending   float64       `json:"pending,omitempty"`
	Breakdown []RoyaltyLine `json:"breakdown,omitempty"`
	Status    string        `json:"status"`
}

// RoyaltyLine is one component of a royalty report.
type RoyaltyLine struct {
	Platform string  `json:"platform"`
	TrackID  string  `json:"trackId,omitempty"`
	Streams  int64   `json:"streams"`
	Amount   float64 `json:"amount"`
}

// InsightsParams configures the insights query.
type InsightsParams struct {
	Period                 string   `json:"period,omitempty"`
	IncludeRecommendations bool     `json:"includeRecommendations,omitempty"`
	Focus                  string   `json:"focus,omitempty"`
	Tracks                 []string `json:"tracks,omitempty"`
}

// Insights are analytics findings and recommendations.
type Insights struct {
	Period          string   `json:"period"`
	Highlights      []string `json:"highlights,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
	TopTracks       []Track  `json:"topTracks,omitempty"`
}

// RealtimeParams configures the realtime analytics feed.
type RealtimeParams struct {
	Period         string   `json:"period,omitempty"`
	UpdateInterval int      `json:"updateInterval,omitempty"`
	Metrics        []string `json:"metrics,omitempty"`
}

// RealtimeAnalytics is a point-in-time snapshot of listener activity.
type RealtimeAnalytics struct {
	Timestamp  string           `json:"timestamp"`
	Listeners  int64            `json:"listeners"`
	Streams    int64            `json:"streams,omitempty"`
	ByPlatform map[string]int64 `json:"byPlatform,omitempty"`
}

// RevenueProjectionParams configures revenue projections.
type RevenueProjectionParams struct {
	Period                    string   `json:"period,omitempty"`
	Tracks                    []string `json:"tracks,omitempty"`
	Platforms                 []string `json:"platforms,omitempty"`
	IncludeConfidenceInterval bool     `json:"includeConfidenceInterval,omitempty"`
}

// RevenueProjection is a forward-looking revenue estimate.
type RevenueProjection struct {
	Period    string  `json:"period"`
	Currency  string  `json:"currency,omitempty"`
	Projected float64 `json:"projected"`
	Low       float64 `json:"low,omitempty"`
	High      float64 `json:"high,omitempty"`
}

// ExportParams configures an analytics data export.
type ExportParams struct {
	Query          AnalyticsQuery `json:"query"`
	Format         string         `json:"format" validate:"required"`
	IncludeCharts  bool           `json:"includeCharts,omitempty"`
	Email          string         `json:"email,omitempty" validate:"omitempty,email"`
	CustomTemplate string         `json:"customTemplate,omitempty"`
}

// ExportJob is an asynchronous export; poll or await the emailed link.
type ExportJob struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	URL    string `json:"url,omitempty"`
}

// AlertCondition is the trigger rule for an analytics alert.
type AlertCondition struct {
	Metric    string  `json:"metric" validate:"required"`
	Operator  string  `json:"operator" validate:"required"`
	Threshold float64 `json:"threshold"`
	Period    string  `json:"period,omitempty"`
}

// AlertParams describes a new analytics alert.
type AlertParams struct {
	Name          string         `json:"name" validate:"required"`
	Condition     AlertCondition `json:"condition" validate:"required"`
	Notifications []string       `json:"notifications" validate:"required,min=1"`
	Email         string         `json:"email,omitempty" validate:"omitempty,email"`
	WebhookURL    string         `json:"webhookUrl,omitempty" validate:"omitempty,url"`
	Phone         string         `json:"phone,omitempty"`
}

// Alert is a configured analytics alert.
type Alert struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// Overview is the account-level analytics summary.
type Overview struct {
	Summary   AnalyticsSummary `json:"summary"`
	TopTracks []Track          `json:"topTracks,omitempty"`
	Platforms []AnalyticsPoint `json:"platforms,omitempty"`
}

// Streams queries streaming analytics for a date range.
func (s *AnalyticsService) Streams(ctx context.Context, query AnalyticsQuery) (*AnalyticsData, error) {
	return s.rangeQuery(ctx, "/analytics/streams", query)
}

// Listeners queries listener analytics for a date range.
func (s *AnalyticsService) Listeners(ctx context.Context, query AnalyticsQuery) (*AnalyticsData, error) {
	return s.rangeQuery(ctx, "/analytics/listeners", query)
}

// PlatformMetrics queries per-platform analytics for a date range.
func (s *AnalyticsService) PlatformMetrics(ctx context.Context, query AnalyticsQuery) (*AnalyticsData, error) {
	return s.rangeQuery(ctx, "/analytics/platform-metrics", query)
}

// GeographicalData queries per-territory analytics for a date range.
func (s *AnalyticsService) GeographicalData(ctx context.Context, query AnalyticsQuery) (*AnalyticsData, error) {
	return s.rangeQuery(ctx, "/analytics/geographical", query)
}

// Trends queries trend analytics for a date range.
func (s *AnalyticsService) Trends(ctx context.Context, query AnalyticsQuery) (*AnalyticsData, error) {
	return s.rangeQuery(ctx, "/analytics/trends", query)
}

// TrackAnalytics queries analytics for a single track.
func (s *AnalyticsService) TrackAnalytics(ctx context.Context, trackID string, query AnalyticsQuery) (*AnalyticsData, error) {
	return s.rangeQuery(ctx, "/analytics/tracks/"+trackID, query)
}

// Realtime returns a snapshot of current listener activity.
func (s *AnalyticsService) Realtime(ctx context.Context, params *RealtimeParams) (*RealtimeAnalytics, error) {
	query := map[string]string{}
	if params != nil {
		query = map[string]string{
			"period":         params.Period,
			"updateInterval": pageValue(params.UpdateInterval),
			"metrics":        strings.Join(params.Metrics, ","),
		}
	}
	snapshot, err := do[RealtimeAnalytics](ctx, s.client, http.MethodGet, "/analytics/realtime", query, nil)
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// RoyaltyReports lists royalty reports for a period.
func (s *AnalyticsService) RoyaltyReports(ctx context.Context, params RoyaltyReportParams) ([]RoyaltyReport, error) {
	if err := validation.Validate(params); err != nil {
		return nil, err
	}
	query := map[string]string{
		"startDate": params.StartDate,
		"endDate":   params.EndDate,
		"currency":  params.Currency,
		"groupBy":   params.GroupBy,
		"platforms": strings.Join(params.Platforms, ","),
	}
	if params.IncludePending {
		query["includePending"] = "true"
	}
	return do[[]RoyaltyReport](ctx, s.client, http.MethodGet, "/analytics/royalties/reports", query, nil)
}

// DownloadRoyaltyStatement downloads a royalty statement document in
// the given format (pdf, csv).
func (s *AnalyticsService) DownloadRoyaltyStatement(ctx context.Context, reportID, format string) (string, error) {
	query := map[string]string{"format": format}
	return do[string](ctx, s.client, http.MethodGet, "/analytics/royalties/statements/"+reportID, query, nil)
}

// RevenueProjections estimates future royalty revenue.
func (s *AnalyticsService) RevenueProjections(ctx context.Context, params *RevenueProjectionParams) (*RevenueProjection, error) {
	query := map[string]string{}
	if params != nil {
		query = map[string]string{
			"period":    params.Period,
			"tracks":    strings.Join(params.Tracks, ","),
			"platforms": strings.Join(params.Platforms, ","),
		}
		if params.IncludeConfidenceInterval {
			query["includeConfidenceInterval"] = "true"
		}
	}
	projection, err := do[RevenueProjection](ctx, s.client, http.MethodGet, "/analytics/royalties/projections", query, nil)
	if err != nil {
		return nil, err
	}
	return &projection, nil
}

// Export starts an asynchronous analytics export.
func (s *AnalyticsService) Export(ctx context.Context, params ExportParams) (*ExportJob, error) {
	if err := validation.Validate(params); err != nil {
		return nil, err
	}
	job, err := do[ExportJob](ctx, s.client, http.MethodPost, "/analytics/export", nil, params)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// SetupAlert creates an analytics alert.
func (s *AnalyticsService) SetupAlert(ctx context.Context, params AlertParams) (*Alert, error) {
	if err := validation.Validate(params); err != nil {
		return nil, err
	}
	alert, err := do[Alert](ctx, s.client, http.MethodPost, "/analytics/alerts", nil, params)
	if err != nil {
		return nil, err
	}
	return &alert, nil
}

// Insights returns analytics findings and recommendations.
func (s *AnalyticsService) Insights(ctx context.Context, params *InsightsParams) (*Insights, error) {
	query := map[string]string{}
	if params != nil {
		query = map[string]string{
			"period": params.Period,
			"focus":  params.Focus,
			"tracks": strings.Join(params.Tracks, ","),
		}
		if params.IncludeRecommendations {
			query["includeRecommendations"] = "true"
		}
	}
	insights, err := do[Insights](ctx, s.client, http.MethodGet, "/analytics/insights", query, nil)
	if err != nil {
		return nil, err
	}
	return &insights, nil
}

// Overview returns the account-level analytics summary.
func (s *AnalyticsService) Overview(ctx context.Context, period string) (*Overview, error) {
	query := map[string]string{"period": period}
	overview, err := do[Overview](ctx, s.client, http.MethodGet, "/analytics/overview", query, nil)
	if err != nil {
		return nil, err
	}
	return &overview, nil
}

// rangeQuery validates a date-range query and issues it against path.
func (s *AnalyticsService) rangeQuery(ctx context.Context, path string, query AnalyticsQuery) (*AnalyticsData, error) {
	if err := validation.Validate(query); err != nil {
		return nil, err
	}
	data, err := do[AnalyticsData](ctx, s.client, http.MethodGet, path, query.values(), nil)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// values renders the query as URL parameters. Empty values are dropped
// by the transport.
func (q AnalyticsQuery) values() map[string]string {
	return map[string]string{
		"startDate":   q.StartDate,
		"endDate":     q.EndDate,
		"groupBy":     q.GroupBy,
		"platforms":   strings.Join(q.Platforms, ","),
		"territories": strings.Join(q.Territories, ","),
		"tracks":      strings.Join(q.Tracks, ","),
		"metrics":     strings.Join(q.Metrics, ","),
	}
}
