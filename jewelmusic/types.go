package jewelmusic

import "time"

// Track is an uploaded music track.
type Track struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Artist      string            `json:"artist"`
	Album       string            `json:"album,omitempty"`
	Genre       string            `json:"genre,omitempty"`
	Duration    int               `json:"duration"`
	Status      string            `json:"status"`
	UploadedAt  time.Time         `json:"uploadedAt"`
	ProcessedAt *time.Time        `json:"processedAt,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	FileURL     string            `json:"fileUrl,omitempty"`
}

// TrackMetadata describes a track for upload and metadata updates.
type TrackMetadata struct {
	Title       string            `json:"title" validate:"required"`
	Artist      string            `json:"artist" validate:"required"`
	Album       string            `json:"album,omitempty"`
	Genre       string            `json:"genre,omitempty"`
	ReleaseDate string            `json:"releaseDate,omitempty"`
	Tags        []string          `json:"tags,omitempty"`
	Custom      map[string]string `json:"custom,omitempty"`
}

// Analysis is an audio analysis job and its results.
type Analysis struct {
	ID          string            `json:"id"`
	TrackID     string            `json:"trackId"`
	Status      string            `json:"status"`
	Tempo       TempoAnalysis     `json:"tempo"`
	Key         KeyAnalysis       `json:"key"`
	Structure   StructureAnalysis `json:"structure"`
	Quality     QualityAnalysis   `json:"quality"`
	CreatedAt   time.Time         `json:"createdAt"`
	CompletedAt *time.Time        `json:"completedAt,omitempty"`
}

// TempoAnalysis is the tempo portion of an analysis.
type TempoAnalysis struct {
	BPM           float64 `json:"bpm"`
	Confidence    float64 `json:"confidence"`
	TimeSignature string  `json:"timeSignature,omitempty"`
}

// KeyAnalysis is the musical key portion of an analysis.
type KeyAnalysis struct {
	Key        string  `json:"key"`
	Mode       string  `json:"mode"`
	Confidence float64 `json:"confidence"`
}

// StructureAnalysis is the song structure portion of an analysis.
type StructureAnalysis struct {
	Sections []Section `json:"sections"`
	Form     string    `json:"form,omitempty"`
}

// Section is one segment of a song's structure.
type Section struct {
	Type      string  `json:"type"`
	StartTime float64 `json:"startTime"`
	EndTime   float64 `json:"endTime"`
	Duration  float64 `json:"duration"`
}

// QualityAnalysis is the audio quality portion of an analysis.
type QualityAnalysis struct {
	OverallScore float64            `json:"overallScore"`
	Details      map[string]float64 `json:"details"`
	Issues       []string           `json:"issues,omitempty"`
}

// Generation is an AI-generated artifact (melody, harmony, lyrics, song).
type Generation struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"`
	Status      string         `json:"status"`
	Parameters  map[string]any `json:"parameters,omitempty"`
	Result      any            `json:"result,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	CompletedAt *time.Time     `json:"completedAt,omitempty"`
	PreviewURL  string         `json:"previewUrl,omitempty"`
	DownloadURL string         `json:"downloadUrl,omitempty"`
}

// Release is a distribution release.
type Release struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"`
	Title       string         `json:"title"`
	Artist      string         `json:"artist"`
	ReleaseDate string         `json:"releaseDate"`
	Status      string         `json:"status"`
	Tracks      []ReleaseTrack `json:"tracks"`
	Platforms   []string       `json:"platforms"`
	Territories []string       `json:"territories"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// ReleaseTrack is one track entry within a release.
type ReleaseTrack struct {
	TrackID  string `json:"trackId" validate:"required"`
	Title    string `json:"title,omitempty"`
	Duration int    `json:"duration,omitempty"`
	ISRC     string `json:"isrc,omitempty"`
	Position int    `json:"position,omitempty"`
}

// Transcription is a lyrics transcription job and its results.
type Transcription struct {
	ID          string     `json:"id"`
	TrackID     string     `json:"trackId,omitempty"`
	Status      string     `json:"status"`
	Language    string     `json:"language"`
	Text        string     `json:"text"`
	Segments    []Segment  `json:"segments,omitempty"`
	Confidence  float64    `json:"confidence"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// Segment is one timed portion of a transcription.
type Segment struct {
	Text       string  `json:"text"`
	StartTime  float64 `json:"startTime"`
	EndTime    float64 `json:"endTime"`
	Confidence float64 `json:"confidence"`
	Speaker    string  `json:"speaker,omitempty"`
}

// UserProfile is the account owner's profile.
type UserProfile struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Email        string            `json:"email"`
	Bio          string            `json:"bio,omitempty"`
	Website      string            `json:"website,omitempty"`
	Location     string            `json:"location,omitempty"`
	Subscription Subscription      `json:"subscription"`
	SocialLinks  map[string]string `json:"socialLinks,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// Subscription is the account's plan information.
type Subscription struct {
	Plan            string    `json:"plan"`
	Status          string    `json:"status"`
	NextBillingDate time.Time `json:"nextBillingDate"`
	Features        []string  `json:"features"`
}

// APIKey is an issued API credential. Key is only populated on
// creation and regeneration responses.
type APIKey struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Key            string     `json:"key,omitempty"`
	Prefix         string     `json:"prefix,omitempty"`
	Scopes         []string   `json:"scopes"`
	RateLimit      int        `json:"rateLimit,omitempty"`
	IPRestrictions []string   `json:"ipRestrictions,omitempty"`
	Active         bool       `json:"active"`
	ExpiresAt      *time.Time `json:"expiresAt,omitempty"`
	LastUsedAt     *time.Time `json:"lastUsedAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// AnalyticsData is a queried analytics series with its summary.
type AnalyticsData struct {
	Summary    AnalyticsSummary `json:"summary"`
	Data       []AnalyticsPoint `json:"data"`
	Pagination Pagination       `json:"pagination"`
}

// AnalyticsSummary aggregates an analytics query.
type AnalyticsSummary struct {
	TotalStreams   int64   `json:"totalStreams"`
	TotalListeners int64   `json:"totalListeners"`
	TotalRevenue   float64 `json:"totalRevenue"`
	Period         string  `json:"period"`
}

// AnalyticsPoint is one data point in an analytics series.
type AnalyticsPoint struct {
	Date     string           `json:"date"`
	Metrics  map[string]int64 `json:"metrics"`
	Revenue  float64          `json:"revenue,omitempty"`
	Platform string           `json:"platform,omitempty"`
}

// WebhookEndpoint is a configured webhook destination.
type WebhookEndpoint struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Events      []string  `json:"events"`
	Secret      string    `json:"secret,omitempty"`
	Active      bool      `json:"active"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// WebhookDelivery is one delivery attempt of a webhook event.
type WebhookDelivery struct {
	ID          string     `json:"id"`
	WebhookID   string     `json:"webhookId"`
	EventType   string     `json:"eventType"`
	Status      string     `json:"status"`
	StatusCode  int        `json:"statusCode,omitempty"`
	Attempts    int        `json:"attempts"`
	CreatedAt   time.Time  `json:"createdAt"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
}

// Pagination carries list paging information.
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"perPage"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Page is one page of a listed resource.
type Page[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// PageParams selects a page when listing resources. Zero values fall
// back to server defaults.
type PageParams struct {
	Page    int `json:"page,omitempty"`
	PerPage int `json:"perPage,omitempty"`
}

// PingResponse is the /ping health check payload.
type PingResponse struct {
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}
