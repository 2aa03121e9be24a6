package jewelmusic

import (
	"context"
	"net/http"

	"github.com/jewelmusic/jewelmusic-go/validation"
)

// DistributionService manages releases and platform distribution.
type DistributionService struct {
	client *Client
}

// CreateReleaseParams describes a new release.
type CreateReleaseParams struct {
	// Type is the release type: single, ep, or album. Required.
	Type        string         `json:"type" validate:"required,oneof=single ep album"`
	Title       string         `json:"title" validate:"required"`
	Artist      string         `json:"artist" validate:"required"`
	ReleaseDate string         `json:"releaseDate,omitempty"`
	Tracks      []ReleaseTrack `json:"tracks" validate:"required,min=1,dive"`
	Territories []string       `json:"territories,omitempty"`
	Platforms   []string       `json:"platforms,omitempty"`
	Label       string         `json:"label,omitempty"`
	Copyright   string         `json:"copyright,omitempty"`
	Genre       string         `json:"genre,omitempty"`
	Explicit    bool           `json:"explicit,omitempty"`
}

// UpdateReleaseParams updates release fields. Zero values are omitted.
type UpdateReleaseParams struct {
	Title       string         `json:"title,omitempty"`
	Artist      string         `json:"artist,omitempty"`
	ReleaseDate string         `json:"releaseDate,omitempty"`
	Tracks      []ReleaseTrack `json:"tracks,omitempty"`
	Territories []string       `json:"territories,omitempty"`
	Platforms   []string       `json:"platforms,omitempty"`
	Label       string         `json:"label,omitempty"`
	Genre       string         `json:"genre,omitempty"`
}

// SubmitParams configures submission of a release to platforms.
type SubmitParams struct {
	Platforms     []string `json:"platforms" validate:"required,min=1"`
	ScheduledDate string   `json:"scheduledDate,omitempty"`
	Priority      string   `json:"priority,omitempty"`
}

// WithdrawParams configures removal of a release from platforms.
type WithdrawParams struct {
	Platforms []string `json:"platforms" validate:"required,min=1"`
	Reason    string   `json:"reason,omitempty"`
	Immediate bool     `json:"immediate,omitempty"`
}

// ListReleasesParams filters and pages a release listing.
type ListReleasesParams struct {
	PageParams
	Status   string `json:"status,omitempty"`
	Type     string `json:"type,omitempty"`
	Artist   string `json:"artist,omitempty"`
	DateFrom string `json:"dateFrom,omitempty"`
	DateTo   string `json:"dateTo,omitempty"`
	Platform string `json:"platform,omitempty"`
}

// DistributionStatus is a release's per-platform distribution state.
type DistributionStatus struct {
	ReleaseID string           `json:"releaseId"`
	Status    string           `json:"status"`
	Platforms []PlatformStatus `json:"platforms"`
}

// PlatformStatus is a release's state on one platform.
type PlatformStatus struct {
	Platform    string `json:"platform"`
	Status      string `json:"status"`
	LiveDate    string `json:"liveDate,omitempty"`
	RejectedFor string `json:"rejectedFor,omitempty"`
	StoreURL    string `json:"storeUrl,omitempty"`
}

// ReleaseValidation reports pre-submission checks for a release.
type ReleaseValidation struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// ReleasePreview is a pre-release preview of store listings.
type ReleasePreview struct {
	ReleaseID string `json:"releaseId"`
	URL       string `json:"url"`
	ExpiresAt string `json:"expiresAt,omitempty"`
}

// Platform is a supported streaming platform.
type Platform struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Territories  []string `json:"territories,omitempty"`
	DeliveryDays int      `json:"deliveryDays,omitempty"`
}

// CreateRelease creates a release for distribution.
func (s *DistributionService) CreateRelease(ctx context.Context, params CreateReleaseParams) (*Release, error) {
	if err := validation.Validate(params); err != nil {
		return nil, err
	}
	release, err := do[Release](ctx, s.client, http.MethodPost, "/distribution/releases", nil, params)
	if err != nil {
		return nil, err
	}
	return &release, nil
}

// Releases lists releases with filtering and pagination.
func (s *DistributionService) Releases(ctx context.Context, params *ListReleasesParams) (*Page[Release], error) {
	query := map[string]string{}
	if params != nil {
		query = map[string]string{
			"page":     pageValue(params.Page),
			"perPage":  pageValue(params.PerPage),
			"status":   params.Status,
			"type":     params.Type,
			"artist":   params.Artist,
			"dateFrom": params.DateFrom,
			"dateTo":   params.DateTo,
			"platform": params.Platform,
		}
	}
	return doPage[Release](ctx, s.client, "/distribution/releases", query)
}

// Release retrieves a release by ID.
func (s *DistributionService) Release(ctx context.Context, releaseID string) (*Release, error) {
	release, err := do[Release](ctx, s.client, http.MethodGet, "/distribution/releases/"+releaseID, nil, nil)
	if err != nil {
		return nil, err
	}
	return &release, nil
}

// UpdateRelease updates a release before submission.
func (s *DistributionService) UpdateRelease(ctx context.Context, releaseID string, params UpdateReleaseParams) (*Release, error) {
	release, err := do[Release](ctx, s.client, http.MethodPut, "/distribution/releases/"+releaseID, nil, params)
	if err != nil {
		return nil, err
	}
	return &release, nil
}

// DeleteRelease cancels and removes a release.
func (s *DistributionService) DeleteRelease(ctx context.Context, releaseID string) error {
	_, err := do[struct{}](ctx, s.client, http.MethodDelete, "/distribution/releases/"+releaseID, nil, nil)
	return err
}

// Submit submits a release to streaming platforms.
func (s *DistributionService) Submit(ctx context.Context, releaseID string, params SubmitParams) (*DistributionStatus, error) {
	if err := validation.Validate(params); err != nil {
		return nil, err
	}
	status, err := do[DistributionStatus](ctx, s.client, http.MethodPost, "/distribution/releases/"+releaseID+"/submit", nil, params)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// Status reports a release's distribution state per platform.
func (s *DistributionService) Status(ctx context.Context, releaseID string) (*DistributionStatus, error) {
	status, err := do[DistributionStatus](ctx, s.client, http.MethodGet, "/distribution/releases/"+releaseID+"/status", nil, nil)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// Withdraw takes a release down from platforms.
func (s *DistributionService) Withdraw(ctx context.Context, releaseID string, params WithdrawParams) (*DistributionStatus, error) {
	if err := validation.Validate(params); err != nil {
		return nil, err
	}
	status, err := do[DistributionStatus](ctx, s.client, http.MethodPost, "/distribution/releases/"+releaseID+"/takedown", nil, params)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// ValidateRelease checks a release draft against platform requirements
// without creating it.
func (s *DistributionService) ValidateRelease(ctx context.Context, params CreateReleaseParams) (*ReleaseValidation, error) {
	if err := validation.Validate(params); err != nil {
		return nil, err
	}
	result, err := do[ReleaseValidation](ctx, s.client, http.MethodPost, "/distribution/validate", nil, params)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ScheduleRelease sets or moves a release's go-live date.
func (s *DistributionService) ScheduleRelease(ctx context.Context, releaseID, releaseDate string) (*Release, error) {
	if releaseDate == "" {
		return nil, &validation.Error{Fields: map[string][]string{"releaseDate": {"is required"}}}
	}
	body := map[string]string{"releaseDate": releaseDate}
	release, err := do[Release](ctx, s.client, http.MethodPost, "/distribution/releases/"+releaseID+"/schedule", nil, body)
	if err != nil {
		return nil, err
	}
	return &release, nil
}

// GeneratePreview produces a store-listing preview for a release.
func (s *DistributionService) GeneratePreview(ctx context.Context, releaseID string) (*ReleasePreview, error) {
	preview, err := do[ReleasePreview](ctx, s.client, http.MethodPost, "/distribution/releases/"+releaseID+"/preview", nil, nil)
	if err != nil {
		return nil, err
	}
	return &preview, nil
}

// Platforms lists supported streaming platforms.
func (s *DistributionService) Platforms(ctx context.Context) ([]Platform, error) {
	return do[[]Platform](ctx, s.client, http.MethodGet, "/distribution/platforms", nil, nil)
}
