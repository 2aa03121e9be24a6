package jewelmusic

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/jewelmusic/jewelmusic-go/httpclient"
	"github.com/jewelmusic/jewelmusic-go/validation"
)

// AnalysisService provides audio analysis.
type AnalysisService struct {
	client *Client
}

// AnalyzeUploadParams describes an upload-and-analyze request.
type AnalyzeUploadParams struct {
	// File is the audio file content. Required.
	File io.Reader `json:"-" validate:"required"`
	// Filename is the uploaded file's name. Required.
	Filename string `json:"filename" validate:"required"`
	// AnalysisTypes selects which analyses run (tempo, key, structure,
	// quality). Empty runs the platform default set.
	AnalysisTypes []string `json:"analysisTypes,omitempty"`
	// DetailedReport requests an extended report.
	DetailedReport bool `json:"detailedReport,omitempty"`
	// CulturalContext tunes analysis for a regional music tradition.
	CulturalContext string `json:"culturalContext,omitempty"`
	// TargetPlatforms tunes loudness targets per platform.
	TargetPlatforms []string `json:"targetPlatforms,omitempty"`
}

// AnalyzeTrackParams configures analysis of an already uploaded track.
type AnalyzeTrackParams struct {
	TrackID        string   `json:"trackId" validate:"required"`
	AnalysisTypes  []string `json:"analysisTypes,omitempty"`
	DetailedReport bool     `json:"detailedReport,omitempty"`
}

// QualityCheckParams describes an audio quality check upload.
type QualityCheckParams struct {
	// File is the audio file content. Required.
	File io.Reader `json:"-" validate:"required"`
	// Filename is the uploaded file's name. Required.
	Filename          string  `json:"filename" validate:"required"`
	CheckClipping     bool    `json:"checkClipping,omitempty"`
	CheckPhaseIssues  bool    `json:"checkPhaseIssues,omitempty"`
	CheckDynamicRange bool    `json:"checkDynamicRange,omitempty"`
	TargetLoudness    float64 `json:"targetLoudness,omitempty"`
	TargetPlatform    string  `json:"targetPlatform,omitempty"`
}

// MasteringSuggestionsParams describes a mastering suggestions upload.
type MasteringSuggestionsParams struct {
	// File is the audio file content. Required.
	File io.Reader `json:"-" validate:"required"`
	// Filename is the uploaded file's name. Required.
	Filename       string `json:"filename" validate:"required"`
	TargetPlatform string `json:"targetPlatform,omitempty"`
	Genre          string `json:"genre,omitempty"`
	IncludePresets bool   `json:"includePresets,omitempty"`
}

// MasteringSuggestions are recommended mastering adjustments for a mix.
type MasteringSuggestions struct {
	TargetPlatform string             `json:"targetPlatform,omitempty"`
	Adjustments    map[string]float64 `json:"adjustments,omitempty"`
	Presets        []string           `json:"presets,omitempty"`
	Notes          []string           `json:"notes,omitempty"`
}

// ListAnalysesParams filters and pages the analysis listing.
type ListAnalysesParams struct {
	PageParams
	Status string `json:"status,omitempty"`
}

// UploadTrack uploads an audio file and starts analysis on it.
func (s *AnalysisService) UploadTrack(ctx context.Context, params AnalyzeUploadParams) (*Analysis, error) {
	if err := validation.Validate(params); err != nil {
		return nil, err
	}

	body := httpclient.NewMultipartBody().
		AddFile("file", params.Filename, params.File)
	if len(params.AnalysisTypes) > 0 {
		body.AddField("analysisTypes", strings.Join(params.AnalysisTypes, ","))
	}
	if params.DetailedReport {
		body.AddField("detailedReport", "true")
	}
	if params.CulturalContext != "" {
		body.AddField("culturalContext", params.CulturalContext)
	}
	if len(params.TargetPlatforms) > 0 {
		body.AddField("targetPlatforms", strings.Join(params.TargetPlatforms, ","))
	}

	analysis, err := do[Analysis](ctx, s.client, http.MethodPost, "/analysis/upload", nil, body)
	if err != nil {
		return nil, err
	}
	return &analysis, nil
}

// AnalyzeTrack starts analysis on an already uploaded track.
func (s *AnalysisService) AnalyzeTrack(ctx context.Context, params AnalyzeTrackParams) (*Analysis, error) {
	if err := validation.Validate(params); err != nil {
		return nil, err
	}
	analysis, err := do[Analysis](ctx, s.client, http.MethodPost, "/analysis/analyze", nil, params)
	if err != nil {
		return nil, err
	}
	return &analysis, nil
}

// Get retrieves analysis results by ID.
func (s *AnalysisService) Get(ctx context.Context, analysisID string) (*Analysis, error) {
	analysis, err := do[Analysis](ctx, s.client, http.MethodGet, "/analysis/"+analysisID, nil, nil)
	if err != nil {
		return nil, err
	}
	return &analysis, nil
}

// QualityCheck runs an audio quality analysis on an uploaded file.
func (s *AnalysisService) QualityCheck(ctx context.Context, params QualityCheckParams) (*QualityAnalysis, error) {
	if err := validation.Validate(params); err != nil {
		return nil, err
	}

	body := httpclient.NewMultipartBody().
		AddFile("file", params.Filename, params.File)
	if params.CheckClipping {
		body.AddField("checkClipping", "true")
	}
	if params.CheckPhaseIssues {
		body.AddField("checkPhaseIssues", "true")
	}
	if params.CheckDynamicRange {
		body.AddField("checkDynamicRange", "true")
	}
	if params.TargetLoudness != 0 {
		body.AddField("targetLoudness", strconv.FormatFloat(params.TargetLoudness, 'f', -1, 64))
	}
	if params.TargetPlatform != "" {
		body.AddField("targetPlatform", params.TargetPlatform)
	}

	quality, err := do[QualityAnalysis](ctx, s.client, http.MethodPost, "/analysis/quality-check", nil, body)
	if err != nil {
		return nil, err
	}
	return &quality, nil
}

// MasteringSuggestions uploads a mix and returns mastering advice.
func (s *AnalysisService) MasteringSuggestions(ctx context.Context, params MasteringSuggestionsParams) (*MasteringSuggestions, error) {
	if err := validation.Validate(params); err != nil {
		return nil, err
	}

	body := httpclient.NewMultipartBody().
		AddFile("file", params.Filename, params.File)
	if params.TargetPlatform != "" {
		body.AddField("targetPlatform", params.TargetPlatform)
	}
	if params.Genre != "" {
		body.AddField("genre", params.Genre)
	}
	if params.IncludePresets {
		body.AddField("includePresets", "true")
	}

	suggestions, err := do[MasteringSuggestions](ctx, s.client, http.MethodPost, "/analysis/mastering-suggestions", nil, body)
	if err != nil {
		return nil, err
	}
	return &suggestions, nil
}

// DetectStructure detects song sections in an audio file.
func (s *AnalysisService) DetectStructure(ctx context.Context, file io.Reader, filename string) (*StructureAnalysis, error) {
	return analyzeFile[StructureAnalysis](ctx, s.client, "/analysis/detect-structure", file, filename)
}

// DetectKey detects the musical key of an audio file.
func (s *AnalysisService) DetectKey(ctx context.Context, file io.Reader, filename string) (*KeyAnalysis, error) {
	return analyzeFile[KeyAnalysis](ctx, s.client, "/analysis/detect-key", file, filename)
}

// AnalyzeTempo measures the tempo of an audio file.
func (s *AnalysisService) AnalyzeTempo(ctx context.Context, file io.Reader, filename string) (*TempoAnalysis, error) {
	return analyzeFile[TempoAnalysis](ctx, s.client, "/analysis/tempo", file, filename)
}

// List lists the account's analyses with filtering and pagination.
func (s *AnalysisService) List(ctx context.Context, params *ListAnalysesParams) (*Page[Analysis], error) {
	query := map[string]string{}
	if params != nil {
		query = map[string]string{
			"page":    pageValue(params.Page),
			"perPage": pageValue(params.PerPage),
			"status":  params.Status,
		}
	}
	return doPage[Analysis](ctx, s.client, "/analysis", query)
}

// analyzeFile posts a bare audio file to a single-purpose analysis
// endpoint and decodes the typed result.
func analyzeFile[T any](ctx context.Context, c *Client, path string, file io.Reader, filename string) (*T, error) {
	if file == nil {
		return nil, &validation.Error{Fields: map[string][]string{"file": {"is required"}}}
	}
	if filename == "" {
		return nil, &validation.Error{Fields: map[string][]string{"filename": {"is required"}}}
	}
	body := httpclient.NewMultipartBody().AddFile("file", filename, file)
	result, err := do[T](ctx, c, http.MethodPost, path, nil, body)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
