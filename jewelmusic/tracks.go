package jewelmusic

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/jewelmusic/jewelmusic-go/httpclient"
	"github.com/jewelmusic/jewelmusic-go/validation"
)

// TracksService manages track upload, metadata, and organization.
type TracksService struct {
	client *Client
}

// UploadTrackParams describes a track upload.
type UploadTrackParams struct {
	// File is the audio file content. Required.
	File io.Reader `json:"-" validate:"required"`
	// Filename is the uploaded file's name. Required.
	Filename string `json:"filename" validate:"required"`
	// Metadata describes the track. Title and Artist are required.
	Metadata TrackMetadata `json:"metadata"`
}

// ListTracksParams filters and pages a track listing.
type ListTracksParams struct {
	PageParams
	Status         string `json:"status,omitempty"`
	Genre          string `json:"genre,omitempty"`
	Artist         string `json:"artist,omitempty"`
	Album          string `json:"album,omitempty"`
	UploadedAfter  string `json:"uploadedAfter,omitempty"`
	UploadedBefore string `json:"uploadedBefore,omitempty"`
	DurationMin    int    `json:"durationMin,omitempty"`
	DurationMax    int    `json:"durationMax,omitempty"`
	Search         string `json:"search,omitempty"`
}

// DownloadURLParams selects the format of a track download URL.
type DownloadURLParams struct {
	Format  string `json:"format,omitempty"`
	Quality string `json:"quality,omitempty"`
}

// DownloadURL is a signed, expiring track download location.
type DownloadURL struct {
	URL       string `json:"url"`
	Format    string `json:"format,omitempty"`
	Quality   string `json:"quality,omitempty"`
	ExpiresAt string `json:"expiresAt,omitempty"`
}

// Artwork is uploaded cover art for a track.
type Artwork struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Format string `json:"format,omitempty"`
}

// BatchUpdateItem is one track's metadata in a batch update.
type BatchUpdateItem struct {
	ID       string        `json:"id" validate:"required"`
	Metadata TrackMetadata `json:"metadata"`
}

// BatchUpdateResult reports the outcome of a batch metadata update.
type BatchUpdateResult struct {
	Updated int               `json:"updated"`
	Failed  int               `json:"failed,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// BatchProcessParams starts a processing operation over several tracks.
type BatchProcessParams struct {
	TrackIDs   []string `json:"trackIds" validate:"required,min=1"`
	Operations []string `json:"operations,omitempty"`
	Priority   string   `json:"priority,omitempty"`
	Notify     bool     `json:"notify,omitempty"`
}

// BatchJob is an asynchronous batch processing job.
type BatchJob struct {
	ID       string   `json:"id"`
	Status   string   `json:"status"`
	TrackIDs []string `json:"trackIds,omitempty"`
}

// ProcessingStatus is a track's post-upload processing state.
type ProcessingStatus struct {
	TrackID  string `json:"trackId"`
	Status   string `json:"status"`
	Progress int    `json:"progress,omitempty"`
	Error    string `json:"error,omitempty"`
}

// WaveformParams configures waveform rendering.
type WaveformParams struct {
	Width   int      `json:"width,omitempty"`
	Height  int      `json:"height,omitempty"`
	Colors  []string `json:"colors,omitempty"`
	Format  string   `json:"format,omitempty"`
	Samples int      `json:"samples,omitempty"`
}

// Waveform is a rendered waveform for a track.
type Waveform struct {
	URL    string    `json:"url,omitempty"`
	Format string    `json:"format,omitempty"`
	Peaks  []float64 `json:"peaks,omitempty"`
}

// SimilarTracksParams tunes the similar-track search.
type SimilarTracksParams struct {
	Limit         int     `json:"limit,omitempty"`
	MinSimilarity float64 `json:"minSimilarity,omitempty"`
	SameArtist    bool    `json:"sameArtist,omitempty"`
	SameGenre     bool    `json:"sameGenre,omitempty"`
}

// SimilarTrack is a track ranked by similarity to a reference track.
type SimilarTrack struct {
	Track      Track   `json:"track"`
	Similarity float64 `json:"similarity"`
}

// Upload uploads an audio file with metadata.
func (s *TracksService) Upload(ctx context.Context, params UploadTrackParams) (*Track, error) {
	if err := validation.Validate(params); err != nil {
		return nil, err
	}

	body := httpclient.NewMultipartBody().
		AddField("title", params.Metadata.Title).
		AddField("artist", params.Metadata.Artist).
		AddFile("file", params.Filename, params.File)
	if params.Metadata.Album != "" {
		body.AddField("album", params.Metadata.Album)
	}
	if params.Metadata.Genre != "" {
		body.AddField("genre", params.Metadata.Genre)
	}
	if params.Metadata.ReleaseDate != "" {
		body.AddField("releaseDate", params.Metadata.ReleaseDate)
	}
	for key, value := range params.Metadata.Custom {
		body.AddField(key, value)
	}

	track, err := do[Track](ctx, s.client, http.MethodPost, "/tracks/upload", nil, body)
	if err != nil {
		return nil, err
	}
	return &track, nil
}

// List lists tracks with filtering and pagination.
func (s *TracksService) List(ctx context.Context, params *ListTracksParams) (*Page[Track], error) {
	query := map[string]string{}
	if params != nil {
		query = map[string]string{
			"page":           pageValue(params.Page),
			"perPage":        pageValue(params.PerPage),
			"status":         params.Status,
			"genre":          params.Genre,
			"artist":         params.Artist,
			"album":          params.Album,
			"uploadedAfter":  params.UploadedAfter,
			"uploadedBefore": params.UploadedBefore,
			"durationMin":    pageValue(params.DurationMin),
			"durationMax":    pageValue(params.DurationMax),
			"search":         params.Search,
		}
	}
	return doPage[Track](ctx, s.client, "/tracks", query)
}

// Get retrieves a track by ID.
func (s *TracksService) Get(ctx context.Context, trackID string) (*Track, error) {
	track, err := do[Track](ctx, s.client, http.MethodGet, "/tracks/"+trackID, nil, nil)
	if err != nil {
		return nil, err
	}
	return &track, nil
}

// Update replaces a track's metadata.
func (s *TracksService) Update(ctx context.Context, trackID string, metadata TrackMetadata) (*Track, error) {
	if err := validation.Validate(metadata); err != nil {
		return nil, err
	}
	track, err := do[Track](ctx, s.client, http.MethodPut, "/tracks/"+trackID, nil, metadata)
	if err != nil {
		return nil, err
	}
	return &track, nil
}

// Delete removes a track.
func (s *TracksService) Delete(ctx context.Context, trackID string) error {
	_, err := do[struct{}](ctx, s.client, http.MethodDelete, "/tracks/"+trackID, nil, nil)
	return err
}

// Search searches tracks by text query.
func (s *TracksService) Search(ctx context.Context, query string, page *PageParams) (*Page[Track], error) {
	q := map[string]string{"search": query}
	if page != nil {
		q["page"] = pageValue(page.Page)
		q["perPage"] = pageValue(page.PerPage)
	}
	return doPage[Track](ctx, s.client, "/tracks", q)
}

// GetDownloadURL returns a signed download URL for a track.
func (s *TracksService) GetDownloadURL(ctx context.Context, trackID string, params *DownloadURLParams) (*DownloadURL, error) {
	query := map[string]string{}
	if params != nil {
		query["format"] = params.Format
		query["quality"] = params.Quality
	}
	u, err := do[DownloadURL](ctx, s.client, http.MethodGet, "/tracks/"+trackID+"/download", query, nil)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UploadArtwork attaches cover art to a track.
func (s *TracksService) UploadArtwork(ctx context.Context, trackID string, file io.Reader, filename string) (*Artwork, error) {
	if file == nil {
		return nil, &validation.Error{Fields: map[string][]string{"file": {"is required"}}}
	}
	if filename == "" {
		return nil, &validation.Error{Fields: map[string][]string{"filename": {"is required"}}}
	}
	body := httpclient.NewMultipartBody().AddFile("artwork", filename, file)
	art, err := do[Artwork](ctx, s.client, http.MethodPost, "/tracks/"+trackID+"/artwork", nil, body)
	if err != nil {
		return nil, err
	}
	return &art, nil
}

// BatchUpdateMetadata updates metadata for several tracks in one call.
func (s *TracksService) BatchUpdateMetadata(ctx context.Context, updates []BatchUpdateItem) (*BatchUpdateResult, error) {
	if len(updates) == 0 {
		return nil, &validation.Error{Fields: map[string][]string{"updates": {"must contain at least 1 item"}}}
	}
	for _, u := range updates {
		if err := validation.Validate(u); err != nil {
			return nil, err
		}
	}
	body := map[string][]BatchUpdateItem{"updates": updates}
	result, err := do[BatchUpdateResult](ctx, s.client, http.MethodPost, "/tracks/batch/metadata", nil, body)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// BatchProcess starts a processing job over several tracks.
func (s *TracksService) BatchProcess(ctx context.Context, params BatchProcessParams) (*BatchJob, error) {
	if err := validation.Validate(params); err != nil {
		return nil, err
	}
	job, err := do[BatchJob](ctx, s.client, http.MethodPost, "/tracks/batch/process", nil, params)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// GetProcessingStatus reports a track's post-upload processing state.
func (s *TracksService) GetProcessingStatus(ctx context.Context, trackID string) (*ProcessingStatus, error) {
	status, err := do[ProcessingStatus](ctx, s.client, http.MethodGet, "/tracks/"+trackID+"/processing-status", nil, nil)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// GenerateWaveform renders a waveform for a track.
func (s *TracksService) GenerateWaveform(ctx context.Context, trackID string, params *WaveformParams) (*Waveform, error) {
	var body any
	if params != nil {
		body = params
	}
	wf, err := do[Waveform](ctx, s.client, http.MethodPost, "/tracks/"+trackID+"/waveform", nil, body)
	if err != nil {
		return nil, err
	}
	return &wf, nil
}

// FindSimilar returns tracks similar to a reference track.
func (s *TracksService) FindSimilar(ctx context.Context, trackID string, params *SimilarTracksParams) ([]SimilarTrack, error) {
	query := map[string]string{}
	if params != nil {
		query = map[string]string{
			"limit":      pageValue(params.Limit),
			"sameArtist": boolValue(params.SameArtist),
			"sameGenre":  boolValue(params.SameGenre),
		}
		if params.MinSimilarity > 0 {
			query["minSimilarity"] = strconv.FormatFloat(params.MinSimilarity, 'f', -1, 64)
		}
	}
	return do[[]SimilarTrack](ctx, s.client, http.MethodGet, "/tracks/"+trackID+"/similar", query, nil)
}

// pageValue renders a positive integer query value, or empty to let the
// transport drop the parameter.
func pageValue(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// boolValue renders a true flag, or empty so a false flag is dropped.
func boolValue(b bool) string {
	if b {
		return "true"
	}
	return ""
}
