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

// TranscriptionService provides lyrics transcription and translation.
type TranscriptionService struct {
	client *Client
}

// CreateTranscriptionParams starts a transcription from an uploaded
// track or a new file. Exactly one of TrackID or File is required.
type CreateTranscriptionParams struct {
	// TrackID references an already uploaded track.
	TrackID string `json:"trackId,omitempty"`
	// File is an audio file to transcribe directly.
	File io.Reader `json:"-"`
	// Filename names the uploaded file; required with File.
	Filename string `json:"filename,omitempty"`

	Languages           []string `json:"languages,omitempty"`
	IncludeTimestamps   bool     `json:"includeTimestamps,omitempty"`
	WordLevelTimestamps bool     `json:"wordLevelTimestamps,omitempty"`
	SpeakerDiarization  bool     `json:"speakerDiarization,omitempty"`
	Model               string   `json:"model,omitempty"`
	MaxSpeakers         int      `json:"maxSpeakers,omitempty"`
}

// TranslateLyricsParams configures translation of a transcription.
type TranslateLyricsParams struct {
	TargetLanguages []string `json:"targetLanguages" validate:"required,min=1"`
	PreserveRhyme   bool     `json:"preserveRhyme,omitempty"`
	PreserveMeter   bool     `json:"preserveMeter,omitempty"`
	AdaptCulturally bool     `json:"adaptCulturally,omitempty"`
}

// Translation is one translated rendition of a transcription.
type Translation struct {
	Language   string    `json:"language"`
	Text       string    `json:"text"`
	Segments   []Segment `json:"segments,omitempty"`
	Confidence float64   `json:"confidence,omitempty"`
}

// Language is a supported transcription language.
type Language struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Translation bool   `json:"translation,omitempty"`
}

// TranscriptionStatus is a transcription job's progress.
type TranscriptionStatus struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Progress int    `json:"progress,omitempty"`
	Error    string `json:"error,omitempty"`
}

// EnhanceLyricsParams configures AI lyrics enhancement.
type EnhanceLyricsParams struct {
	Lyrics         string `json:"lyrics" validate:"required"`
	ImproveMeter   bool   `json:"improveMeter,omitempty"`
	EnhanceRhyming bool   `json:"enhanceRhyming,omitempty"`
	AdjustTone     string `json:"adjustTone,omitempty"`
	TargetLanguage string `json:"targetLanguage,omitempty"`
	PreserveStyle  bool   `json:"preserveStyle,omitempty"`
}

// LyricsEnhancement is the result of a lyrics enhancement.
type LyricsEnhancement struct {
	Lyrics  string   `json:"lyrics"`
	Changes []string `json:"changes,omitempty"`
}

// RhymeScheme describes the rhyme structure found in lyrics.
type RhymeScheme struct {
	Scheme      string  `json:"scheme"`
	Consistency float64 `json:"consistency,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}

// SentimentAnalysis is the emotional profile of lyrics.
type SentimentAnalysis struct {
	Sentiment string             `json:"sentiment"`
	Score     float64            `json:"score,omitempty"`
	Emotions  map[string]float64 `json:"emotions,omitempty"`
}

// LanguageQuality reports grammar and fluency findings for lyrics.
type LanguageQuality struct {
	Language string   `json:"language"`
	Score    float64  `json:"score,omitempty"`
	Issues   []string `json:"issues,omitempty"`
}

// ListTranscriptionsParams filters and pages the transcription listing.
type ListTranscriptionsParams struct {
	PageParams
	Status   string `json:"status,omitempty"`
	Language string `json:"language,omitempty"`
}

// Export formats for transcriptions.
const (
	ExportFormatLRC  = "lrc"
	ExportFormatSRT  = "srt"
	ExportFormatVTT  = "vtt"
	ExportFormatText = "txt"
	ExportFormatJSON = "json"
)

// Create starts a transcription from a track ID or an audio file.
func (s *TranscriptionService) Create(ctx context.Context, params CreateTranscriptionParams) (*Transcription, error) {
	if err := validation.RequireOneOf(map[string]bool{
		"trackId": params.TrackID != "",
		"file":    params.File != nil,
	}); err != nil {
		return nil, err
	}

	if params.TrackID != "" {
		tr, err := do[Transcription](ctx, s.client, http.MethodPost, "/transcription/create", nil, params)
		if err != nil {
			return nil, err
		}
		return &tr, nil
	}

	if params.Filename == "" {
		return nil, &validation.Error{Fields: map[string][]string{"filename": {"is required"}}}
	}
	body := httpclient.NewMultipartBody().
		AddFile("file", params.Filename, params.File)
	if len(params.Languages) > 0 {
		body.AddField("languages", strings.Join(params.Languages, ","))
	}
	if params.IncludeTimestamps {
		body.AddField("includeTimestamps", "true")
	}
	if params.WordLevelTimestamps {
		body.AddField("wordLevelTimestamps", "true")
	}
	if params.SpeakerDiarization {
		body.AddField("speakerDiarization", "true")
	}
	if params.Model != "" {
		body.AddField("model", params.Model)
	}
	if params.MaxSpeakers > 0 {
		body.AddField("maxSpeakers", strconv.Itoa(params.MaxSpeakers))
	}

	tr, err := do[Transcription](ctx, s.client, http.MethodPost, "/transcription/create", nil, body)
	if err != nil {
		return nil, err
	}
	return &tr, nil
}

// Get retrieves a transcription by ID.
func (s *TranscriptionService) Get(ctx context.Context, transcriptionID string) (*Transcription, error) {
	tr, err := do[Transcription](ctx, s.client, http.MethodGet, "/transcription/"+transcriptionID, nil, nil)
	if err != nil {
		return nil, err
	}
	return &tr, nil
}

// GetStatus reports a transcription job's progress.
func (s *TranscriptionService) GetStatus(ctx context.Context, transcriptionID string) (*TranscriptionStatus, error) {
	status, err := do[TranscriptionStatus](ctx, s.client, http.MethodGet, "/transcription/"+transcriptionID+"/status", nil, nil)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// SyncLyrics realigns a transcription's timestamps against a new audio
// rendition of the same song.
func (s *TranscriptionService) SyncLyrics(ctx context.Context, transcriptionID string, file io.Reader, filename string) (*Transcription, error) {
	if file == nil {
		return nil, &validation.Error{Fields: map[string][]string{"file": {"is required"}}}
	}
	if filename == "" {
		return nil, &validation.Error{Fields: map[string][]string{"filename": {"is required"}}}
	}
	body := httpclient.NewMultipartBody().AddFile("file", filename, file)
	tr, err := do[Transcription](ctx, s.client, http.MethodPost, "/transcription/"+transcriptionID+"/sync", nil, body)
	if err != nil {
		return nil, err
	}
	return &tr, nil
}

// EnhanceLyrics rewrites lyrics for meter, rhyme, or tone.
func (s *TranscriptionService) EnhanceLyrics(ctx context.Context, params EnhanceLyricsParams) (*LyricsEnhancement, error) {
	if err := validation.Validate(params); err != nil {
		return nil, err
	}
	enhanced, err := do[LyricsEnhancement](ctx, s.client, http.MethodPost, "/transcription/enhance-lyrics", nil, params)
	if err != nil {
		return nil, err
	}
	return &enhanced, nil
}

// CheckRhymeScheme analyzes the rhyme structure of lyrics.
func (s *TranscriptionService) CheckRhymeScheme(ctx context.Context, lyrics string) (*RhymeScheme, error) {
	return analyzeLyrics[RhymeScheme](ctx, s.client, "/transcription/check-rhyme-scheme", lyrics, nil)
}

// AnalyzeSentiment profiles the emotional content of lyrics.
func (s *TranscriptionService) AnalyzeSentiment(ctx context.Context, lyrics string) (*SentimentAnalysis, error) {
	return analyzeLyrics[SentimentAnalysis](ctx, s.client, "/transcription/analyze-sentiment", lyrics, nil)
}

// CheckLanguageQuality checks lyrics for grammar and fluency issues in
// the given language.
func (s *TranscriptionService) CheckLanguageQuality(ctx context.Context, lyrics, language string) (*LanguageQuality, error) {
	extra := map[string]string{}
	if language != "" {
		extra["language"] = language
	}
	return analyzeLyrics[LanguageQuality](ctx, s.client, "/transcription/check-language-quality", lyrics, extra)
}

// List lists the account's transcriptions.
func (s *TranscriptionService) List(ctx context.Context, params *ListTranscriptionsParams) (*Page[Transcription], error) {
	query := map[string]string{}
	if params != nil {
		query = map[string]string{
			"page":     pageValue(params.Page),
			"perPage":  pageValue(params.PerPage),
			"status":   params.Status,
			"language": params.Language,
		}
	}
	return doPage[Transcription](ctx, s.client, "/transcription", query)
}

// analyzeLyrics posts lyrics text to a text-analysis endpoint.
func analyzeLyrics[T any](ctx context.Context, c *Client, path, lyrics string, extra map[string]string) (*T, error) {
	if lyrics == "" {
		return nil, &validation.Error{Fields: map[string][]string{"lyrics": {"is required"}}}
	}
	body := map[string]string{"lyrics": lyrics}
	for k, v := range extra {
		body[k] = v
	}
	result, err := do[T](ctx, c, http.MethodPost, path, nil, body)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// TranslateLyrics translates a transcription into target languages.
func (s *TranscriptionService) TranslateLyrics(ctx context.Context, transcriptionID string, params TranslateLyricsParams) ([]Translation, error) {
	if err := validation.Validate(params); err != nil {
		return nil, err
	}
	return do[[]Translation](ctx, s.client, http.MethodPost, "/transcription/"+transcriptionID+"/translate", nil, params)
}

// Languages lists supported transcription languages.
func (s *TranscriptionService) Languages(ctx context.Context) ([]Language, error) {
	return do[[]Language](ctx, s.client, http.MethodGet, "/transcription/languages", nil, nil)
}

// Export downloads a transcription rendered in the given format. The
// result is the raw document (LRC, SRT, VTT, plain text, or JSON).
func (s *TranscriptionService) Export(ctx context.Context, transcriptionID, format string) (string, error) {
	return do[string](ctx, s.client, http.MethodGet, "/transcription/"+transcriptionID+"/download",
		map[string]string{"format": format}, nil)
}
