package jewelmusic

import (
	"context"
	"net/http"

	"github.com/jewelmusic/jewelmusic-go/validation"
)

// CopilotService provides AI-assisted music generation.
type CopilotService struct {
	client *Client
}

// MelodyParams configures melody generation.
type MelodyParams struct {
	Style       string   `json:"style" validate:"required"`
	Tempo       int      `json:"tempo,omitempty"`
	Key         string   `json:"key,omitempty"`
	Mode        string   `json:"mode,omitempty"`
	Duration    int      `json:"duration,omitempty"`
	Instruments []string `json:"instruments,omitempty"`
	Complexity  string   `json:"complexity,omitempty"`
	Energy      string   `json:"energy,omitempty"`
}

// HarmonyParams configures harmony generation.
type HarmonyParams struct {
	MelodyID    string   `json:"melodyId,omitempty"`
	Style       string   `json:"style,omitempty"`
	Complexity  string   `json:"complexity,omitempty"`
	Voicing     string   `json:"voicing,omitempty"`
	Instruments []string `json:"instruments,omitempty"`
}

// LyricsParams configures lyrics generation.
type LyricsParams struct {
	Theme           string `json:"theme" validate:"required"`
	Genre           string `json:"genre,omitempty"`
	Language        string `json:"language,omitempty"`
	Mood            string `json:"mood,omitempty"`
	Structure       string `json:"structure,omitempty"`
	RhymeScheme     string `json:"rhymeScheme,omitempty"`
	InspirationText string `json:"inspirationText,omitempty"`
}

// SongParams configures complete song generation. Content can come from
// a prompt, previously generated parts, or a template.
type SongParams struct {
	Prompt          string `json:"prompt,omitempty"`
	MelodyID        string `json:"melodyId,omitempty"`
	HarmonyID       string `json:"harmonyId,omitempty"`
	LyricsID        string `json:"lyricsId,omitempty"`
	TemplateID      string `json:"templateId,omitempty"`
	Style           string `json:"style,omitempty"`
	Duration        int    `json:"duration,omitempty"`
	IncludeVocals   bool   `json:"includeVocals,omitempty"`
	VocalStyle      string `json:"vocalStyle,omitempty"`
	MixingStyle     string `json:"mixingStyle,omitempty"`
	MasteringPreset string `json:"masteringPreset,omitempty"`
}

// StyleTransferParams configures a style transfer of existing content.
type StyleTransferParams struct {
	SourceID          string  `json:"sourceId" validate:"required"`
	TargetStyle       string  `json:"targetStyle" validate:"required"`
	Intensity         float64 `json:"intensity,omitempty"`
	PreserveStructure bool    `json:"preserveStructure,omitempty"`
	PreserveTiming    bool    `json:"preserveTiming,omitempty"`
}

// ListGenerationsParams filters and pages the generation listing.
type ListGenerationsParams struct {
	PageParams
	// Type narrows by generation kind (melody, harmony, lyrics, song).
	Type string `json:"type,omitempty"`
}

// TemplateFilter narrows the song template listing.
type TemplateFilter struct {
	Genre    string `json:"genre,omitempty"`
	Mood     string `json:"mood,omitempty"`
	Duration string `json:"duration,omitempty"`
	Style    string `json:"style,omitempty"`
}

// SongTemplate is a reusable song blueprint.
type SongTemplate struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Genre       string   `json:"genre,omitempty"`
	Mood        string   `json:"mood,omitempty"`
	Duration    int      `json:"duration,omitempty"`
	Description string   `json:"description,omitempty"`
	Sections    []string `json:"sections,omitempty"`
}

// GenerateMelody generates a melody.
func (s *CopilotService) GenerateMelody(ctx context.Context, params MelodyParams) (*Generation, error) {
	return s.generate(ctx, "/copilot/melody", params)
}

// GenerateHarmony generates harmony for a melody.
func (s *CopilotService) GenerateHarmony(ctx context.Context, params HarmonyParams) (*Generation, error) {
	return s.generate(ctx, "/copilot/harmony", params)
}

// GenerateLyrics generates lyrics.
func (s *CopilotService) GenerateLyrics(ctx context.Context, params LyricsParams) (*Generation, error) {
	return s.generate(ctx, "/copilot/lyrics", params)
}

// CompleteSong generates a complete song.
func (s *CopilotService) CompleteSong(ctx context.Context, params SongParams) (*Generation, error) {
	return s.generate(ctx, "/copilot/complete-song", params)
}

// StyleTransfer re-renders existing content in another style.
func (s *CopilotService) StyleTransfer(ctx context.Context, params StyleTransferParams) (*Generation, error) {
	return s.generate(ctx, "/copilot/style-transfer", params)
}

// GetGeneration retrieves a generation by ID.
func (s *CopilotService) GetGeneration(ctx context.Context, generationID string) (*Generation, error) {
	gen, err := do[Generation](ctx, s.client, http.MethodGet, "/copilot/generations/"+generationID, nil, nil)
	if err != nil {
		return nil, err
	}
	return &gen, nil
}

// Generations lists the account's generations with pagination.
func (s *CopilotService) Generations(ctx context.Context, params *ListGenerationsParams) (*Page[Generation], error) {
	query := map[string]string{}
	if params != nil {
		query = map[string]string{
			"page":    pageValue(params.Page),
			"perPage": pageValue(params.PerPage),
			"type":    params.Type,
		}
	}
	return doPage[Generation](ctx, s.client, "/copilot/generations", query)
}

// Templates lists available song templates.
func (s *CopilotService) Templates(ctx context.Context, filter *TemplateFilter) ([]SongTemplate, error) {
	query := map[string]string{}
	if filter != nil {
		query = map[string]string{
			"genre":    filter.Genre,
			"mood":     filter.Mood,
			"duration": filter.Duration,
			"style":    filter.Style,
		}
	}
	return do[[]SongTemplate](ctx, s.client, http.MethodGet, "/copilot/templates", query, nil)
}

func (s *CopilotService) generate(ctx context.Context, path string, params any) (*Generation, error) {
	if err := validation.Validate(params); err != nil {
		return nil, err
	}
	gen, err := do[Generation](ctx, s.client, http.MethodPost, path, nil, params)
	if err != nil {
		return nil, err
	}
	return &gen, nil
}
