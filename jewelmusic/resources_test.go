package jewelmusic

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/jewelmusic/jewelmusic-go/validation"
)

func TestTracksUpload(t *testing.T) {
	var gotTitle, gotArtist, gotGenre, gotFile string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/tracks/upload" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("ParseMultipartForm: %v", err)
		}
		gotTitle = r.FormValue("title")
		gotArtist = r.FormValue("artist")
		gotGenre = r.FormValue("genre")
		f, _, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("FormFile: %v", err)
		}
		data, _ := io.ReadAll(f)
		gotFile = string(data)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write(enveloped(t, map[string]any{"id": "trk_new", "title": gotTitle, "artist": gotArtist, "status": "processing"}))
	}))

	track, err := c.Tracks.Upload(context.Background(), UploadTrackParams{
		File:     strings.NewReader("RIFF...."),
		Filename: "night-drive.wav",
		Metadata: TrackMetadata{Title: "Night Drive", Artist: "Nova", Genre: "synthwave"},
	})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if track.ID != "trk_new" {
		t.Errorf("id = %q", track.ID)
	}
	if gotTitle != "Night Drive" || gotArtist != "Nova" || gotGenre != "synthwave" {
		t.Errorf("form = %q / %q / %q", gotTitle, gotArtist, gotGenre)
	}
	if gotFile != "RIFF...." {
		t.Errorf("file = %q", gotFile)
	}
}

func TestTracksUploadValidation(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	}))

	_, err := c.Tracks.Upload(context.Background(), UploadTrackParams{
		File:     strings.NewReader("x"),
		Filename: "a.wav",
		Metadata: TrackMetadata{Artist: "Nova"},
	})
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, ok := verr.Fields["title"]; !ok {
		t.Errorf("missing title field error: %v", verr.Fields)
	}
}

func TestTracksListQuery(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("genre") != "jazz" || q.Get("page") != "2" {
			t.Errorf("query = %v", q)
		}
		if q.Has("status") {
			t.Error("empty status should be dropped")
		}
		_, _ = w.Write(enveloped(t, map[string]any{"items": []any{}, "pagination": map[string]int{}}))
	}))

	_, err := c.Tracks.List(context.Background(), &ListTracksParams{
		PageParams: PageParams{Page: 2},
		Genre:      "jazz",
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
}

func TestTracksDelete(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/v1/tracks/trk_1" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	if err := c.Tracks.Delete(context.Background(), "trk_1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}

func TestCopilotValidation(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	}))

	if _, err := c.Copilot.GenerateMelody(context.Background(), MelodyParams{}); err == nil {
		t.Error("expected error for missing style")
	}
	if _, err := c.Copilot.GenerateLyrics(context.Background(), LyricsParams{}); err == nil {
		t.Error("expected error for missing theme")
	}
	if _, err := c.Copilot.StyleTransfer(context.Background(), StyleTransferParams{SourceID: "gen_1"}); err == nil {
		t.Error("expected error for missing target style")
	}
}

func TestCopilotGenerateMelody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/copilot/melody" {
			t.Errorf("path = %q", r.URL.Path)
		}
		var body MelodyParams
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Style != "bossa nova" || body.Tempo != 120 {
			t.Errorf("body = %+v", body)
		}
		_, _ = w.Write(enveloped(t, map[string]any{"id": "gen_1", "type": "melody", "status": "queued"}))
	}))

	gen, err := c.Copilot.GenerateMelody(context.Background(), MelodyParams{Style: "bossa nova", Tempo: 120})
	if err != nil {
		t.Fatalf("GenerateMelody: %v", err)
	}
	if gen.ID != "gen_1" || gen.Type != "melody" {
		t.Errorf("generation = %+v", gen)
	}
}

func TestDistributionCreateRelease(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(enveloped(t, map[string]any{"id": "rel_1", "type": "single", "status": "draft"}))
	}))

	release, err := c.Distribution.CreateRelease(context.Background(), CreateReleaseParams{
		Type:   "single",
		Title:  "Aurora",
		Artist: "Nova",
		Tracks: []ReleaseTrack{{TrackID: "trk_1"}},
	})
	if err != nil {
		t.Fatalf("CreateRelease: %v", err)
	}
	if release.ID != "rel_1" {
		t.Errorf("id = %q", release.ID)
	}

	// Unknown release type fails client-side.
	_, err = c.Distribution.CreateRelease(context.Background(), CreateReleaseParams{
		Type:   "mixtape",
		Title:  "Aurora",
		Artist: "Nova",
		Tracks: []ReleaseTrack{{TrackID: "trk_1"}},
	})
	if err == nil {
		t.Error("expected error for unknown release type")
	}
}

func TestDistributionSubmitRequiresPlatforms(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	}))
	if _, err := c.Distribution.Submit(context.Background(), "rel_1", SubmitParams{}); err == nil {
		t.Error("expected error for missing platforms")
	}
}

func TestTranscriptionCreateRequiresSource(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	}))
	_, err := c.Transcription.Create(context.Background(), CreateTranscriptionParams{})
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTranscriptionCreateFromTrack(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["trackId"] != "trk_1" {
			t.Errorf("trackId = %v", body["trackId"])
		}
		_, _ = w.Write(enveloped(t, map[string]any{"id": "trn_1", "trackId": "trk_1", "status": "processing"}))
	}))

	tr, err := c.Transcription.Create(context.Background(), CreateTranscriptionParams{TrackID: "trk_1"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if tr.ID != "trn_1" {
		t.Errorf("id = %q", tr.ID)
	}
}

func TestTranscriptionCreateFromFile(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("ParseMultipartForm: %v", err)
		}
		if got := r.FormValue("languages"); got != "en,tr" {
			t.Errorf("languages = %q", got)
		}
		_, _ = w.Write(enveloped(t, map[string]any{"id": "trn_2", "status": "processing"}))
	}))

	tr, err := c.Transcription.Create(context.Background(), CreateTranscriptionParams{
		File:      strings.NewReader("audio"),
		Filename:  "vocal.wav",
		Languages: []string{"en", "tr"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if tr.ID != "trn_2" {
		t.Errorf("id = %q", tr.ID)
	}
}

func TestAnalyticsStreamsValidatesDates(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	}))
	_, err := c.Analytics.Streams(context.Background(), AnalyticsQuery{StartDate: "2026-08-01"})
	if err == nil {
		t.Error("expected error for missing end date")
	}
	_, err = c.Analytics.Streams(context.Background(), AnalyticsQuery{StartDate: "01/08/2026", EndDate: "2026-08-31"})
	if err == nil {
		t.Error("expected error for malformed start date")
	}
}

func TestAnalyticsStreams(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("startDate") != "2026-08-01" || q.Get("platforms") != "spotify,apple-music" {
			t.Errorf("query = %v", q)
		}
		_, _ = w.Write(enveloped(t, map[string]any{
			"summary": map[string]any{"totalStreams": 1204, "period": "2026-08"},
			"data":    []any{map[string]any{"date": "2026-08-01", "metrics": map[string]int{"streams": 40}}},
		}))
	}))

	data, err := c.Analytics.Streams(context.Background(), AnalyticsQuery{
		StartDate: "2026-08-01",
		EndDate:   "2026-08-31",
		Platforms: []string{"spotify", "apple-music"},
	})
	if err != nil {
		t.Fatalf("Streams: %v", err)
	}
	if data.Summary.TotalStreams != 1204 {
		t.Errorf("totalStreams = %d", data.Summary.TotalStreams)
	}
}

func TestUserCreateAPIKey(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(enveloped(t, map[string]any{
			"id": "key_1", "name": "ci", "key": "jm_live_secret", "scopes": []string{"tracks:read"}, "active": true,
		}))
	}))

	key, err := c.User.CreateAPIKey(context.Background(), CreateAPIKeyParams{
		Name:   "ci",
		Scopes: []string{"tracks:read"},
	})
	if err != nil {
		t.Fatalf("CreateAPIKey: %v", err)
	}
	if key.Key != "jm_live_secret" {
		t.Errorf("key = %q", key.Key)
	}

	if _, err := c.User.CreateAPIKey(context.Background(), CreateAPIKeyParams{Name: "ci"}); err == nil {
		t.Error("expected error for missing scopes")
	}
}

func TestWebhooksCreate(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body CreateWebhookParams
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.URL != "https://example.com/hooks" {
			t.Errorf("url = %q", body.URL)
		}
		_, _ = w.Write(enveloped(t, map[string]any{
			"id": "wh_1", "url": body.URL, "events": body.Events, "secret": "whsec_abc", "active": true,
		}))
	}))

	wh, err := c.Webhooks.Create(context.Background(), CreateWebhookParams{
		URL:    "https://example.com/hooks",
		Events: []string{"track.uploaded"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if wh.Secret != "whsec_abc" {
		t.Errorf("secret = %q", wh.Secret)
	}

	if _, err := c.Webhooks.Create(context.Background(), CreateWebhookParams{URL: "not a url", Events: []string{"x"}}); err == nil {
		t.Error("expected error for invalid URL")
	}
}

func TestWebhooksDeliveries(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/webhooks/wh_1/deliveries" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_, _ = w.Write(enveloped(t, map[string]any{
			"items":      []any{map[string]any{"id": "del_1", "webhookId": "wh_1", "status": "failed", "attempts": 3}},
			"pagination": map[string]int{"page": 1, "perPage": 20, "total": 1, "totalPages": 1},
		}))
	}))

	page, err := c.Webhooks.Deliveries(context.Background(), "wh_1", &ListDeliveriesParams{Status: "failed"})
	if err != nil {
		t.Fatalf("Deliveries: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].Attempts != 3 {
		t.Errorf("page = %+v", page)
	}
}

func TestAnalysisDetectKey(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/analysis/detect-key" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("ParseMultipartForm: %v", err)
		}
		f, _, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("FormFile: %v", err)
		}
		data, _ := io.ReadAll(f)
		if string(data) != "audio" {
			t.Errorf("file = %q", data)
		}
		_, _ = w.Write(enveloped(t, map[string]any{"key": "F#", "mode": "minor", "confidence": 0.91}))
	}))

	key, err := c.Analysis.DetectKey(context.Background(), strings.NewReader("audio"), "track.wav")
	if err != nil {
		t.Fatalf("DetectKey: %v", err)
	}
	if key.Key != "F#" || key.Mode != "minor" {
		t.Errorf("key = %+v", key)
	}

	if _, err := c.Analysis.DetectKey(context.Background(), nil, "track.wav"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestAnalysisList(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/analysis" {
			t.Errorf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("status") != "completed" || q.Get("page") != "2" {
			t.Errorf("query = %v", q)
		}
		_, _ = w.Write(enveloped(t, map[string]any{
			"items":      []any{map[string]any{"id": "ana_1", "status": "completed"}},
			"pagination": map[string]int{"page": 2, "perPage": 20, "total": 21, "totalPages": 2},
		}))
	}))

	page, err := c.Analysis.List(context.Background(), &ListAnalysesParams{
		PageParams: PageParams{Page: 2},
		Status:     "completed",
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].ID != "ana_1" {
		t.Errorf("page = %+v", page)
	}
}

func TestCopilotGenerations(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/copilot/generations":
			if r.URL.Query().Get("type") != "melody" {
				t.Errorf("query = %v", r.URL.Query())
			}
			_, _ = w.Write(enveloped(t, map[string]any{
				"items":      []any{map[string]any{"id": "gen_1", "type": "melody"}},
				"pagination": map[string]int{"page": 1, "perPage": 20, "total": 1, "totalPages": 1},
			}))
		case "/v1/copilot/generations/gen_1":
			_, _ = w.Write(enveloped(t, map[string]any{"id": "gen_1", "type": "melody", "status": "completed"}))
		default:
			t.Errorf("path = %q", r.URL.Path)
		}
	}))

	page, err := c.Copilot.Generations(context.Background(), &ListGenerationsParams{Type: "melody"})
	if err != nil {
		t.Fatalf("Generations: %v", err)
	}
	if len(page.Items) != 1 {
		t.Fatalf("items = %d", len(page.Items))
	}

	gen, err := c.Copilot.GetGeneration(context.Background(), "gen_1")
	if err != nil {
		t.Fatalf("GetGeneration: %v", err)
	}
	if gen.Status != "completed" {
		t.Errorf("status = %q", gen.Status)
	}
}

func TestTracksBatchUpdateMetadata(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/tracks/batch/metadata" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		var body map[string][]BatchUpdateItem
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if len(body["updates"]) != 2 || body["updates"][0].ID != "trk_1" {
			t.Errorf("body = %+v", body)
		}
		_, _ = w.Write(enveloped(t, map[string]any{"updated": 2}))
	}))

	result, err := c.Tracks.BatchUpdateMetadata(context.Background(), []BatchUpdateItem{
		{ID: "trk_1", Metadata: TrackMetadata{Title: "One", Artist: "A"}},
		{ID: "trk_2", Metadata: TrackMetadata{Title: "Two", Artist: "A"}},
	})
	if err != nil {
		t.Fatalf("BatchUpdateMetadata: %v", err)
	}
	if result.Updated != 2 {
		t.Errorf("updated = %d", result.Updated)
	}

	if _, err := c.Tracks.BatchUpdateMetadata(context.Background(), nil); err == nil {
		t.Error("expected error for empty updates")
	}
}

func TestTracksFindSimilar(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/tracks/trk_1/similar" {
			t.Errorf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("limit") != "5" || q.Get("minSimilarity") != "0.8" || q.Get("sameGenre") != "true" {
			t.Errorf("query = %v", q)
		}
		if q.Has("sameArtist") {
			t.Error("false flag should be dropped")
		}
		_, _ = w.Write(enveloped(t, []any{
			map[string]any{"track": map[string]any{"id": "trk_9"}, "similarity": 0.92},
		}))
	}))

	similar, err := c.Tracks.FindSimilar(context.Background(), "trk_1", &SimilarTracksParams{
		Limit:         5,
		MinSimilarity: 0.8,
		SameGenre:     true,
	})
	if err != nil {
		t.Fatalf("FindSimilar: %v", err)
	}
	if len(similar) != 1 || similar[0].Track.ID != "trk_9" {
		t.Errorf("similar = %+v", similar)
	}
}

func TestTranscriptionEnhanceLyrics(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/transcription/enhance-lyrics" {
			t.Errorf("path = %q", r.URL.Path)
		}
		var body EnhanceLyricsParams
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Lyrics != "la la la" || !body.EnhanceRhyming {
			t.Errorf("body = %+v", body)
		}
		_, _ = w.Write(enveloped(t, map[string]any{"lyrics": "la li lu", "changes": []string{"rhyme"}}))
	}))

	enhanced, err := c.Transcription.EnhanceLyrics(context.Background(), EnhanceLyricsParams{
		Lyrics:         "la la la",
		EnhanceRhyming: true,
	})
	if err != nil {
		t.Fatalf("EnhanceLyrics: %v", err)
	}
	if enhanced.Lyrics != "la li lu" {
		t.Errorf("lyrics = %q", enhanced.Lyrics)
	}

	if _, err := c.Transcription.EnhanceLyrics(context.Background(), EnhanceLyricsParams{}); err == nil {
		t.Error("expected error for missing lyrics")
	}
	if _, err := c.Transcription.CheckRhymeScheme(context.Background(), ""); err == nil {
		t.Error("expected error for empty lyrics")
	}
}

func TestAnalyticsTrackAnalytics(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/analytics/tracks/trk_1" {
			t.Errorf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("startDate") != "2026-01-01" || q.Get("endDate") != "2026-01-31" {
			t.Errorf("query = %v", q)
		}
		_, _ = w.Write(enveloped(t, map[string]any{"summary": map[string]any{"totalStreams": 1200}}))
	}))

	data, err := c.Analytics.TrackAnalytics(context.Background(), "trk_1", AnalyticsQuery{
		StartDate: "2026-01-01",
		EndDate:   "2026-01-31",
	})
	if err != nil {
		t.Fatalf("TrackAnalytics: %v", err)
	}
	if data.Summary.TotalStreams != 1200 {
		t.Errorf("totalStreams = %d", data.Summary.TotalStreams)
	}

	if _, err := c.Analytics.Listeners(context.Background(), AnalyticsQuery{StartDate: "2026-01-01"}); err == nil {
		t.Error("expected error for missing end date")
	}
}

func TestAnalyticsSetupAlert(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/analytics/alerts" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		var body AlertParams
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Condition.Metric != "streams" || body.Condition.Threshold != 10000 {
			t.Errorf("body = %+v", body)
		}
		_, _ = w.Write(enveloped(t, map[string]any{"id": "alr_1", "name": "spike", "active": true}))
	}))

	alert, err := c.Analytics.SetupAlert(context.Background(), AlertParams{
		Name:          "spike",
		Condition:     AlertCondition{Metric: "streams", Operator: "gt", Threshold: 10000},
		Notifications: []string{"email"},
	})
	if err != nil {
		t.Fatalf("SetupAlert: %v", err)
	}
	if alert.ID != "alr_1" || !alert.Active {
		t.Errorf("alert = %+v", alert)
	}

	if _, err := c.Analytics.SetupAlert(context.Background(), AlertParams{Name: "x"}); err == nil {
		t.Error("expected error for missing condition and notifications")
	}
}

func TestUserBillingAndLimits(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/user/billing":
			if r.URL.Query().Get("includeInvoices") != "true" {
				t.Errorf("query = %v", r.URL.Query())
			}
			_, _ = w.Write(enveloped(t, map[string]any{
				"plan":     "pro",
				"invoices": []any{map[string]any{"id": "inv_1", "amount": 19.99, "status": "paid"}},
			}))
		case "/v1/user/limits":
			_, _ = w.Write(enveloped(t, map[string]any{
				"plan":   "pro",
				"limits": map[string]int64{"uploads": 100},
				"usage":  map[string]int64{"uploads": 42},
			}))
		default:
			t.Errorf("path = %q", r.URL.Path)
		}
	}))

	billing, err := c.User.Billing(context.Background(), &BillingParams{IncludeInvoices: true})
	if err != nil {
		t.Fatalf("Billing: %v", err)
	}
	if billing.Plan != "pro" || len(billing.Invoices) != 1 {
		t.Errorf("billing = %+v", billing)
	}

	limits, err := c.User.Limits(context.Background())
	if err != nil {
		t.Fatalf("Limits: %v", err)
	}
	if limits.Usage["uploads"] != 42 {
		t.Errorf("limits = %+v", limits)
	}
}

func TestUserDeleteAccountValidation(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	}))

	var verr *validation.Error
	err := c.User.DeleteAccount(context.Background(), DeleteAccountParams{ConfirmEmail: "not-an-email"})
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want validation error", err)
	}
	if len(verr.Fields["confirmEmail"]) == 0 {
		t.Errorf("fields = %v", verr.Fields)
	}
}

func TestDistributionValidateAndSchedule(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/distribution/validate":
			_, _ = w.Write(enveloped(t, map[string]any{"valid": false, "errors": []string{"artwork missing"}}))
		case "/v1/distribution/releases/rel_1/schedule":
			var body map[string]string
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body["releaseDate"] != "2026-10-01" {
				t.Errorf("body = %v", body)
			}
			_, _ = w.Write(enveloped(t, map[string]any{"id": "rel_1", "status": "scheduled"}))
		default:
			t.Errorf("path = %q", r.URL.Path)
		}
	}))

	result, err := c.Distribution.ValidateRelease(context.Background(), CreateReleaseParams{
		Type:   "single",
		Title:  "Demo",
		Artist: "A",
		Tracks: []ReleaseTrack{{TrackID: "trk_1"}},
	})
	if err != nil {
		t.Fatalf("ValidateRelease: %v", err)
	}
	if result.Valid || len(result.Errors) != 1 {
		t.Errorf("result = %+v", result)
	}

	release, err := c.Distribution.ScheduleRelease(context.Background(), "rel_1", "2026-10-01")
	if err != nil {
		t.Fatalf("ScheduleRelease: %v", err)
	}
	if release.Status != "scheduled" {
		t.Errorf("status = %q", release.Status)
	}

	if _, err := c.Distribution.ScheduleRelease(context.Background(), "rel_1", ""); err == nil {
		t.Error("expected error for missing date")
	}
}

func TestWebhooksStatistics(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/webhooks/wh_1/statistics":
			if r.URL.Query().Get("period") != "30d" {
				t.Errorf("query = %v", r.URL.Query())
			}
			_, _ = w.Write(enveloped(t, map[string]any{"total": 120, "succeeded": 118, "failed": 2}))
		case "/v1/webhooks/wh_1/deliveries/del_1":
			_, _ = w.Write(enveloped(t, map[string]any{"id": "del_1", "webhookId": "wh_1", "status": "failed"}))
		default:
			t.Errorf("path = %q", r.URL.Path)
		}
	}))

	stats, err := c.Webhooks.Statistics(context.Background(), "wh_1", &StatisticsParams{Period: "30d"})
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}
	if stats.Total != 120 || stats.Failed != 2 {
		t.Errorf("stats = %+v", stats)
	}

	delivery, err := c.Webhooks.GetDelivery(context.Background(), "wh_1", "del_1")
	if err != nil {
		t.Fatalf("GetDelivery: %v", err)
	}
	if delivery.Status != "failed" {
		t.Errorf("status = %q", delivery.Status)
	}
}
