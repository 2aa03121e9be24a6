package webhook

import (
	"testing"
	"time"
)

func TestParseEvent(t *testing.T) {
	payload := []byte(`{
		"id": "evt_01",
		"type": "analysis.completed",
		"timestamp": "2026-08-30T12:00:00Z",
		"data": {"trackId": "trk_1", "score": 87.5}
	}`)

	ev, err := ParseEvent(payload)
	if err != nil {
		t.Fatalf("ParseEvent: %v", err)
	}
	if ev.ID != "evt_01" {
		t.Errorf("ID = %q", ev.ID)
	}
	if ev.Type != EventAnalysisCompleted {
		t.Errorf("Type = %q", ev.Type)
	}
	if ev.Timestamp.IsZero() {
		t.Error("Timestamp is zero")
	}

	var data struct {
		TrackID string  `json:"trackId"`
		Score   float64 `json:"score"`
	}
	if err := ev.DecodeData(&data); err != nil {
		t.Fatalf("DecodeData: %v", err)
	}
	if data.TrackID != "trk_1" || data.Score != 87.5 {
		t.Errorf("data = %+v", data)
	}
}

func TestParseEventInvalid(t *testing.T) {
	if _, err := ParseEvent([]byte(`not json`)); err == nil {
		t.Error("expected error for non-JSON payload")
	}
	if _, err := ParseEvent([]byte(`{"id":"evt_1"}`)); err == nil {
		t.Error("expected error for missing type")
	}
}

func TestVerifyAndParse(t *testing.T) {
	payload := []byte(`{"id":"evt_2","type":"track.uploaded","data":{"trackId":"trk_2"}}`)
	header, err := Sign(payload, testSecret, time.Now())
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	ev, err := VerifyAndParse(payload, header, testSecret)
	if err != nil {
		t.Fatalf("VerifyAndParse: %v", err)
	}
	if ev.Type != EventTrackUploaded {
		t.Errorf("Type = %q", ev.Type)
	}

	if _, err := VerifyAndParse(payload, header, "wrong"); err == nil {
		t.Error("expected verification failure with wrong secret")
	}
}

func TestDecodeDataEmpty(t *testing.T) {
	ev := &Event{ID: "evt_3", Type: EventTrackAnalyzed}
	var out map[string]any
	if err := ev.DecodeData(&out); err == nil {
		t.Error("expected error for empty data")
	}
}
