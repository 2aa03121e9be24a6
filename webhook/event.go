package webhook

import (
	"encoding/json"
	"fmt"
	"time"
)

// Event is a parsed webhook delivery payload.
type Event struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// Event types emitted by the platform.
const (
	EventTrackUploaded          = "track.uploaded"
	EventTrackAnalyzed          = "track.analyzed"
	EventAnalysisCompleted      = "analysis.completed"
	EventAnalysisFailed         = "analysis.failed"
	EventTranscriptionCompleted = "transcription.completed"
	EventTranscriptionFailed    = "transcription.failed"
	EventDistributionSubmitted  = "distribution.submitted"
	EventDistributionLive       = "distribution.live"
	EventDistributionRejected   = "distribution.rejected"
	EventRoyaltyReportReady     = "royalty.report_ready"
)

// ParseEvent decodes a webhook payload into an Event. The payload must
// already be verified; parsing performs no authenticity checks.
func ParseEvent(payload []byte) (*Event, error) {
	var ev Event
	if err := json.Unmarshal(payload, &ev); err != nil {
		return nil, fmt.Errorf("webhook: parse event: %w", err)
	}
	if ev.Type == "" {
		return nil, fmt.Errorf("webhook: event has no type")
	}
	return &ev, nil
}

// VerifyAndParse verifies the signature header and then parses the
// payload into an Event.
func VerifyAndParse(payload []byte, header, secret string) (*Event, error) {
	if err := Verify(payload, header, secret); err != nil {
		return nil, err
	}
	return ParseEvent(payload)
}

// DecodeData unmarshals the event's data object into v.
func (e *Event) DecodeData(v any) error {
	if len(e.Data) == 0 {
		return fmt.Errorf("webhook: event %s has no data", e.ID)
	}
	if err := json.Unmarshal(e.Data, v); err != nil {
		return fmt.Errorf("webhook: decode event data: %w", err)
	}
	return nil
}
