package validation

import (
	"errors"
	"strings"
	"testing"
)

type uploadParams struct {
	Title  string `json:"title" validate:"required"`
	Artist string `json:"artist" validate:"required"`
	Genre  string `json:"genre,omitempty"`
	Tempo  int    `json:"tempo,omitempty" validate:"omitempty,min=20,max=300"`
}

func TestValidate_Valid(t *testing.T) {
	err := Validate(uploadParams{Title: "Moonstone", Artist: "Opal", Tempo: 120})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_MissingRequired(t *testing.T) {
	err := Validate(uploadParams{Genre: "electronic"})
	if err == nil {
		t.Fatal("expected error")
	}

	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if _, ok := verr.Fields["title"]; !ok {
		t.Errorf("expected title in field errors, got %v", verr.Fields)
	}
	if _, ok := verr.Fields["artist"]; !ok {
		t.Errorf("expected artist in field errors, got %v", verr.Fields)
	}
	if msgs := verr.Fields["title"]; len(msgs) != 1 || msgs[0] != "is required" {
		t.Errorf("expected [is required], got %v", msgs)
	}
}

func TestValidate_RangeMessage(t *testing.T) {
	err := Validate(uploadParams{Title: "x", Artist: "y", Tempo: 999})
	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if msgs := verr.Fields["tempo"]; len(msgs) != 1 || !strings.Contains(msgs[0], "300") {
		t.Errorf("expected max message mentioning 300, got %v", msgs)
	}
}

func TestValidate_UsesJSONTagNames(t *testing.T) {
	type params struct {
		TrackID string `json:"track_id" validate:"required"`
	}
	err := Validate(params{})
	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if _, ok := verr.Fields["track_id"]; !ok {
		t.Errorf("expected json tag name track_id, got %v", verr.Fields)
	}
}

func TestRequireOneOf(t *testing.T) {
	if err := RequireOneOf(map[string]bool{"track_id": true, "file": false}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := RequireOneOf(map[string]bool{"track_id": false, "file": false})
	if err == nil {
		t.Fatal("expected error when nothing is set")
	}
	if !strings.Contains(err.Error(), "file") || !strings.Contains(err.Error(), "track_id") {
		t.Errorf("expected both names in message, got %q", err)
	}
}
