package tracking

import (
	"testing"
	"time"
)

func TestNewMetaClientUnconfigured(t *testing.T) {
	if c := NewMetaClient(MetaConfig{}); c != nil {
		t.Error("expected nil client without pixel ID and access token")
	}
	if c := NewMetaClient(MetaConfig{PixelID: "123"}); c != nil {
		t.Error("expected nil client without access token")
	}
}

func TestHashIdentifier(t *testing.T) {
	if HashIdentifier("") != "" {
		t.Error("empty input must hash to empty string")
	}

	// Normalization: case and whitespace must not change the digest.
	a := HashIdentifier("Jane@Example.COM ")
	b := HashIdentifier("jane@example.com")
	if a != b {
		t.Errorf("normalized inputs differ: %q vs %q", a, b)
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}

	if HashIdentifier("jane@example.com") == HashIdentifier("john@example.com") {
		t.Error("distinct inputs must not collide")
	}
}

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"+1 (555) 010-0000": "15550100000",
		"15550100000":       "15550100000",
		"055 501 0000":      "0555010000",
		"":                  "",
	}
	for in, want := range cases {
		if got := NormalizePhone(in); got != want {
			t.Errorf("NormalizePhone(%q): got %q, want %q", in, got, want)
		}
	}
}

func TestNewEventIDUnique(t *testing.T) {
	if NewEventID() == NewEventID() {
		t.Error("event IDs must be unique")
	}
}

func TestTrackLeadNilClient(t *testing.T) {
	var c *MetaClient
	// Must not panic or block.
	c.TrackLead(UserData{Email: "jane@example.com"}, "https://example.com")
	time.Sleep(10 * time.Millisecond)
}
