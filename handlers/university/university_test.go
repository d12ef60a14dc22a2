package university

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestLookupFilterByObjectID(t *testing.T) {
	oid := primitive.NewObjectID()
	filter := lookupFilter(oid.Hex())

	got, ok := filter["_id"].(primitive.ObjectID)
	if !ok {
		t.Fatalf("expected _id filter, got %v", filter)
	}
	if got != oid {
		t.Errorf("_id: got %v, want %v", got, oid)
	}
}

func TestLookupFilterFallsBackToSlug(t *testing.T) {
	filter := lookupFilter("university-of-toronto")
	if filter["slug"] != "university-of-toronto" {
		t.Errorf("expected slug fallback, got %v", filter)
	}
	if _, ok := filter["_id"]; ok {
		t.Error("non-hex input must not produce an _id filter")
	}
}

func TestLookupFilterHexLengthMatters(t *testing.T) {
	// 23 hex chars: not a valid ObjectID, must fall back to slug.
	filter := lookupFilter("64f0c2a9e1b2c3d4e5f6071")
	if _, ok := filter["slug"]; !ok {
		t.Errorf("expected slug fallback, got %v", filter)
	}
}

func TestUniversityRequestValidation(t *testing.T) {
	h := NewUniversityHandler(nil)
	base := UniversityRequest{
		Name:    "University of Toronto",
		Country: "canada",
		Website: "https://www.utoronto.ca",
	}
	if err := h.validator.ValidateStruct(base); err != nil {
		t.Errorf("expected valid request, got %v", err)
	}

	cases := []struct {
		name string
		mod  func(r *UniversityRequest)
	}{
		{"missing name", func(r *UniversityRequest) { r.Name = "" }},
		{"short name", func(r *UniversityRequest) { r.Name = "U" }},
		{"missing country", func(r *UniversityRequest) { r.Country = "" }},
		{"bad website", func(r *UniversityRequest) { r.Website = "not a url" }},
		{"bad logo url", func(r *UniversityRequest) { r.LogoURL = "::" }},
	}
	for _, tc := range cases {
		r := base
		tc.mod(&r)
		if err := h.validator.ValidateStruct(r); err == nil {
			t.Errorf("%s: expected a validation error", tc.name)
		}
	}
}
