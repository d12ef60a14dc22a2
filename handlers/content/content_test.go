package content

import "testing"

func TestContentRequestValidation(t *testing.T) {
	h := NewContentHandler(nil)
	base := ContentRequest{
		Title:    "Studying in Canada in 2026",
		Type:     "blog",
		CoverURL: "https://cdn.example.com/covers/canada.jpg",
	}
	if err := h.validator.ValidateStruct(base); err != nil {
		t.Errorf("expected valid request, got %v", err)
	}

	cases := []struct {
		name string
		mod  func(r *ContentRequest)
	}{
		{"missing title", func(r *ContentRequest) { r.Title = "" }},
		{"missing type", func(r *ContentRequest) { r.Type = "" }},
		{"unknown type", func(r *ContentRequest) { r.Type = "newsletter" }},
		{"bad cover url", func(r *ContentRequest) { r.CoverURL = "not a url" }},
	}
	for _, tc := range cases {
		r := base
		tc.mod(&r)
		if err := h.validator.ValidateStruct(r); err == nil {
			t.Errorf("%s: expected a validation error", tc.name)
		}
	}
}

func TestContentRequestValidationTypes(t *testing.T) {
	h := NewContentHandler(nil)
	for _, ct := range []string{"page", "blog", "update", "service", "destination"} {
		req := ContentRequest{Title: "Some Title", Type: ct}
		if err := h.validator.ValidateStruct(req); err != nil {
			t.Errorf("type %q must pass, got %v", ct, err)
		}
	}
}
