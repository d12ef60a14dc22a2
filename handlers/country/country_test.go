package country

import "testing"

func TestCountryRequestValidation(t *testing.T) {
	h := NewCountryHandler(nil)
	base := CountryRequest{
		Name:    "Canada",
		FlagURL: "https://cdn.example.com/flags/ca.svg",
	}
	if err := h.validator.ValidateStruct(base); err != nil {
		t.Errorf("expected valid request, got %v", err)
	}

	cases := []struct {
		name string
		mod  func(r *CountryRequest)
	}{
		{"missing name", func(r *CountryRequest) { r.Name = "" }},
		{"short name", func(r *CountryRequest) { r.Name = "C" }},
		{"bad flag url", func(r *CountryRequest) { r.FlagURL = "not a url" }},
	}
	for _, tc := range cases {
		r := base
		tc.mod(&r)
		if err := h.validator.ValidateStruct(r); err == nil {
			t.Errorf("%s: expected a validation error", tc.name)
		}
	}
}
