package testimonial

import "testing"

func TestValidRating(t *testing.T) {
	for _, r := range []int{1, 2, 3, 4, 5} {
		if !validRating(r) {
			t.Errorf("rating %d must be valid", r)
		}
	}
	for _, r := range []int{0, -1, 6, 100} {
		if validRating(r) {
			t.Errorf("rating %d must be invalid", r)
		}
	}
}

func TestTestimonialRequestValidation(t *testing.T) {
	h := NewTestimonialHandler(nil)
	rating := 4
	base := TestimonialRequest{
		Name:   "Aditi Sharma",
		Quote:  "The visa guidance made all the difference.",
		Rating: &rating,
	}
	if err := h.validator.ValidateStruct(base); err != nil {
		t.Errorf("expected valid request, got %v", err)
	}

	zero, six := 0, 6
	cases := []struct {
		name string
		mod  func(r *TestimonialRequest)
	}{
		{"missing name", func(r *TestimonialRequest) { r.Name = "" }},
		{"missing quote", func(r *TestimonialRequest) { r.Quote = "" }},
		{"rating too low", func(r *TestimonialRequest) { r.Rating = &zero }},
		{"rating too high", func(r *TestimonialRequest) { r.Rating = &six }},
		{"bad avatar url", func(r *TestimonialRequest) { r.AvatarURL = "not a url" }},
	}
	for _, tc := range cases {
		r := base
		tc.mod(&r)
		if err := h.validator.ValidateStruct(r); err == nil {
			t.Errorf("%s: expected a validation error", tc.name)
		}
	}

	// No rating at all is fine, the handler defaults it.
	base.Rating = nil
	if err := h.validator.ValidateStruct(base); err != nil {
		t.Errorf("nil rating must pass, got %v", err)
	}
}
