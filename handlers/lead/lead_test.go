package lead

import (
	"encoding/json"
	"testing"
)

func TestCreateLeadRequestValidate(t *testing.T) {
	base := CreateLeadRequest{
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Phone: "+15550100000",
	}
	if msg := base.validate(); msg != "" {
		t.Errorf("expected valid request, got %q", msg)
	}

	cases := []struct {
		name string
		mod  func(r *CreateLeadRequest)
	}{
		{"missing name", func(r *CreateLeadRequest) { r.Name = "" }},
		{"missing email", func(r *CreateLeadRequest) { r.Email = "" }},
		{"bad email", func(r *CreateLeadRequest) { r.Email = "not-an-email" }},
		{"missing phone", func(r *CreateLeadRequest) { r.Phone = "" }},
	}
	for _, tc := range cases {
		r := base
		tc.mod(&r)
		if msg := r.validate(); msg == "" {
			t.Errorf("%s: expected a validation error", tc.name)
		}
	}
}

func TestCreateLeadRequestSanitize(t *testing.T) {
	r := CreateLeadRequest{
		Name:  "  Jane Doe \x00",
		Email: " jane@example.com ",
		Phone: " +1555 ",
	}
	r.sanitize()
	if r.Name != "Jane Doe" {
		t.Errorf("Name: got %q", r.Name)
	}
	if r.Email != "jane@example.com" {
		t.Errorf("Email: got %q", r.Email)
	}
	if r.Phone != "+1555" {
		t.Errorf("Phone: got %q", r.Phone)
	}
}

func TestJoinName(t *testing.T) {
	cases := []struct {
		first, last, want string
	}{
		{"Jane", "Doe", "Jane Doe"},
		{"Jane", "", "Jane"},
		{"", "Doe", "Doe"},
		{"", "", ""},
		{" Jane ", " Doe ", "Jane Doe"},
	}
	for _, tc := range cases {
		if got := joinName(tc.first, tc.last); got != tc.want {
			t.Errorf("joinName(%q, %q): got %q, want %q", tc.first, tc.last, got, tc.want)
		}
	}
}

func TestContactRequestSingleNameField(t *testing.T) {
	body := []byte(`{"name":"Jane Doe","email":"jane@x.com","phone":"+1555","country":"Canada"}`)

	var req ContactRequest
	if err := json.Unmarshal(body, &req); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	lead := req.lead()
	lead.sanitize()
	if lead.Name != "Jane Doe" {
		t.Errorf("Name: got %q, want %q", lead.Name, "Jane Doe")
	}
	if lead.Country != "Canada" {
		t.Errorf("Country: got %q, want %q", lead.Country, "Canada")
	}
	if msg := lead.validate(); msg != "" {
		t.Errorf("expected valid lead, got %q", msg)
	}
}

func TestContactRequestSplitNameWins(t *testing.T) {
	req := ContactRequest{
		Name:      "Ignored",
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Phone:     "+15550100",
	}
	if got := req.lead().Name; got != "Jane Doe" {
		t.Errorf("Name: got %q, want %q", got, "Jane Doe")
	}
}
