package validation

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"jane@example.com",
		"first.last+tag@sub.domain.co",
		"a@b.io",
	}
	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Errorf("expected %q to be valid", email)
		}
	}

	invalid := []string{
		"",
		"plainaddress",
		"@no-local.com",
		"no-domain@",
		"spaces in@example.com",
	}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Errorf("expected %q to be invalid", email)
		}
	}
}

func TestValidateSlug(t *testing.T) {
	valid := []string{"canada", "study-in-canada", "top-10-universities"}
	for _, slug := range valid {
		if !ValidateSlug(slug) {
			t.Errorf("expected %q to be valid", slug)
		}
	}

	invalid := []string{"", "a", "UPPER", "has space", "trailing-", "-leading", "double--dash"}
	for _, slug := range invalid {
		if ValidateSlug(slug) {
			t.Errorf("expected %q to be invalid", slug)
		}
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Study in Canada":           "study-in-canada",
		"  Top 10 UK Universities ": "top-10-uk-universities",
		"Already-a-slug":            "already-a-slug",
		"Visa & Fees (2026)":        "visa-fees-2026",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q): got %q, want %q", in, got, want)
		}
	}
}

func TestSlugifyRoundTripsThroughValidate(t *testing.T) {
	titles := []string{"Study in Canada", "Master's Programs: A Guide", "IELTS vs TOEFL"}
	for _, title := range titles {
		slug := Slugify(title)
		if !ValidateSlug(slug) {
			t.Errorf("Slugify(%q) produced invalid slug %q", title, slug)
		}
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString("  hello\x00world  "); got != "helloworld" {
		t.Errorf("got %q", got)
	}
	if got := SanitizeString("\t Jane Doe \n"); got != "Jane Doe" {
		t.Errorf("got %q", got)
	}
}
