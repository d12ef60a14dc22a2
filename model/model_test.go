package model

import "testing"

func TestIsValidLeadStatus(t *testing.T) {
	for _, s := range LeadStatuses() {
		if !IsValidLeadStatus(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	for _, s := range []string{"", "open", "NEW", "won"} {
		if IsValidLeadStatus(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestLeadStatusesOrder(t *testing.T) {
	want := []string{"new", "contacted", "qualified", "converted", "closed"}
	got := LeadStatuses()
	if len(got) != len(want) {
		t.Fatalf("got %d statuses, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("status[%d]: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestIsValidContentType(t *testing.T) {
	for _, ct := range ContentTypes() {
		if !IsValidContentType(ct) {
			t.Errorf("expected %q to be valid", ct)
		}
	}
	for _, ct := range []string{"", "article", "Page"} {
		if IsValidContentType(ct) {
			t.Errorf("expected %q to be invalid", ct)
		}
	}
}

func TestIsValidRole(t *testing.T) {
	if !IsValidRole(RoleAdmin) || !IsValidRole(RoleUser) {
		t.Error("built-in roles must be valid")
	}
	if IsValidRole("superuser") || IsValidRole("") {
		t.Error("unknown roles must be invalid")
	}
}

func TestCollectionNames(t *testing.T) {
	cases := map[string]string{
		User{}.CollectionName():        "users",
		Lead{}.CollectionName():        "leads",
		Country{}.CollectionName():     "countries",
		Testimonial{}.CollectionName(): "testimonials",
		Content{}.CollectionName():     "contents",
		University{}.CollectionName():  "universityv2s",
		Partnership{}.CollectionName(): "partnerships",
		CronJobLog{}.CollectionName():  "cron_job_logs",
	}
	for got, want := range cases {
		if got != want {
			t.Errorf("collection name: got %q, want %q", got, want)
		}
	}
}
