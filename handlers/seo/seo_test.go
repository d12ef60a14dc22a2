package seo

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/globaledge/api/services/indexnow"
)

const testSiteURL = "https://www.globaledge.education"

func newTestApp(indexNow *indexnow.Client) *fiber.App {
	h := NewSEOHandler(nil, indexNow, testSiteURL)

	app := fiber.New()
	app.Get("/robots.txt", h.GetRobots)
	app.Get("/key.txt", h.GetIndexNowKey)
	app.Post("/api/admin/indexnow", h.SubmitURLs)
	return app
}

func TestGetRobots(t *testing.T) {
	app := newTestApp(nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/robots.txt", nil))
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status: got %d, want 200", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Sitemap: "+testSiteURL+"/sitemap.xml") {
		t.Errorf("robots.txt missing sitemap line:\n%s", body)
	}
}

func TestGetIndexNowKeyUnconfigured(t *testing.T) {
	app := newTestApp(nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/key.txt", nil))
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("status: got %d, want 404", resp.StatusCode)
	}
}

func TestGetIndexNowKeyConfigured(t *testing.T) {
	client := indexnow.NewClient(indexnow.Config{Key: "abc123", SiteURL: testSiteURL})
	app := newTestApp(client)

	resp, err := app.Test(httptest.NewRequest("GET", "/key.txt", nil))
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status: got %d, want 200", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	if string(body) != "abc123" {
		t.Errorf("key body: got %q", body)
	}
}

func TestSubmitURLsUnconfigured(t *testing.T) {
	app := newTestApp(nil)

	req := httptest.NewRequest("POST", "/api/admin/indexnow", strings.NewReader(`{"action":"submit-all"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusServiceUnavailable {
		t.Errorf("status: got %d, want 503", resp.StatusCode)
	}
}

func TestSubmitURLsRejectsUnknownAction(t *testing.T) {
	client := indexnow.NewClient(indexnow.Config{Key: "abc123", SiteURL: testSiteURL})
	app := newTestApp(client)

	req := httptest.NewRequest("POST", "/api/admin/indexnow", strings.NewReader(`{"action":"reindex"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status: got %d, want 400", resp.StatusCode)
	}
}

func TestSubmitURLsRequiresURLsForSubmit(t *testing.T) {
	client := indexnow.NewClient(indexnow.Config{Key: "abc123", SiteURL: testSiteURL})
	app := newTestApp(client)

	req := httptest.NewRequest("POST", "/api/admin/indexnow", strings.NewReader(`{"action":"submit"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status: got %d, want 400", resp.StatusCode)
	}
}
