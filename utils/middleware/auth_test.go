package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/globaledge/api/utils/auth"
)

func newTestApp(t *testing.T) (*fiber.App, *auth.JWTManager) {
	t.Helper()

	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret:        "test-secret-for-middleware-tests",
		Expiry:        time.Hour,
		RefreshExpiry: 24 * time.Hour,
		Issuer:        "globaledge-test",
	})

	// nil denylist: revocation checks are skipped, matching a deployment
	// without Redis.
	mw := NewAuthMiddleware(jwtManager, nil)

	app := fiber.New()
	app.Get("/protected", mw.Required(), func(c *fiber.Ctx) error {
		id, _ := GetUserID(c)
		return c.JSON(fiber.Map{"user_id": id})
	})
	app.Get("/admin", mw.RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	return app, jwtManager
}

func request(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	return resp
}

func TestRequiredWithoutToken(t *testing.T) {
	app, _ := newTestApp(t)
	resp := request(t, app, "/protected", "")
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status: got %d, want 401", resp.StatusCode)
	}
}

func TestRequiredWithMalformedHeader(t *testing.T) {
	app, _ := newTestApp(t)
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status: got %d, want 401", resp.StatusCode)
	}
}

func TestRequiredWithValidToken(t *testing.T) {
	app, jwtManager := newTestApp(t)
	token, _, err := jwtManager.GenerateAccessToken("64f0c2a9e1b2c3d4e5f60718", "user@example.com", "user")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	resp := request(t, app, "/protected", token)
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}
}

func TestRequiredRejectsRefreshToken(t *testing.T) {
	app, jwtManager := newTestApp(t)
	token, _, err := jwtManager.GenerateRefreshToken("id", "user@example.com", "user")
	if err != nil {
		t.Fatalf("GenerateRefreshToken failed: %v", err)
	}

	resp := request(t, app, "/protected", token)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status: got %d, want 401", resp.StatusCode)
	}
}

func TestRequireAdminRejectsUserRole(t *testing.T) {
	app, jwtManager := newTestApp(t)
	token, _, err := jwtManager.GenerateAccessToken("id", "user@example.com", "user")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	resp := request(t, app, "/admin", token)
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("status: got %d, want 403", resp.StatusCode)
	}
}

func TestRequireAdminWithoutToken(t *testing.T) {
	app, _ := newTestApp(t)
	resp := request(t, app, "/admin", "")
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status: got %d, want 401", resp.StatusCode)
	}
}

func TestRequireAdminWithAdminToken(t *testing.T) {
	app, jwtManager := newTestApp(t)
	token, _, err := jwtManager.GenerateAccessToken("id", "admin@example.com", "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	resp := request(t, app, "/admin", token)
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}
}
