package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/globaledge/api/database"
	"github.com/globaledge/api/handlers/lead"
	"github.com/globaledge/api/model"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Needs a reachable MongoDB. Skipped unless RUN_INTEGRATION_TESTS=true and
// MONGO_URI is set.
func TestContactSubmissionReflectedInDashboard(t *testing.T) {
	if os.Getenv("RUN_INTEGRATION_TESTS") != "true" {
		t.Skip("Skipping integration test. Set RUN_INTEGRATION_TESTS=true to run")
	}
	if os.Getenv("MONGO_URI") == "" {
		t.Skip("MONGO_URI not set")
	}

	store, err := database.StartMongo()
	if err != nil {
		t.Fatalf("StartMongo failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	db := store.DB()
	app := fiber.New()
	app.Post("/api/contact", lead.NewLeadHandler(db, nil).CreateContact)
	app.Get("/api/admin/dashboard", NewDashboardHandler(db).GetDashboard)

	email := "dashboard-" + primitive.NewObjectID().Hex() + "@example.com"
	leads := db.Collection(model.Lead{}.CollectionName())
	t.Cleanup(func() {
		leads.DeleteMany(context.Background(), bson.M{"email": email})
	})

	before := fetchDashboard(t, app)

	body := fmt.Sprintf(`{"name":"Jane Doe","email":%q,"phone":"+1555","country":"Canada"}`, email)
	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status: got %d, want %d", resp.StatusCode, fiber.StatusCreated)
	}

	var created struct {
		Success bool       `json:"success"`
		Data    model.Lead `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if created.Data.ID.IsZero() {
		t.Error("created lead must carry an id")
	}
	if created.Data.Name != "Jane Doe" {
		t.Errorf("Name: got %q, want %q", created.Data.Name, "Jane Doe")
	}

	after := fetchDashboard(t, app)
	if after.TotalLeads != before.TotalLeads+1 {
		t.Errorf("total_leads: got %d, want %d", after.TotalLeads, before.TotalLeads+1)
	}
	if got, want := after.LeadsByStatus[model.LeadStatusNew], before.LeadsByStatus[model.LeadStatusNew]+1; got != want {
		t.Errorf("leads_by_status.new: got %d, want %d", got, want)
	}

	found := false
	for _, l := range after.RecentLeads {
		if l.Email == email {
			found = true
		}
	}
	if !found {
		t.Error("recent_leads must include the new submission")
	}
}

func fetchDashboard(t *testing.T, app *fiber.App) DashboardStats {
	t.Helper()

	req := httptest.NewRequest("GET", "/api/admin/dashboard", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("dashboard status: got %d, want %d", resp.StatusCode, fiber.StatusOK)
	}

	var envelope struct {
		Success bool           `json:"success"`
		Data    DashboardStats `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !envelope.Success {
		t.Fatal("dashboard response must be successful")
	}
	return envelope.Data
}
