package database

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/globaledge/api/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// These tests need a reachable MongoDB. They are skipped unless
// RUN_INTEGRATION_TESTS=true and MONGO_URI is set.
func integrationStore(t *testing.T) *MongoStore {
	t.Helper()
	if os.Getenv("RUN_INTEGRATION_TESTS") != "true" {
		t.Skip("Skipping integration test. Set RUN_INTEGRATION_TESTS=true to run")
	}
	if os.Getenv("MONGO_URI") == "" {
		t.Skip("MONGO_URI not set")
	}

	store, err := StartMongo()
	if err != nil {
		t.Fatalf("StartMongo failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return store
}

func TestConnectIsIdempotent(t *testing.T) {
	store := integrationStore(t)
	if err := store.Connect(); err != nil {
		t.Errorf("second Connect must be a no-op, got %v", err)
	}
	if err := store.HealthCheck(); err != nil {
		t.Errorf("HealthCheck failed: %v", err)
	}
}

func TestCountrySlugUniqueness(t *testing.T) {
	store := integrationStore(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	countries := store.DB().Collection(model.Country{}.CollectionName())
	slug := "integration-test-" + primitive.NewObjectID().Hex()
	t.Cleanup(func() {
		countries.DeleteMany(context.Background(), bson.M{"slug": slug})
	})

	first := model.Country{ID: primitive.NewObjectID(), Slug: slug, Name: "First", IsActive: true}
	if _, err := countries.InsertOne(ctx, first); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}

	second := model.Country{ID: primitive.NewObjectID(), Slug: slug, Name: "Second", IsActive: true}
	_, err := countries.InsertOne(ctx, second)
	if err == nil {
		t.Fatal("expected duplicate-key error on second insert")
	}
	if !IsDup(err) {
		t.Errorf("IsDup: expected true for %v", err)
	}

	// The original record must be untouched.
	var got model.Country
	if err := countries.FindOne(ctx, bson.M{"slug": slug}).Decode(&got); err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if got.Name != "First" {
		t.Errorf("existing record changed: got name %q", got.Name)
	}
}

func TestIsDupOnNil(t *testing.T) {
	if IsDup(nil) {
		t.Error("IsDup(nil) must be false")
	}
}
