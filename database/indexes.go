package database

import (
	"context"
	"time"

	"github.com/globaledge/api/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique and query indexes for every collection.
// Safe to run on every startup; CreateMany is a no-op for existing indexes.
func EnsureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)

	indexes := map[string][]mongo.IndexModel{
		model.User{}.CollectionName(): {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		model.Country{}.CollectionName(): {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "featured", Value: 1}}},
		},
		model.Content{}.CollectionName(): {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "type", Value: 1}, {Key: "is_published", Value: 1}}},
		},
		model.University{}.CollectionName(): {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "country", Value: 1}, {Key: "is_active", Value: 1}}},
		},
		model.Lead{}.CollectionName(): {
			{Keys: bson.D{{Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
		},
		model.Testimonial{}.CollectionName(): {
			{Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "featured", Value: 1}}},
		},
		model.CronJobLog{}.CollectionName(): {
			{Keys: bson.D{{Key: "job_name", Value: 1}, {Key: "started_at", Value: -1}}},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}

	return nil
}
