package university

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/globaledge/api/database"
	"github.com/globaledge/api/utils/response"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MigrationReport summarizes a seed-data import run
type MigrationReport struct {
	Migrated int      `json:"migrated"`
	Skipped  int      `json:"skipped"`
	Failures []string `json:"failures"`
}

// MigrateUniversities upserts the static seed records by slug. Individual
// failures are collected into the report instead of aborting the run.
func (h *UniversityHandler) MigrateUniversities(c *fiber.Ctx) error {
	report := MigrationReport{Failures: []string{}}

	for _, u := range database.UniversitySeedData() {
		now := time.Now().UTC()
		set := bson.M{
			"name":         u.Name,
			"country":      u.Country,
			"city":         u.City,
			"website":      u.Website,
			"logo_url":     u.LogoURL,
			"rankings":     u.Rankings,
			"fees":         u.Fees,
			"scholarships": u.Scholarships,
			"programs":     u.Programs,
			"is_active":    u.IsActive,
			"featured":     u.Featured,
			"updated_at":   now,
		}
		res, err := h.universities().UpdateOne(c.Context(),
			bson.M{"slug": u.Slug},
			bson.M{
				"$set":         set,
				"$setOnInsert": bson.M{"created_at": now},
			},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			report.Failures = append(report.Failures, fmt.Sprintf("%s: %v", u.Slug, err))
			continue
		}
		if res.UpsertedCount > 0 {
			report.Migrated++
		} else {
			report.Skipped++
		}
	}

	return response.SuccessWithMessage(c, "University migration complete", report)
}
