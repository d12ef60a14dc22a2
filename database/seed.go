package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/globaledge/api/model"
	"github.com/globaledge/api/utils/auth"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Seeder handles database seeding operations
type Seeder struct {
	db *mongo.Database
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *mongo.Database) *Seeder {
	return &Seeder{db: db}
}

// SeedAll runs all seed functions
func (s *Seeder) SeedAll(ctx context.Context) error {
	log.Println("Starting database seeding...")

	if err := s.SeedAdminUser(ctx); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if err := s.SeedCountries(ctx); err != nil {
		return fmt.Errorf("failed to seed countries: %w", err)
	}

	log.Println("Database seeding completed successfully.")
	return nil
}

// SeedAdminUser creates the default admin user if no admin exists.
// Credentials come from ADMIN_EMAIL / ADMIN_PASSWORD.
func (s *Seeder) SeedAdminUser(ctx context.Context) error {
	users := s.db.Collection(model.User{}.CollectionName())

	count, err := users.CountDocuments(ctx, bson.M{"role": model.RoleAdmin})
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("Admin user already exists, skipping")
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL and ADMIN_PASSWORD not set, skipping admin user seed")
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = users.InsertOne(ctx, model.User{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return err
	}

	log.Printf("Seeded admin user %s", email)
	return nil
}

// SeedCountries inserts the starter destination pages when the collection is empty.
func (s *Seeder) SeedCountries(ctx context.Context) error {
	countries := s.db.Collection(model.Country{}.CollectionName())

	count, err := countries.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("Countries already seeded, skipping")
		return nil
	}

	now := time.Now().UTC()
	seed := []interface{}{
		model.Country{
			Slug: "canada", Name: "Canada",
			Description:  "Post-graduation work permits and a clear permanent-residency pathway.",
			Requirements: []string{"IELTS 6.0+", "Study permit", "Proof of funds (GIC)"},
			Costs:        model.CountryCosts{Currency: "CAD", TuitionPerYear: "15,000-35,000", LivingPerMonth: "1,200-1,800"},
			IsActive:     true, Featured: true, CreatedAt: now, UpdatedAt: now,
		},
		model.Country{
			Slug: "united-kingdom", Name: "United Kingdom",
			Description:  "One-year master's programs and the Graduate Route visa.",
			Requirements: []string{"IELTS 6.5+", "Student visa (CAS)", "TB test where applicable"},
			Costs:        model.CountryCosts{Currency: "GBP", TuitionPerYear: "12,000-28,000", LivingPerMonth: "1,000-1,400"},
			IsActive:     true, Featured: true, CreatedAt: now, UpdatedAt: now,
		},
		model.Country{
			Slug: "australia", Name: "Australia",
			Description:  "Strong part-time work rights and post-study visas.",
			Requirements: []string{"IELTS 6.0+", "Subclass 500 visa", "Overseas health cover (OSHC)"},
			Costs:        model.CountryCosts{Currency: "AUD", TuitionPerYear: "20,000-40,000", LivingPerMonth: "1,400-2,000"},
			IsActive:     true, Featured: false, CreatedAt: now, UpdatedAt: now,
		},
	}

	if _, err := countries.InsertMany(ctx, seed); err != nil {
		return err
	}

	log.Printf("Seeded %d countries", len(seed))
	return nil
}
