package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UniversityRankings holds published league-table positions
type UniversityRankings struct {
	QSWorld  int `bson:"qs_world,omitempty" json:"qs_world,omitempty"`
	Times    int `bson:"times,omitempty" json:"times,omitempty"`
	National int `bson:"national,omitempty" json:"national,omitempty"`
}

// UniversityFees holds indicative annual fees per study level
type UniversityFees struct {
	Currency      string `bson:"currency,omitempty" json:"currency,omitempty"`
	Undergraduate string `bson:"undergraduate,omitempty" json:"undergraduate,omitempty"`
	Postgraduate  string `bson:"postgraduate,omitempty" json:"postgraduate,omitempty"`
}

// Scholarship describes a funding option offered by a university
type Scholarship struct {
	Name        string `bson:"name" json:"name"`
	Amount      string `bson:"amount,omitempty" json:"amount,omitempty"`
	Eligibility string `bson:"eligibility,omitempty" json:"eligibility,omitempty"`
}

// University represents a partner institution profile.
// The slug doubles as the public identifier: lookups accept either an
// ObjectID hex or a slug.
type University struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Slug         string             `bson:"slug" json:"slug"` // unique, acts as public ID
	Name         string             `bson:"name" json:"name"`
	Country      string             `bson:"country" json:"country"`
	City         string             `bson:"city,omitempty" json:"city,omitempty"`
	Website      string             `bson:"website,omitempty" json:"website,omitempty"`
	LogoURL      string             `bson:"logo_url,omitempty" json:"logo_url,omitempty"`
	Rankings     UniversityRankings `bson:"rankings,omitempty" json:"rankings,omitempty"`
	Fees         UniversityFees     `bson:"fees,omitempty" json:"fees,omitempty"`
	Scholarships []Scholarship      `bson:"scholarships,omitempty" json:"scholarships,omitempty"`
	Programs     []string           `bson:"programs,omitempty" json:"programs,omitempty"`
	IsActive     bool               `bson:"is_active" json:"is_active"`
	Featured     bool               `bson:"featured" json:"featured"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// CollectionName specifies the collection name for University
func (University) CollectionName() string {
	return "universityv2s"
}
