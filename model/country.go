package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CountryCosts holds indicative study costs for a destination
type CountryCosts struct {
	Currency         string `bson:"currency,omitempty" json:"currency,omitempty"`
	TuitionPerYear   string `bson:"tuition_per_year,omitempty" json:"tuition_per_year,omitempty"`
	LivingPerMonth   string `bson:"living_per_month,omitempty" json:"living_per_month,omitempty"`
	ApplicationFee   string `bson:"application_fee,omitempty" json:"application_fee,omitempty"`
	HealthInsurance  string `bson:"health_insurance,omitempty" json:"health_insurance,omitempty"`
	VisaApplication  string `bson:"visa_application,omitempty" json:"visa_application,omitempty"`
}

// Country represents a study destination page
type Country struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Slug         string             `bson:"slug" json:"slug"` // immutable unique key
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Requirements []string           `bson:"requirements,omitempty" json:"requirements,omitempty"`
	Costs        CountryCosts       `bson:"costs,omitempty" json:"costs,omitempty"`
	FlagURL      string             `bson:"flag_url,omitempty" json:"flag_url,omitempty"`
	IsActive     bool               `bson:"is_active" json:"is_active"`
	Featured     bool               `bson:"featured" json:"featured"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// CollectionName specifies the collection name for Country
func (Country) CollectionName() string {
	return "countries"
}
