package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Testimonial represents a student success story shown on the public site
type Testimonial struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	University string             `bson:"university" json:"university"`
	Program    string             `bson:"program" json:"program"`
	Quote      string             `bson:"quote" json:"quote"`
	Rating     int                `bson:"rating" json:"rating"` // 1-5
	AvatarURL  string             `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	IsActive   bool               `bson:"is_active" json:"is_active"`
	Featured   bool               `bson:"featured" json:"featured"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}

// CollectionName specifies the collection name for Testimonial
func (Testimonial) CollectionName() string {
	return "testimonials"
}
