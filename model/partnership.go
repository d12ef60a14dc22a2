package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Partnership represents an institutional or agency partner listing
type Partnership struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Type        string             `bson:"type,omitempty" json:"type,omitempty"` // university, agency, institute
	Country     string             `bson:"country,omitempty" json:"country,omitempty"`
	Website     string             `bson:"website,omitempty" json:"website,omitempty"`
	LogoURL     string             `bson:"logo_url,omitempty" json:"logo_url,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	IsActive    bool               `bson:"is_active" json:"is_active"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// CollectionName specifies the collection name for Partnership
func (Partnership) CollectionName() string {
	return "partnerships"
}
