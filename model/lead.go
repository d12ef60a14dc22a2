package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lead statuses form a closed funnel
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusQualified = "qualified"
	LeadStatusConverted = "converted"
	LeadStatusClosed    = "closed"
)

// Lead sources
const (
	LeadSourceWebsite     = "website"
	LeadSourceContactForm = "contact_form"
)

// Lead represents a prospective-student contact captured from a form
type Lead struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone" json:"phone"`
	Country   string             `bson:"country,omitempty" json:"country,omitempty"` // destination of interest
	Program   string             `bson:"program,omitempty" json:"program,omitempty"`
	Message   string             `bson:"message,omitempty" json:"message,omitempty"`
	Status    string             `bson:"status" json:"status"`
	Source    string             `bson:"source" json:"source"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// CollectionName specifies the collection name for Lead
func (Lead) CollectionName() string {
	return "leads"
}

// LeadStatuses lists every valid funnel stage in order.
func LeadStatuses() []string {
	return []string{
		LeadStatusNew,
		LeadStatusContacted,
		LeadStatusQualified,
		LeadStatusConverted,
		LeadStatusClosed,
	}
}

// IsValidLeadStatus reports whether status is part of the funnel enum.
func IsValidLeadStatus(status string) bool {
	for _, s := range LeadStatuses() {
		if s == status {
			return true
		}
	}
	return false
}
