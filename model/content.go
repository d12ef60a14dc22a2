package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Content types form a closed enum
const (
	ContentTypePage        = "page"
	ContentTypeBlog        = "blog"
	ContentTypeUpdate      = "update"
	ContentTypeService     = "service"
	ContentTypeDestination = "destination"
)

// Content represents an editable page, blog post, or update
type Content struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Slug        string             `bson:"slug" json:"slug"` // unique key
	Title       string             `bson:"title" json:"title"`
	Type        string             `bson:"type" json:"type"` // page, blog, update, service, destination
	Body        string             `bson:"body,omitempty" json:"body,omitempty"`
	Excerpt     string             `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	Author      string             `bson:"author,omitempty" json:"author,omitempty"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Tags        []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	CoverURL    string             `bson:"cover_url,omitempty" json:"cover_url,omitempty"`
	IsPublished bool               `bson:"is_published" json:"is_published"`
	IsFeatured  bool               `bson:"is_featured" json:"is_featured"`
	PublishedAt *time.Time         `bson:"published_at,omitempty" json:"published_at,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// CollectionName specifies the collection name for Content
func (Content) CollectionName() string {
	return "contents"
}

// ContentTypes lists every valid content type.
func ContentTypes() []string {
	return []string{
		ContentTypePage,
		ContentTypeBlog,
		ContentTypeUpdate,
		ContentTypeService,
		ContentTypeDestination,
	}
}

// IsValidContentType reports whether t is part of the content type enum.
func IsValidContentType(t string) bool {
	for _, ct := range ContentTypes() {
		if ct == t {
			return true
		}
	}
	return false
}
