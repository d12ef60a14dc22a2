package queryHelper

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListParams is an explicit filter specification assembled from optional
// request parameters. Handlers fill it in; TranslateFilter turns it into a
// store query exactly once, keeping bson out of business logic.
type ListParams struct {
	Search       string   // case-insensitive substring match
	SearchFields []string // fields the search applies to
	Category     string   // exact match on the category field
	Type         string   // exact match on the type field
	Status       string   // exact match on the status field
	Featured     *bool
	IsActive     *bool
	IsPublished  *bool
	Page         int
	Limit        int
	SortField    string
	SortDesc     bool
}

// TranslateFilter builds the bson filter from the enumerated predicates.
func (p ListParams) TranslateFilter() bson.M {
	filter := bson.M{}

	if p.Search != "" && len(p.SearchFields) > 0 {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(p.Search), Options: "i"}
		or := make([]bson.M, 0, len(p.SearchFields))
		for _, field := range p.SearchFields {
			or = append(or, bson.M{field: pattern})
		}
		filter["$or"] = or
	}

	if p.Category != "" {
		filter["category"] = p.Category
	}
	if p.Type != "" {
		filter["type"] = p.Type
	}
	if p.Status != "" {
		filter["status"] = p.Status
	}
	if p.Featured != nil {
		filter["featured"] = *p.Featured
	}
	if p.IsActive != nil {
		filter["is_active"] = *p.IsActive
	}
	if p.IsPublished != nil {
		filter["is_published"] = *p.IsPublished
	}

	return filter
}

// Normalize clamps page and limit to sane bounds.
func (p *ListParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

// Skip returns the skip offset for the current page.
func (p ListParams) Skip() int64 {
	return int64((p.Page - 1) * p.Limit)
}

// FindOptions returns the mongo find options (skip, limit, sort).
func (p ListParams) FindOptions() *options.FindOptions {
	order := 1
	if p.SortDesc {
		order = -1
	}
	sortField := p.SortField
	if sortField == "" {
		sortField = "created_at"
	}

	return options.Find().
		SetSkip(p.Skip()).
		SetLimit(int64(p.Limit)).
		SetSort(bson.D{{Key: sortField, Value: order}})
}

// ReturnUpdated makes FindOneAndUpdate return the post-update document.
func ReturnUpdated() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}

// ParseBoolFlag parses "true"/"false" query values into an optional bool.
// Any other value (including empty) leaves the predicate unset.
func ParseBoolFlag(v string) *bool {
	switch v {
	case "true":
		b := true
		return &b
	case "false":
		b := false
		return &b
	}
	return nil
}
