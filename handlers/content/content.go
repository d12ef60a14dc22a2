package content

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/globaledge/api/database"
	"github.com/globaledge/api/model"
	queryHelper "github.com/globaledge/api/utils/query"
	"github.com/globaledge/api/utils/response"
	"github.com/globaledge/api/utils/validation"
	"github.com/microcosm-cc/bluemonday"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ContentHandler handles pages, blog posts, and updates
type ContentHandler struct {
	db        *mongo.Database
	sanitizer *bluemonday.Policy
	validator *validation.Validator
}

// NewContentHandler creates a new content handler
func NewContentHandler(db *mongo.Database) *ContentHandler {
	return &ContentHandler{
		db:        db,
		sanitizer: bluemonday.UGCPolicy(),
		validator: validation.NewValidator(),
	}
}

func (h *ContentHandler) contents() *mongo.Collection {
	return h.db.Collection(model.Content{}.CollectionName())
}

// ListContent returns published content for the public site
func (h *ContentHandler) ListContent(c *fiber.Ctx) error {
	return h.list(c, true)
}

// ListAllContent returns every record for the admin panel
func (h *ContentHandler) ListAllContent(c *fiber.Ctx) error {
	return h.list(c, false)
}

func (h *ContentHandler) list(c *fiber.Ctx, publicOnly bool) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	contentType := c.Query("type")
	if contentType != "" && !model.IsValidContentType(contentType) {
		return response.BadRequest(c, "Invalid content type")
	}

	params := queryHelper.ListParams{
		Search:       c.Query("search"),
		SearchFields: []string{"title", "excerpt", "body"},
		Category:     c.Query("category"),
		Type:         contentType,
		Page:         page,
		Limit:        limit,
		SortDesc:     true,
	}
	if publicOnly {
		published := true
		params.IsPublished = &published
		params.SortField = "published_at"
	} else {
		params.IsPublished = queryHelper.ParseBoolFlag(c.Query("is_published"))
	}
	params.Normalize()

	filter := params.TranslateFilter()
	total, err := h.contents().CountDocuments(c.Context(), filter)
	if err != nil {
		return response.InternalServerError(c, "Failed to count content")
	}

	cursor, err := h.contents().Find(c.Context(), filter, params.FindOptions())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch content")
	}

	contents := []model.Content{}
	if err := cursor.All(c.Context(), &contents); err != nil {
		return response.InternalServerError(c, "Failed to decode content")
	}

	facets := h.facets(c, filter)
	return response.PaginatedWithFacets(c, contents,
		response.CalculatePagination(params.Page, params.Limit, total), facets)
}

// facets collects distinct categories and authors for the current filter.
// Best effort: a failure just drops the facets from the response.
func (h *ContentHandler) facets(c *fiber.Ctx, filter bson.M) map[string][]string {
	facets := map[string][]string{}
	for field, key := range map[string]string{"category": "categories", "author": "authors"} {
		raw, err := h.contents().Distinct(c.Context(), field, filter)
		if err != nil {
			continue
		}
		values := []string{}
		for _, v := range raw {
			if s, ok := v.(string); ok && s != "" {
				values = append(values, s)
			}
		}
		if len(values) > 0 {
			facets[key] = values
		}
	}
	return facets
}

// GetContent returns a published record by slug
func (h *ContentHandler) GetContent(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if !validation.ValidateSlug(slug) {
		return response.BadRequest(c, "Invalid content slug")
	}

	var content model.Content
	if err := h.contents().FindOne(c.Context(), bson.M{"slug": slug, "is_published": true}).Decode(&content); err != nil {
		if err == mongo.ErrNoDocuments {
			return response.NotFound(c, "Content not found")
		}
		return response.InternalServerError(c, "Failed to fetch content")
	}
	return response.Success(c, content)
}

// ContentRequest represents create and update payloads
type ContentRequest struct {
	Slug        string   `json:"slug,omitempty"`
	Title       string   `json:"title" validate:"required,min=2,max=200"`
	Type        string   `json:"type" validate:"required,oneof=page blog update service destination"`
	Body        string   `json:"body,omitempty"`
	Excerpt     string   `json:"excerpt,omitempty"`
	Author      string   `json:"author,omitempty"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	CoverURL    string   `json:"cover_url,omitempty" validate:"omitempty,url"`
	IsPublished *bool    `json:"is_published,omitempty"`
	IsFeatured  *bool    `json:"is_featured,omitempty"`
}

// CreateContent adds a record. The body is sanitized to strip scripts and
// unsafe markup before it is stored.
func (h *ContentHandler) CreateContent(c *fiber.Ctx) error {
	var req ContentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Title = validation.SanitizeString(req.Title)
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}
	if req.Slug == "" {
		req.Slug = validation.Slugify(req.Title)
	}
	if !validation.ValidateSlug(req.Slug) {
		return response.BadRequest(c, "Invalid slug format")
	}

	now := time.Now().UTC()
	content := model.Content{
		ID:        primitive.NewObjectID(),
		Slug:      req.Slug,
		Title:     req.Title,
		Type:      req.Type,
		Body:      h.sanitizer.Sanitize(req.Body),
		Excerpt:   req.Excerpt,
		Author:    req.Author,
		Category:  req.Category,
		Tags:      req.Tags,
		CoverURL:  req.CoverURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.IsPublished != nil && *req.IsPublished {
		content.IsPublished = true
		content.PublishedAt = &now
	}
	if req.IsFeatured != nil {
		content.IsFeatured = *req.IsFeatured
	}

	if _, err := h.contents().InsertOne(c.Context(), content); err != nil {
		if database.IsDup(err) {
			return response.Conflict(c, "Content with this slug already exists")
		}
		return response.InternalServerError(c, "Failed to create content")
	}
	return response.Created(c, content)
}

// UpdateContent edits a record. The slug is immutable.
func (h *ContentHandler) UpdateContent(c *fiber.Ctx) error {
	oid, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid content ID")
	}

	var req ContentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	now := time.Now().UTC()
	set := bson.M{"updated_at": now}
	if title := validation.SanitizeString(req.Title); title != "" {
		set["title"] = title
	}
	if req.Type != "" {
		if !model.IsValidContentType(req.Type) {
			return response.BadRequest(c, "Invalid content type")
		}
		set["type"] = req.Type
	}
	if req.Body != "" {
		set["body"] = h.sanitizer.Sanitize(req.Body)
	}
	if req.Excerpt != "" {
		set["excerpt"] = req.Excerpt
	}
	if req.Author != "" {
		set["author"] = req.Author
	}
	if req.Category != "" {
		set["category"] = req.Category
	}
	if req.Tags != nil {
		set["tags"] = req.Tags
	}
	if req.CoverURL != "" {
		set["cover_url"] = req.CoverURL
	}
	if req.IsFeatured != nil {
		set["is_featured"] = *req.IsFeatured
	}
	if req.IsPublished != nil {
		set["is_published"] = *req.IsPublished
		if *req.IsPublished {
			// First publish stamps the date; republishing keeps it.
			var existing model.Content
			if err := h.contents().FindOne(c.Context(), bson.M{"_id": oid}).Decode(&existing); err == nil && existing.PublishedAt == nil {
				set["published_at"] = now
			}
		}
	}

	var content model.Content
	err = h.contents().FindOneAndUpdate(c.Context(),
		bson.M{"_id": oid},
		bson.M{"$set": set},
		queryHelper.ReturnUpdated(),
	).Decode(&content)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return response.NotFound(c, "Content not found")
		}
		return response.InternalServerError(c, "Failed to update content")
	}
	return response.Success(c, content)
}

// DeleteContent removes a record
func (h *ContentHandler) DeleteContent(c *fiber.Ctx) error {
	oid, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid content ID")
	}

	res, err := h.contents().DeleteOne(c.Context(), bson.M{"_id": oid})
	if err != nil {
		return response.InternalServerError(c, "Failed to delete content")
	}
	if res.DeletedCount == 0 {
		return response.NotFound(c, "Content not found")
	}
	return response.SuccessWithMessage(c, "Content deleted", nil)
}
