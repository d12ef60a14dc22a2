package university

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/globaledge/api/database"
	"github.com/globaledge/api/model"
	queryHelper "github.com/globaledge/api/utils/query"
	"github.com/globaledge/api/utils/response"
	"github.com/globaledge/api/utils/validation"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UniversityHandler handles partner institution profiles
type UniversityHandler struct {
	db        *mongo.Database
	validator *validation.Validator
}

// NewUniversityHandler creates a new university handler
func NewUniversityHandler(db *mongo.Database) *UniversityHandler {
	return &UniversityHandler{db: db, validator: validation.NewValidator()}
}

func (h *UniversityHandler) universities() *mongo.Collection {
	return h.db.Collection(model.University{}.CollectionName())
}

// ListUniversities returns active universities for the public site
func (h *UniversityHandler) ListUniversities(c *fiber.Ctx) error {
	return h.list(c, true)
}

// ListAllUniversities returns every university for the admin panel
func (h *UniversityHandler) ListAllUniversities(c *fiber.Ctx) error {
	return h.list(c, false)
}

func (h *UniversityHandler) list(c *fiber.Ctx, publicOnly bool) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	params := queryHelper.ListParams{
		Search:       c.Query("search"),
		SearchFields: []string{"name", "city", "programs"},
		Featured:     queryHelper.ParseBoolFlag(c.Query("featured")),
		Page:         page,
		Limit:        limit,
		SortField:    "name",
	}
	if publicOnly {
		active := true
		params.IsActive = &active
	} else {
		params.IsActive = queryHelper.ParseBoolFlag(c.Query("is_active"))
	}
	params.Normalize()

	filter := params.TranslateFilter()
	if country := c.Query("country"); country != "" {
		filter["country"] = country
	}

	total, err := h.universities().CountDocuments(c.Context(), filter)
	if err != nil {
		return response.InternalServerError(c, "Failed to count universities")
	}

	cursor, err := h.universities().Find(c.Context(), filter, params.FindOptions())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch universities")
	}

	universities := []model.University{}
	if err := cursor.All(c.Context(), &universities); err != nil {
		return response.InternalServerError(c, "Failed to decode universities")
	}

	return response.Paginated(c, universities, response.CalculatePagination(params.Page, params.Limit, total))
}

// lookupFilter resolves the route parameter into a store filter. A valid
// ObjectID hex matches by _id, anything else falls back to a slug match.
func lookupFilter(idOrSlug string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(idOrSlug); err == nil {
		return bson.M{"_id": oid}
	}
	return bson.M{"slug": idOrSlug}
}

// GetUniversity returns a university by ObjectID or slug
func (h *UniversityHandler) GetUniversity(c *fiber.Ctx) error {
	var u model.University
	if err := h.universities().FindOne(c.Context(), lookupFilter(c.Params("id"))).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return response.NotFound(c, "University not found")
		}
		return response.InternalServerError(c, "Failed to fetch university")
	}
	return response.Success(c, u)
}

// UniversityRequest represents create and update payloads
type UniversityRequest struct {
	Slug         string                   `json:"slug,omitempty"`
	Name         string                   `json:"name" validate:"required,min=2,max=200"`
	Country      string                   `json:"country" validate:"required"`
	City         string                   `json:"city,omitempty"`
	Website      string                   `json:"website,omitempty" validate:"omitempty,url"`
	LogoURL      string                   `json:"logo_url,omitempty" validate:"omitempty,url"`
	Rankings     model.UniversityRankings `json:"rankings,omitempty"`
	Fees         model.UniversityFees     `json:"fees,omitempty"`
	Scholarships []model.Scholarship      `json:"scholarships,omitempty"`
	Programs     []string                 `json:"programs,omitempty"`
	IsActive     *bool                    `json:"is_active,omitempty"`
	Featured     *bool                    `json:"featured,omitempty"`
}

// CreateUniversity adds an institution profile
func (h *UniversityHandler) CreateUniversity(c *fiber.Ctx) error {
	var req UniversityRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Name = validation.SanitizeString(req.Name)
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}
	if req.Slug == "" {
		req.Slug = validation.Slugify(req.Name)
	}
	if !validation.ValidateSlug(req.Slug) {
		return response.BadRequest(c, "Invalid slug format")
	}

	now := time.Now().UTC()
	u := model.University{
		ID:           primitive.NewObjectID(),
		Slug:         req.Slug,
		Name:         req.Name,
		Country:      req.Country,
		City:         req.City,
		Website:      req.Website,
		LogoURL:      req.LogoURL,
		Rankings:     req.Rankings,
		Fees:         req.Fees,
		Scholarships: req.Scholarships,
		Programs:     req.Programs,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}
	if req.Featured != nil {
		u.Featured = *req.Featured
	}

	if _, err := h.universities().InsertOne(c.Context(), u); err != nil {
		if database.IsDup(err) {
			return response.Conflict(c, "A university with this slug already exists")
		}
		return response.InternalServerError(c, "Failed to create university")
	}
	return response.Created(c, u)
}

// UpdateUniversity edits an institution profile. The slug is immutable.
func (h *UniversityHandler) UpdateUniversity(c *fiber.Ctx) error {
	oid, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid university ID")
	}

	var req UniversityRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if name := validation.SanitizeString(req.Name); name != "" {
		set["name"] = name
	}
	if req.Country != "" {
		set["country"] = req.Country
	}
	if req.City != "" {
		set["city"] = req.City
	}
	if req.Website != "" {
		set["website"] = req.Website
	}
	if req.LogoURL != "" {
		set["logo_url"] = req.LogoURL
	}
	if req.Rankings != (model.UniversityRankings{}) {
		set["rankings"] = req.Rankings
	}
	if req.Fees != (model.UniversityFees{}) {
		set["fees"] = req.Fees
	}
	if req.Scholarships != nil {
		set["scholarships"] = req.Scholarships
	}
	if req.Programs != nil {
		set["programs"] = req.Programs
	}
	if req.IsActive != nil {
		set["is_active"] = *req.IsActive
	}
	if req.Featured != nil {
		set["featured"] = *req.Featured
	}

	var u model.University
	err = h.universities().FindOneAndUpdate(c.Context(),
		bson.M{"_id": oid},
		bson.M{"$set": set},
		queryHelper.ReturnUpdated(),
	).Decode(&u)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return response.NotFound(c, "University not found")
		}
		return response.InternalServerError(c, "Failed to update university")
	}
	return response.Success(c, u)
}

// DeleteUniversity removes an institution profile
func (h *UniversityHandler) DeleteUniversity(c *fiber.Ctx) error {
	oid, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid university ID")
	}

	res, err := h.universities().DeleteOne(c.Context(), bson.M{"_id": oid})
	if err != nil {
		return response.InternalServerError(c, "Failed to delete university")
	}
	if res.DeletedCount == 0 {
		return response.NotFound(c, "University not found")
	}
	return response.SuccessWithMessage(c, "University deleted", nil)
}
