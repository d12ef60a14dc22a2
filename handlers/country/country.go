package country

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

// CountryHandler handles study destination pages
type CountryHandler struct {
	db        *mongo.Database
	validator *validation.Validator
}

// NewCountryHandler creates a new country handler
func NewCountryHandler(db *mongo.Database) *CountryHandler {
	return &CountryHandler{db: db, validator: validation.NewValidator()}
}

func (h *CountryHandler) countries() *mongo.Collection {
	return h.db.Collection(model.Country{}.CollectionName())
}

// ListCountries returns destinations for the public site. Only active
// records are visible unless the caller is the admin list.
func (h *CountryHandler) ListCountries(c *fiber.Ctx) error {
	return h.list(c, true)
}

// ListAllCountries returns every destination for the admin panel
func (h *CountryHandler) ListAllCountries(c *fiber.Ctx) error {
	return h.list(c, false)
}

func (h *CountryHandler) list(c *fiber.Ctx, publicOnly bool) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	params := queryHelper.ListParams{
		Search:       c.Query("search"),
		SearchFields: []string{"name", "description"},
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
	total, err := h.countries().CountDocuments(c.Context(), filter)
	if err != nil {
		return response.InternalServerError(c, "Failed to count countries")
	}

	cursor, err := h.countries().Find(c.Context(), filter, params.FindOptions())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch countries")
	}

	countries := []model.Country{}
	if err := cursor.All(c.Context(), &countries); err != nil {
		return response.InternalServerError(c, "Failed to decode countries")
	}

	return response.Paginated(c, countries, response.CalculatePagination(params.Page, params.Limit, total))
}

// GetCountry returns a destination by its slug
func (h *CountryHandler) GetCountry(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if !validation.ValidateSlug(slug) {
		return response.BadRequest(c, "Invalid country slug")
	}

	var country model.Country
	if err := h.countries().FindOne(c.Context(), bson.M{"slug": slug, "is_active": true}).Decode(&country); err != nil {
		if err == mongo.ErrNoDocuments {
			return response.NotFound(c, "Country not found")
		}
		return response.InternalServerError(c, "Failed to fetch country")
	}
	return response.Success(c, country)
}

// CountryRequest represents create and update payloads
type CountryRequest struct {
	Slug         string             `json:"slug,omitempty"`
	Name         string             `json:"name" validate:"required,min=2,max=120"`
	Description  string             `json:"description,omitempty"`
	Requirements []string           `json:"requirements,omitempty"`
	Costs        model.CountryCosts `json:"costs,omitempty"`
	FlagURL      string             `json:"flag_url,omitempty" validate:"omitempty,url"`
	IsActive     *bool              `json:"is_active,omitempty"`
	Featured     *bool              `json:"featured,omitempty"`
}

// CreateCountry adds a destination
func (h *CountryHandler) CreateCountry(c *fiber.Ctx) error {
	var req CountryRequest
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
	country := model.Country{
		ID:           primitive.NewObjectID(),
		Slug:         req.Slug,
		Name:         req.Name,
		Description:  req.Description,
		Requirements: req.Requirements,
		Costs:        req.Costs,
		FlagURL:      req.FlagURL,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.IsActive != nil {
		country.IsActive = *req.IsActive
	}
	if req.Featured != nil {
		country.Featured = *req.Featured
	}

	if _, err := h.countries().InsertOne(c.Context(), country); err != nil {
		if database.IsDup(err) {
			return response.Conflict(c, "A country with this slug already exists")
		}
		return response.InternalServerError(c, "Failed to create country")
	}
	return response.Created(c, country)
}

// UpdateCountry edits a destination. The slug is immutable.
func (h *CountryHandler) UpdateCountry(c *fiber.Ctx) error {
	oid, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid country ID")
	}

	var req CountryRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if name := validation.SanitizeString(req.Name); name != "" {
		set["name"] = name
	}
	if req.Description != "" {
		set["description"] = req.Description
	}
	if req.Requirements != nil {
		set["requirements"] = req.Requirements
	}
	if req.Costs != (model.CountryCosts{}) {
		set["costs"] = req.Costs
	}
	if req.FlagURL != "" {
		set["flag_url"] = req.FlagURL
	}
	if req.IsActive != nil {
		set["is_active"] = *req.IsActive
	}
	if req.Featured != nil {
		set["featured"] = *req.Featured
	}

	var country model.Country
	err = h.countries().FindOneAndUpdate(c.Context(),
		bson.M{"_id": oid},
		bson.M{"$set": set},
		queryHelper.ReturnUpdated(),
	).Decode(&country)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return response.NotFound(c, "Country not found")
		}
		return response.InternalServerError(c, "Failed to update country")
	}
	return response.Success(c, country)
}

// DeleteCountry removes a destination
func (h *CountryHandler) DeleteCountry(c *fiber.Ctx) error {
	oid, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid country ID")
	}

	res, err := h.countries().DeleteOne(c.Context(), bson.M{"_id": oid})
	if err != nil {
		return response.InternalServerError(c, "Failed to delete country")
	}
	if res.DeletedCount == 0 {
		return response.NotFound(c, "Country not found")
	}
	return response.SuccessWithMessage(c, "Country deleted", nil)
}
