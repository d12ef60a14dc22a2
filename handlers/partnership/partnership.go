package partnership

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/globaledge/api/model"
	queryHelper "github.com/globaledge/api/utils/query"
	"github.com/globaledge/api/utils/response"
	"github.com/globaledge/api/utils/validation"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PartnershipHandler handles partner listings
type PartnershipHandler struct {
	db        *mongo.Database
	validator *validation.Validator
}

// NewPartnershipHandler creates a new partnership handler
func NewPartnershipHandler(db *mongo.Database) *PartnershipHandler {
	return &PartnershipHandler{db: db, validator: validation.NewValidator()}
}

func (h *PartnershipHandler) partnerships() *mongo.Collection {
	return h.db.Collection(model.Partnership{}.CollectionName())
}

// ListPartnerships returns active partners for the public site
func (h *PartnershipHandler) ListPartnerships(c *fiber.Ctx) error {
	return h.list(c, true)
}

// ListAllPartnerships returns every partner for the admin panel
func (h *PartnershipHandler) ListAllPartnerships(c *fiber.Ctx) error {
	return h.list(c, false)
}

func (h *PartnershipHandler) list(c *fiber.Ctx, publicOnly bool) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	params := queryHelper.ListParams{
		Search:       c.Query("search"),
		SearchFields: []string{"name", "country"},
		Type:         c.Query("type"),
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
	total, err := h.partnerships().CountDocuments(c.Context(), filter)
	if err != nil {
		return response.InternalServerError(c, "Failed to count partnerships")
	}

	cursor, err := h.partnerships().Find(c.Context(), filter, params.FindOptions())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch partnerships")
	}

	partnerships := []model.Partnership{}
	if err := cursor.All(c.Context(), &partnerships); err != nil {
		return response.InternalServerError(c, "Failed to decode partnerships")
	}

	return response.Paginated(c, partnerships, response.CalculatePagination(params.Page, params.Limit, total))
}

// PartnershipRequest represents create and update payloads
type PartnershipRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=200"`
	Type        string `json:"type,omitempty" validate:"omitempty,oneof=university agency institute"`
	Country     string `json:"country,omitempty"`
	Website     string `json:"website,omitempty" validate:"omitempty,url"`
	LogoURL     string `json:"logo_url,omitempty" validate:"omitempty,url"`
	Description string `json:"description,omitempty"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

// CreatePartnership adds a partner listing
func (h *PartnershipHandler) CreatePartnership(c *fiber.Ctx) error {
	var req PartnershipRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Name = validation.SanitizeString(req.Name)
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	now := time.Now().UTC()
	p := model.Partnership{
		ID:          primitive.NewObjectID(),
		Name:        req.Name,
		Type:        req.Type,
		Country:     req.Country,
		Website:     req.Website,
		LogoURL:     req.LogoURL,
		Description: req.Description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	if _, err := h.partnerships().InsertOne(c.Context(), p); err != nil {
		return response.InternalServerError(c, "Failed to create partnership")
	}
	return response.Created(c, p)
}

// UpdatePartnership edits a partner listing
func (h *PartnershipHandler) UpdatePartnership(c *fiber.Ctx) error {
	oid, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid partnership ID")
	}

	var req PartnershipRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if name := validation.SanitizeString(req.Name); name != "" {
		set["name"] = name
	}
	if req.Type != "" {
		switch req.Type {
		case "university", "agency", "institute":
			set["type"] = req.Type
		default:
			return response.BadRequest(c, "Type must be university, agency, or institute")
		}
	}
	if req.Country != "" {
		set["country"] = req.Country
	}
	if req.Website != "" {
		set["website"] = req.Website
	}
	if req.LogoURL != "" {
		set["logo_url"] = req.LogoURL
	}
	if req.Description != "" {
		set["description"] = req.Description
	}
	if req.IsActive != nil {
		set["is_active"] = *req.IsActive
	}

	var p model.Partnership
	err = h.partnerships().FindOneAndUpdate(c.Context(),
		bson.M{"_id": oid},
		bson.M{"$set": set},
		queryHelper.ReturnUpdated(),
	).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return response.NotFound(c, "Partnership not found")
		}
		return response.InternalServerError(c, "Failed to update partnership")
	}
	return response.Success(c, p)
}

// DeletePartnership removes a partner listing
func (h *PartnershipHandler) DeletePartnership(c *fiber.Ctx) error {
	oid, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid partnership ID")
	}

	res, err := h.partnerships().DeleteOne(c.Context(), bson.M{"_id": oid})
	if err != nil {
		return response.InternalServerError(c, "Failed to delete partnership")
	}
	if res.DeletedCount == 0 {
		return response.NotFound(c, "Partnership not found")
	}
	return response.SuccessWithMessage(c, "Partnership deleted", nil)
}
