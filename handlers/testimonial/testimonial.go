package testimonial

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

// TestimonialHandler handles student success stories
type TestimonialHandler struct {
	db        *mongo.Database
	validator *validation.Validator
}

// NewTestimonialHandler creates a new testimonial handler
func NewTestimonialHandler(db *mongo.Database) *TestimonialHandler {
	return &TestimonialHandler{db: db, validator: validation.NewValidator()}
}

func (h *TestimonialHandler) testimonials() *mongo.Collection {
	return h.db.Collection(model.Testimonial{}.CollectionName())
}

// ListTestimonials returns active testimonials for the public site
func (h *TestimonialHandler) ListTestimonials(c *fiber.Ctx) error {
	return h.list(c, true)
}

// ListAllTestimonials returns every testimonial for the admin panel
func (h *TestimonialHandler) ListAllTestimonials(c *fiber.Ctx) error {
	return h.list(c, false)
}

func (h *TestimonialHandler) list(c *fiber.Ctx, publicOnly bool) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	params := queryHelper.ListParams{
		Search:       c.Query("search"),
		SearchFields: []string{"name", "university", "program"},
		Featured:     queryHelper.ParseBoolFlag(c.Query("featured")),
		Page:         page,
		Limit:        limit,
		SortDesc:     true,
	}
	if publicOnly {
		active := true
		params.IsActive = &active
	} else {
		params.IsActive = queryHelper.ParseBoolFlag(c.Query("is_active"))
	}
	params.Normalize()

	filter := params.TranslateFilter()
	total, err := h.testimonials().CountDocuments(c.Context(), filter)
	if err != nil {
		return response.InternalServerError(c, "Failed to count testimonials")
	}

	cursor, err := h.testimonials().Find(c.Context(), filter, params.FindOptions())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch testimonials")
	}

	testimonials := []model.Testimonial{}
	if err := cursor.All(c.Context(), &testimonials); err != nil {
		return response.InternalServerError(c, "Failed to decode testimonials")
	}

	return response.Paginated(c, testimonials, response.CalculatePagination(params.Page, params.Limit, total))
}

// TestimonialRequest represents create and update payloads
type TestimonialRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=120"`
	University string `json:"university"`
	Program    string `json:"program"`
	Quote      string `json:"quote" validate:"required,min=2,max=2000"`
	Rating     *int   `json:"rating,omitempty" validate:"omitempty,gte=1,lte=5"`
	AvatarURL  string `json:"avatar_url,omitempty" validate:"omitempty,url"`
	IsActive   *bool  `json:"is_active,omitempty"`
	Featured   *bool  `json:"featured,omitempty"`
}

func validRating(r int) bool {
	return r >= 1 && r <= 5
}

// CreateTestimonial adds a success story
func (h *TestimonialHandler) CreateTestimonial(c *fiber.Ctx) error {
	var req TestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Name = validation.SanitizeString(req.Name)
	req.Quote = validation.SanitizeString(req.Quote)
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	rating := 5
	if req.Rating != nil {
		rating = *req.Rating
	}

	now := time.Now().UTC()
	t := model.Testimonial{
		ID:         primitive.NewObjectID(),
		Name:       req.Name,
		University: req.University,
		Program:    req.Program,
		Quote:      req.Quote,
		Rating:     rating,
		AvatarURL:  req.AvatarURL,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}
	if req.Featured != nil {
		t.Featured = *req.Featured
	}

	if _, err := h.testimonials().InsertOne(c.Context(), t); err != nil {
		return response.InternalServerError(c, "Failed to create testimonial")
	}
	return response.Created(c, t)
}

// UpdateTestimonial edits a success story
func (h *TestimonialHandler) UpdateTestimonial(c *fiber.Ctx) error {
	oid, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid testimonial ID")
	}

	var req TestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if name := validation.SanitizeString(req.Name); name != "" {
		set["name"] = name
	}
	if req.University != "" {
		set["university"] = req.University
	}
	if req.Program != "" {
		set["program"] = req.Program
	}
	if quote := validation.SanitizeString(req.Quote); quote != "" {
		set["quote"] = quote
	}
	if req.Rating != nil {
		if !validRating(*req.Rating) {
			return response.BadRequest(c, "Rating must be between 1 and 5")
		}
		set["rating"] = *req.Rating
	}
	if req.AvatarURL != "" {
		set["avatar_url"] = req.AvatarURL
	}
	if req.IsActive != nil {
		set["is_active"] = *req.IsActive
	}
	if req.Featured != nil {
		set["featured"] = *req.Featured
	}

	var t model.Testimonial
	err = h.testimonials().FindOneAndUpdate(c.Context(),
		bson.M{"_id": oid},
		bson.M{"$set": set},
		queryHelper.ReturnUpdated(),
	).Decode(&t)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return response.NotFound(c, "Testimonial not found")
		}
		return response.InternalServerError(c, "Failed to update testimonial")
	}
	return response.Success(c, t)
}

// DeleteTestimonial removes a success story
func (h *TestimonialHandler) DeleteTestimonial(c *fiber.Ctx) error {
	oid, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid testimonial ID")
	}

	res, err := h.testimonials().DeleteOne(c.Context(), bson.M{"_id": oid})
	if err != nil {
		return response.InternalServerError(c, "Failed to delete testimonial")
	}
	if res.DeletedCount == 0 {
		return response.NotFound(c, "Testimonial not found")
	}
	return response.SuccessWithMessage(c, "Testimonial deleted", nil)
}
