package lead

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/globaledge/api/model"
	"github.com/globaledge/api/services/tracking"
	queryHelper "github.com/globaledge/api/utils/query"
	"github.com/globaledge/api/utils/response"
	"github.com/globaledge/api/utils/validation"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// LeadHandler handles lead capture and funnel management
type LeadHandler struct {
	db      *mongo.Database
	tracker *tracking.MetaClient
}

// NewLeadHandler creates a new lead handler. tracker may be nil when the
// conversion API is not configured.
func NewLeadHandler(db *mongo.Database, tracker *tracking.MetaClient) *LeadHandler {
	return &LeadHandler{db: db, tracker: tracker}
}

func (h *LeadHandler) leads() *mongo.Collection {
	return h.db.Collection(model.Lead{}.CollectionName())
}

// CreateLeadRequest represents a lead capture submission
type CreateLeadRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Country string `json:"country,omitempty"`
	Program string `json:"program,omitempty"`
	Message string `json:"message,omitempty"`
}

func (r *CreateLeadRequest) sanitize() {
	r.Name = validation.SanitizeString(r.Name)
	r.Email = validation.SanitizeString(r.Email)
	r.Phone = validation.SanitizeString(r.Phone)
	r.Country = validation.SanitizeString(r.Country)
	r.Program = validation.SanitizeString(r.Program)
	r.Message = validation.SanitizeString(r.Message)
}

func (r CreateLeadRequest) validate() string {
	if r.Name == "" {
		return "Name is required"
	}
	if r.Email == "" {
		return "Email is required"
	}
	if !validation.ValidateEmail(r.Email) {
		return "Invalid email address"
	}
	if r.Phone == "" {
		return "Phone is required"
	}
	return ""
}

func (h *LeadHandler) insertLead(c *fiber.Ctx, req CreateLeadRequest, source string) error {
	req.sanitize()
	if msg := req.validate(); msg != "" {
		return response.BadRequest(c, msg)
	}

	now := time.Now().UTC()
	lead := model.Lead{
		ID:        primitive.NewObjectID(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Country:   req.Country,
		Program:   req.Program,
		Message:   req.Message,
		Status:    model.LeadStatusNew,
		Source:    source,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := h.leads().InsertOne(c.Context(), lead); err != nil {
		return response.InternalServerError(c, "Failed to save enquiry")
	}

	// Best effort. A tracking failure never fails the submission.
	h.tracker.TrackLead(tracking.UserData{
		Email:     lead.Email,
		Phone:     lead.Phone,
		ClientIP:  c.IP(),
		UserAgent: c.Get(fiber.HeaderUserAgent),
	}, c.Get(fiber.HeaderReferer))

	return response.Created(c, lead)
}

// CreateLead handles the public enquiry form
func (h *LeadHandler) CreateLead(c *fiber.Ctx) error {
	var req CreateLeadRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	return h.insertLead(c, req, model.LeadSourceWebsite)
}

// ContactRequest represents the contact page form. Older frontends send a
// single name field, newer ones split it.
type ContactRequest struct {
	Name      string `json:"name"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Country   string `json:"country,omitempty"`
	Program   string `json:"program,omitempty"`
	Message   string `json:"message,omitempty"`
}

// joinName folds the contact form's split name into the single field the
// lead record uses.
func joinName(first, last string) string {
	name := validation.SanitizeString(first)
	if l := validation.SanitizeString(last); l != "" {
		if name != "" {
			name += " "
		}
		name += l
	}
	return name
}

// lead normalizes the contact form into the enquiry form shape. The split
// first/last pair wins; the single name field is the fallback.
func (r ContactRequest) lead() CreateLeadRequest {
	name := joinName(r.FirstName, r.LastName)
	if name == "" {
		name = r.Name
	}
	return CreateLeadRequest{
		Name:    name,
		Email:   r.Email,
		Phone:   r.Phone,
		Country: r.Country,
		Program: r.Program,
		Message: r.Message,
	}
}

// CreateContact handles the contact form, normalizing it into a lead
func (h *LeadHandler) CreateContact(c *fiber.Ctx) error {
	var req ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	return h.insertLead(c, req.lead(), model.LeadSourceContactForm)
}

// ListLeads returns leads for the admin panel, filterable by status and
// searchable by name, email, or phone.
func (h *LeadHandler) ListLeads(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	status := c.Query("status")
	if status != "" && !model.IsValidLeadStatus(status) {
		return response.BadRequest(c, "Invalid lead status")
	}

	params := queryHelper.ListParams{
		Search:       c.Query("search"),
		SearchFields: []string{"name", "email", "phone"},
		Status:       status,
		Page:         page,
		Limit:        limit,
		SortDesc:     true,
	}
	params.Normalize()

	filter := params.TranslateFilter()
	total, err := h.leads().CountDocuments(c.Context(), filter)
	if err != nil {
		return response.InternalServerError(c, "Failed to count leads")
	}

	cursor, err := h.leads().Find(c.Context(), filter, params.FindOptions())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch leads")
	}

	leads := []model.Lead{}
	if err := cursor.All(c.Context(), &leads); err != nil {
		return response.InternalServerError(c, "Failed to decode leads")
	}

	return response.Paginated(c, leads, response.CalculatePagination(params.Page, params.Limit, total))
}

// GetLead returns a single lead by id
func (h *LeadHandler) GetLead(c *fiber.Ctx) error {
	oid, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid lead ID")
	}

	var lead model.Lead
	if err := h.leads().FindOne(c.Context(), bson.M{"_id": oid}).Decode(&lead); err != nil {
		if err == mongo.ErrNoDocuments {
			return response.NotFound(c, "Lead not found")
		}
		return response.InternalServerError(c, "Failed to fetch lead")
	}
	return response.Success(c, lead)
}

// UpdateStatusRequest moves a lead to another funnel stage
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateLeadStatus moves a lead through the funnel
func (h *LeadHandler) UpdateLeadStatus(c *fiber.Ctx) error {
	oid, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid lead ID")
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if !model.IsValidLeadStatus(req.Status) {
		return response.BadRequest(c, "Invalid lead status")
	}

	var lead model.Lead
	err = h.leads().FindOneAndUpdate(c.Context(),
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": req.Status, "updated_at": time.Now().UTC()}},
		queryHelper.ReturnUpdated(),
	).Decode(&lead)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return response.NotFound(c, "Lead not found")
		}
		return response.InternalServerError(c, "Failed to update lead")
	}

	return response.Success(c, lead)
}

// DeleteLead removes a lead permanently
func (h *LeadHandler) DeleteLead(c *fiber.Ctx) error {
	oid, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid lead ID")
	}

	res, err := h.leads().DeleteOne(c.Context(), bson.M{"_id": oid})
	if err != nil {
		return response.InternalServerError(c, "Failed to delete lead")
	}
	if res.DeletedCount == 0 {
		return response.NotFound(c, "Lead not found")
	}
	return response.SuccessWithMessage(c, "Lead deleted", nil)
}
