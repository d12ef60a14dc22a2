package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/globaledge/api/model"
	"github.com/globaledge/api/utils/response"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DashboardHandler aggregates admin panel overview numbers
type DashboardHandler struct {
	db *mongo.Database
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(db *mongo.Database) *DashboardHandler {
	return &DashboardHandler{db: db}
}

// DashboardStats is the admin overview payload
type DashboardStats struct {
	TotalLeads        int64            `json:"total_leads"`
	LeadsByStatus     map[string]int64 `json:"leads_by_status"`
	TotalCountries    int64            `json:"total_countries"`
	TotalUniversities int64            `json:"total_universities"`
	TotalTestimonials int64            `json:"total_testimonials"`
	TotalContent      int64            `json:"total_content"`
	PublishedContent  int64            `json:"published_content"`
	TotalPartnerships int64            `json:"total_partnerships"`
	RecentLeads       []model.Lead     `json:"recent_leads"`
	RecentContent     []model.Content  `json:"recent_content"`
}

// GetDashboard returns collection totals, the lead funnel breakdown, and
// the most recent leads and content edits.
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	ctx := c.Context()
	stats := DashboardStats{
		LeadsByStatus: map[string]int64{},
		RecentLeads:   []model.Lead{},
		RecentContent: []model.Content{},
	}

	leads := h.db.Collection(model.Lead{}.CollectionName())
	contents := h.db.Collection(model.Content{}.CollectionName())

	var err error
	if stats.TotalLeads, err = leads.CountDocuments(ctx, bson.M{}); err != nil {
		return response.InternalServerError(c, "Failed to aggregate dashboard stats")
	}
	for _, status := range model.LeadStatuses() {
		n, err := leads.CountDocuments(ctx, bson.M{"status": status})
		if err != nil {
			return response.InternalServerError(c, "Failed to aggregate dashboard stats")
		}
		stats.LeadsByStatus[status] = n
	}

	counts := []struct {
		collection string
		filter     bson.M
		dst        *int64
	}{
		{model.Country{}.CollectionName(), bson.M{}, &stats.TotalCountries},
		{model.University{}.CollectionName(), bson.M{}, &stats.TotalUniversities},
		{model.Testimonial{}.CollectionName(), bson.M{}, &stats.TotalTestimonials},
		{model.Content{}.CollectionName(), bson.M{}, &stats.TotalContent},
		{model.Content{}.CollectionName(), bson.M{"is_published": true}, &stats.PublishedContent},
		{model.Partnership{}.CollectionName(), bson.M{}, &stats.TotalPartnerships},
	}
	for _, cnt := range counts {
		n, err := h.db.Collection(cnt.collection).CountDocuments(ctx, cnt.filter)
		if err != nil {
			return response.InternalServerError(c, "Failed to aggregate dashboard stats")
		}
		*cnt.dst = n
	}

	recent := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(5)

	cursor, err := leads.Find(ctx, bson.M{}, recent)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch recent leads")
	}
	if err := cursor.All(ctx, &stats.RecentLeads); err != nil {
		return response.InternalServerError(c, "Failed to decode recent leads")
	}

	recentEdits := options.Find().
		SetSort(bson.D{{Key: "updated_at", Value: -1}}).
		SetLimit(5)

	cursor, err = contents.Find(ctx, bson.M{}, recentEdits)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch recent content")
	}
	if err := cursor.All(ctx, &stats.RecentContent); err != nil {
		return response.InternalServerError(c, "Failed to decode recent content")
	}

	return response.Success(c, stats)
}
