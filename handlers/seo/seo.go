package seo

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/globaledge/api/services/indexnow"
	"github.com/globaledge/api/services/sitemap"
	"github.com/globaledge/api/utils/response"
)

// IndexNow submission actions
const (
	ActionSubmit    = "submit"
	ActionSubmitAll = "submit-all"
	ActionSubmitNew = "submit-new"
)

// SEOHandler serves crawler artifacts and IndexNow submissions
type SEOHandler struct {
	sitemap  *sitemap.Builder
	indexNow *indexnow.Client
	siteURL  string
}

// NewSEOHandler creates a new SEO handler. indexNow may be nil when no key
// is configured.
func NewSEOHandler(builder *sitemap.Builder, indexNow *indexnow.Client, siteURL string) *SEOHandler {
	return &SEOHandler{sitemap: builder, indexNow: indexNow, siteURL: siteURL}
}

// GetSitemap serves sitemap.xml from live store data
func (h *SEOHandler) GetSitemap(c *fiber.Ctx) error {
	xml, err := h.sitemap.XML(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to build sitemap")
	}
	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	return c.Send(xml)
}

// GetRobots serves robots.txt
func (h *SEOHandler) GetRobots(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	return c.SendString(sitemap.RobotsTxt(h.siteURL))
}

// GetIndexNowKey serves the IndexNow verification file
func (h *SEOHandler) GetIndexNowKey(c *fiber.Ctx) error {
	if h.indexNow == nil {
		return response.NotFound(c, "IndexNow is not configured")
	}
	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	return c.SendString(h.indexNow.Key())
}

// SubmitRequest selects the submission action and, for "submit", the URLs
type SubmitRequest struct {
	Action string   `json:"action"`
	URLs   []string `json:"urls,omitempty"`
}

// SubmitURLs forwards URLs to the IndexNow endpoint. "submit" sends the
// caller's list, "submit-all" every known URL, "submit-new" URLs changed
// within the last day.
func (h *SEOHandler) SubmitURLs(c *fiber.Ctx) error {
	if h.indexNow == nil {
		return response.ServiceUnavailable(c, "IndexNow is not configured")
	}

	var req SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	var urls []string
	var err error
	switch req.Action {
	case ActionSubmit:
		urls = req.URLs
		if len(urls) == 0 {
			return response.BadRequest(c, "No URLs provided")
		}
	case ActionSubmitAll:
		urls, err = h.sitemap.AllURLs(c.Context())
	case ActionSubmitNew:
		urls, err = h.sitemap.NewURLsSince(c.Context(), time.Now().Add(-24*time.Hour))
	default:
		return response.BadRequest(c, "Action must be submit, submit-all, or submit-new")
	}
	if err != nil {
		return response.InternalServerError(c, "Failed to collect URLs")
	}
	if len(urls) == 0 {
		return response.SuccessWithMessage(c, "Nothing to submit", indexnow.Result{})
	}

	result, err := h.indexNow.Submit(c.Context(), urls)
	if err != nil {
		return response.InternalServerError(c, "IndexNow submission failed")
	}
	return response.Success(c, result)
}
