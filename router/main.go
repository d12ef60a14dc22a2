package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/globaledge/api/config"
	"github.com/globaledge/api/database"
	"github.com/globaledge/api/handlers"
	admin_handlers "github.com/globaledge/api/handlers/admin"
	auth_handlers "github.com/globaledge/api/handlers/auth"
	content_handlers "github.com/globaledge/api/handlers/content"
	country_handlers "github.com/globaledge/api/handlers/country"
	lead_handlers "github.com/globaledge/api/handlers/lead"
	partnership_handlers "github.com/globaledge/api/handlers/partnership"
	seo_handlers "github.com/globaledge/api/handlers/seo"
	testimonial_handlers "github.com/globaledge/api/handlers/testimonial"
	university_handlers "github.com/globaledge/api/handlers/university"
	upload_handlers "github.com/globaledge/api/handlers/upload"
	"github.com/globaledge/api/services/indexnow"
	"github.com/globaledge/api/services/sitemap"
	"github.com/globaledge/api/services/spaces"
	"github.com/globaledge/api/services/tracking"
	"github.com/globaledge/api/utils/auth"
	"github.com/globaledge/api/utils/cache"
	"github.com/globaledge/api/utils/middleware"
)

// Deps carries the shared clients the route handlers need. Optional
// fields (Redis, Tracker, IndexNow, Spaces) may be nil.
type Deps struct {
	Env      *config.EnviornmentVariable
	Store    database.Storage
	Redis    *cache.RedisCache
	Tracker  *tracking.MetaClient
	IndexNow *indexnow.Client
	Sitemap  *sitemap.Builder
	Spaces   *spaces.SpacesClient
}

// SetupRoutes registers every route on the app
func SetupRoutes(app *fiber.App, deps Deps) {
	db := deps.Store.DB()

	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret:        deps.Env.JWT_SECRET,
		Expiry:        24 * time.Hour,
		RefreshExpiry: 7 * 24 * time.Hour,
		Issuer:        deps.Env.JWT_ISSUER,
	})

	var denylist *auth.DenylistService
	var bruteForceProtection *middleware.BruteForceProtection
	if deps.Redis != nil {
		denylist = auth.NewDenylistService(deps.Redis)
		bruteForceProtection = middleware.NewBruteForceProtection(deps.Redis)
	}

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, denylist)

	authHandler := auth_handlers.NewAuthHandler(db, jwtManager, denylist, bruteForceProtection)
	leadHandler := lead_handlers.NewLeadHandler(db, deps.Tracker)
	countryHandler := country_handlers.NewCountryHandler(db)
	testimonialHandler := testimonial_handlers.NewTestimonialHandler(db)
	contentHandler := content_handlers.NewContentHandler(db)
	universityHandler := university_handlers.NewUniversityHandler(db)
	partnershipHandler := partnership_handlers.NewPartnershipHandler(db)
	dashboardHandler := admin_handlers.NewDashboardHandler(db)
	seoHandler := seo_handlers.NewSEOHandler(deps.Sitemap, deps.IndexNow, deps.Env.SITE_URL)
	uploadHandler := upload_handlers.NewUploadHandler(deps.Spaces)

	// Health check endpoint (public)
	app.Get("/ping", func(c *fiber.Ctx) error {
		return handlers.HandleCheckHealth(c, deps.Store)
	})

	// Crawler artifacts (public, outside the API prefix)
	app.Get("/sitemap.xml", seoHandler.GetSitemap)
	app.Get("/robots.txt", seoHandler.GetRobots)
	if deps.IndexNow != nil {
		app.Get("/"+deps.IndexNow.Key()+".txt", seoHandler.GetIndexNowKey)
	}

	api := app.Group("/api")

	// Auth routes (public)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	if bruteForceProtection != nil {
		authGroup.Post("/login", bruteForceProtection.CheckAndRecordAttempt(), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}
	authGroup.Post("/refresh", authHandler.RefreshToken)
	authGroup.Post("/logout", authMiddleware.Required(), authHandler.Logout)

	// Profile routes (protected)
	profileGroup := api.Group("/profile", authMiddleware.Required())
	profileGroup.Get("/", authHandler.GetProfile)
	profileGroup.Put("/", authHandler.UpdateProfile)

	// Lead capture (public)
	api.Post("/leads", leadHandler.CreateLead)
	api.Post("/contact", leadHandler.CreateContact)

	// Public content
	api.Get("/countries", countryHandler.ListCountries)
	api.Get("/countries/:slug", countryHandler.GetCountry)
	api.Get("/universities", universityHandler.ListUniversities)
	api.Get("/universities/:id", universityHandler.GetUniversity)
	api.Get("/testimonials", testimonialHandler.ListTestimonials)
	api.Get("/content", contentHandler.ListContent)
	api.Get("/content/:slug", contentHandler.GetContent)
	api.Get("/partnerships", partnershipHandler.ListPartnerships)

	// Admin panel (admin role required)
	admin := api.Group("/admin", authMiddleware.RequireAdmin())
	admin.Get("/dashboard", dashboardHandler.GetDashboard)

	admin.Get("/leads", leadHandler.ListLeads)
	admin.Get("/leads/:id", leadHandler.GetLead)
	admin.Patch("/leads/:id/status", leadHandler.UpdateLeadStatus)
	admin.Delete("/leads/:id", leadHandler.DeleteLead)

	admin.Get("/countries", countryHandler.ListAllCountries)
	admin.Post("/countries", countryHandler.CreateCountry)
	admin.Put("/countries/:id", countryHandler.UpdateCountry)
	admin.Delete("/countries/:id", countryHandler.DeleteCountry)

	admin.Get("/universities", universityHandler.ListAllUniversities)
	admin.Post("/universities", universityHandler.CreateUniversity)
	admin.Put("/universities/:id", universityHandler.UpdateUniversity)
	admin.Delete("/universities/:id", universityHandler.DeleteUniversity)
	admin.Post("/universities/migrate", universityHandler.MigrateUniversities)

	admin.Get("/testimonials", testimonialHandler.ListAllTestimonials)
	admin.Post("/testimonials", testimonialHandler.CreateTestimonial)
	admin.Put("/testimonials/:id", testimonialHandler.UpdateTestimonial)
	admin.Delete("/testimonials/:id", testimonialHandler.DeleteTestimonial)

	admin.Get("/content", contentHandler.ListAllContent)
	admin.Post("/content", contentHandler.CreateContent)
	admin.Put("/content/:id", contentHandler.UpdateContent)
	admin.Delete("/content/:id", contentHandler.DeleteContent)

	admin.Get("/partnerships", partnershipHandler.ListAllPartnerships)
	admin.Post("/partnerships", partnershipHandler.CreatePartnership)
	admin.Put("/partnerships/:id", partnershipHandler.UpdatePartnership)
	admin.Delete("/partnerships/:id", partnershipHandler.DeletePartnership)

	admin.Post("/indexnow", seoHandler.SubmitURLs)

	admin.Post("/uploads", uploadHandler.UploadImage)
	admin.Delete("/uploads", uploadHandler.DeleteImage)
}
