package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/globaledge/api/api"
	"github.com/globaledge/api/config"
	"github.com/globaledge/api/database"
	"github.com/globaledge/api/router"
	"github.com/globaledge/api/services/cron"
	"github.com/globaledge/api/services/indexnow"
	"github.com/globaledge/api/services/sitemap"
	"github.com/globaledge/api/services/spaces"
	"github.com/globaledge/api/services/tracking"
	"github.com/globaledge/api/utils/cache"
	"github.com/globaledge/api/utils/middleware"
)

func SetupAndRunServer() error {

	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	// Initialize MongoDB connection
	store, err := database.StartMongo()
	if err != nil {
		print("Check whether MongoDB is running and MONGO_URI is set\n")
		return err
	}

	if err := store.Init(); err != nil {
		print("Failed to ensure database indexes\n")
		return err
	}

	// Seed the admin user and starter destinations
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.NewSeeder(store.DB()).SeedAll(seedCtx); err != nil {
		log.Printf("Warning: seeding failed: %v", err)
	}
	cancelSeed()

	// Redis backs brute force protection and the token denylist. Optional:
	// the server runs without it.
	var redisCache *cache.RedisCache
	if getEnv.REDIS_URL != "" {
		redisCache, err = cache.NewRedisCache(getEnv.REDIS_URL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis: %v. Brute force protection and token revocation are disabled.", err)
			redisCache = nil
		}
	}

	// External service clients. Each constructor returns nil when its
	// environment is not configured.
	tracker := tracking.NewMetaClient(tracking.MetaConfig{
		PixelID:       getEnv.META_PIXEL_ID,
		AccessToken:   getEnv.META_ACCESS_TOKEN,
		TestEventCode: getEnv.META_TEST_EVENT_CODE,
	})
	indexNowClient := indexnow.NewClient(indexnow.Config{
		Endpoint: getEnv.INDEXNOW_ENDPOINT,
		Key:      getEnv.INDEXNOW_KEY,
		SiteURL:  getEnv.SITE_URL,
	})
	spacesClient, err := spaces.NewSpacesClient(spaces.SpacesConfig{
		AccessKey: getEnv.DO_SPACES_KEY,
		SecretKey: getEnv.DO_SPACES_SECRET,
		Bucket:    getEnv.DO_SPACES_BUCKET,
		Region:    getEnv.DO_SPACES_REGION,
		Endpoint:  getEnv.DO_SPACES_ENDPOINT,
		CDNURL:    getEnv.DO_SPACES_CDN_URL,
	})
	if err != nil {
		log.Printf("Warning: Failed to initialize object storage: %v. Media uploads are disabled.", err)
		spacesClient = nil
	}

	sitemapBuilder := sitemap.NewBuilder(store.DB(), getEnv.SITE_URL)

	// Initialize Cron Manager (only if enabled via environment variable)
	var cronManager *cron.CronManager
	if os.Getenv("CRON_ENABLED") != "false" { // Default to enabled
		cronManager = cron.NewCronManager(store.DB(), sitemapBuilder, indexNowClient)
		if err := cronManager.Start(); err != nil {
			log.Printf("Warning: Failed to start cron jobs: %v", err)
			// Don't fail the app, just log the warning
		}
	}

	// Defer Closing DB, Redis, and stopping cron jobs
	defer func() {
		if cronManager != nil {
			cronManager.Stop()
		}
		if redisCache != nil {
			redisCache.Close()
		}
		store.Close()
	}()

	// Init API
	var server *api.APIServer = api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT))
	app := server.GetEngine()

	// Attach security, logging, and recovery middleware
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000,http://localhost:3001"
	}
	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    allowedOrigins,
		RateLimitRequests: 100,             // 100 requests
		RateLimitWindow:   1 * time.Minute, // per minute
	})

	// Setup Routes
	router.SetupRoutes(app, router.Deps{
		Env:      getEnv,
		Store:    store,
		Redis:    redisCache,
		Tracker:  tracker,
		IndexNow: indexNowClient,
		Sitemap:  sitemapBuilder,
		Spaces:   spacesClient,
	})

	// Get the PORT & Start the Server
	return server.Run()
}
