package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// This function will Load the ENVIORNMENT VARIABLES from .env if GO_ENV variable is not set
func LoadENV() error {
	goEnv := os.Getenv("GO_ENV")

	if goEnv == "" || goEnv == "development" {
		err := godotenv.Load()
		if err != nil {
			return err
		}
	}

	return nil
}

var (
	ErrMissingMongoURI  = errors.New("MONGO_URI environment variable is not set")
	ErrMissingJWTSecret = errors.New("JWT_SECRET environment variable is not set")
)

type EnviornmentVariable struct {
	// All variables
	GO_ENV   string
	PORT     int
	SITE_URL string
	// MongoDB Configuration
	MONGO_URI string
	MONGO_DB  string
	// JWT Configuration
	JWT_SECRET string
	JWT_ISSUER string
	// Redis Configuration
	REDIS_URL string
	// Meta Conversion API Configuration
	META_PIXEL_ID        string
	META_ACCESS_TOKEN    string
	META_TEST_EVENT_CODE string
	// IndexNow Configuration
	INDEXNOW_KEY      string
	INDEXNOW_ENDPOINT string
	// DigitalOcean Spaces Configuration
	DO_SPACES_KEY      string
	DO_SPACES_SECRET   string
	DO_SPACES_BUCKET   string
	DO_SPACES_REGION   string
	DO_SPACES_ENDPOINT string
	DO_SPACES_CDN_URL  string
}

func Get() (*EnviornmentVariable, error) {

	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		port = 8080
	}

	// Database defaults
	mongoDB := os.Getenv("MONGO_DB")
	if mongoDB == "" {
		mongoDB = "globaledge"
	}

	siteURL := os.Getenv("SITE_URL")
	if siteURL == "" {
		siteURL = "https://www.globaledge.education"
	}

	indexNowEndpoint := os.Getenv("INDEXNOW_ENDPOINT")
	if indexNowEndpoint == "" {
		indexNowEndpoint = "https://api.indexnow.org/indexnow"
	}

	jwtIssuer := os.Getenv("JWT_ISSUER")
	if jwtIssuer == "" {
		jwtIssuer = "globaledge-api"
	}

	envVariables := &EnviornmentVariable{
		GO_ENV:   os.Getenv("GO_ENV"),
		PORT:     port,
		SITE_URL: siteURL,
		// MongoDB
		MONGO_URI: os.Getenv("MONGO_URI"),
		MONGO_DB:  mongoDB,
		// JWT
		JWT_SECRET: os.Getenv("JWT_SECRET"),
		JWT_ISSUER: jwtIssuer,
		// Redis
		REDIS_URL: os.Getenv("REDIS_URL"),
		// Meta Conversion API
		META_PIXEL_ID:        os.Getenv("META_PIXEL_ID"),
		META_ACCESS_TOKEN:    os.Getenv("META_ACCESS_TOKEN"),
		META_TEST_EVENT_CODE: os.Getenv("META_TEST_EVENT_CODE"),
		// IndexNow
		INDEXNOW_KEY:      os.Getenv("INDEXNOW_KEY"),
		INDEXNOW_ENDPOINT: indexNowEndpoint,
		// DigitalOcean Spaces
		DO_SPACES_KEY:      os.Getenv("DO_SPACES_KEY"),
		DO_SPACES_SECRET:   os.Getenv("DO_SPACES_SECRET"),
		DO_SPACES_BUCKET:   os.Getenv("DO_SPACES_BUCKET"),
		DO_SPACES_REGION:   os.Getenv("DO_SPACES_REGION"),
		DO_SPACES_ENDPOINT: os.Getenv("DO_SPACES_ENDPOINT"),
		DO_SPACES_CDN_URL:  os.Getenv("DO_SPACES_CDN_URL"),
	}

	// Missing signing secret or database URI is a startup failure, not a
	// request-time one.
	if envVariables.MONGO_URI == "" {
		return nil, ErrMissingMongoURI
	}
	if envVariables.JWT_SECRET == "" {
		return nil, ErrMissingJWTSecret
	}

	return envVariables, nil
}
