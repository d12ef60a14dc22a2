package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/globaledge/api/model"
	"github.com/globaledge/api/database"
	authutil "github.com/globaledge/api/utils/auth"
	"github.com/globaledge/api/utils/middleware"
	"github.com/globaledge/api/utils/response"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	db                   *mongo.Database
	jwtManager           *authutil.JWTManager
	denylist             *authutil.DenylistService
	bruteForceProtection *middleware.BruteForceProtection
}

// NewAuthHandler creates a new auth handler. denylist and bruteForceProtection
// may be nil when Redis is unavailable.
func NewAuthHandler(db *mongo.Database, jwtManager *authutil.JWTManager, denylist *authutil.DenylistService, bruteForceProtection *middleware.BruteForceProtection) *AuthHandler {
	return &AuthHandler{
		db:                   db,
		jwtManager:           jwtManager,
		denylist:             denylist,
		bruteForceProtection: bruteForceProtection,
	}
}

func (h *AuthHandler) users() *mongo.Collection {
	return h.db.Collection(model.User{}.CollectionName())
}

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,min=2"`
	Role     string `json:"role,omitempty"` // Optional, defaults to "user"
}

// TokenResponse carries a fresh token pair alongside the user
type TokenResponse struct {
	User         model.User `json:"user"`
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token"`
	ExpiresIn    int        `json:"expires_in"` // in seconds
}

// Register handles user registration
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Email == "" || req.Password == "" || req.Name == "" {
		return response.BadRequest(c, "Email, password, and name are required")
	}

	if len(req.Password) < 8 {
		return response.BadRequest(c, "Password must be at least 8 characters long")
	}

	// Set default role if not provided
	if req.Role == "" {
		req.Role = model.RoleUser
	}
	if !model.IsValidRole(req.Role) {
		return response.BadRequest(c, "Invalid role. Must be 'user' or 'admin'")
	}

	// Check if user already exists
	count, err := h.users().CountDocuments(c.Context(), bson.M{"email": req.Email})
	if err != nil {
		return response.InternalServerError(c, "Failed to check existing users")
	}
	if count > 0 {
		return response.Conflict(c, "User with this email already exists")
	}

	hashedPassword, err := authutil.HashPassword(req.Password)
	if err != nil {
		return response.InternalServerError(c, "Failed to process password")
	}

	now := time.Now().UTC()
	user := model.User{
		ID:           primitive.NewObjectID(),
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Name:         req.Name,
		Role:         req.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := h.users().InsertOne(c.Context(), user); err != nil {
		if database.IsDup(err) {
			return response.Conflict(c, "User with this email already exists")
		}
		return response.InternalServerError(c, "Failed to create user")
	}

	accessToken, _, err := h.jwtManager.GenerateAccessToken(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return response.InternalServerError(c, "Failed to generate access token")
	}
	refreshToken, _, err := h.jwtManager.GenerateRefreshToken(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return response.InternalServerError(c, "Failed to generate refresh token")
	}

	return response.Created(c, TokenResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    24 * 60 * 60,
	})
}
