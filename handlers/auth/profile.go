package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/globaledge/api/model"
	"github.com/globaledge/api/utils/middleware"
	queryHelper "github.com/globaledge/api/utils/query"
	"github.com/globaledge/api/utils/response"
	"github.com/globaledge/api/utils/validation"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetProfile returns the authenticated user's record
func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return response.Unauthorized(c, "Invalid user identity")
	}

	var user model.User
	if err := h.users().FindOne(c.Context(), bson.M{"_id": oid}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to load user")
	}

	return response.Success(c, user)
}

// UpdateProfileRequest represents a profile edit
type UpdateProfileRequest struct {
	Name string `json:"name" validate:"omitempty,min=2,max=120"`
}

// UpdateProfile updates the authenticated user's editable fields
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return response.Unauthorized(c, "Invalid user identity")
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if req.Name != "" {
		set["name"] = validation.SanitizeString(req.Name)
	}

	var user model.User
	err = h.users().FindOneAndUpdate(c.Context(),
		bson.M{"_id": oid},
		bson.M{"$set": set},
		queryHelper.ReturnUpdated(),
	).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to update user")
	}

	return response.Success(c, user)
}
