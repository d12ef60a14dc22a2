package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/globaledge/api/model"
	"github.com/globaledge/api/utils/auth"
	"github.com/globaledge/api/utils/response"
)

// AuthMiddleware handles JWT authentication. Authorization is stateless:
// the decoded role claim decides access, no user lookup per request. The
// denylist (when Redis is available) catches logged-out tokens.
type AuthMiddleware struct {
	jwtManager *auth.JWTManager
	denylist   *auth.DenylistService
}

// NewAuthMiddleware creates a new auth middleware. denylist may be nil when
// Redis is unavailable; revocation checks are skipped in that case.
func NewAuthMiddleware(jwtManager *auth.JWTManager, denylist *auth.DenylistService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		denylist:   denylist,
	}
}

// validate extracts and validates the bearer token, returning claims or an
// error response already written to c.
func (m *AuthMiddleware) validate(c *fiber.Ctx) (*auth.Claims, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, response.Unauthorized(c, "Missing authorization token")
	}

	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, response.Unauthorized(c, "Invalid authorization format")
	}

	claims, err := m.jwtManager.ValidateToken(parts[1])
	if err != nil {
		if err == auth.ErrExpiredToken {
			return nil, response.Unauthorized(c, "Token has expired")
		}
		return nil, response.Unauthorized(c, "Invalid token")
	}

	if claims.TokenType != "access" {
		return nil, response.Unauthorized(c, "Invalid token type")
	}

	if m.denylist != nil {
		revoked, err := m.denylist.IsTokenRevoked(c.Context(), claims.ID)
		if err != nil {
			return nil, response.InternalServerError(c, "Failed to check token status")
		}
		if revoked {
			return nil, response.Unauthorized(c, "Token has been revoked")
		}
	}

	return claims, nil
}

func storeClaims(c *fiber.Ctx, claims *auth.Claims) {
	c.Locals("user_id", claims.UserID)
	c.Locals("user_email", claims.Email)
	c.Locals("user_role", claims.Role)
	c.Locals("claims", claims)
	c.Locals("token_jti", claims.ID)
}

// Required is middleware that requires a valid JWT token
func (m *AuthMiddleware) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, errResp := m.validate(c)
		if claims == nil {
			return errResp
		}

		storeClaims(c, claims)
		return c.Next()
	}
}

// RequireAdmin is middleware that requires a valid JWT token carrying the
// admin role: 401 without a valid token, 403 for authenticated non-admins.
func (m *AuthMiddleware) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, errResp := m.validate(c)
		if claims == nil {
			return errResp
		}

		if claims.Role != model.RoleAdmin {
			return response.Forbidden(c, "Admin access required")
		}

		storeClaims(c, claims)
		return c.Next()
	}
}

// GetUserID extracts user ID from context
func GetUserID(c *fiber.Ctx) (string, bool) {
	userID := c.Locals("user_id")
	if userID == nil {
		return "", false
	}
	id, ok := userID.(string)
	return id, ok
}

// GetUserEmail extracts user email from context
func GetUserEmail(c *fiber.Ctx) (string, bool) {
	email := c.Locals("user_email")
	if email == nil {
		return "", false
	}
	e, ok := email.(string)
	return e, ok
}

// GetUserRole extracts user role from context
func GetUserRole(c *fiber.Ctx) (string, bool) {
	role := c.Locals("user_role")
	if role == nil {
		return "", false
	}
	r, ok := role.(string)
	return r, ok
}

// GetClaims extracts full claims from context
func GetClaims(c *fiber.Ctx) (*auth.Claims, bool) {
	claims := c.Locals("claims")
	if claims == nil {
		return nil, false
	}
	claimsData, ok := claims.(*auth.Claims)
	return claimsData, ok
}

// GetTokenJTI extracts the token JTI from context
func GetTokenJTI(c *fiber.Ctx) (string, bool) {
	jti := c.Locals("token_jti")
	if jti == nil {
		return "", false
	}
	j, ok := jti.(string)
	return j, ok
}
