package auth

import (
	"testing"
	"time"
)

func newTestManager() *JWTManager {
	return NewJWTManager(JWTConfig{
		Secret:        "test-secret-for-jwt-tests-only",
		Expiry:        24 * time.Hour,
		RefreshExpiry: 7 * 24 * time.Hour,
		Issuer:        "globaledge-test",
	})
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	mgr := newTestManager()

	token, jti, err := mgr.GenerateAccessToken("64f0c2a9e1b2c3d4e5f60718", "admin@example.com", "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}
	if jti == "" {
		t.Error("expected a non-empty JTI")
	}

	claims, err := mgr.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.UserID != "64f0c2a9e1b2c3d4e5f60718" {
		t.Errorf("UserID: got %q", claims.UserID)
	}
	if claims.Email != "admin@example.com" {
		t.Errorf("Email: got %q", claims.Email)
	}
	if claims.Role != "admin" {
		t.Errorf("Role: got %q", claims.Role)
	}
	if claims.TokenType != "access" {
		t.Errorf("TokenType: got %q, want %q", claims.TokenType, "access")
	}
	if claims.ID != jti {
		t.Errorf("claims.ID: got %q, want %q", claims.ID, jti)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	mgr := newTestManager()
	other := NewJWTManager(JWTConfig{
		Secret: "a-completely-different-secret",
		Expiry: time.Hour,
	})

	token, _, err := mgr.GenerateAccessToken("id", "user@example.com", "user")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	if _, err := other.ValidateToken(token); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	mgr := NewJWTManager(JWTConfig{
		Secret: "test-secret-for-jwt-tests-only",
		Expiry: -time.Minute,
	})

	token, _, err := mgr.GenerateAccessToken("id", "user@example.com", "user")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	if _, err := mgr.ValidateToken(token); err != ErrExpiredToken {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	mgr := newTestManager()
	if _, err := mgr.ValidateToken("not.a.token"); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestRefreshAccessToken(t *testing.T) {
	mgr := newTestManager()

	refreshToken, _, err := mgr.GenerateRefreshToken("64f0c2a9e1b2c3d4e5f60718", "user@example.com", "user")
	if err != nil {
		t.Fatalf("GenerateRefreshToken failed: %v", err)
	}

	accessToken, jti, err := mgr.RefreshAccessToken(refreshToken)
	if err != nil {
		t.Fatalf("RefreshAccessToken failed: %v", err)
	}
	if jti == "" {
		t.Error("expected a non-empty JTI")
	}

	claims, err := mgr.ValidateToken(accessToken)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.TokenType != "access" {
		t.Errorf("TokenType: got %q, want %q", claims.TokenType, "access")
	}
	if claims.Email != "user@example.com" {
		t.Errorf("Email: got %q", claims.Email)
	}
}

func TestRefreshAccessTokenRejectsAccessToken(t *testing.T) {
	mgr := newTestManager()

	accessToken, _, err := mgr.GenerateAccessToken("id", "user@example.com", "user")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	if _, _, err := mgr.RefreshAccessToken(accessToken); err == nil {
		t.Error("expected an error refreshing with an access token")
	}
}
