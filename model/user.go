package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a back-office account
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"` // Never expose password in JSON
	Role         string             `bson:"role" json:"role"`       // admin, user
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// CollectionName specifies the collection name for User
func (User) CollectionName() string {
	return "users"
}

// IsValidRole reports whether role is a known user role.
func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}
