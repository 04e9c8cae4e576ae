// Package model defines the data models for the complaint center.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the access level of an account.
type Role string

// Supported roles. Exactly one superadmin account exists per deployment.
const (
	RoleStudent    Role = "student"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

// Valid reports whether r is one of the supported roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// String returns the role as a plain string.
func (r Role) String() string {
	return string(r)
}

// IsAdmin reports whether the role grants admin-level access.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// User represents an account document in the users collection.
type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"-" bson:"password"`
	Role      Role               `json:"role" bson:"role"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// UserList contains a list of users.
type UserList struct {
	TotalCount int64   `json:"totalCount"`
	Items      []*User `json:"items"`
}

// CollectionName returns the MongoDB collection name for users.
func (u *User) CollectionName() string {
	return "users"
}

// CreateUserRequest represents the body for creating an account.
type CreateUserRequest struct {
	Name     string `json:"name" form:"name" validate:"required,min=2,max=64"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6,max=64"`
	Role     string `json:"role" form:"role" validate:"required,role"`
}
