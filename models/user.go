package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the access level of a dashboard user.
type Role string

const (
	// RoleUser marks a customer account.
	RoleUser Role = "user"
	// RoleAdmin marks a back-office administrator.
	RoleAdmin Role = "admin"
	// RoleSuperAdmin marks an administrator with full access.
	RoleSuperAdmin Role = "superadmin"
)

// User represents a customer or administrator document.
// Password is stored in the database but is never serialized to JSON.
type User struct {
	// ID is the document identifier.
	ID primitive.ObjectID `bson:"_id,omitempty" json:"_id"`

	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`

	// Password is excluded from every query projection that feeds an API
	// response and is hidden from JSON regardless.
	Password string `bson:"password,omitempty" json:"-"`

	City  string `bson:"city" json:"city"`
	State string `bson:"state" json:"state"`

	// Country is an ISO 3166-1 alpha-2 code (e.g. "US").
	Country string `bson:"country" json:"country"`

	Occupation  string `bson:"occupation" json:"occupation"`
	PhoneNumber string `bson:"phoneNumber" json:"phoneNumber"`

	// Transactions holds the identifiers of the user's transactions.
	Transactions []string `bson:"transactions" json:"transactions"`

	Role Role `bson:"role" json:"role"`

	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// CollectionName returns the name of the collection associated with the
// User model.
func (u User) CollectionName() string {
	return "users"
}
