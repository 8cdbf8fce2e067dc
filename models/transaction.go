package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Transaction is a purchase made by a user.
type Transaction struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID string             `bson:"userId" json:"userId"`

	// Cost is kept as text, the way the dataset stores it, so that it can be
	// searched with a regular expression.
	Cost string `bson:"cost" json:"cost"`

	Products []primitive.ObjectID `bson:"products" json:"products"`

	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// CollectionName returns the name of the collection associated with the
// Transaction model.
func (t Transaction) CollectionName() string {
	return "transactions"
}
