package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is a read-only catalog grouping. Listings are sorted by
// SortOrder ascending.
type Category struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	SortOrder int                `bson:"sortOrder" json:"sortOrder"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
}
