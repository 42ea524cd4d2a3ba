package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog item. IsActive gates visibility in bundle and
// order resolution.
type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Tags          []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	CategoryID    string             `bson:"categoryId,omitempty" json:"categoryId,omitempty"`
	Price         float64            `bson:"price" json:"price"`
	OriginalPrice float64            `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	Unit          string             `bson:"unit,omitempty" json:"unit,omitempty"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	IsNew         bool               `bson:"isNew" json:"isNew"`
	IsPopular     bool               `bson:"isPopular" json:"isPopular"`
	IsActive      bool               `bson:"isActive" json:"isActive"`
}
