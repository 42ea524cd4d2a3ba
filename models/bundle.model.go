package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Bundle is a promotional grouping of products. Items keep their open
// document shape: each carries at least a productId and quantity, and
// resolution attaches a productDetails snapshot (or nil for inactive or
// missing products).
type Bundle struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name       string             `bson:"name" json:"name"`
	CategoryID string             `bson:"categoryId,omitempty" json:"categoryId,omitempty"`
	Price      float64            `bson:"price,omitempty" json:"price,omitempty"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
	IsPopular  bool               `bson:"isPopular" json:"isPopular"`
	IsActive   bool               `bson:"isActive" json:"isActive"`
	Items      []bson.M           `bson:"items" json:"items"`
}
