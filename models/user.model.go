package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered customer account. Email and phone are each
// unique across the collection; the password field only ever holds the
// bcrypt hash and is excluded from JSON output.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone" json:"phone"`
	Password  string             `bson:"password,omitempty" json:"-"`
	FirstName string             `bson:"firstName,omitempty" json:"firstName,omitempty"`
	LastName  string             `bson:"lastName,omitempty" json:"lastName,omitempty"`
	Gender    string             `bson:"gender,omitempty" json:"gender,omitempty"`
	Birthday  string             `bson:"birthday,omitempty" json:"birthday,omitempty"`
}
