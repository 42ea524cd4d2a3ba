package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"go-grocery/models"
	"go-grocery/utils"
)

// RegisterInput is the payload for creating a user account.
type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// ProfileUpdate carries the mutable profile fields. Empty fields are left
// untouched.
type ProfileUpdate struct {
	FirstName string
	LastName  string
	Phone     string
	Gender    string
	Birthday  string
}

// CreateUser registers a new account. Email and phone uniqueness are
// checked in that order so the caller can report which one collided.
func (s *Store) CreateUser(ctx context.Context, in RegisterInput) (*models.User, error) {
	if in.Name == "" || in.Email == "" || in.Phone == "" || in.Password == "" {
		return nil, ErrInvalidInput
	}

	if err := s.users().FindOne(ctx, bson.M{"email": in.Email}).Err(); err == nil {
		return nil, ErrEmailTaken
	} else if err != mongo.ErrNoDocuments {
		return nil, wrapErr("failed to check email", err)
	}

	if err := s.users().FindOne(ctx, bson.M{"phone": in.Phone}).Err(); err == nil {
		return nil, ErrPhoneTaken
	} else if err != mongo.ErrNoDocuments {
		return nil, wrapErr("failed to check phone", err)
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, wrapErr("failed to hash password", err)
	}

	user := models.User{
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Password: hashed,
	}

	result, err := s.users().InsertOne(ctx, user)
	if err != nil {
		return nil, wrapErr("failed to insert user", err)
	}
	user.ID = result.InsertedID.(primitive.ObjectID)
	return &user, nil
}

// UserByID returns a user by storage id or ErrNotFound.
func (s *Store) UserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := s.users().FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, wrapErr("failed to find user", err)
	}
	return &user, nil
}

// ValidateUser authenticates by email and password.
func (s *Store) ValidateUser(ctx context.Context, email, password string) (*models.User, error) {
	return s.validate(ctx, bson.M{"email": email}, password)
}

// ValidatePhone authenticates by phone and password.
func (s *Store) ValidatePhone(ctx context.Context, phone, password string) (*models.User, error) {
	return s.validate(ctx, bson.M{"phone": phone}, password)
}

func (s *Store) validate(ctx context.Context, filter bson.M, password string) (*models.User, error) {
	var user models.User
	err := s.users().FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, wrapErr("failed to find user", err)
	}

	if user.Password == "" {
		return nil, ErrAccountNotSetUp
	}
	if !utils.CheckPassword(password, user.Password) {
		return nil, ErrIncorrectPassword
	}
	return &user, nil
}

// ResetPassword replaces the credential of the account registered under
// the given phone number and returns the account.
func (s *Store) ResetPassword(ctx context.Context, phone, newPassword string) (*models.User, error) {
	if newPassword == "" {
		return nil, ErrInvalidInput
	}

	var user models.User
	err := s.users().FindOne(ctx, bson.M{"phone": phone}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, wrapErr("failed to find user", err)
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return nil, wrapErr("failed to hash password", err)
	}

	_, err = s.users().UpdateOne(ctx, bson.M{"phone": phone}, bson.M{"$set": bson.M{"password": hashed}})
	if err != nil {
		return nil, wrapErr("failed to update password", err)
	}
	return &user, nil
}

// UpdateProfile applies the provided profile fields to the user. A phone
// change is checked against existing accounts first. An update with no
// fields set is rejected as ErrInvalidInput.
func (s *Store) UpdateProfile(ctx context.Context, id primitive.ObjectID, update ProfileUpdate) (*models.User, error) {
	var existing models.User
	err := s.users().FindOne(ctx, bson.M{"_id": id}).Decode(&existing)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, wrapErr("failed to find user", err)
	}

	if update.Phone != "" && update.Phone != existing.Phone {
		if err := s.users().FindOne(ctx, bson.M{"phone": update.Phone}).Err(); err == nil {
			return nil, ErrPhoneTaken
		} else if err != mongo.ErrNoDocuments {
			return nil, wrapErr("failed to check phone", err)
		}
	}

	fields := bson.M{}
	if update.FirstName != "" {
		fields["firstName"] = update.FirstName
	}
	if update.LastName != "" {
		fields["lastName"] = update.LastName
	}
	if update.Phone != "" {
		fields["phone"] = update.Phone
	}
	if update.Gender != "" {
		fields["gender"] = update.Gender
	}
	if update.Birthday != "" {
		fields["birthday"] = update.Birthday
	}
	if len(fields) == 0 {
		return nil, ErrInvalidInput
	}

	_, err = s.users().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return nil, wrapErr("failed to update user", err)
	}

	var updated models.User
	if err := s.users().FindOne(ctx, bson.M{"_id": id}).Decode(&updated); err != nil {
		return nil, wrapErr("failed to reload user", err)
	}
	return &updated, nil
}
