package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-grocery/database"
	"go-grocery/models"
	"go-grocery/utils"
)

// UserStore is the slice of the document store the user controller needs.
type UserStore interface {
	CreateUser(ctx context.Context, in database.RegisterInput) (*models.User, error)
	UserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	ValidateUser(ctx context.Context, email, password string) (*models.User, error)
	ValidatePhone(ctx context.Context, phone, password string) (*models.User, error)
	ResetPassword(ctx context.Context, phone, newPassword string) (*models.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, update database.ProfileUpdate) (*models.User, error)
}

// UserController handles registration, authentication and profile requests.
type UserController struct {
	Store UserStore
	Log   zerolog.Logger
}

// NewUserController creates a new UserController.
func NewUserController(store UserStore, log zerolog.Logger) *UserController {
	return &UserController{Store: store, Log: log}
}

// authResponse is the payload returned by every token-issuing endpoint.
func authResponse(token string, user *models.User) map[string]interface{} {
	return map[string]interface{}{
		"token": token,
		"user": map[string]interface{}{
			"id":    user.ID.Hex(),
			"name":  user.Name,
			"email": user.Email,
		},
	}
}

func (uc *UserController) issueToken(w http.ResponseWriter, user *models.User) {
	token, err := utils.GenerateJWT(user.ID.Hex())
	if err != nil {
		uc.Log.Error().Err(err).Msg("failed to sign token")
		writeError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	writeData(w, authResponse(token, user))
}

// Register handles user registration and logs the new account in.
func (uc *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Phone    string `json:"phone" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := uc.Store.CreateUser(ctx, database.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}

	uc.issueToken(w, user)
}

// Login handles email/password authentication.
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := uc.Store.ValidateUser(ctx, req.Email, req.Password)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	uc.issueToken(w, user)
}

// PhoneLogin handles phone/password authentication.
func (uc *UserController) PhoneLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Phone    string `json:"phone" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := uc.Store.ValidatePhone(ctx, req.Phone, req.Password)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	uc.issueToken(w, user)
}

// ResetPassword replaces the password of the account registered under the
// given phone number and issues a fresh token.
func (uc *UserController) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Phone    string `json:"phone" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := uc.Store.ResetPassword(ctx, req.Phone, req.Password)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	uc.issueToken(w, user)
}

// UpdateProfile applies the provided profile fields to the user.
func (uc *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID        string `json:"id" validate:"required"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Phone     string `json:"phone"`
		Gender    string `json:"gender"`
		Birthday  string `json:"birthday"`
	}
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := uc.Store.UpdateProfile(ctx, id, database.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Gender:    req.Gender,
		Birthday:  req.Birthday,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeData(w, user)
}

// GetUser returns a user by id, password excluded.
func (uc *UserController) GetUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id" validate:"required"`
	}
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := uc.Store.UserByID(ctx, id)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	user.Password = ""
	writeData(w, user)
}
