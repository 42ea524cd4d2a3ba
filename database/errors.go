package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// Failure taxonomy surfaced by the store. Controllers map these to HTTP
// statuses; everything else propagates untransformed.
var (
	// ErrNotFound means no entity exists for the given key.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken and ErrPhoneTaken are uniqueness conflicts raised on
	// registration and profile update.
	ErrEmailTaken = errors.New("email already registered")
	ErrPhoneTaken = errors.New("phone number already registered")

	// ErrInvalidInput means a required field is missing or unusable.
	ErrInvalidInput = errors.New("invalid input")

	// Authentication failures are deliberately distinguished for UX:
	// the identifier was unknown, the secret was wrong, or the account
	// exists but carries no usable credential.
	ErrUserNotFound      = errors.New("user not found")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrAccountNotSetUp   = errors.New("account not properly set up")

	// ErrUnavailable means the document store could not be reached.
	ErrUnavailable = errors.New("store unavailable")
)

// wrapErr annotates a store failure, folding network and timeout errors
// into ErrUnavailable so callers can map them to a service-unavailable
// response.
func wrapErr(msg string, err error) error {
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", msg, ErrUnavailable)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
