package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when a user record is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateEmail is returned when a user with the same email already exists.
var ErrDuplicateEmail = errors.New("email already exists")

// ErrDuplicateGoogleID is returned when a user with the same Google subject
// identifier already exists.
var ErrDuplicateGoogleID = errors.New("google id already exists")

// Repository provides operations on the users table. Create must reject
// duplicate emails and duplicate Google IDs atomically at the storage layer;
// a check-then-insert in the caller is not enough under concurrent
// registrations.
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByGoogleID(ctx context.Context, googleID string) (*User, error)
}
