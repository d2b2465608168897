package users

import (
	"context"

	"github.com/dmitrijs2005/passvault/internal/models"
)

// Repository persists users. Implementations contain no business logic:
// hashing and wrapping happen in the service layer.
type Repository interface {
	// Create inserts the full user record as a single atomic write.
	// A username collision yields common.ErrDuplicateUsername.
	Create(ctx context.Context, user *models.User) error

	// GetByUsername returns the user or common.ErrNotFound.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// GetByID returns the user or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// UpdatePasswordAndWrappedKey replaces the password hash and the
	// password-wrapped vault key copy together. Callers run it inside a
	// transaction during password reset.
	UpdatePasswordAndWrappedKey(ctx context.Context, userID, passwordHash, wrappedVK string) error
}
