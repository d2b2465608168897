package entries

import (
	"context"

	"github.com/dmitrijs2005/passvault/internal/models"
)

// Repository persists vault entries. The password column always holds
// ciphertext; nothing in this package encrypts or decrypts.
type Repository interface {
	Create(ctx context.Context, e *models.Entry) error

	// GetByID returns the entry or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Entry, error)

	GetByUser(ctx context.Context, userID string) ([]*models.Entry, error)

	// Update replaces the site label and the ciphertext together.
	Update(ctx context.Context, id, site, ciphertext string) error

	Delete(ctx context.Context, id string) error

	SetFavorite(ctx context.Context, id string, favorite bool) error

	// SetCategory assigns the category label, or clears it when nil.
	SetCategory(ctx context.Context, id string, category *string) error

	// ClearCategory removes the given category label from every entry of
	// the user in one bulk update.
	ClearCategory(ctx context.Context, userID, name string) error
}
