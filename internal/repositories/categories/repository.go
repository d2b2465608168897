package categories

import (
	"context"

	"github.com/dmitrijs2005/passvault/internal/models"
)

// Repository persists categories.
type Repository interface {
	// Create inserts the category. A duplicate (user_id, name) pair is
	// silently ignored, not an error.
	Create(ctx context.Context, c *models.Category) error

	// Delete removes the category record or returns common.ErrNotFound.
	Delete(ctx context.Context, userID, name string) error

	// ListNames returns the user's category names in ascending lexical order.
	ListNames(ctx context.Context, userID string) ([]string, error)
}
