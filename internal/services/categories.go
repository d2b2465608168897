package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/passvault/internal/dbx"
	"github.com/dmitrijs2005/passvault/internal/models"
	"github.com/dmitrijs2005/passvault/internal/repositories/repomanager"
	"github.com/google/uuid"
)

// CategoryService manages category records and their references from
// entries. All operations are metadata-only; no vault key is involved.
type CategoryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewCategoryService constructs a CategoryService over the given store.
func NewCategoryService(db *sql.DB, m repomanager.RepositoryManager) *CategoryService {
	return &CategoryService{db: db, repomanager: m}
}

// Add creates a category. Adding a name the user already has is a no-op,
// not an error.
func (s *CategoryService) Add(ctx context.Context, userID, name string) error {
	repo := s.repomanager.Categories(s.db)
	c := &models.Category{ID: uuid.NewString(), UserID: userID, Name: name}
	if err := repo.Create(ctx, c); err != nil {
		return fmt.Errorf("error creating category: %w", err)
	}
	return nil
}

// List returns the user's category names in ascending lexical order.
func (s *CategoryService) List(ctx context.Context, userID string) ([]string, error) {
	repo := s.repomanager.Categories(s.db)
	names, err := repo.ListNames(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing categories: %w", err)
	}
	return names, nil
}

// Delete removes the category record and clears its label from every entry
// that referenced it, in one transaction. The entries themselves survive.
func (s *CategoryService) Delete(ctx context.Context, userID, name string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Entries(tx).ClearCategory(ctx, userID, name); err != nil {
			return fmt.Errorf("error clearing category from entries: %w", err)
		}
		if err := s.repomanager.Categories(tx).Delete(ctx, userID, name); err != nil {
			return fmt.Errorf("error deleting category: %w", err)
		}
		return nil
	})
}

// ClearFromAllEntries removes the category label from every entry of the
// user in one bulk update, leaving the category record in place.
func (s *CategoryService) ClearFromAllEntries(ctx context.Context, userID, name string) error {
	repo := s.repomanager.Entries(s.db)
	if err := repo.ClearCategory(ctx, userID, name); err != nil {
		return fmt.Errorf("error clearing category: %w", err)
	}
	return nil
}
