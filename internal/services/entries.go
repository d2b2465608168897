package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/cryptox"
	"github.com/dmitrijs2005/passvault/internal/models"
	"github.com/dmitrijs2005/passvault/internal/repositories/repomanager"
	"github.com/google/uuid"
)

// UndecryptableSentinel is substituted for an entry's password in listings
// when that single row fails to decrypt. One corrupt row must not hide the
// rest of the vault.
const UndecryptableSentinel = "<decrypt error>"

// EntryService implements the vault entry operations. Every operation that
// touches ciphertext takes the master password and goes through the
// resolver; metadata operations (delete, favorite, category) do not.
type EntryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	resolver    *VaultKeyResolver
}

// NewEntryService constructs an EntryService over the given store and resolver.
func NewEntryService(db *sql.DB, m repomanager.RepositoryManager, r *VaultKeyResolver) *EntryService {
	return &EntryService{db: db, repomanager: m, resolver: r}
}

// Add encrypts plaintext under the user's vault key and inserts a new
// entry. A wrong master password surfaces as common.ErrVaultKeyResolution,
// distinct from any not-found condition.
func (s *EntryService) Add(ctx context.Context, userID, site, plaintext, masterPassword string) error {
	vk, err := s.resolver.ResolveByUser(ctx, userID, masterPassword)
	if err != nil {
		return err
	}

	ciphertext, err := cryptox.Wrap(plaintext, vk)
	if err != nil {
		return fmt.Errorf("encrypting entry: %w", err)
	}

	repo := s.repomanager.Entries(s.db)
	entry := &models.Entry{
		ID:       uuid.NewString(),
		UserID:   userID,
		Site:     site,
		Password: ciphertext,
	}
	if err := repo.Create(ctx, entry); err != nil {
		return fmt.Errorf("error creating entry: %w", err)
	}
	return nil
}

// List resolves the vault key once and returns all of the user's entries
// with passwords decrypted. A per-row decryption failure substitutes
// UndecryptableSentinel for that row instead of aborting the batch.
func (s *EntryService) List(ctx context.Context, userID, masterPassword string) ([]models.DecryptedEntry, error) {
	vk, err := s.resolver.ResolveByUser(ctx, userID, masterPassword)
	if err != nil {
		return nil, err
	}

	repo := s.repomanager.Entries(s.db)
	stored, err := repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing entries: %w", err)
	}

	result := make([]models.DecryptedEntry, 0, len(stored))
	for _, e := range stored {
		plain, err := cryptox.Unwrap(e.Password, vk)
		if err != nil {
			plain = UndecryptableSentinel
		}

		category := ""
		if e.Category != nil {
			category = *e.Category
		}

		result = append(result, models.DecryptedEntry{
			ID:         e.ID,
			Site:       e.Site,
			Password:   plain,
			IsFavorite: e.IsFavorite,
			Category:   category,
		})
	}
	return result, nil
}

// Update re-encrypts the new plaintext and replaces the site label and
// ciphertext together. The vault key is resolved by entry id, so the
// caller need not know the owning user.
func (s *EntryService) Update(ctx context.Context, entryID, site, plaintext, masterPassword string) error {
	vk, err := s.resolver.ResolveByEntry(ctx, entryID, masterPassword)
	if err != nil {
		return err
	}

	ciphertext, err := cryptox.Wrap(plaintext, vk)
	if err != nil {
		return fmt.Errorf("encrypting entry: %w", err)
	}

	repo := s.repomanager.Entries(s.db)
	if err := repo.Update(ctx, entryID, site, ciphertext); err != nil {
		return fmt.Errorf("error updating entry: %w", err)
	}
	return nil
}

// Delete removes the entry. No vault key is needed.
func (s *EntryService) Delete(ctx context.Context, entryID string) error {
	repo := s.repomanager.Entries(s.db)
	if err := repo.Delete(ctx, entryID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return fmt.Errorf("error deleting entry: %w", err)
	}
	return nil
}

// SetFavorite toggles the favorite flag. No vault key is needed.
func (s *EntryService) SetFavorite(ctx context.Context, entryID string, favorite bool) error {
	repo := s.repomanager.Entries(s.db)
	if err := repo.SetFavorite(ctx, entryID, favorite); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return fmt.Errorf("error updating entry: %w", err)
	}
	return nil
}

// SetCategory assigns a category label to the entry, or clears it when
// category is nil. No vault key is needed.
func (s *EntryService) SetCategory(ctx context.Context, entryID string, category *string) error {
	repo := s.repomanager.Entries(s.db)
	if err := repo.SetCategory(ctx, entryID, category); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return fmt.Errorf("error updating entry: %w", err)
	}
	return nil
}
