package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/cryptox"
	"github.com/dmitrijs2005/passvault/internal/repositories/repomanager"
)

// VaultKeyResolver turns a candidate secret into the user's vault key.
// It is the single choke point for vault key access: every encrypt or
// decrypt of entry data goes through ResolveByUser or ResolveByEntry, and
// no caller can obtain the key without presenting a secret that unwraps
// the stored copy.
//
// Every failure mode — unknown user or entry, missing wrapped copy, wrong
// secret, corrupted ciphertext — collapses into common.ErrVaultKeyResolution.
// A partial or garbage key is never returned.
type VaultKeyResolver struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewVaultKeyResolver constructs a resolver over the given store.
func NewVaultKeyResolver(db *sql.DB, m repomanager.RepositoryManager) *VaultKeyResolver {
	return &VaultKeyResolver{db: db, repomanager: m}
}

// ResolveByUser unwraps the password-wrapped vault key copy of the user
// with the given secret (the master password).
func (r *VaultKeyResolver) ResolveByUser(ctx context.Context, userID, secret string) (string, error) {
	repo := r.repomanager.Users(r.db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		return "", common.ErrVaultKeyResolution
	}
	if user.WrappedVK == "" {
		return "", common.ErrVaultKeyResolution
	}

	vk, err := cryptox.Unwrap(user.WrappedVK, secret)
	if err != nil {
		return "", common.ErrVaultKeyResolution
	}
	return vk, nil
}

// ResolveByEntry looks up the owning user of the entry and delegates to
// ResolveByUser, so callers holding only an entry id need not know the owner.
func (r *VaultKeyResolver) ResolveByEntry(ctx context.Context, entryID, secret string) (string, error) {
	repo := r.repomanager.Entries(r.db)

	entry, err := repo.GetByID(ctx, entryID)
	if err != nil {
		return "", common.ErrVaultKeyResolution
	}

	return r.ResolveByUser(ctx, entry.UserID, secret)
}
