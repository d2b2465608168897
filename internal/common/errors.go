// Package common contains shared constants and sentinel errors used across
// passvault components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound            = errors.New("not found")
	ErrConstraintViolation = errors.New("constraint violation")

	// Account lifecycle errors.
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidAnswer      = errors.New("security answer does not match")

	// Vault crypto errors.
	ErrVaultKeyResolution = errors.New("unable to resolve vault key")
	ErrDecryption         = errors.New("decryption failed")
	ErrRecovery           = errors.New("vault key recovery failed")
)
