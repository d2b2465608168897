// Package cryptox implements the hashing, key-derivation and key-wrapping
// primitives the vault is built on.
//
// Two derived values exist per secret: a verification hash (Hash) stored for
// comparison, and a 256-bit AES key (DeriveKey) used to wrap plaintext. For
// security answers the verification hash itself is reused as the wrapping
// secret, so a single stored value serves both purposes.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/passvault/internal/common"
	"golang.org/x/crypto/pbkdf2"
)

const (
	saltSize     = 16
	vaultKeySize = 32

	// Parameters of the PBKDF2 step used by DeriveKey. The derivation salt
	// is fixed and shared by all users; changing it breaks readability of
	// every wrapped value already on disk.
	kdfIterations  = 1000
	derivationSalt = "staticSalt"
)

// Hash computes base64(SHA-256(input || salt)). It is used for the master
// password verification hash and for the three security answer hashes.
func Hash(input, salt string) string {
	sum := sha256.Sum256([]byte(input + salt))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// DeriveKey stretches an arbitrary-length secret into a 256-bit AES key
// via PBKDF2-HMAC-SHA1.
func DeriveKey(secret string) []byte {
	return pbkdf2.Key([]byte(secret), []byte(derivationSalt), kdfIterations, 32, sha1.New)
}

// Wrap encrypts plaintext with AES-256-CBC under a key derived from secret
// and returns the ciphertext base64-encoded.
//
// The IV is fixed (all zero), so wrapping the same plaintext under the same
// secret always yields the same ciphertext. Callers must not rely on
// ciphertext uniqueness.
func Wrap(plaintext, secret string) (string, error) {
	block, err := aes.NewCipher(DeriveKey(secret))
	if err != nil {
		return "", fmt.Errorf("cipher init: %w", err)
	}

	padded := padPKCS7([]byte(plaintext), aes.BlockSize)
	out := make([]byte, len(padded))

	iv := make([]byte, aes.BlockSize)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)

	return base64.StdEncoding.EncodeToString(out), nil
}

// Unwrap reverses Wrap. Malformed input, a wrong block length or invalid
// padding (the observable symptom of a wrong secret) all yield
// common.ErrDecryption; there is no partial success.
func Unwrap(ciphertext, secret string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", common.ErrDecryption
	}
	if len(raw) == 0 || len(raw)%aes.BlockSize != 0 {
		return "", common.ErrDecryption
	}

	block, err := aes.NewCipher(DeriveKey(secret))
	if err != nil {
		return "", common.ErrDecryption
	}

	out := make([]byte, len(raw))
	iv := make([]byte, aes.BlockSize)
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, raw)

	unpadded, err := unpadPKCS7(out, aes.BlockSize)
	if err != nil {
		return "", common.ErrDecryption
	}
	return string(unpadded), nil
}

// GenerateSalt returns a fresh random per-user salt, base64-encoded.
func GenerateSalt() string {
	return base64.StdEncoding.EncodeToString(common.GenerateRandByteArray(saltSize))
}

// GenerateVaultKey returns a fresh random 256-bit vault key, base64-encoded.
// The encoded string is what gets wrapped and what serves as the wrapping
// secret for vault entries.
func GenerateVaultKey() string {
	return base64.StdEncoding.EncodeToString(common.GenerateRandByteArray(vaultKeySize))
}

// NormalizeAnswer canonicalizes a security answer before hashing: leading
// and trailing whitespace is stripped and letters are lower-cased, so the
// stored hash is insensitive to trivial retyping differences.
func NormalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func padPKCS7(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+n)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(n)
	}
	return padded
}

func unpadPKCS7(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, common.ErrDecryption
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, common.ErrDecryption
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, common.ErrDecryption
		}
	}
	return data[:len(data)-n], nil
}
