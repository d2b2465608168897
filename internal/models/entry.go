package models

// Entry is a stored credential. Password holds ciphertext wrapped under the
// owner's vault key; Site and Category are plaintext labels.
type Entry struct {
	ID         string
	UserID     string
	Site       string
	Password   string
	IsFavorite bool

	// Category is a plaintext label referencing Category.Name, or nil when
	// the entry is uncategorized.
	Category *string
}

// DecryptedEntry is the listing projection of an Entry with the password
// unwrapped. Password carries the sentinel marker instead of plaintext when
// that single row failed to decrypt.
type DecryptedEntry struct {
	ID         string
	Site       string
	Password   string
	IsFavorite bool
	Category   string
}
