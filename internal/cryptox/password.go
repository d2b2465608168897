package cryptox

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// PasswordOptions selects the character classes a generated password may
// draw from. At least one class must be enabled.
type PasswordOptions struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Digits    bool
	Symbols   bool
}

const (
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*()-_=+[]{};:,.<>?"
)

// GeneratePassword returns a random candidate password built from the
// enabled character classes, using the crypto/rand source.
func GeneratePassword(opts PasswordOptions) (string, error) {
	if opts.Length <= 0 {
		return "", errors.New("password length must be positive")
	}

	var alphabet string
	if opts.Uppercase {
		alphabet += upperChars
	}
	if opts.Lowercase {
		alphabet += lowerChars
	}
	if opts.Digits {
		alphabet += digitChars
	}
	if opts.Symbols {
		alphabet += symbolChars
	}
	if alphabet == "" {
		return "", errors.New("at least one character class must be enabled")
	}

	out := make([]byte, opts.Length)
	max := big.NewInt(int64(len(alphabet)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = alphabet[n.Int64()]
	}
	return string(out), nil
}
