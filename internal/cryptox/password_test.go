package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePassword_LengthAndAlphabet(t *testing.T) {
	pw, err := GeneratePassword(PasswordOptions{Length: 24, Digits: true})
	require.NoError(t, err)
	assert.Len(t, pw, 24)
	for _, r := range pw {
		assert.Contains(t, digitChars, string(r))
	}
}

func TestGeneratePassword_AllClasses(t *testing.T) {
	pw, err := GeneratePassword(PasswordOptions{
		Length: 64, Uppercase: true, Lowercase: true, Digits: true, Symbols: true,
	})
	require.NoError(t, err)
	assert.Len(t, pw, 64)

	alphabet := upperChars + lowerChars + digitChars + symbolChars
	for _, r := range pw {
		assert.True(t, strings.ContainsRune(alphabet, r))
	}
}

func TestGeneratePassword_InvalidOptions(t *testing.T) {
	_, err := GeneratePassword(PasswordOptions{Length: 0, Digits: true})
	assert.Error(t, err)

	_, err = GeneratePassword(PasswordOptions{Length: 10})
	assert.Error(t, err)
}
