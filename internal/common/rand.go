package common

import "crypto/rand"

// GenerateRandByteArray returns size bytes from the crypto/rand source.
// It panics if the source fails, which on supported platforms means the
// process environment is broken beyond recovery.
func GenerateRandByteArray(size int) []byte {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// WipeByteArray overwrites the contents of the provided byte slice with
// zeros. Useful for removing passwords and key material from memory after
// use. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
