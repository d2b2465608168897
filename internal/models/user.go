// Package models defines the persisted data model of the vault.
package models

import "time"

// User holds a user's identity, verification hashes and the four wrapped
// copies of the vault key.
//
// Invariant: WrappedVK and WrappedVKQ1..Q3, each unwrapped with its correct
// secret, yield byte-identical plaintext — the vault key. Registration
// populates all four atomically; password reset replaces PasswordHash and
// WrappedVK together and never touches the answer-wrapped copies.
type User struct {
	ID           string
	Username     string
	PasswordHash string

	// Salt is shared by the password hash and all three answer hashes.
	// It must never change after registration, or the answer hashes (and
	// therefore the answer-wrapped vault key copies) become unverifiable.
	Salt string

	Question1   string
	Question2   string
	Question3   string
	AnswerHash1 string
	AnswerHash2 string
	AnswerHash3 string

	// WrappedVK is the vault key wrapped under the master password.
	WrappedVK string
	// WrappedVKQ1..Q3 are the vault key wrapped under the respective
	// answer hashes. Immutable after registration.
	WrappedVKQ1 string
	WrappedVKQ2 string
	WrappedVKQ3 string

	CreatedAt time.Time
}

// SecurityQuestions is the recovery-facing projection of a user: the three
// question texts, but never the answer hashes.
type SecurityQuestions struct {
	UserID    string
	Question1 string
	Question2 string
	Question3 string
}
