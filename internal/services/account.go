// Package services contains the business logic of the vault: account
// lifecycle, vault key resolution, entry operations and category
// management. Services orchestrate cryptox and the repositories; they hold
// no persistent state of their own.
package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/cryptox"
	"github.com/dmitrijs2005/passvault/internal/dbx"
	"github.com/dmitrijs2005/passvault/internal/models"
	"github.com/dmitrijs2005/passvault/internal/repositories/repomanager"
	"github.com/google/uuid"
)

// QuestionAnswer pairs a security question with its (not yet normalized)
// answer, as collected at registration time.
type QuestionAnswer struct {
	Question string
	Answer   string
}

// AccountService handles registration, authentication, security question
// retrieval/verification and the password reset protocol.
type AccountService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewAccountService constructs an AccountService over the given store.
func NewAccountService(db *sql.DB, m repomanager.RepositoryManager) *AccountService {
	return &AccountService{db: db, repomanager: m}
}

// Register creates a new account: one fresh salt, the password hash, three
// normalized answer hashes, a fresh vault key and its four wrapped copies
// (one under the master password, one under each answer hash), inserted as
// a single atomic write.
//
// A taken username yields common.ErrDuplicateUsername; the existing
// account is untouched.
func (s *AccountService) Register(ctx context.Context, username, password string, questions [3]QuestionAnswer) error {
	salt := cryptox.GenerateSalt()
	passwordHash := cryptox.Hash(password, salt)

	var answerHashes [3]string
	for i, qa := range questions {
		answerHashes[i] = cryptox.Hash(cryptox.NormalizeAnswer(qa.Answer), salt)
	}

	vk := cryptox.GenerateVaultKey()

	wrappedByPassword, err := cryptox.Wrap(vk, password)
	if err != nil {
		return fmt.Errorf("wrapping vault key: %w", err)
	}

	// the answer hash doubles as the wrapping secret for its copy
	var wrappedByAnswer [3]string
	for i, ah := range answerHashes {
		wrappedByAnswer[i], err = cryptox.Wrap(vk, ah)
		if err != nil {
			return fmt.Errorf("wrapping vault key: %w", err)
		}
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
		Salt:         salt,
		Question1:    questions[0].Question,
		Question2:    questions[1].Question,
		Question3:    questions[2].Question,
		AnswerHash1:  answerHashes[0],
		AnswerHash2:  answerHashes[1],
		AnswerHash3:  answerHashes[2],
		WrappedVK:    wrappedByPassword,
		WrappedVKQ1:  wrappedByAnswer[0],
		WrappedVKQ2:  wrappedByAnswer[1],
		WrappedVKQ3:  wrappedByAnswer[2],
	}

	repo := s.repomanager.Users(s.db)
	if err := repo.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrDuplicateUsername) {
			return common.ErrDuplicateUsername
		}
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

// Authenticate verifies the master password and returns the user id on
// success. Unknown username and wrong password both yield
// common.ErrInvalidCredentials; nothing distinguishes the two.
//
// The vault key is not resolved here — callers keep the password in memory
// for the session and present it to the resolver per operation.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrInvalidCredentials
		}
		return "", fmt.Errorf("error fetching user: %w", err)
	}

	candidate := cryptox.Hash(password, user.Salt)
	if subtle.ConstantTimeCompare([]byte(candidate), []byte(user.PasswordHash)) != 1 {
		return "", common.ErrInvalidCredentials
	}
	return user.ID, nil
}

// SecurityQuestions returns the user's three question texts (never the
// answer hashes), or common.ErrUserNotFound.
func (s *AccountService) SecurityQuestions(ctx context.Context, username string) (*models.SecurityQuestions, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	return &models.SecurityQuestions{
		UserID:    user.ID,
		Question1: user.Question1,
		Question2: user.Question2,
		Question3: user.Question3,
	}, nil
}

// VerifyAnswer checks the candidate answer against the stored hash for
// question index 1..3. The comparison is insensitive to leading/trailing
// whitespace and letter case.
func (s *AccountService) VerifyAnswer(ctx context.Context, userID string, index int, answer string) (bool, error) {
	if index < 1 || index > 3 {
		return false, fmt.Errorf("question index out of range: %d", index)
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return false, common.ErrUserNotFound
		}
		return false, fmt.Errorf("error fetching user: %w", err)
	}

	stored := [3]string{user.AnswerHash1, user.AnswerHash2, user.AnswerHash3}[index-1]
	candidate := cryptox.Hash(cryptox.NormalizeAnswer(answer), user.Salt)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(stored)) == 1, nil
}

// ResetPassword re-keys the password wrapping without changing the vault
// key, so existing entries and the three answer-wrapped copies stay valid.
//
// The candidate answer is tested against questions 1, 2, 3 in order,
// stopping at the first match; if none match, common.ErrInvalidAnswer is
// returned and storage is untouched. The matched answer hash unwraps its
// vault key copy (common.ErrRecovery if the copy is absent or
// undecryptable). The vault key is then re-wrapped under the new password
// and stored, together with the recomputed password hash, in one
// transaction. The salt is preserved: the answer hashes share it.
func (s *AccountService) ResetPassword(ctx context.Context, username, newPassword, answer string) error {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrUserNotFound
		}
		return fmt.Errorf("error fetching user: %w", err)
	}

	normalized := cryptox.NormalizeAnswer(answer)
	candidate := cryptox.Hash(normalized, user.Salt)

	answerHashes := [3]string{user.AnswerHash1, user.AnswerHash2, user.AnswerHash3}
	wrappedCopies := [3]string{user.WrappedVKQ1, user.WrappedVKQ2, user.WrappedVKQ3}

	matched := -1
	for i, stored := range answerHashes {
		if subtle.ConstantTimeCompare([]byte(candidate), []byte(stored)) == 1 {
			matched = i
			break
		}
	}
	if matched < 0 {
		return common.ErrInvalidAnswer
	}

	if wrappedCopies[matched] == "" {
		return common.ErrRecovery
	}

	// the stored answer hash is the wrapping secret for its copy
	vk, err := cryptox.Unwrap(wrappedCopies[matched], answerHashes[matched])
	if err != nil {
		return common.ErrRecovery
	}

	newWrappedVK, err := cryptox.Wrap(vk, newPassword)
	if err != nil {
		return fmt.Errorf("wrapping vault key: %w", err)
	}
	newPasswordHash := cryptox.Hash(newPassword, user.Salt)

	// hash and wrapped copy must change together or not at all
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := s.repomanager.Users(tx)
		return repoTx.UpdatePasswordAndWrappedKey(ctx, user.ID, newPasswordHash, newWrappedVK)
	})
}
