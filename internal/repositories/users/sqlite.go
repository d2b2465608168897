package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/dbx"
	"github.com/dmitrijs2005/passvault/internal/models"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const userColumns = `id, username, password_hash, salt,
		question1, answer_hash1, question2, answer_hash2, question3, answer_hash3,
		wrapped_vk, wrapped_vk_q1, wrapped_vk_q2, wrapped_vk_q3, created_at`

func (r *SQLiteRepository) Create(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users
		(id, username, password_hash, salt,
		 question1, answer_hash1, question2, answer_hash2, question3, answer_hash3,
		 wrapped_vk, wrapped_vk_q1, wrapped_vk_q2, wrapped_vk_q3)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Username, user.PasswordHash, user.Salt,
		user.Question1, user.AnswerHash1, user.Question2, user.AnswerHash2,
		user.Question3, user.AnswerHash3,
		user.WrappedVK, user.WrappedVKQ1, user.WrappedVKQ2, user.WrappedVKQ3)

	if err != nil {
		var se *sqlite.Error
		if errors.As(err, &se) {
			switch se.Code() {
			case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
				return common.ErrDuplicateUsername
			}
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = ?`
	return r.scanUser(r.db.QueryRowContext(ctx, query, username))
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteRepository) UpdatePasswordAndWrappedKey(ctx context.Context, userID, passwordHash, wrappedVK string) error {
	query := `UPDATE users SET password_hash = ?, wrapped_vk = ? WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, passwordHash, wrappedVK, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	var wrapped, q1, q2, q3 sql.NullString

	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Salt,
		&user.Question1, &user.AnswerHash1, &user.Question2, &user.AnswerHash2,
		&user.Question3, &user.AnswerHash3,
		&wrapped, &q1, &q2, &q3, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	// wrapped key columns were added by a later migration and may be NULL
	// on rows that predate it
	user.WrappedVK = wrapped.String
	user.WrappedVKQ1 = q1.String
	user.WrappedVKQ2 = q2.String
	user.WrappedVKQ3 = q3.String

	return user, nil
}
