package entries

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

func (r *SQLiteRepository) Create(ctx context.Context, e *models.Entry) error {
	query := `INSERT INTO entries (id, user_id, site, password, is_favorite, category)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.UserID, e.Site, e.Password, boolToInt(e.IsFavorite), e.Category)

	if err != nil {
		var se *sqlite.Error
		if errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY {
			return common.ErrConstraintViolation
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Entry, error) {
	query := `SELECT id, user_id, site, password, is_favorite, category
		FROM entries WHERE id = ?`

	e := &models.Entry{}
	var fav int
	var category sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&e.ID, &e.UserID, &e.Site, &e.Password, &fav, &category)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	e.IsFavorite = fav == 1
	if category.Valid {
		e.Category = &category.String
	}
	return e, nil
}

func (r *SQLiteRepository) GetByUser(ctx context.Context, userID string) ([]*models.Entry, error) {
	query := `SELECT id, user_id, site, password, is_favorite, category
		FROM entries WHERE user_id = ? ORDER BY site, id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Entry
	for rows.Next() {
		e := &models.Entry{}
		var fav int
		var category sql.NullString
		if err := rows.Scan(&e.ID, &e.UserID, &e.Site, &e.Password, &fav, &category); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		e.IsFavorite = fav == 1
		if category.Valid {
			e.Category = &category.String
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, id, site, ciphertext string) error {
	query := `UPDATE entries SET site = ?, password = ? WHERE id = ?`
	return r.execExpectingRow(ctx, query, site, ciphertext, id)
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM entries WHERE id = ?`
	return r.execExpectingRow(ctx, query, id)
}

func (r *SQLiteRepository) SetFavorite(ctx context.Context, id string, favorite bool) error {
	query := `UPDATE entries SET is_favorite = ? WHERE id = ?`
	return r.execExpectingRow(ctx, query, boolToInt(favorite), id)
}

func (r *SQLiteRepository) SetCategory(ctx context.Context, id string, category *string) error {
	query := `UPDATE entries SET category = ? WHERE id = ?`
	return r.execExpectingRow(ctx, query, category, id)
}

func (r *SQLiteRepository) ClearCategory(ctx context.Context, userID, name string) error {
	query := `UPDATE entries SET category = NULL WHERE user_id = ? AND category = ?`
	if _, err := r.db.ExecContext(ctx, query, userID, name); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) execExpectingRow(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
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

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
