package entries

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`PRAGMA foreign_keys = ON;`)
	require.NoError(t, err)

	_, err = db.Exec(`
CREATE TABLE users (
  id TEXT PRIMARY KEY,
  username TEXT UNIQUE NOT NULL
);
CREATE TABLE entries (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  site TEXT NOT NULL,
  password TEXT NOT NULL,
  is_favorite INTEGER NOT NULL DEFAULT 0,
  category TEXT,
  FOREIGN KEY (user_id) REFERENCES users (id)
);
INSERT INTO users (id, username) VALUES ('u1', 'alice'), ('u2', 'bob');
`)
	require.NoError(t, err)

	return db
}

func TestCreateAndGetByID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	e := &models.Entry{ID: "e1", UserID: "u1", Site: "example.com", Password: "ct"}
	require.NoError(t, r.Create(ctx, e))

	got, err := r.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "example.com", got.Site)
	assert.Equal(t, "ct", got.Password)
	assert.False(t, got.IsFavorite)
	assert.Nil(t, got.Category)
}

func TestCreate_UnknownOwnerViolatesForeignKey(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	e := &models.Entry{ID: "e1", UserID: "ghost", Site: "x", Password: "ct"}
	err := r.Create(context.Background(), e)
	assert.ErrorIs(t, err, common.ErrConstraintViolation)
}

func TestGetByUser_ScopedToOwner(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &models.Entry{ID: "e1", UserID: "u1", Site: "a", Password: "ct"}))
	require.NoError(t, r.Create(ctx, &models.Entry{ID: "e2", UserID: "u1", Site: "b", Password: "ct"}))
	require.NoError(t, r.Create(ctx, &models.Entry{ID: "e3", UserID: "u2", Site: "c", Password: "ct"}))

	got, err := r.GetByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Site)
	assert.Equal(t, "b", got[1].Site)
}

func TestUpdate_SiteAndCiphertextTogether(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &models.Entry{ID: "e1", UserID: "u1", Site: "old", Password: "old-ct"}))
	require.NoError(t, r.Update(ctx, "e1", "new", "new-ct"))

	got, err := r.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "new", got.Site)
	assert.Equal(t, "new-ct", got.Password)

	assert.ErrorIs(t, r.Update(ctx, "missing", "s", "ct"), common.ErrNotFound)
}

func TestDelete(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &models.Entry{ID: "e1", UserID: "u1", Site: "a", Password: "ct"}))
	require.NoError(t, r.Delete(ctx, "e1"))

	_, err := r.GetByID(ctx, "e1")
	assert.ErrorIs(t, err, common.ErrNotFound)

	assert.ErrorIs(t, r.Delete(ctx, "e1"), common.ErrNotFound)
}

func TestSetFavorite(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &models.Entry{ID: "e1", UserID: "u1", Site: "a", Password: "ct"}))

	require.NoError(t, r.SetFavorite(ctx, "e1", true))
	got, err := r.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.True(t, got.IsFavorite)

	require.NoError(t, r.SetFavorite(ctx, "e1", false))
	got, err = r.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.False(t, got.IsFavorite)
}

func TestSetCategory_AssignAndClear(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &models.Entry{ID: "e1", UserID: "u1", Site: "a", Password: "ct"}))

	work := "Work"
	require.NoError(t, r.SetCategory(ctx, "e1", &work))
	got, err := r.GetByID(ctx, "e1")
	require.NoError(t, err)
	require.NotNil(t, got.Category)
	assert.Equal(t, "Work", *got.Category)

	require.NoError(t, r.SetCategory(ctx, "e1", nil))
	got, err = r.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Nil(t, got.Category)
}

func TestClearCategory_BulkAndScoped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	work := "Work"
	require.NoError(t, r.Create(ctx, &models.Entry{ID: "e1", UserID: "u1", Site: "a", Password: "ct", Category: &work}))
	require.NoError(t, r.Create(ctx, &models.Entry{ID: "e2", UserID: "u1", Site: "b", Password: "ct", Category: &work}))
	require.NoError(t, r.Create(ctx, &models.Entry{ID: "e3", UserID: "u2", Site: "c", Password: "ct", Category: &work}))

	require.NoError(t, r.ClearCategory(ctx, "u1", "Work"))

	for _, id := range []string{"e1", "e2"} {
		got, err := r.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, got.Category)
	}

	// another user's entries keep their label
	got, err := r.GetByID(ctx, "e3")
	require.NoError(t, err)
	require.NotNil(t, got.Category)
	assert.Equal(t, "Work", *got.Category)

	// clearing a label nobody has is not an error
	require.NoError(t, r.ClearCategory(ctx, "u1", "Nothing"))
}
