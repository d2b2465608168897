package services

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/passvault/internal/repositories/repomanager"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// setupStore opens a fresh in-memory database, applies the embedded
// migrations and returns the handle plus a repository manager. A unique
// shared-cache DSN per test keeps connections of one pool on one database.
func setupStore(t *testing.T) (*sql.DB, repomanager.RepositoryManager) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name())
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	m := repomanager.NewSQLiteRepositoryManager()
	require.NoError(t, m.RunMigrations(context.Background(), db))

	return db, m
}

var testQuestions = [3]QuestionAnswer{
	{Question: "Favorite color?", Answer: "blue"},
	{Question: "First pet?", Answer: "rex"},
	{Question: "City of birth?", Answer: "paris"},
}

// registerTestUser registers a user and returns its id.
func registerTestUser(t *testing.T, svc *AccountService, username, password string) string {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, username, password, testQuestions))
	id, err := svc.Authenticate(ctx, username, password)
	require.NoError(t, err)
	return id
}
