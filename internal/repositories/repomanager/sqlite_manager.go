package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/passvault/internal/dbx"
	"github.com/dmitrijs2005/passvault/internal/migrations"
	"github.com/dmitrijs2005/passvault/internal/repositories/categories"
	"github.com/dmitrijs2005/passvault/internal/repositories/entries"
	"github.com/dmitrijs2005/passvault/internal/repositories/users"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

type SQLiteRepositoryManager struct {
}

func NewSQLiteRepositoryManager() *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{}
}

func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Entries(db dbx.DBTX) entries.Repository {
	return entries.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Categories(db dbx.DBTX) categories.Repository {
	return categories.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}
