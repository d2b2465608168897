// Package repomanager wires repositories to a database handle and owns
// schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/passvault/internal/dbx"
	"github.com/dmitrijs2005/passvault/internal/repositories/categories"
	"github.com/dmitrijs2005/passvault/internal/repositories/entries"
	"github.com/dmitrijs2005/passvault/internal/repositories/users"
)

// RepositoryManager constructs repositories bound to either the root
// *sql.DB or a transaction, so services can run multi-statement writes
// through dbx.WithTx against the same repository API.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Entries(db dbx.DBTX) entries.Repository
	Categories(db dbx.DBTX) categories.Repository
}
