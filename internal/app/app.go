// Package app initializes and runs the passvault application: it opens the
// store, applies migrations, wires the services and hands control to the
// interactive CLI.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/passvault/internal/cli"
	"github.com/dmitrijs2005/passvault/internal/config"
	"github.com/dmitrijs2005/passvault/internal/logging"
	"github.com/dmitrijs2005/passvault/internal/repositories/repomanager"
	"github.com/dmitrijs2005/passvault/internal/services"

	_ "modernc.org/sqlite"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	cli    *cli.App
}

// NewApp builds the application: one store handle for the whole process,
// constructed here and injected everywhere (no global state).
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)})
	logger := logging.NewSlogLogger(slog.New(handler))

	db, err := sql.Open("sqlite", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	m := repomanager.NewSQLiteRepositoryManager()
	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	resolver := services.NewVaultKeyResolver(db, m)
	accountService := services.NewAccountService(db, m)
	entryService := services.NewEntryService(db, m, resolver)
	categoryService := services.NewCategoryService(db, m)

	cliApp := cli.NewApp(accountService, entryService, categoryService)

	return &App{config: cfg, logger: logger, db: db, cli: cliApp}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run starts the interactive loop and blocks until it finishes or the
// process receives a termination signal.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "opening vault", "dsn", app.config.DatabaseDSN)

	app.initSignalHandler(cancelFunc)

	app.cli.Run(ctx)

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "error closing store", "err", err)
	}
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
