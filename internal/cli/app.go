// Package cli implements the interactive command loop of the vault.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dmitrijs2005/passvault/internal/services"
)

// App holds the wired services and the in-memory session state. The master
// password stays in memory while the user is logged in: entry operations need
// it to unwrap the vault key on every call.
type App struct {
	accountService  *services.AccountService
	entryService    *services.EntryService
	categoryService *services.CategoryService
	reader          *bufio.Reader

	userID         string
	userName       string
	masterPassword string
}

func NewApp(as *services.AccountService, es *services.EntryService, cs *services.CategoryService) *App {
	return &App{
		accountService:  as,
		entryService:    es,
		categoryService: cs,
		reader:          bufio.NewReader(os.Stdin),
	}
}

func (a *App) isLoggedIn() bool {
	return a.userID != ""
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return "(" + a.userName + ")"
}

func (a *App) startSession(userID, userName, masterPassword string) {
	a.userID = userID
	a.userName = userName
	a.masterPassword = masterPassword
}

func (a *App) endSession() {
	a.userID = ""
	a.userName = ""
	a.masterPassword = ""
}

// Run starts the REPL and blocks until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to passvault (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
