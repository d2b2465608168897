package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Questions(ctx context.Context) error
	Reset(ctx context.Context) error
	Add(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context) error
	Update(ctx context.Context) error
	Delete(ctx context.Context) error
	Favorite(ctx context.Context) error
	SetCategory(ctx context.Context) error
	AddCategory(ctx context.Context) error
	ListCategories(ctx context.Context) error
	DeleteCategory(ctx context.Context) error
	Generate(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the vault CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF, context cancellation, or
// when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - questions      — show a user's security questions
//	  - reset          — reset a forgotten password via a security answer
//	  - gen            — generate a random password
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - add            — add an entry
//	  - list           — list entries
//	  - show           — show a single entry
//	  - update         — change an entry's site or password
//	  - delete         — delete an entry
//	  - fav            — toggle an entry's favorite mark
//	  - cat            — assign or clear an entry's category
//	  - cat-add        — create a category
//	  - cat-list       — list categories
//	  - cat-del        — delete a category
//	  - gen            — generate a random password
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		printlnFn(fmt.Sprintf("pv %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: add, (l)ist, show, update, delete, fav, cat, cat-add, cat-list, cat-del, gen, logout, exit")
			} else {
				printlnFn("Available commands: register, login, questions, reset, gen, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "questions":
			_ = a.Questions(ctx)

		case "reset":
			_ = a.Reset(ctx)

		case "add":
			_ = a.Add(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "show":
			_ = a.Show(ctx)

		case "update":
			_ = a.Update(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "fav":
			_ = a.Favorite(ctx)

		case "cat":
			_ = a.SetCategory(ctx)

		case "cat-add":
			_ = a.AddCategory(ctx)

		case "cat-list":
			_ = a.ListCategories(ctx)

		case "cat-del":
			_ = a.DeleteCategory(ctx)

		case "gen":
			_ = a.Generate(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
