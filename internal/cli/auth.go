package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for a username, a master password and three
// security question/answer pairs, and attempts to create a new account.
//
// On success it prints "Success!" and returns nil. The password byte slice
// is securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter master password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	var questions [3]services.QuestionAnswer
	for i := range questions {
		q, err := getSimpleText(a.reader, fmt.Sprintf("Security question %d", i+1), os.Stdout)
		if err != nil {
			return err
		}
		ans, err := getSimpleText(a.reader, fmt.Sprintf("Answer %d", i+1), os.Stdout)
		if err != nil {
			return err
		}
		questions[i] = services.QuestionAnswer{Question: q, Answer: ans}
	}

	if err := a.accountService.Register(ctx, userName, string(password), questions); err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn("Success!")
	return nil
}

// Login prompts the user for credentials and tries to authenticate. On
// success the session keeps the username and master password in memory so
// that entry operations can unwrap the vault key.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter master password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	userID, err := a.accountService.Authenticate(ctx, userName, string(password))
	if err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	a.startSession(userID, userName, string(password))
	printlnFn("Logged in as", userName)
	return nil
}

// Logout clears the in-memory session, including the master password.
func (a *App) Logout(ctx context.Context) error {
	a.endSession()
	printlnFn("Logged out")
	return nil
}

// Questions looks up a username and prints its three security questions.
// Available without a session so a locked-out user can start recovery.
func (a *App) Questions(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	sq, err := a.accountService.SecurityQuestions(ctx, userName)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("1.", sq.Question1)
	printlnFn("2.", sq.Question2)
	printlnFn("3.", sq.Question3)
	return nil
}

// Reset performs the forgotten-password flow: it shows the user's security
// questions, collects one answer and a new master password, and resets the
// password while re-wrapping the vault key. Stored entries stay readable.
func (a *App) Reset(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	sq, err := a.accountService.SecurityQuestions(ctx, userName)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Answer any one of your security questions:")
	printlnFn("1.", sq.Question1)
	printlnFn("2.", sq.Question2)
	printlnFn("3.", sq.Question3)

	answer, err := getSimpleText(a.reader, "Answer", os.Stdout)
	if err != nil {
		return err
	}

	newPassword, err := getPassword("Enter new master password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)

	if err := a.accountService.ResetPassword(ctx, userName, string(newPassword), answer); err != nil {
		printlnFn("Reset failed:", err.Error())
		return err
	}

	printlnFn("Password reset. Log in with your new password.")
	return nil
}
