package cli

import (
	"context"
	"os"
	"strconv"

	"github.com/dmitrijs2005/passvault/internal/cryptox"
)

// Generate prompts for password options and prints a random password.
// Works without a session so it can be used before registering.
func (a *App) Generate(ctx context.Context) error {
	lengthText, err := getSimpleText(a.reader, "Length", os.Stdout)
	if err != nil {
		return err
	}
	length, err := strconv.Atoi(lengthText)
	if err != nil {
		printlnFn("Error: length must be a number")
		return err
	}

	upper, err := GetYesNo(a.reader, "Include uppercase?", os.Stdout)
	if err != nil {
		return err
	}
	lower, err := GetYesNo(a.reader, "Include lowercase?", os.Stdout)
	if err != nil {
		return err
	}
	digits, err := GetYesNo(a.reader, "Include digits?", os.Stdout)
	if err != nil {
		return err
	}
	symbols, err := GetYesNo(a.reader, "Include symbols?", os.Stdout)
	if err != nil {
		return err
	}

	password, err := cryptox.GeneratePassword(cryptox.PasswordOptions{
		Length:    length,
		Uppercase: upper,
		Lowercase: lower,
		Digits:    digits,
		Symbols:   symbols,
	})
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(password)
	return nil
}
