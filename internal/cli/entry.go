package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) requireLogin() bool {
	if !a.isLoggedIn() {
		printlnFn("Please log in first")
		return false
	}
	return true
}

// Add prompts for a site and a password and stores a new encrypted entry.
func (a *App) Add(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	site, err := getSimpleText(a.reader, "Site", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getSimpleText(a.reader, "Password to store", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.entryService.Add(ctx, a.userID, site, password, a.masterPassword); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Entry saved")
	return nil
}

// List prints all entries of the current user with decrypted passwords.
// Rows that cannot be decrypted are shown with a marker instead of failing
// the whole listing.
func (a *App) List(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	entries, err := a.entryService.List(ctx, a.userID, a.masterPassword)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if len(entries) == 0 {
		printlnFn("No entries yet")
		return nil
	}

	for _, e := range entries {
		fav := " "
		if e.IsFavorite {
			fav = "*"
		}
		cat := ""
		if e.Category != "" {
			cat = " [" + e.Category + "]"
		}
		printlnFn(fmt.Sprintf("%s %s  %s  %s%s", fav, e.ID, e.Site, e.Password, cat))
	}
	return nil
}

// Show prints a single entry by ID.
func (a *App) Show(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	id, err := getSimpleText(a.reader, "Entry ID", os.Stdout)
	if err != nil {
		return err
	}

	entries, err := a.entryService.List(ctx, a.userID, a.masterPassword)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	for _, e := range entries {
		if e.ID == id {
			printlnFn("Site:", e.Site)
			printlnFn("Password:", e.Password)
			printlnFn("Favorite:", e.IsFavorite)
			if e.Category != "" {
				printlnFn("Category:", e.Category)
			}
			return nil
		}
	}

	printlnFn("Entry not found:", id)
	return nil
}

// Update changes the site and password of an existing entry.
func (a *App) Update(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	id, err := getSimpleText(a.reader, "Entry ID", os.Stdout)
	if err != nil {
		return err
	}
	site, err := getSimpleText(a.reader, "New site", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getSimpleText(a.reader, "New password", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.entryService.Update(ctx, id, site, password, a.masterPassword); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Entry updated")
	return nil
}

// Delete removes an entry by ID.
func (a *App) Delete(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	id, err := getSimpleText(a.reader, "Entry ID", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.entryService.Delete(ctx, id); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Entry deleted")
	return nil
}

// Favorite sets or clears the favorite mark on an entry.
func (a *App) Favorite(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	id, err := getSimpleText(a.reader, "Entry ID", os.Stdout)
	if err != nil {
		return err
	}

	fav, err := GetYesNo(a.reader, "Mark as favorite?", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.entryService.SetFavorite(ctx, id, fav); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Entry updated")
	return nil
}

// SetCategory assigns a category label to an entry, or clears it when the
// user enters an empty name.
func (a *App) SetCategory(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	id, err := getSimpleText(a.reader, "Entry ID", os.Stdout)
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Category (empty to clear)", os.Stdout)
	if err != nil {
		return err
	}

	var category *string
	if name != "" {
		category = &name
		if err := a.categoryService.Add(ctx, a.userID, name); err != nil {
			printlnFn("Error:", err.Error())
			return err
		}
	}

	if err := a.entryService.SetCategory(ctx, id, category); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Entry updated")
	return nil
}
