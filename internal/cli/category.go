package cli

import (
	"context"
	"os"
)

// AddCategory creates a category. Adding an existing name is a no-op.
func (a *App) AddCategory(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	name, err := getSimpleText(a.reader, "Category name", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.categoryService.Add(ctx, a.userID, name); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Category saved")
	return nil
}

// ListCategories prints the current user's category names.
func (a *App) ListCategories(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	names, err := a.categoryService.List(ctx, a.userID)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if len(names) == 0 {
		printlnFn("No categories yet")
		return nil
	}

	for _, n := range names {
		printlnFn(n)
	}
	return nil
}

// DeleteCategory removes a category. Entries keep their passwords and only
// lose the label.
func (a *App) DeleteCategory(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	name, err := getSimpleText(a.reader, "Category name", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.categoryService.Delete(ctx, a.userID, name); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Category deleted")
	return nil
}
