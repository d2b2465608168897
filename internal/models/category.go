package models

// Category groups entries by name. Names are unique per user; entries
// reference categories by name, not by id.
type Category struct {
	ID     string
	UserID string
	Name   string
}
