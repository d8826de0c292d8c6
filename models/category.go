package models

import "time"

// Category is a user-owned grouping label for todos. Soft-deleted, never
// physically removed, so historical todos keep a valid reference.
type Category struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Icon      string    `json:"icon"`
	IsDeleted bool      `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Category model.
func (c Category) TableName() string {
	return "categories"
}

// Default visual attributes applied when a create request omits them.
const (
	DefaultCategoryColor = "#6366f1"
	DefaultCategoryIcon  = "home"
)

// DefaultCategories returns the set of categories seeded for a user at
// registration and on first login. Seeding is idempotent: it is skipped
// whenever the user already owns at least one non-deleted category.
func DefaultCategories(userID int64) []Category {
	return []Category{
		{UserID: userID, Name: "WORK", Color: "#ec4899", Icon: "briefcase"},
		{UserID: userID, Name: "HOME", Color: "#8b5cf6", Icon: "home"},
		{UserID: userID, Name: "PURCHASES", Color: "#f59e0b", Icon: "cart"},
		{UserID: userID, Name: "OTHER", Color: "#f97316", Icon: "help-circle"},
	}
}
