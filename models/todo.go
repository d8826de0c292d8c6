package models

import "time"

// Todo is the central task entity. Every todo belongs to exactly one user,
// optionally references one of that user's categories, and owns zero or more
// subtasks. Deletion is always soft.
type Todo struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"-"`

	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`

	// CategoryID is a nullable reference to a category owned by the same
	// user. CategoryName is populated from a join on read paths and is
	// never written directly.
	CategoryID   *int64  `json:"categoryId,omitempty"`
	CategoryName *string `json:"categoryName,omitempty"`

	IsCompleted bool `json:"isCompleted"`
	IsImportant bool `json:"isImportant"`

	StartDate     *time.Time `json:"startDate,omitempty"`
	DueDate       *time.Time `json:"dueDate,omitempty"`
	ExecutionTime *time.Time `json:"executionTime,omitempty"`

	// RecurrencePattern is one of "daily", "weekly", "monthly" or "custom"
	// (compared case-insensitively). NextOccurrence is computed from the
	// pattern and start date; "custom" and unrecognized labels yield no
	// computed occurrence.
	RecurrencePattern *string    `json:"recurrencePattern,omitempty"`
	NextOccurrence    *time.Time `json:"nextOccurrence,omitempty"`

	AudioURL *string `json:"audioUrl,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`

	IsDeleted bool      `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// SubTasks holds the live (non-deleted) subtasks ordered by SortOrder.
	SubTasks []SubTask `json:"subTasks"`
}

// TableName returns the name of the database table
// associated with the Todo model.
func (t Todo) TableName() string {
	return "todos"
}
