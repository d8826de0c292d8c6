package models

import "time"

// SubTask is a checklist item owned by a single todo. Subtasks are scoped to
// their todo: ownership checks always go through the owning todo's user.
type SubTask struct {
	ID          int64     `json:"id"`
	TodoID      int64     `json:"-"`
	Title       string    `json:"title"`
	IsCompleted bool      `json:"isCompleted"`
	SortOrder   int       `json:"order"`
	IsDeleted   bool      `json:"-"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the SubTask model.
func (s SubTask) TableName() string {
	return "subtasks"
}
