package models

import "time"

// SubTaskInput is the inline subtask shape accepted by todo create and
// update requests. On update the provided set replaces the existing one.
type SubTaskInput struct {
	Title     string `json:"title" validate:"required"`
	SortOrder int    `json:"order"`
}

// CreateTodoRequest is the payload of POST /api/v1/todos.
type CreateTodoRequest struct {
	Title             string         `json:"title" validate:"required"`
	Description       *string        `json:"description"`
	CategoryID        *int64         `json:"categoryId"`
	IsImportant       bool           `json:"isImportant"`
	StartDate         *time.Time     `json:"startDate"`
	DueDate           *time.Time     `json:"dueDate"`
	ExecutionTime     *time.Time     `json:"executionTime"`
	RecurrencePattern *string        `json:"recurrencePattern"`
	AudioURL          *string        `json:"audioUrl"`
	ImageURL          *string        `json:"imageUrl"`
	SubTasks          []SubTaskInput `json:"subTasks" validate:"dive"`
}

// UpdateTodoRequest is the payload of PUT /api/v1/todos/{id}. Nil fields are
// left untouched; a non-nil SubTasks slice replaces the current subtask set.
type UpdateTodoRequest struct {
	Title             *string         `json:"title"`
	Description       *string         `json:"description"`
	CategoryID        *int64          `json:"categoryId"`
	IsCompleted       *bool           `json:"isCompleted"`
	IsImportant       *bool           `json:"isImportant"`
	StartDate         *time.Time      `json:"startDate"`
	DueDate           *time.Time      `json:"dueDate"`
	ExecutionTime     *time.Time      `json:"executionTime"`
	RecurrencePattern *string         `json:"recurrencePattern"`
	AudioURL          *string         `json:"audioUrl"`
	ImageURL          *string         `json:"imageUrl"`
	SubTasks          *[]SubTaskInput `json:"subTasks" validate:"omitempty,dive"`
}

// CreateCategoryRequest is the payload of POST /api/v1/categories.
type CreateCategoryRequest struct {
	Name  string  `json:"name" validate:"required"`
	Color *string `json:"color"`
	Icon  *string `json:"icon"`
}

// UpdateCategoryRequest is the payload of PUT /api/v1/categories/{id}.
// Nil fields are left untouched.
type UpdateCategoryRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
	Icon  *string `json:"icon"`
}

// CreateReminderRequest is the payload of POST /api/v1/reminders.
type CreateReminderRequest struct {
	TodoID            *int64    `json:"todoId"`
	Title             string    `json:"title" validate:"required"`
	Description       *string   `json:"description"`
	ReminderTime      time.Time `json:"reminderTime" validate:"required"`
	RecurrencePattern *string   `json:"recurrencePattern"`
}

// UpdateReminderRequest is the payload of PUT /api/v1/reminders/{id}.
// Nil fields are left untouched.
type UpdateReminderRequest struct {
	Title             *string    `json:"title"`
	Description       *string    `json:"description"`
	ReminderTime      *time.Time `json:"reminderTime"`
	IsCompleted       *bool      `json:"isCompleted"`
	IsSnoozed         *bool      `json:"isSnoozed"`
	SnoozeUntil       *time.Time `json:"snoozeUntil"`
	RecurrencePattern *string    `json:"recurrencePattern"`
}
