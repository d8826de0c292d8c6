package models

import "time"

// Reminder is a user-owned notification entry, optionally attached to a
// todo. NextReminderTime is precomputed from the recurrence pattern so that
// the dispatch worker only has to compare timestamps.
type Reminder struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"-"`

	// TodoID optionally attaches the reminder to one of the user's todos.
	// TodoTitle is populated from a join on read paths.
	TodoID    *int64  `json:"todoId,omitempty"`
	TodoTitle *string `json:"todoTitle,omitempty"`

	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`

	ReminderTime time.Time `json:"reminderTime"`

	IsCompleted bool       `json:"isCompleted"`
	IsSnoozed   bool       `json:"isSnoozed"`
	SnoozeUntil *time.Time `json:"snoozeUntil,omitempty"`

	RecurrencePattern *string    `json:"recurrencePattern,omitempty"`
	NextReminderTime  *time.Time `json:"nextReminderTime,omitempty"`

	IsDeleted bool      `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Reminder model.
func (r Reminder) TableName() string {
	return "reminders"
}

// DueReminder is the dispatch-worker projection of a due reminder: the
// reminder itself plus the owner attributes needed to build a push payload.
type DueReminder struct {
	Reminder

	UserEmail            string
	NotificationsEnabled bool
}
