package store

import (
	"context"
	"time"

	"github.com/Elayaraja1609/TodoApplication/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_store.go -package=mock

// UserRepository persists user accounts together with their credential
// hashes, login statistics and preference fields.
type UserRepository interface {
	// Create inserts a new user and, in the same transaction, seeds the
	// provided starter categories. Returns [ErrEmailAlreadyExists] when a
	// live account with the same email exists.
	Create(ctx context.Context, user models.User, seed []models.Category) (models.User, error)

	// FindByEmail looks up a live user by exact email match.
	FindByEmail(ctx context.Context, email string) (models.User, error)

	// GetByID looks up a live user by id.
	GetByID(ctx context.Context, userID int64) (models.User, error)

	// RecordLogin updates the login statistics of the given user as of now.
	// On the very first login it also seeds the starter categories unless
	// the user already owns a live category.
	RecordLogin(ctx context.Context, user models.User, now time.Time, seed []models.Category) (models.User, error)

	// SetPin stores a new PIN hash for the user.
	SetPin(ctx context.Context, userID int64, pinHash string, now time.Time) error

	// UpdatePreferences overwrites the preference fields of the user and
	// returns the updated record.
	UpdatePreferences(ctx context.Context, userID int64, prefs models.UpdatePreferencesRequest, now time.Time) (models.User, error)
}

// CategoryRepository persists user-owned todo categories. Every read and
// write is scoped to the owning user; rows of other users and soft-deleted
// rows surface as [ErrNotFound].
type CategoryRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]models.Category, error)
	GetByID(ctx context.Context, categoryID int64, userID int64) (models.Category, error)
	Create(ctx context.Context, category models.Category) (models.Category, error)
	Save(ctx context.Context, category models.Category) (models.Category, error)
	SoftDelete(ctx context.Context, categoryID int64, userID int64, now time.Time) error
}

// TodoRepository persists todos and their subtasks. Subtasks are always
// written through their owning todo and inherit its ownership scope.
type TodoRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]models.Todo, error)
	GetByID(ctx context.Context, todoID int64, userID int64) (models.Todo, error)

	// Create inserts the todo together with todo.SubTasks in one transaction.
	Create(ctx context.Context, todo models.Todo) (models.Todo, error)

	// Save overwrites the mutable columns of the todo. When replaceSubTasks
	// is set the live subtasks are soft-deleted and todo.SubTasks inserted
	// in their place, all within one transaction.
	Save(ctx context.Context, todo models.Todo, replaceSubTasks bool) (models.Todo, error)

	SoftDelete(ctx context.Context, todoID int64, userID int64, now time.Time) error
}

// ReminderRepository persists reminders and serves the dispatch worker.
type ReminderRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]models.Reminder, error)
	GetByID(ctx context.Context, reminderID int64, userID int64) (models.Reminder, error)
	Create(ctx context.Context, reminder models.Reminder) (models.Reminder, error)
	Save(ctx context.Context, reminder models.Reminder) (models.Reminder, error)
	SoftDelete(ctx context.Context, reminderID int64, userID int64, now time.Time) error

	// ListDue returns every live, uncompleted reminder whose trigger time has
	// passed as of now, skipping reminders snoozed into the future.
	ListDue(ctx context.Context, now time.Time) ([]models.DueReminder, error)

	// Advance moves a dispatched recurring reminder to its next trigger
	// time, storing the precomputed trigger after that one, or marks a
	// non-recurring reminder completed when next is nil.
	Advance(ctx context.Context, reminderID int64, next, upcoming *time.Time, now time.Time) error
}
