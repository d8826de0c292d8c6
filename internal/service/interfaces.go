package service

import (
	"context"
	"time"

	"github.com/Elayaraja1609/TodoApplication/models"
)

// AuthService owns the account lifecycle: registration, login, token
// refresh and the app-unlock PIN flow.
type AuthService interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.AuthSession, error)
	Login(ctx context.Context, request models.LoginRequest) (models.AuthSession, error)

	// Refresh exchanges an expired (but genuinely issued) access token for
	// a fresh session.
	Refresh(ctx context.Context, request models.RefreshRequest) (models.AuthSession, error)

	// ParseToken validates a raw access token on the request path.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	SetupPin(ctx context.Context, userID int64, request models.SetupPinRequest) error

	// VerifyPin reports whether the presented PIN matches the stored one.
	// A missing user or unset PIN yields false without error.
	VerifyPin(ctx context.Context, userID int64, request models.VerifyPinRequest) (bool, error)

	ChangePin(ctx context.Context, userID int64, request models.ChangePinRequest) error
	HasPin(ctx context.Context, userID int64) (bool, error)
}

// TodoService owns the task CRUD, always scoped to the authenticated user.
type TodoService interface {
	List(ctx context.Context, userID int64) ([]models.Todo, error)
	Get(ctx context.Context, userID, todoID int64) (models.Todo, error)
	Create(ctx context.Context, userID int64, request models.CreateTodoRequest) (models.Todo, error)
	Update(ctx context.Context, userID, todoID int64, request models.UpdateTodoRequest) (models.Todo, error)
	Delete(ctx context.Context, userID, todoID int64) error
	ToggleComplete(ctx context.Context, userID, todoID int64) (models.Todo, error)
}

// CategoryService owns the category CRUD, scoped to the authenticated user.
type CategoryService interface {
	List(ctx context.Context, userID int64) ([]models.Category, error)
	Get(ctx context.Context, userID, categoryID int64) (models.Category, error)
	Create(ctx context.Context, userID int64, request models.CreateCategoryRequest) (models.Category, error)
	Update(ctx context.Context, userID, categoryID int64, request models.UpdateCategoryRequest) (models.Category, error)
	Delete(ctx context.Context, userID, categoryID int64) error
}

// ReminderService owns the reminder CRUD and the due-reminder dispatch used
// by the background worker.
type ReminderService interface {
	List(ctx context.Context, userID int64) ([]models.Reminder, error)
	Get(ctx context.Context, userID, reminderID int64) (models.Reminder, error)
	Create(ctx context.Context, userID int64, request models.CreateReminderRequest) (models.Reminder, error)
	Update(ctx context.Context, userID, reminderID int64, request models.UpdateReminderRequest) (models.Reminder, error)
	Delete(ctx context.Context, userID, reminderID int64) error

	// DispatchDue pushes every due reminder to its owner and advances (or
	// completes) each one. Returns the number dispatched.
	DispatchDue(ctx context.Context, now time.Time) (int, error)
}

// PreferencesService reads and writes the per-user preference fields.
type PreferencesService interface {
	Get(ctx context.Context, userID int64) (models.UserPreferences, error)
	Update(ctx context.Context, userID int64, request models.UpdatePreferencesRequest) (models.UserPreferences, error)
}
