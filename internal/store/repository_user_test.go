package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Elayaraja1609/TodoApplication/internal/logger"
	"github.com/Elayaraja1609/TodoApplication/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userRows(user models.User) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "email", "password_hash", "pin_hash", "first_name", "last_name", "role",
		"created_at", "updated_at", "first_login_at", "last_login_at", "login_count",
		"auto_transfer_overdue_tasks", "default_task_date", "first_day_of_week",
		"enable_notification_reminders", "theme",
	}).AddRow(
		user.ID, user.Email, user.PasswordHash, user.PinHash, user.FirstName, user.LastName, user.Role,
		user.CreatedAt, user.UpdatedAt, user.FirstLoginAt, user.LastLoginAt, user.LoginCount,
		user.AutoTransferOverdueTasks, user.DefaultTaskDate, user.FirstDayOfWeek,
		user.EnableNotificationReminders, user.Theme,
	)
}

func TestCreateUser_SeedsCategories(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	user := models.User{
		Email:        "john@example.com",
		PasswordHash: "hash",
		FirstName:    "John",
		Role:         "User",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	seed := models.DefaultCategories(0)
	for i := range seed {
		seed[i].CreatedAt = now
		seed[i].UpdatedAt = now
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Email, user.PasswordHash, user.PinHash, user.FirstName, user.LastName, user.Role, now, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	for i := range seed {
		mock.ExpectQuery("INSERT INTO categories").
			WithArgs(int64(1), seed[i].Name, seed[i].Color, seed[i].Icon, now, now).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(i + 1)))
	}
	mock.ExpectCommit()

	created, err := repo.Create(ctx, user, seed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateUser_EmailAlreadyExists(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Email: "john@example.com"}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectRollback()

	_, err := repo.Create(ctx, user, nil)
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	stored := models.User{
		ID:           7,
		Email:        "jane@example.com",
		PasswordHash: "hash",
		Role:         "User",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(stored.Email).
		WillReturnRows(userRows(stored))

	found, err := repo.FindByEmail(ctx, stored.Email)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != stored.ID {
		t.Errorf("expected ID=%d, got %d", stored.ID, found.ID)
	}
	if found.Email != stored.Email {
		t.Errorf("expected email %s, got %s", stored.Email, found.Email)
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("missing@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmail(ctx, "missing@example.com")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestRecordLogin_FirstLoginSeedsCategories(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	user := models.User{ID: 3, Email: "john@example.com"}
	seed := models.DefaultCategories(user.ID)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE users").
		WithArgs(now, user.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT COUNT").
		WithArgs(user.ID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	for i := range seed {
		mock.ExpectQuery("INSERT INTO categories").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(i + 1)))
	}
	mock.ExpectCommit()

	updated, err := repo.RecordLogin(ctx, user, now, seed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.FirstLoginAt == nil || !updated.FirstLoginAt.Equal(now) {
		t.Errorf("expected FirstLoginAt to be set to now, got %v", updated.FirstLoginAt)
	}
	if updated.LoginCount != 1 {
		t.Errorf("expected LoginCount=1, got %d", updated.LoginCount)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRecordLogin_FirstLoginSkipsSeedingWhenCategoriesExist(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	user := models.User{ID: 3}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE users").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT COUNT").
		WithArgs(user.ID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectCommit()

	if _, err := repo.RecordLogin(ctx, user, now, models.DefaultCategories(user.ID)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRecordLogin_RepeatLogin(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	first := now.Add(-24 * time.Hour)
	user := models.User{ID: 3, FirstLoginAt: &first, LoginCount: 5}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE users").
		WithArgs(now, user.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	updated, err := repo.RecordLogin(ctx, user, now, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.LoginCount != 6 {
		t.Errorf("expected LoginCount=6, got %d", updated.LoginCount)
	}
	if updated.LastLoginAt == nil || !updated.LastLoginAt.Equal(now) {
		t.Errorf("expected LastLoginAt to be refreshed, got %v", updated.LastLoginAt)
	}
}

func TestRecordLogin_RepeatLoginNoLiveUser(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	first := now.Add(-24 * time.Hour)
	user := models.User{ID: 3, FirstLoginAt: &first, LoginCount: 5}

	// The account was soft-deleted after authentication: the UPDATE matches
	// no live row and the login must not be recorded.
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE users").
		WithArgs(now, user.ID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.RecordLogin(ctx, user, now, nil)
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSetPin_NoUser(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	mock.ExpectExec("UPDATE users").
		WithArgs("pin-hash", now, int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetPin(ctx, 99, "pin-hash", now)
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestUpdatePreferences_ReturnsRefreshedUser(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	theme := "dark"
	prefs := models.UpdatePreferencesRequest{
		AutoTransferOverdueTasks: true,
		Theme:                    &theme,
	}
	stored := models.User{ID: 5, Email: "jane@example.com", Theme: &theme, AutoTransferOverdueTasks: true, CreatedAt: now, UpdatedAt: now}

	mock.ExpectExec("UPDATE users").
		WithArgs(prefs.AutoTransferOverdueTasks, prefs.DefaultTaskDate, prefs.FirstDayOfWeek, prefs.EnableNotificationReminders, prefs.Theme, now, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(int64(5)).
		WillReturnRows(userRows(stored))

	updated, err := repo.UpdatePreferences(ctx, 5, prefs, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Theme == nil || *updated.Theme != theme {
		t.Errorf("expected theme %q, got %v", theme, updated.Theme)
	}
}
