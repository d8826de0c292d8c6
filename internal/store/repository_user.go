package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Elayaraja1609/TodoApplication/internal/logger"
	"github.com/Elayaraja1609/TodoApplication/models"
)

// userRepository is the SQL-backed implementation of [UserRepository]. It
// handles account creation and lookup against the "users" table and owns the
// starter-category seeding that runs inside the same transaction as account
// creation and first login.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new user record and seeds the provided starter
// categories in the same transaction, then returns the user with its
// server-assigned ID.
//
// A unique-constraint violation on the live-email index is mapped to
// [ErrEmailAlreadyExists].
func (r *userRepository) Create(ctx context.Context, user models.User, seed []models.Category) (models.User, error) {
	log := logger.FromContext(ctx)

	err := r.db.WithinTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, createUser,
			user.Email, user.PasswordHash, user.PinHash,
			user.FirstName, user.LastName, user.Role,
			user.CreatedAt, user.UpdatedAt,
		)
		if err := row.Scan(&user.ID); err != nil {
			if isUniqueViolation(err) {
				return ErrEmailAlreadyExists
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return seedCategories(ctx, tx, user.ID, seed)
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Create").Msg("error creating user")
		return models.User{}, err
	}

	return user, nil
}

// FindByEmail retrieves the live user record whose email matches exactly.
// Returns [ErrNoUserWasFound] when no such account exists.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, findUserByEmail, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindByEmail").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// GetByID retrieves the live user record with the given id.
// Returns [ErrNoUserWasFound] when no such account exists.
func (r *userRepository) GetByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, getUserByID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.GetByID").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// RecordLogin updates the user's login statistics as of now. The very first
// login additionally seeds the starter categories, skipped when the user
// already owns a live category. Everything runs in one transaction.
func (r *userRepository) RecordLogin(ctx context.Context, user models.User, now time.Time, seed []models.Category) (models.User, error) {
	log := logger.FromContext(ctx)

	firstLogin := user.FirstLoginAt == nil

	err := r.db.WithinTx(ctx, func(tx *sql.Tx) error {
		if !firstLogin {
			result, err := tx.ExecContext(ctx, recordRepeatLogin, now, user.ID)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			if affected, err := result.RowsAffected(); err == nil && affected == 0 {
				return ErrNoUserWasFound
			}
			return nil
		}

		result, err := tx.ExecContext(ctx, recordFirstLogin, now, user.ID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected, err := result.RowsAffected(); err == nil && affected == 0 {
			return ErrNoUserWasFound
		}

		var liveCategories int
		if err := tx.QueryRowContext(ctx, countLiveCategories, user.ID).Scan(&liveCategories); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if liveCategories > 0 {
			return nil
		}

		return seedCategories(ctx, tx, user.ID, seed)
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.RecordLogin").Msg("error recording login")
		return models.User{}, err
	}

	if firstLogin {
		user.FirstLoginAt = &now
		user.LoginCount = 1
	} else {
		user.LoginCount++
	}
	user.LastLoginAt = &now
	user.UpdatedAt = now

	return user, nil
}

// SetPin stores a new PIN hash for the user.
func (r *userRepository) SetPin(ctx context.Context, userID int64, pinHash string, now time.Time) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, setUserPin, pinHash, now, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetPin").Msg("error updating pin")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// UpdatePreferences overwrites the preference columns of the user and
// returns the refreshed record.
func (r *userRepository) UpdatePreferences(ctx context.Context, userID int64, prefs models.UpdatePreferencesRequest, now time.Time) (models.User, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateUserPreferences,
		prefs.AutoTransferOverdueTasks,
		prefs.DefaultTaskDate,
		prefs.FirstDayOfWeek,
		prefs.EnableNotificationReminders,
		prefs.Theme,
		now, userID,
	)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePreferences").Msg("error updating preferences")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return models.User{}, ErrNoUserWasFound
	}

	return r.GetByID(ctx, userID)
}

// seedCategories inserts the starter categories for a user inside the
// caller's transaction.
func seedCategories(ctx context.Context, tx *sql.Tx, userID int64, seed []models.Category) error {
	for _, category := range seed {
		row := tx.QueryRowContext(ctx, createCategory,
			userID, category.Name, category.Color, category.Icon,
			category.CreatedAt, category.UpdatedAt,
		)
		if err := row.Scan(&category.ID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

// scanUser reads a full user row in the column order shared by
// [findUserByEmail] and [getUserByID].
func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.PinHash,
		&user.FirstName, &user.LastName, &user.Role,
		&user.CreatedAt, &user.UpdatedAt,
		&user.FirstLoginAt, &user.LastLoginAt, &user.LoginCount,
		&user.AutoTransferOverdueTasks, &user.DefaultTaskDate, &user.FirstDayOfWeek,
		&user.EnableNotificationReminders, &user.Theme,
	)
	return user, err
}
