package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Elayaraja1609/TodoApplication/internal/logger"
	"github.com/Elayaraja1609/TodoApplication/models"
)

// reminderRepository is the SQL-backed implementation of
// [ReminderRepository]. Beyond the owner-scoped CRUD it serves the dispatch
// worker: ListDue joins the owner attributes needed for a push payload, and
// Advance moves a dispatched reminder to its next trigger time.
type reminderRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewReminderRepository constructs a [ReminderRepository] backed by the
// provided database connection and logger.
func NewReminderRepository(db *DB, logger *logger.Logger) ReminderRepository {
	logger.Debug().Msg("creating reminder repository")
	return &reminderRepository{
		db:     db,
		logger: logger,
	}
}

// ListByUser returns every live reminder of the user ordered by trigger time.
func (r *reminderRepository) ListByUser(ctx context.Context, userID int64) ([]models.Reminder, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRemindersByUserQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*reminderRepository.ListByUser").Msg("error querying reminders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	defer rows.Close()

	reminders := make([]models.Reminder, 0)
	for rows.Next() {
		reminder, err := scanReminder(rows)
		if err != nil {
			log.Err(err).Str("func", "*reminderRepository.ListByUser").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		reminders = append(reminders, reminder)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return reminders, nil
}

// GetByID retrieves a single live reminder scoped to its owner.
func (r *reminderRepository) GetByID(ctx context.Context, reminderID int64, userID int64) (models.Reminder, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectReminderByIDQuery(reminderID, userID)
	if err != nil {
		return models.Reminder{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*reminderRepository.GetByID").Msg("error querying reminder")
		return models.Reminder{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return models.Reminder{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		return models.Reminder{}, ErrNotFound
	}

	reminder, err := scanReminder(rows)
	if err != nil {
		log.Err(err).Str("func", "*reminderRepository.GetByID").Msg("error: scanning error")
		return models.Reminder{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return reminder, nil
}

// Create inserts a new reminder and returns it with its server-assigned ID.
func (r *reminderRepository) Create(ctx context.Context, reminder models.Reminder) (models.Reminder, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createReminder,
		reminder.UserID, reminder.TodoID, reminder.Title, reminder.Description,
		reminder.ReminderTime, reminder.IsCompleted,
		reminder.IsSnoozed, reminder.SnoozeUntil,
		reminder.RecurrencePattern, reminder.NextReminderTime,
		reminder.CreatedAt, reminder.UpdatedAt,
	)
	if err := row.Scan(&reminder.ID); err != nil {
		log.Err(err).Str("func", "*reminderRepository.Create").Msg("error creating reminder")
		return models.Reminder{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return reminder, nil
}

// Save overwrites the mutable columns of the reminder.
func (r *reminderRepository) Save(ctx context.Context, reminder models.Reminder) (models.Reminder, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, saveReminder,
		reminder.TodoID, reminder.Title, reminder.Description,
		reminder.ReminderTime, reminder.IsCompleted,
		reminder.IsSnoozed, reminder.SnoozeUntil,
		reminder.RecurrencePattern, reminder.NextReminderTime,
		reminder.UpdatedAt,
		reminder.ID, reminder.UserID,
	)
	if err != nil {
		log.Err(err).Str("func", "*reminderRepository.Save").Msg("error updating reminder")
		return models.Reminder{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return models.Reminder{}, ErrNotFound
	}

	return reminder, nil
}

// SoftDelete marks the reminder deleted.
func (r *reminderRepository) SoftDelete(ctx context.Context, reminderID int64, userID int64, now time.Time) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, softDeleteReminder, now, reminderID, userID)
	if err != nil {
		log.Err(err).Str("func", "*reminderRepository.SoftDelete").Msg("error deleting reminder")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}

	return nil
}

// ListDue returns every uncompleted reminder whose trigger time has passed as
// of now, each joined with the owner's email and notification preference.
func (r *reminderRepository) ListDue(ctx context.Context, now time.Time) ([]models.DueReminder, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectDueRemindersQuery(now)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*reminderRepository.ListDue").Msg("error querying due reminders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	defer rows.Close()

	due := make([]models.DueReminder, 0)
	for rows.Next() {
		var item models.DueReminder
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.TodoID, &item.TodoTitle,
			&item.Title, &item.Description, &item.ReminderTime,
			&item.IsCompleted, &item.IsSnoozed, &item.SnoozeUntil,
			&item.RecurrencePattern, &item.NextReminderTime,
			&item.CreatedAt, &item.UpdatedAt,
			&item.UserEmail, &item.NotificationsEnabled,
		); err != nil {
			log.Err(err).Str("func", "*reminderRepository.ListDue").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		due = append(due, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return due, nil
}

// Advance moves a dispatched recurring reminder to its next trigger time,
// stores the precomputed trigger after that one and clears any snooze state.
// A nil next marks the reminder completed instead.
func (r *reminderRepository) Advance(ctx context.Context, reminderID int64, next, upcoming *time.Time, now time.Time) error {
	log := logger.FromContext(ctx)

	var err error
	if next != nil {
		_, err = r.db.ExecContext(ctx, advanceReminder, *next, upcoming, now, reminderID)
	} else {
		_, err = r.db.ExecContext(ctx, completeReminder, now, reminderID)
	}
	if err != nil {
		log.Err(err).Str("func", "*reminderRepository.Advance").Msg("error advancing reminder")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// scanReminder reads one joined reminder row in the [reminderColumns] order.
func scanReminder(rows *sql.Rows) (models.Reminder, error) {
	var reminder models.Reminder
	err := rows.Scan(
		&reminder.ID, &reminder.UserID, &reminder.TodoID, &reminder.TodoTitle,
		&reminder.Title, &reminder.Description, &reminder.ReminderTime,
		&reminder.IsCompleted, &reminder.IsSnoozed, &reminder.SnoozeUntil,
		&reminder.RecurrencePattern, &reminder.NextReminderTime,
		&reminder.CreatedAt, &reminder.UpdatedAt,
	)
	return reminder, err
}
