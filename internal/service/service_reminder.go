package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Elayaraja1609/TodoApplication/internal/adapter"
	"github.com/Elayaraja1609/TodoApplication/internal/logger"
	"github.com/Elayaraja1609/TodoApplication/internal/store"
	"github.com/Elayaraja1609/TodoApplication/models"
)

// reminderService is the concrete implementation of ReminderService. It
// combines the owner-scoped CRUD with the due-reminder dispatch run by the
// background worker.
type reminderService struct {
	reminderRepository store.ReminderRepository
	pushSender         adapter.PushSender
	logger             *logger.Logger
}

// NewReminderService constructs a ReminderService backed by the given
// repository and push sender.
func NewReminderService(reminderRepository store.ReminderRepository, pushSender adapter.PushSender, logger *logger.Logger) ReminderService {
	return &reminderService{
		reminderRepository: reminderRepository,
		pushSender:         pushSender,
		logger:             logger,
	}
}

// List returns every live reminder of the user ordered by trigger time.
func (s *reminderService) List(ctx context.Context, userID int64) ([]models.Reminder, error) {
	log := logger.FromContext(ctx)

	reminders, err := s.reminderRepository.ListByUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("listing reminders failed")
		return nil, fmt.Errorf("listing reminders failed: %w", err)
	}

	return reminders, nil
}

// Get returns a single reminder of the user.
func (s *reminderService) Get(ctx context.Context, userID, reminderID int64) (models.Reminder, error) {
	return s.reminderRepository.GetByID(ctx, reminderID, userID)
}

// Create persists a new reminder. When a recurrence pattern is supplied, the
// next trigger is precomputed from the reminder time.
func (s *reminderService) Create(ctx context.Context, userID int64, request models.CreateReminderRequest) (models.Reminder, error) {
	log := logger.FromContext(ctx)

	if request.Title == "" || request.ReminderTime.IsZero() {
		return models.Reminder{}, ErrInvalidDataProvided
	}

	now := time.Now()
	reminder := models.Reminder{
		UserID:            userID,
		TodoID:            request.TodoID,
		Title:             request.Title,
		Description:       request.Description,
		ReminderTime:      request.ReminderTime,
		RecurrencePattern: request.RecurrencePattern,
		NextReminderTime:  nextOccurrenceOf(request.RecurrencePattern, request.ReminderTime),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := s.reminderRepository.Create(ctx, reminder)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("creating reminder failed")
		return models.Reminder{}, fmt.Errorf("creating reminder failed: %w", err)
	}

	return created, nil
}

// Update applies the non-nil fields of the request to the stored reminder.
// The next trigger is recomputed whenever the pattern or the trigger time
// changes.
func (s *reminderService) Update(ctx context.Context, userID, reminderID int64, request models.UpdateReminderRequest) (models.Reminder, error) {
	log := logger.FromContext(ctx)

	reminder, err := s.reminderRepository.GetByID(ctx, reminderID, userID)
	if err != nil {
		return models.Reminder{}, err
	}

	recompute := false

	if request.Title != nil {
		reminder.Title = *request.Title
	}
	if request.Description != nil {
		reminder.Description = request.Description
	}
	if request.ReminderTime != nil {
		reminder.ReminderTime = *request.ReminderTime
		recompute = true
	}
	if request.IsCompleted != nil {
		reminder.IsCompleted = *request.IsCompleted
	}
	if request.IsSnoozed != nil {
		reminder.IsSnoozed = *request.IsSnoozed
		if !reminder.IsSnoozed {
			reminder.SnoozeUntil = nil
		}
	}
	if request.SnoozeUntil != nil {
		reminder.SnoozeUntil = request.SnoozeUntil
	}
	if request.RecurrencePattern != nil {
		reminder.RecurrencePattern = request.RecurrencePattern
		recompute = true
	}

	if recompute {
		reminder.NextReminderTime = nextOccurrenceOf(reminder.RecurrencePattern, reminder.ReminderTime)
	}
	reminder.UpdatedAt = time.Now()

	saved, err := s.reminderRepository.Save(ctx, reminder)
	if err != nil {
		log.Err(err).Int64("userID", userID).Int64("reminderID", reminderID).Msg("updating reminder failed")
		return models.Reminder{}, err
	}

	return saved, nil
}

// Delete soft-deletes the reminder.
func (s *reminderService) Delete(ctx context.Context, userID, reminderID int64) error {
	return s.reminderRepository.SoftDelete(ctx, reminderID, userID, time.Now())
}

// DispatchDue pushes every due reminder to its owner and advances each one:
// recurring reminders move to their next trigger time, non-recurring ones are
// marked completed. Owners who disabled notifications are advanced without a
// push. A failed delivery skips advancing, so the reminder is retried on the
// next scan. Returns the number of notifications handed to the sender.
func (s *reminderService) DispatchDue(ctx context.Context, now time.Time) (int, error) {
	log := logger.FromContext(ctx)

	due, err := s.reminderRepository.ListDue(ctx, now)
	if err != nil {
		log.Err(err).Msg("listing due reminders failed")
		return 0, fmt.Errorf("listing due reminders failed: %w", err)
	}

	dispatched := 0
	for _, item := range due {
		if item.NotificationsEnabled {
			if err := s.pushSender.Send(ctx, duePayload(item)); err != nil {
				log.Err(err).Int64("reminderID", item.ID).Msg("push delivery failed")
				continue
			}
			dispatched++
		}

		next := nextOccurrenceOf(item.RecurrencePattern, item.ReminderTime)
		var upcoming *time.Time
		if next != nil {
			upcoming = nextOccurrenceOf(item.RecurrencePattern, *next)
		}

		if err := s.reminderRepository.Advance(ctx, item.ID, next, upcoming, now); err != nil {
			log.Err(err).Int64("reminderID", item.ID).Msg("advancing reminder failed")
		}
	}

	return dispatched, nil
}

// duePayload shapes the push notification for one due reminder.
func duePayload(item models.DueReminder) models.PushNotification {
	body := item.Title
	if item.Description != nil && *item.Description != "" {
		body = *item.Description
	}

	data := map[string]string{
		"reminderId": fmt.Sprintf("%d", item.ID),
	}
	if item.TodoID != nil {
		data["todoId"] = fmt.Sprintf("%d", *item.TodoID)
	}
	if item.TodoTitle != nil {
		data["todoTitle"] = *item.TodoTitle
	}

	return models.PushNotification{
		To:    item.UserEmail,
		Title: item.Title,
		Body:  body,
		Data:  data,
	}
}
