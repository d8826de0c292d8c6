package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Elayaraja1609/TodoApplication/internal/logger"
	"github.com/Elayaraja1609/TodoApplication/internal/mock"
	"github.com/Elayaraja1609/TodoApplication/internal/store"
	"github.com/Elayaraja1609/TodoApplication/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestReminderService(t *testing.T) (ReminderService, *mock.MockReminderRepository, *mock.MockPushSender) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockReminderRepository(ctrl)
	sender := mock.NewMockPushSender(ctrl)

	return NewReminderService(repo, sender, logger.Nop()), repo, sender
}

func dueReminder(id int64, pattern *string, reminderTime time.Time) models.DueReminder {
	return models.DueReminder{
		Reminder: models.Reminder{
			ID:                id,
			UserID:            9,
			Title:             "stand-up",
			ReminderTime:      reminderTime,
			RecurrencePattern: pattern,
		},
		UserEmail:            "owner@example.com",
		NotificationsEnabled: true,
	}
}

// ─────────────────────────────────────────────
// Create / Update
// ─────────────────────────────────────────────

func TestReminderService_Create_PrecomputesNextTrigger(t *testing.T) {
	svc, repo, _ := newTestReminderService(t)

	reminderTime := time.Date(2025, 4, 1, 8, 30, 0, 0, time.UTC)
	pattern := "daily"

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, reminder models.Reminder) (models.Reminder, error) {
			assert.Equal(t, int64(9), reminder.UserID)
			require.NotNil(t, reminder.NextReminderTime)
			assert.True(t, reminder.NextReminderTime.Equal(reminderTime.AddDate(0, 0, 1)))
			reminder.ID = 3
			return reminder, nil
		})

	created, err := svc.Create(context.Background(), 9, models.CreateReminderRequest{
		Title:             "stand-up",
		ReminderTime:      reminderTime,
		RecurrencePattern: &pattern,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)
}

func TestReminderService_Create_RequiresTitleAndTime(t *testing.T) {
	svc, _, _ := newTestReminderService(t)

	_, err := svc.Create(context.Background(), 9, models.CreateReminderRequest{Title: "no time"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Create(context.Background(), 9, models.CreateReminderRequest{ReminderTime: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestReminderService_Update_UnsnoozingClearsSnoozeUntil(t *testing.T) {
	svc, repo, _ := newTestReminderService(t)

	snoozeUntil := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	stored := models.Reminder{
		ID:           3,
		UserID:       9,
		Title:        "stand-up",
		ReminderTime: time.Date(2025, 4, 1, 8, 30, 0, 0, time.UTC),
		IsSnoozed:    true,
		SnoozeUntil:  &snoozeUntil,
	}
	unsnoozed := false

	repo.EXPECT().GetByID(gomock.Any(), int64(3), int64(9)).Return(stored, nil)
	repo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, reminder models.Reminder) (models.Reminder, error) {
			assert.False(t, reminder.IsSnoozed)
			assert.Nil(t, reminder.SnoozeUntil)
			return reminder, nil
		})

	_, err := svc.Update(context.Background(), 9, 3, models.UpdateReminderRequest{IsSnoozed: &unsnoozed})
	require.NoError(t, err)
}

func TestReminderService_Update_RecomputesTriggerOnTimeChange(t *testing.T) {
	svc, repo, _ := newTestReminderService(t)

	pattern := "weekly"
	stored := models.Reminder{
		ID:                3,
		UserID:            9,
		Title:             "stand-up",
		ReminderTime:      time.Date(2025, 4, 1, 8, 30, 0, 0, time.UTC),
		RecurrencePattern: &pattern,
	}
	newTime := time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)

	repo.EXPECT().GetByID(gomock.Any(), int64(3), int64(9)).Return(stored, nil)
	repo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, reminder models.Reminder) (models.Reminder, error) {
			require.NotNil(t, reminder.NextReminderTime)
			assert.True(t, reminder.NextReminderTime.Equal(newTime.AddDate(0, 0, 7)))
			return reminder, nil
		})

	_, err := svc.Update(context.Background(), 9, 3, models.UpdateReminderRequest{ReminderTime: &newTime})
	require.NoError(t, err)
}

func TestReminderService_Update_NotFoundPassesThrough(t *testing.T) {
	svc, repo, _ := newTestReminderService(t)

	repo.EXPECT().GetByID(gomock.Any(), int64(3), int64(9)).Return(models.Reminder{}, store.ErrNotFound)

	_, err := svc.Update(context.Background(), 9, 3, models.UpdateReminderRequest{})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

// ─────────────────────────────────────────────
// DispatchDue
// ─────────────────────────────────────────────

func TestDispatchDue_RecurringAdvancesToNextTrigger(t *testing.T) {
	svc, repo, sender := newTestReminderService(t)

	now := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	reminderTime := time.Date(2025, 4, 1, 8, 30, 0, 0, time.UTC)
	pattern := "daily"
	item := dueReminder(3, &pattern, reminderTime)

	next := reminderTime.AddDate(0, 0, 1)
	upcoming := next.AddDate(0, 0, 1)

	repo.EXPECT().ListDue(gomock.Any(), now).Return([]models.DueReminder{item}, nil)
	sender.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, notification models.PushNotification) error {
			assert.Equal(t, "owner@example.com", notification.To)
			assert.Equal(t, "stand-up", notification.Title)
			assert.Equal(t, "3", notification.Data["reminderId"])
			return nil
		})
	repo.EXPECT().
		Advance(gomock.Any(), int64(3), gomock.Any(), gomock.Any(), now).
		DoAndReturn(func(_ context.Context, _ int64, gotNext, gotUpcoming *time.Time, _ time.Time) error {
			require.NotNil(t, gotNext)
			require.NotNil(t, gotUpcoming)
			assert.True(t, gotNext.Equal(next))
			assert.True(t, gotUpcoming.Equal(upcoming))
			return nil
		})

	dispatched, err := svc.DispatchDue(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, dispatched)
}

func TestDispatchDue_NonRecurringCompletes(t *testing.T) {
	svc, repo, sender := newTestReminderService(t)

	now := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	item := dueReminder(3, nil, now.Add(-30*time.Minute))

	repo.EXPECT().ListDue(gomock.Any(), now).Return([]models.DueReminder{item}, nil)
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().Advance(gomock.Any(), int64(3), nil, nil, now).Return(nil)

	dispatched, err := svc.DispatchDue(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, dispatched)
}

func TestDispatchDue_DisabledNotificationsAdvanceWithoutPush(t *testing.T) {
	svc, repo, sender := newTestReminderService(t)

	now := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	item := dueReminder(3, nil, now.Add(-30*time.Minute))
	item.NotificationsEnabled = false

	repo.EXPECT().ListDue(gomock.Any(), now).Return([]models.DueReminder{item}, nil)
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)
	repo.EXPECT().Advance(gomock.Any(), int64(3), nil, nil, now).Return(nil)

	dispatched, err := svc.DispatchDue(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 0, dispatched)
}

func TestDispatchDue_FailedPushLeavesReminderForRetry(t *testing.T) {
	svc, repo, sender := newTestReminderService(t)

	now := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	failing := dueReminder(3, nil, now.Add(-30*time.Minute))
	healthy := dueReminder(4, nil, now.Add(-10*time.Minute))

	repo.EXPECT().ListDue(gomock.Any(), now).Return([]models.DueReminder{failing, healthy}, nil)
	sender.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, notification models.PushNotification) error {
			if notification.Data["reminderId"] == "3" {
				return errors.New("gateway timeout")
			}
			return nil
		}).
		Times(2)
	repo.EXPECT().Advance(gomock.Any(), int64(4), nil, nil, now).Return(nil)

	dispatched, err := svc.DispatchDue(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, dispatched, "only the delivered reminder counts and advances")
}

func TestDispatchDue_UsesDescriptionAsBodyAndTodoData(t *testing.T) {
	svc, repo, sender := newTestReminderService(t)

	now := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	description := "daily sync in room 4"
	todoID := int64(77)
	todoTitle := "sprint work"

	item := dueReminder(3, nil, now.Add(-time.Minute))
	item.Description = &description
	item.TodoID = &todoID
	item.TodoTitle = &todoTitle

	repo.EXPECT().ListDue(gomock.Any(), now).Return([]models.DueReminder{item}, nil)
	sender.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, notification models.PushNotification) error {
			assert.Equal(t, description, notification.Body)
			assert.Equal(t, "77", notification.Data["todoId"])
			assert.Equal(t, todoTitle, notification.Data["todoTitle"])
			return nil
		})
	repo.EXPECT().Advance(gomock.Any(), int64(3), nil, nil, now).Return(nil)

	_, err := svc.DispatchDue(context.Background(), now)
	require.NoError(t, err)
}

func TestDispatchDue_StorageErrorAborts(t *testing.T) {
	svc, repo, _ := newTestReminderService(t)

	now := time.Now()
	repo.EXPECT().ListDue(gomock.Any(), now).Return(nil, errors.New("connection reset"))

	dispatched, err := svc.DispatchDue(context.Background(), now)
	require.Error(t, err)
	assert.Zero(t, dispatched)
}
