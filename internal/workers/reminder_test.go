package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Elayaraja1609/TodoApplication/internal/logger"
	"github.com/Elayaraja1609/TodoApplication/models"
)

// mockReminderService stubs the single method the worker calls.
type mockReminderService struct {
	dispatchDueFn func(ctx context.Context, now time.Time) (int, error)
}

func (m *mockReminderService) List(context.Context, int64) ([]models.Reminder, error) {
	return nil, nil
}

func (m *mockReminderService) Get(context.Context, int64, int64) (models.Reminder, error) {
	return models.Reminder{}, nil
}

func (m *mockReminderService) Create(context.Context, int64, models.CreateReminderRequest) (models.Reminder, error) {
	return models.Reminder{}, nil
}

func (m *mockReminderService) Update(context.Context, int64, int64, models.UpdateReminderRequest) (models.Reminder, error) {
	return models.Reminder{}, nil
}

func (m *mockReminderService) Delete(context.Context, int64, int64) error {
	return nil
}

func (m *mockReminderService) DispatchDue(ctx context.Context, now time.Time) (int, error) {
	return m.dispatchDueFn(ctx, now)
}

func TestReminderWorker_DispatchCallsService(t *testing.T) {
	called := 0
	svc := &mockReminderService{
		dispatchDueFn: func(_ context.Context, now time.Time) (int, error) {
			called++
			if now.IsZero() {
				t.Error("expected a non-zero scan time")
			}
			return 2, nil
		},
	}

	w := newReminderWorker(svc, "@every 1m", logger.Nop())
	w.dispatch()

	if called != 1 {
		t.Errorf("expected one dispatch call, got %d", called)
	}
}

func TestReminderWorker_DispatchSurvivesServiceError(t *testing.T) {
	svc := &mockReminderService{
		dispatchDueFn: func(context.Context, time.Time) (int, error) {
			return 0, errors.New("connection reset")
		},
	}

	w := newReminderWorker(svc, "@every 1m", logger.Nop())

	// Must not panic; the next tick retries.
	w.dispatch()
}

func TestReminderWorker_InvalidScheduleDisablesWorker(t *testing.T) {
	svc := &mockReminderService{
		dispatchDueFn: func(context.Context, time.Time) (int, error) {
			t.Fatal("dispatch must not run with an invalid schedule")
			return 0, nil
		},
	}

	w := newReminderWorker(svc, "not-a-cron-spec", logger.Nop())
	w.Run()

	if len(w.cron.Entries()) != 0 {
		t.Errorf("expected no scheduled entries, got %d", len(w.cron.Entries()))
	}
}
