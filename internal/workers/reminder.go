package workers

import (
	"context"
	"time"

	"github.com/Elayaraja1609/TodoApplication/internal/logger"
	"github.com/Elayaraja1609/TodoApplication/internal/service"
	"github.com/robfig/cron/v3"
)

// reminderWorker periodically scans for due reminders and hands them to the
// reminder service for push dispatch. The schedule is a cron spec, typically
// "@every 1m".
type reminderWorker struct {
	reminderService service.ReminderService
	schedule        string

	cron   *cron.Cron
	logger *logger.Logger
}

func newReminderWorker(reminderService service.ReminderService, schedule string, logger *logger.Logger) *reminderWorker {
	return &reminderWorker{
		reminderService: reminderService,
		schedule:        schedule,
		cron:            cron.New(),
		logger:          logger,
	}
}

// Run registers the dispatch job and starts the cron scheduler in its own
// goroutine. An invalid schedule disables the worker with an error log
// instead of taking the whole process down.
func (w *reminderWorker) Run() {
	if _, err := w.cron.AddFunc(w.schedule, w.dispatch); err != nil {
		w.logger.Error().Err(err).Str("schedule", w.schedule).Msg("invalid reminder schedule, worker disabled")
		return
	}

	w.logger.Info().Str("schedule", w.schedule).Msg("reminder worker started")
	w.cron.Start()
}

func (w *reminderWorker) dispatch() {
	ctx := w.logger.WithContext(context.Background())

	dispatched, err := w.reminderService.DispatchDue(ctx, time.Now())
	if err != nil {
		w.logger.Err(err).Msg("due reminder scan failed")
		return
	}

	if dispatched > 0 {
		w.logger.Info().Int("dispatched", dispatched).Msg("due reminders dispatched")
	}
}
