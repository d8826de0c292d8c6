package workers

import (
	"github.com/Elayaraja1609/TodoApplication/internal/config"
	"github.com/Elayaraja1609/TodoApplication/internal/logger"
	"github.com/Elayaraja1609/TodoApplication/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers enabled by configuration.
// A worker whose schedule is empty is skipped.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	workers := &Workers{}

	if cfg.ReminderSchedule != "" {
		workers.workers = append(workers.workers,
			newReminderWorker(services.ReminderService, cfg.ReminderSchedule, logger))
	}

	return workers
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
