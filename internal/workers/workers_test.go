package workers

import (
	"testing"

	"github.com/Elayaraja1609/TodoApplication/internal/config"
	"github.com/Elayaraja1609/TodoApplication/internal/logger"
	"github.com/Elayaraja1609/TodoApplication/internal/service"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run() {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{workers: []Worker{}}

	// Should not panic on empty workers list
	ws.Run()
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run()
}

func TestNewWorkers_EmptyScheduleDisablesReminderWorker(t *testing.T) {
	ws := NewWorkers(&service.Services{}, config.Workers{}, logger.Nop())

	if len(ws.workers) != 0 {
		t.Errorf("expected no workers, got %d", len(ws.workers))
	}
}

func TestNewWorkers_ScheduleEnablesReminderWorker(t *testing.T) {
	ws := NewWorkers(&service.Services{}, config.Workers{ReminderSchedule: "@every 1m"}, logger.Nop())

	if len(ws.workers) != 1 {
		t.Fatalf("expected one worker, got %d", len(ws.workers))
	}
	if _, ok := ws.workers[0].(*reminderWorker); !ok {
		t.Errorf("expected a reminder worker, got %T", ws.workers[0])
	}
}
