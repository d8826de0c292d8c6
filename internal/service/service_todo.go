package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Elayaraja1609/TodoApplication/internal/logger"
	"github.com/Elayaraja1609/TodoApplication/internal/store"
	"github.com/Elayaraja1609/TodoApplication/models"
)

// todoService is the concrete implementation of TodoService. All reads and
// writes are scoped to the authenticated user; rows of other users surface
// as store.ErrNotFound.
type todoService struct {
	todoRepository store.TodoRepository
	logger         *logger.Logger
}

// NewTodoService constructs a TodoService backed by the given repository.
func NewTodoService(todoRepository store.TodoRepository, logger *logger.Logger) TodoService {
	return &todoService{
		todoRepository: todoRepository,
		logger:         logger,
	}
}

// List returns every live todo of the user with categories and subtasks
// attached.
func (s *todoService) List(ctx context.Context, userID int64) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	todos, err := s.todoRepository.ListByUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("listing todos failed")
		return nil, fmt.Errorf("listing todos failed: %w", err)
	}

	return todos, nil
}

// Get returns a single todo of the user.
func (s *todoService) Get(ctx context.Context, userID, todoID int64) (models.Todo, error) {
	todo, err := s.todoRepository.GetByID(ctx, todoID, userID)
	if err != nil {
		return models.Todo{}, err
	}

	return todo, nil
}

// Create persists a new todo with its inline subtasks. When a recurrence
// pattern is supplied, the next occurrence is precomputed from the start
// date (or from now when no start date is given).
func (s *todoService) Create(ctx context.Context, userID int64, request models.CreateTodoRequest) (models.Todo, error) {
	log := logger.FromContext(ctx)

	if request.Title == "" {
		return models.Todo{}, ErrInvalidDataProvided
	}

	now := time.Now()
	todo := models.Todo{
		UserID:            userID,
		Title:             request.Title,
		Description:       request.Description,
		CategoryID:        request.CategoryID,
		IsImportant:       request.IsImportant,
		StartDate:         request.StartDate,
		DueDate:           request.DueDate,
		ExecutionTime:     request.ExecutionTime,
		RecurrencePattern: request.RecurrencePattern,
		NextOccurrence:    nextOccurrenceOf(request.RecurrencePattern, recurrenceBase(request.StartDate, now)),
		AudioURL:          request.AudioURL,
		ImageURL:          request.ImageURL,
		CreatedAt:         now,
		UpdatedAt:         now,
		SubTasks:          subTasksFromInputs(request.SubTasks, now),
	}

	created, err := s.todoRepository.Create(ctx, todo)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("creating todo failed")
		return models.Todo{}, fmt.Errorf("creating todo failed: %w", err)
	}

	return created, nil
}

// Update applies the non-nil fields of the request to the stored todo. A
// non-nil SubTasks slice replaces the current subtask set in the same
// transaction. The next occurrence is recomputed whenever the pattern or
// the start date changes.
func (s *todoService) Update(ctx context.Context, userID, todoID int64, request models.UpdateTodoRequest) (models.Todo, error) {
	log := logger.FromContext(ctx)

	todo, err := s.todoRepository.GetByID(ctx, todoID, userID)
	if err != nil {
		return models.Todo{}, err
	}

	now := time.Now()
	recompute := false

	if request.Title != nil {
		todo.Title = *request.Title
	}
	if request.Description != nil {
		todo.Description = request.Description
	}
	if request.CategoryID != nil {
		todo.CategoryID = request.CategoryID
	}
	if request.IsCompleted != nil {
		todo.IsCompleted = *request.IsCompleted
	}
	if request.IsImportant != nil {
		todo.IsImportant = *request.IsImportant
	}
	if request.StartDate != nil {
		todo.StartDate = request.StartDate
		recompute = true
	}
	if request.DueDate != nil {
		todo.DueDate = request.DueDate
	}
	if request.ExecutionTime != nil {
		todo.ExecutionTime = request.ExecutionTime
	}
	if request.RecurrencePattern != nil {
		todo.RecurrencePattern = request.RecurrencePattern
		recompute = true
	}
	if request.AudioURL != nil {
		todo.AudioURL = request.AudioURL
	}
	if request.ImageURL != nil {
		todo.ImageURL = request.ImageURL
	}

	if recompute {
		todo.NextOccurrence = nextOccurrenceOf(todo.RecurrencePattern, recurrenceBase(todo.StartDate, now))
	}

	replaceSubTasks := request.SubTasks != nil
	if replaceSubTasks {
		todo.SubTasks = subTasksFromInputs(*request.SubTasks, now)
	}
	todo.UpdatedAt = now

	saved, err := s.todoRepository.Save(ctx, todo, replaceSubTasks)
	if err != nil {
		log.Err(err).Int64("userID", userID).Int64("todoID", todoID).Msg("updating todo failed")
		return models.Todo{}, err
	}

	return saved, nil
}

// Delete soft-deletes the todo together with its subtasks.
func (s *todoService) Delete(ctx context.Context, userID, todoID int64) error {
	return s.todoRepository.SoftDelete(ctx, todoID, userID, time.Now())
}

// ToggleComplete flips the completion state of the todo.
func (s *todoService) ToggleComplete(ctx context.Context, userID, todoID int64) (models.Todo, error) {
	log := logger.FromContext(ctx)

	todo, err := s.todoRepository.GetByID(ctx, todoID, userID)
	if err != nil {
		return models.Todo{}, err
	}

	todo.IsCompleted = !todo.IsCompleted
	todo.UpdatedAt = time.Now()

	saved, err := s.todoRepository.Save(ctx, todo, false)
	if err != nil {
		log.Err(err).Int64("userID", userID).Int64("todoID", todoID).Msg("toggling todo failed")
		return models.Todo{}, err
	}

	return saved, nil
}

// recurrenceBase picks the anchor for the next-occurrence computation: the
// start date when set, otherwise the current time.
func recurrenceBase(startDate *time.Time, now time.Time) time.Time {
	if startDate != nil {
		return *startDate
	}
	return now
}

// subTasksFromInputs converts inline subtask inputs into fresh records.
func subTasksFromInputs(inputs []models.SubTaskInput, now time.Time) []models.SubTask {
	subTasks := make([]models.SubTask, 0, len(inputs))
	for _, input := range inputs {
		subTasks = append(subTasks, models.SubTask{
			Title:     input.Title,
			SortOrder: input.SortOrder,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return subTasks
}
