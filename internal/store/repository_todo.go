package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Elayaraja1609/TodoApplication/internal/logger"
	"github.com/Elayaraja1609/TodoApplication/models"
)

// todoRepository is the SQL-backed implementation of [TodoRepository].
// Subtasks never have an independent write path: they are inserted and
// soft-deleted through their owning todo, always inside one transaction.
type todoRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTodoRepository constructs a [TodoRepository] backed by the provided
// database connection and logger.
func NewTodoRepository(db *DB, logger *logger.Logger) TodoRepository {
	logger.Debug().Msg("creating todo repository")
	return &todoRepository{
		db:     db,
		logger: logger,
	}
}

// ListByUser returns every live todo of the user with category names joined
// and live subtasks attached, loaded in a single extra round trip.
func (r *todoRepository) ListByUser(ctx context.Context, userID int64) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTodosByUserQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.ListByUser").Msg("error querying todos")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	defer rows.Close()

	todos := make([]models.Todo, 0)
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			log.Err(err).Str("func", "*todoRepository.ListByUser").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if err := r.attachSubTasks(ctx, todos); err != nil {
		log.Err(err).Str("func", "*todoRepository.ListByUser").Msg("error loading subtasks")
		return nil, err
	}

	return todos, nil
}

// GetByID retrieves a single live todo scoped to its owner, with subtasks
// attached.
func (r *todoRepository) GetByID(ctx context.Context, todoID int64, userID int64) (models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTodoByIDQuery(todoID, userID)
	if err != nil {
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.GetByID").Msg("error querying todo")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return models.Todo{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		return models.Todo{}, ErrNotFound
	}

	todo, err := scanTodo(rows)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.GetByID").Msg("error: scanning error")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	todos := []models.Todo{todo}
	if err := r.attachSubTasks(ctx, todos); err != nil {
		log.Err(err).Str("func", "*todoRepository.GetByID").Msg("error loading subtasks")
		return models.Todo{}, err
	}

	return todos[0], nil
}

// Create inserts the todo together with its subtasks in one transaction and
// returns the todo with server-assigned IDs.
func (r *todoRepository) Create(ctx context.Context, todo models.Todo) (models.Todo, error) {
	log := logger.FromContext(ctx)

	err := r.db.WithinTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, createTodo,
			todo.UserID, todo.Title, todo.Description, todo.CategoryID,
			todo.IsCompleted, todo.IsImportant,
			todo.StartDate, todo.DueDate, todo.ExecutionTime,
			todo.RecurrencePattern, todo.NextOccurrence,
			todo.AudioURL, todo.ImageURL,
			todo.CreatedAt, todo.UpdatedAt,
		)
		if err := row.Scan(&todo.ID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return insertSubTasks(ctx, tx, todo.ID, todo.SubTasks)
	})
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.Create").Msg("error creating todo")
		return models.Todo{}, err
	}

	return todo, nil
}

// Save overwrites the mutable columns of the todo. When replaceSubTasks is
// set, all live subtasks are soft-deleted and todo.SubTasks inserted in their
// place within the same transaction.
func (r *todoRepository) Save(ctx context.Context, todo models.Todo, replaceSubTasks bool) (models.Todo, error) {
	log := logger.FromContext(ctx)

	err := r.db.WithinTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, saveTodo,
			todo.Title, todo.Description, todo.CategoryID,
			todo.IsCompleted, todo.IsImportant,
			todo.StartDate, todo.DueDate, todo.ExecutionTime,
			todo.RecurrencePattern, todo.NextOccurrence,
			todo.AudioURL, todo.ImageURL, todo.UpdatedAt,
			todo.ID, todo.UserID,
		)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected, err := result.RowsAffected(); err == nil && affected == 0 {
			return ErrNotFound
		}

		if !replaceSubTasks {
			return nil
		}

		if _, err := tx.ExecContext(ctx, softDeleteSubTasksOfTodo, todo.UpdatedAt, todo.ID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return insertSubTasks(ctx, tx, todo.ID, todo.SubTasks)
	})
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.Save").Msg("error updating todo")
		return models.Todo{}, err
	}

	return todo, nil
}

// SoftDelete marks the todo deleted together with its live subtasks.
func (r *todoRepository) SoftDelete(ctx context.Context, todoID int64, userID int64, now time.Time) error {
	log := logger.FromContext(ctx)

	err := r.db.WithinTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, softDeleteTodo, now, todoID, userID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected, err := result.RowsAffected(); err == nil && affected == 0 {
			return ErrNotFound
		}

		if _, err := tx.ExecContext(ctx, softDeleteSubTasksOfTodo, now, todoID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.SoftDelete").Msg("error deleting todo")
		return err
	}

	return nil
}

// attachSubTasks loads the live subtasks of the given todos in one query and
// distributes them by todo ID. Each todo ends up with a non-nil slice.
func (r *todoRepository) attachSubTasks(ctx context.Context, todos []models.Todo) error {
	if len(todos) == 0 {
		return nil
	}

	todoIDs := make([]int64, 0, len(todos))
	byID := make(map[int64]*models.Todo, len(todos))
	for i := range todos {
		todos[i].SubTasks = make([]models.SubTask, 0)
		todoIDs = append(todoIDs, todos[i].ID)
		byID[todos[i].ID] = &todos[i]
	}

	query, args, err := buildSelectSubTasksQuery(todoIDs)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	defer rows.Close()

	for rows.Next() {
		var subTask models.SubTask
		if err := rows.Scan(&subTask.ID, &subTask.TodoID, &subTask.Title, &subTask.IsCompleted, &subTask.SortOrder, &subTask.CreatedAt, &subTask.UpdatedAt); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if todo, ok := byID[subTask.TodoID]; ok {
			todo.SubTasks = append(todo.SubTasks, subTask)
		}
	}

	return rows.Err()
}

// insertSubTasks inserts the given subtasks for a todo inside the caller's
// transaction, filling in the server-assigned IDs in place.
func insertSubTasks(ctx context.Context, tx *sql.Tx, todoID int64, subTasks []models.SubTask) error {
	for i := range subTasks {
		row := tx.QueryRowContext(ctx, createSubTask,
			todoID, subTasks[i].Title, subTasks[i].IsCompleted, subTasks[i].SortOrder,
			subTasks[i].CreatedAt, subTasks[i].UpdatedAt,
		)
		if err := row.Scan(&subTasks[i].ID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		subTasks[i].TodoID = todoID
	}

	return nil
}

// scanTodo reads one joined todo row in the [todoColumns] order.
func scanTodo(rows *sql.Rows) (models.Todo, error) {
	var todo models.Todo
	err := rows.Scan(
		&todo.ID, &todo.UserID, &todo.Title, &todo.Description,
		&todo.CategoryID, &todo.CategoryName,
		&todo.IsCompleted, &todo.IsImportant,
		&todo.StartDate, &todo.DueDate, &todo.ExecutionTime,
		&todo.RecurrencePattern, &todo.NextOccurrence,
		&todo.AudioURL, &todo.ImageURL,
		&todo.CreatedAt, &todo.UpdatedAt,
	)
	return todo, err
}
