package store

import "github.com/Elayaraja1609/TodoApplication/internal/logger"

// Storages aggregates every repository behind one value so the service layer
// receives a single dependency.
type Storages struct {
	Users      UserRepository
	Categories CategoryRepository
	Todos      TodoRepository
	Reminders  ReminderRepository
}

// NewStorages wires all repositories to the shared database handle.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		Users:      NewUserRepository(db, log),
		Categories: NewCategoryRepository(db, log),
		Todos:      NewTodoRepository(db, log),
		Reminders:  NewReminderRepository(db, log),
	}
}
