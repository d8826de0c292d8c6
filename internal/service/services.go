package service

import (
	"github.com/Elayaraja1609/TodoApplication/internal/adapter"
	"github.com/Elayaraja1609/TodoApplication/internal/config"
	"github.com/Elayaraja1609/TodoApplication/internal/logger"
	"github.com/Elayaraja1609/TodoApplication/internal/store"
)

type Services struct {
	AuthService        AuthService
	TodoService        TodoService
	CategoryService    CategoryService
	ReminderService    ReminderService
	PreferencesService PreferencesService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, pushSender adapter.PushSender, logger *logger.Logger) *Services {
	return &Services{
		AuthService:        NewAuthService(storages.Users, cfg.App, logger),
		TodoService:        NewTodoService(storages.Todos, logger),
		CategoryService:    NewCategoryService(storages.Categories, logger),
		ReminderService:    NewReminderService(storages.Reminders, pushSender, logger),
		PreferencesService: NewPreferencesService(storages.Users, logger),
	}
}
