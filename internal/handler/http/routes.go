package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(api chi.Router) {
		// routes without authorization
		api.Group(func(r chi.Router) {
			r.Post("/auth/register", h.register)
			r.Post("/auth/login", h.login)
			r.Post("/auth/refresh", h.refresh)
		})

		api.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/auth/pin/setup", h.setupPin)
			r.Post("/auth/pin/verify", h.verifyPin)
			r.Post("/auth/pin/change", h.changePin)
			r.Get("/auth/pin/has", h.hasPin)

			r.Get("/todos", h.listTodos)
			r.Post("/todos", h.createTodo)
			r.Get("/todos/{id}", h.getTodo)
			r.Put("/todos/{id}", h.updateTodo)
			r.Delete("/todos/{id}", h.deleteTodo)
			r.Post("/todos/{id}/toggle-complete", h.toggleTodoComplete)

			r.Get("/categories", h.listCategories)
			r.Post("/categories", h.createCategory)
			r.Get("/categories/{id}", h.getCategory)
			r.Put("/categories/{id}", h.updateCategory)
			r.Delete("/categories/{id}", h.deleteCategory)

			r.Get("/reminders", h.listReminders)
			r.Post("/reminders", h.createReminder)
			r.Get("/reminders/{id}", h.getReminder)
			r.Put("/reminders/{id}", h.updateReminder)
			r.Delete("/reminders/{id}", h.deleteReminder)

			r.Get("/preferences", h.getPreferences)
			r.Put("/preferences", h.updatePreferences)
		})
	})

	return router
}
