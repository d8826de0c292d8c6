package http

import (
	"net/http"

	"github.com/Elayaraja1609/TodoApplication/internal/logger"
	"github.com/Elayaraja1609/TodoApplication/internal/utils"
	"github.com/Elayaraja1609/TodoApplication/models"
)

func (h *Handler) listTodos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	todos, err := h.services.TodoService.List(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, todos, http.StatusOK)
}

func (h *Handler) getTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	todoID, ok := urlParamID(w, r)
	if !ok {
		return
	}

	todo, err := h.services.TodoService.Get(ctx, userID, todoID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, todo, http.StatusOK)
}

func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var request models.CreateTodoRequest
	if !h.decodeBody(w, r, &request) {
		return
	}

	todo, err := h.services.TodoService.Create(ctx, userID, request)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("creating todo failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, todo, http.StatusCreated)
}

func (h *Handler) updateTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	todoID, ok := urlParamID(w, r)
	if !ok {
		return
	}

	var request models.UpdateTodoRequest
	if !h.decodeBody(w, r, &request) {
		return
	}

	todo, err := h.services.TodoService.Update(ctx, userID, todoID, request)
	if err != nil {
		log.Err(err).Int64("userID", userID).Int64("todoID", todoID).Msg("updating todo failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, todo, http.StatusOK)
}

func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	todoID, ok := urlParamID(w, r)
	if !ok {
		return
	}

	if err := h.services.TodoService.Delete(ctx, userID, todoID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) toggleTodoComplete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	todoID, ok := urlParamID(w, r)
	if !ok {
		return
	}

	todo, err := h.services.TodoService.ToggleComplete(ctx, userID, todoID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, todo, http.StatusOK)
}
