package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Elayaraja1609/TodoApplication/internal/service"
	"github.com/Elayaraja1609/TodoApplication/internal/store"
	"github.com/Elayaraja1609/TodoApplication/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withURLParam attaches a chi route parameter to the request the way the
// router does when a pattern like /todos/{id} matches.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestListTodos_ReturnsUserScopedSet(t *testing.T) {
	todos := &mockTodoService{
		listFn: func(_ context.Context, userID int64) ([]models.Todo, error) {
			assert.Equal(t, int64(42), userID)
			return []models.Todo{{ID: 1, Title: "groceries"}, {ID: 2, Title: "laundry"}}, nil
		},
	}

	h := newTestHandler(t, &service.Services{TodoService: todos})
	req := authedRequest(http.MethodGet, "/api/v1/todos", nil, 42)
	rec := httptest.NewRecorder()

	h.listTodos(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body []models.Todo
	decodeResponse(t, rec, &body)
	require.Len(t, body, 2)
	assert.Equal(t, "groceries", body[0].Title)
}

func TestCreateTodo_Success(t *testing.T) {
	todos := &mockTodoService{
		createFn: func(_ context.Context, userID int64, request models.CreateTodoRequest) (models.Todo, error) {
			assert.Equal(t, int64(42), userID)
			return models.Todo{ID: 7, UserID: userID, Title: request.Title}, nil
		},
	}

	h := newTestHandler(t, &service.Services{TodoService: todos})
	req := authedRequest(http.MethodPost, "/api/v1/todos", jsonBody(t, models.CreateTodoRequest{
		Title: "groceries",
	}), 42)
	rec := httptest.NewRecorder()

	h.createTodo(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body models.Todo
	decodeResponse(t, rec, &body)
	assert.Equal(t, int64(7), body.ID)
}

func TestCreateTodo_MissingTitleFailsValidation(t *testing.T) {
	h := newTestHandler(t, &service.Services{TodoService: &mockTodoService{}})
	req := authedRequest(http.MethodPost, "/api/v1/todos", jsonBody(t, models.CreateTodoRequest{}), 42)
	rec := httptest.NewRecorder()

	h.createTodo(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetTodo_ForeignOwnerSurfacesAsNotFound(t *testing.T) {
	todos := &mockTodoService{
		getFn: func(_ context.Context, _, _ int64) (models.Todo, error) {
			return models.Todo{}, store.ErrNotFound
		},
	}

	h := newTestHandler(t, &service.Services{TodoService: todos})
	req := withURLParam(authedRequest(http.MethodGet, "/api/v1/todos/7", nil, 42), "id", "7")
	rec := httptest.NewRecorder()

	h.getTodo(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	decodeResponse(t, rec, &body)
	assert.Equal(t, "not found", body["message"])
}

func TestGetTodo_NonNumericID(t *testing.T) {
	h := newTestHandler(t, &service.Services{TodoService: &mockTodoService{}})
	req := withURLParam(authedRequest(http.MethodGet, "/api/v1/todos/abc", nil, 42), "id", "abc")
	rec := httptest.NewRecorder()

	h.getTodo(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteTodo_NoContent(t *testing.T) {
	todos := &mockTodoService{
		deleteFn: func(_ context.Context, userID, todoID int64) error {
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, int64(7), todoID)
			return nil
		},
	}

	h := newTestHandler(t, &service.Services{TodoService: todos})
	req := withURLParam(authedRequest(http.MethodDelete, "/api/v1/todos/7", nil, 42), "id", "7")
	rec := httptest.NewRecorder()

	h.deleteTodo(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestToggleTodoComplete(t *testing.T) {
	todos := &mockTodoService{
		toggleCompleteFn: func(_ context.Context, _, todoID int64) (models.Todo, error) {
			return models.Todo{ID: todoID, Title: "groceries", IsCompleted: true}, nil
		},
	}

	h := newTestHandler(t, &service.Services{TodoService: todos})
	req := withURLParam(authedRequest(http.MethodPost, "/api/v1/todos/7/toggle-complete", nil, 42), "id", "7")
	rec := httptest.NewRecorder()

	h.toggleTodoComplete(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.Todo
	decodeResponse(t, rec, &body)
	assert.True(t, body.IsCompleted)
}
