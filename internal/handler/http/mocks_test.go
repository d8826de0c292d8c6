package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Elayaraja1609/TodoApplication/internal/logger"
	"github.com/Elayaraja1609/TodoApplication/internal/service"
	"github.com/Elayaraja1609/TodoApplication/internal/utils"
	"github.com/Elayaraja1609/TodoApplication/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn   func(ctx context.Context, request models.RegisterRequest) (models.AuthSession, error)
	loginFn      func(ctx context.Context, request models.LoginRequest) (models.AuthSession, error)
	refreshFn    func(ctx context.Context, request models.RefreshRequest) (models.AuthSession, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
	setupPinFn   func(ctx context.Context, userID int64, request models.SetupPinRequest) error
	verifyPinFn  func(ctx context.Context, userID int64, request models.VerifyPinRequest) (bool, error)
	changePinFn  func(ctx context.Context, userID int64, request models.ChangePinRequest) error
	hasPinFn     func(ctx context.Context, userID int64) (bool, error)
}

func (m *mockAuthService) Register(ctx context.Context, request models.RegisterRequest) (models.AuthSession, error) {
	return m.registerFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.AuthSession, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) Refresh(ctx context.Context, request models.RefreshRequest) (models.AuthSession, error) {
	return m.refreshFn(ctx, request)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) SetupPin(ctx context.Context, userID int64, request models.SetupPinRequest) error {
	return m.setupPinFn(ctx, userID, request)
}

func (m *mockAuthService) VerifyPin(ctx context.Context, userID int64, request models.VerifyPinRequest) (bool, error) {
	return m.verifyPinFn(ctx, userID, request)
}

func (m *mockAuthService) ChangePin(ctx context.Context, userID int64, request models.ChangePinRequest) error {
	return m.changePinFn(ctx, userID, request)
}

func (m *mockAuthService) HasPin(ctx context.Context, userID int64) (bool, error) {
	return m.hasPinFn(ctx, userID)
}

// ─────────────────────────────────────────────
// Mock TodoService
// ─────────────────────────────────────────────

type mockTodoService struct {
	listFn           func(ctx context.Context, userID int64) ([]models.Todo, error)
	getFn            func(ctx context.Context, userID, todoID int64) (models.Todo, error)
	createFn         func(ctx context.Context, userID int64, request models.CreateTodoRequest) (models.Todo, error)
	updateFn         func(ctx context.Context, userID, todoID int64, request models.UpdateTodoRequest) (models.Todo, error)
	deleteFn         func(ctx context.Context, userID, todoID int64) error
	toggleCompleteFn func(ctx context.Context, userID, todoID int64) (models.Todo, error)
}

func (m *mockTodoService) List(ctx context.Context, userID int64) ([]models.Todo, error) {
	return m.listFn(ctx, userID)
}

func (m *mockTodoService) Get(ctx context.Context, userID, todoID int64) (models.Todo, error) {
	return m.getFn(ctx, userID, todoID)
}

func (m *mockTodoService) Create(ctx context.Context, userID int64, request models.CreateTodoRequest) (models.Todo, error) {
	return m.createFn(ctx, userID, request)
}

func (m *mockTodoService) Update(ctx context.Context, userID, todoID int64, request models.UpdateTodoRequest) (models.Todo, error) {
	return m.updateFn(ctx, userID, todoID, request)
}

func (m *mockTodoService) Delete(ctx context.Context, userID, todoID int64) error {
	return m.deleteFn(ctx, userID, todoID)
}

func (m *mockTodoService) ToggleComplete(ctx context.Context, userID, todoID int64) (models.Todo, error) {
	return m.toggleCompleteFn(ctx, userID, todoID)
}

// ─────────────────────────────────────────────
// Mock CategoryService
// ─────────────────────────────────────────────

type mockCategoryService struct {
	listFn   func(ctx context.Context, userID int64) ([]models.Category, error)
	getFn    func(ctx context.Context, userID, categoryID int64) (models.Category, error)
	createFn func(ctx context.Context, userID int64, request models.CreateCategoryRequest) (models.Category, error)
	updateFn func(ctx context.Context, userID, categoryID int64, request models.UpdateCategoryRequest) (models.Category, error)
	deleteFn func(ctx context.Context, userID, categoryID int64) error
}

func (m *mockCategoryService) List(ctx context.Context, userID int64) ([]models.Category, error) {
	return m.listFn(ctx, userID)
}

func (m *mockCategoryService) Get(ctx context.Context, userID, categoryID int64) (models.Category, error) {
	return m.getFn(ctx, userID, categoryID)
}

func (m *mockCategoryService) Create(ctx context.Context, userID int64, request models.CreateCategoryRequest) (models.Category, error) {
	return m.createFn(ctx, userID, request)
}

func (m *mockCategoryService) Update(ctx context.Context, userID, categoryID int64, request models.UpdateCategoryRequest) (models.Category, error) {
	return m.updateFn(ctx, userID, categoryID, request)
}

func (m *mockCategoryService) Delete(ctx context.Context, userID, categoryID int64) error {
	return m.deleteFn(ctx, userID, categoryID)
}

// ─────────────────────────────────────────────
// Mock ReminderService
// ─────────────────────────────────────────────

type mockReminderService struct {
	listFn        func(ctx context.Context, userID int64) ([]models.Reminder, error)
	getFn         func(ctx context.Context, userID, reminderID int64) (models.Reminder, error)
	createFn      func(ctx context.Context, userID int64, request models.CreateReminderRequest) (models.Reminder, error)
	updateFn      func(ctx context.Context, userID, reminderID int64, request models.UpdateReminderRequest) (models.Reminder, error)
	deleteFn      func(ctx context.Context, userID, reminderID int64) error
	dispatchDueFn func(ctx context.Context, now time.Time) (int, error)
}

func (m *mockReminderService) List(ctx context.Context, userID int64) ([]models.Reminder, error) {
	return m.listFn(ctx, userID)
}

func (m *mockReminderService) Get(ctx context.Context, userID, reminderID int64) (models.Reminder, error) {
	return m.getFn(ctx, userID, reminderID)
}

func (m *mockReminderService) Create(ctx context.Context, userID int64, request models.CreateReminderRequest) (models.Reminder, error) {
	return m.createFn(ctx, userID, request)
}

func (m *mockReminderService) Update(ctx context.Context, userID, reminderID int64, request models.UpdateReminderRequest) (models.Reminder, error) {
	return m.updateFn(ctx, userID, reminderID, request)
}

func (m *mockReminderService) Delete(ctx context.Context, userID, reminderID int64) error {
	return m.deleteFn(ctx, userID, reminderID)
}

func (m *mockReminderService) DispatchDue(ctx context.Context, now time.Time) (int, error) {
	return m.dispatchDueFn(ctx, now)
}

// ─────────────────────────────────────────────
// Mock PreferencesService
// ─────────────────────────────────────────────

type mockPreferencesService struct {
	getFn    func(ctx context.Context, userID int64) (models.UserPreferences, error)
	updateFn func(ctx context.Context, userID int64, request models.UpdatePreferencesRequest) (models.UserPreferences, error)
}

func (m *mockPreferencesService) Get(ctx context.Context, userID int64) (models.UserPreferences, error) {
	return m.getFn(ctx, userID)
}

func (m *mockPreferencesService) Update(ctx context.Context, userID int64, request models.UpdatePreferencesRequest) (models.UserPreferences, error) {
	return m.updateFn(ctx, userID, request)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the given service mocks. Nil mocks
// are fine for routes a test never touches.
func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	return NewHandler(services, logger.Nop())
}

// jsonBody serialises v to a JSON request body reader.
func jsonBody(t *testing.T, v any) *strings.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return strings.NewReader(string(b))
}

// authedRequest builds a request carrying userID in its context, the way the
// auth middleware does for authenticated routes.
func authedRequest(method, target string, body *strings.Reader, userID int64) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, body)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	ctx := context.WithValue(req.Context(), utils.UserIDCtxKey, userID)
	return req.WithContext(ctx)
}

// decodeResponse unmarshals the recorded JSON body into dst.
func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}
