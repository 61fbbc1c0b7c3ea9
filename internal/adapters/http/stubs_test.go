package http

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/eduardoBeilfuss02/to-do-list-app-fullstack/internal/domain/entities"
	"github.com/eduardoBeilfuss02/to-do-list-app-fullstack/internal/ports"
)

// Service stubs. Each call delegates to a configurable function so a
// test controls exactly one behavior.

type stubAuthService struct {
	registerFn func(ctx context.Context, req ports.RegisterRequest) error
	loginFn    func(ctx context.Context, req ports.LoginRequest) (*ports.LoginResponse, error)
}

func (s *stubAuthService) Register(ctx context.Context, req ports.RegisterRequest) error {
	return s.registerFn(ctx, req)
}

func (s *stubAuthService) Login(ctx context.Context, req ports.LoginRequest) (*ports.LoginResponse, error) {
	return s.loginFn(ctx, req)
}

func (s *stubAuthService) ValidateToken(string) (*ports.Claims, error) {
	return nil, entities.ErrInvalidToken
}

type stubTaskService struct {
	createFn func(ctx context.Context, ownerID uuid.UUID, req ports.CreateTaskRequest) (*entities.Task, error)
	listFn   func(ctx context.Context, ownerID uuid.UUID) ([]*entities.Task, error)
	updateFn func(ctx context.Context, id, ownerID uuid.UUID, req ports.UpdateTaskRequest) error
	deleteFn func(ctx context.Context, id, ownerID uuid.UUID) error
}

func (s *stubTaskService) CreateTask(ctx context.Context, ownerID uuid.UUID, req ports.CreateTaskRequest) (*entities.Task, error) {
	return s.createFn(ctx, ownerID, req)
}

func (s *stubTaskService) ListTasks(ctx context.Context, ownerID uuid.UUID) ([]*entities.Task, error) {
	return s.listFn(ctx, ownerID)
}

func (s *stubTaskService) UpdateTask(ctx context.Context, id, ownerID uuid.UUID, req ports.UpdateTaskRequest) error {
	return s.updateFn(ctx, id, ownerID, req)
}

func (s *stubTaskService) DeleteTask(ctx context.Context, id, ownerID uuid.UUID) error {
	return s.deleteFn(ctx, id, ownerID)
}

type stubNotificationService struct {
	generateFn func(ctx context.Context, ownerID uuid.UUID) error
	listFn     func(ctx context.Context, ownerID uuid.UUID) ([]*entities.Notification, error)
	markReadFn func(ctx context.Context, id, ownerID uuid.UUID) error
}

func (s *stubNotificationService) GenerateForUser(ctx context.Context, ownerID uuid.UUID) error {
	return s.generateFn(ctx, ownerID)
}

func (s *stubNotificationService) ListUnread(ctx context.Context, ownerID uuid.UUID) ([]*entities.Notification, error) {
	return s.listFn(ctx, ownerID)
}

func (s *stubNotificationService) MarkRead(ctx context.Context, id, ownerID uuid.UUID) error {
	return s.markReadFn(ctx, id, ownerID)
}

type testValidator struct {
	validate *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = &testValidator{validate: validator.New()}

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func requireHTTPError(t *testing.T, err error, wantCode int) *echo.HTTPError {
	t.Helper()

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %T: %v", err, err)
	}
	if he.Code != wantCode {
		t.Fatalf("status = %d, want %d (message %v)", he.Code, wantCode, he.Message)
	}
	return he
}
