package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/eduardoBeilfuss02/to-do-list-app-fullstack/internal/domain/entities"
)

// AuthService interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) error
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// TaskService interface for task management operations
type TaskService interface {
	CreateTask(ctx context.Context, ownerID uuid.UUID, req CreateTaskRequest) (*entities.Task, error)
	ListTasks(ctx context.Context, ownerID uuid.UUID) ([]*entities.Task, error)
	UpdateTask(ctx context.Context, id, ownerID uuid.UUID, req UpdateTaskRequest) error
	DeleteTask(ctx context.Context, id, ownerID uuid.UUID) error
}

// NotificationService interface for reminder generation and delivery
type NotificationService interface {
	GenerateForUser(ctx context.Context, ownerID uuid.UUID) error
	ListUnread(ctx context.Context, ownerID uuid.UUID) ([]*entities.Notification, error)
	MarkRead(ctx context.Context, id, ownerID uuid.UUID) error
}

// Request/Response Types

// Auth related types
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Claims carries the identity embedded in a session token.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
}

// Task related types
type CreateTaskRequest struct {
	Title       string            `json:"title" validate:"required,max=200"`
	Description string            `json:"description" validate:"omitempty,max=2000"`
	Deadline    *entities.Date    `json:"deadline"`
	Priority    entities.Priority `json:"priority" validate:"omitempty,oneof=low medium high"`
}

// UpdateTaskRequest carries a partial update. Absent and empty fields
// are treated the same: both keep the stored value, so a field can
// never be cleared through an update.
type UpdateTaskRequest struct {
	Title       string              `json:"title" validate:"omitempty,max=200"`
	Description string              `json:"description" validate:"omitempty,max=2000"`
	Deadline    *entities.Date      `json:"deadline"`
	Priority    entities.Priority   `json:"priority" validate:"omitempty,oneof=low medium high"`
	Status      entities.TaskStatus `json:"status" validate:"omitempty,oneof=pending completed"`
}

// Common response types
type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
