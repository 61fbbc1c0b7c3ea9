package entities

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrDuplicateUsername    = errors.New("username already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrTaskNotFound         = errors.New("task not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotificationExists   = errors.New("notification already exists for task")
	ErrInvalidToken         = errors.New("invalid or expired token")
)

// Enums and types
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// User represents a registered account
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Task represents a to-do item owned by a single user
type Task struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description" db:"description"`
	Deadline    *Date      `json:"deadline" db:"deadline"`
	Priority    Priority   `json:"priority" db:"priority"`
	Status      TaskStatus `json:"status" db:"status"`
	OwnerID     uuid.UUID  `json:"owner_id" db:"owner_id"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// Notification represents a generated deadline reminder.
// At most one row ever exists per task.
type Notification struct {
	ID      uuid.UUID `json:"id" db:"id"`
	OwnerID uuid.UUID `json:"owner_id" db:"owner_id"`
	TaskID  uuid.UUID `json:"task_id" db:"task_id"`
	Message string    `json:"message" db:"message"`
	SentAt  time.Time `json:"sent_at" db:"sent_at"`
	Read    bool      `json:"read" db:"read"`
}

// Business logic methods for Task

// IsPending reports whether the task is still open.
func (t *Task) IsPending() bool {
	return t.Status == TaskStatusPending
}

// ReminderMessage returns the reminder text for the task relative to
// today, or "" when the deadline is unset or still in the future.
// Comparisons are date-only.
func (t *Task) ReminderMessage(today Date) string {
	if t.Deadline == nil {
		return ""
	}
	switch {
	case t.Deadline.Time.Before(today.Time):
		return fmt.Sprintf("Your task %q is overdue!", t.Title)
	case t.Deadline.Time.Equal(today.Time):
		return fmt.Sprintf("Your task %q is due today!", t.Title)
	default:
		return ""
	}
}

// Utility methods
func (ts TaskStatus) IsValid() bool {
	switch ts {
	case TaskStatusPending, TaskStatusCompleted:
		return true
	default:
		return false
	}
}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}
