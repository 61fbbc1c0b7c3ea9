package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/eduardoBeilfuss02/to-do-list-app-fullstack/internal/domain/entities"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
}

// TaskRepository defines the interface for task data operations.
// Every read and mutation is filtered by the owning user's id; a task
// is never visible to, or mutable by, anyone but its owner.
type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) error
	GetByOwner(ctx context.Context, id, ownerID uuid.UUID) (*entities.Task, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Task, error)
	ListPendingWithDeadline(ctx context.Context, ownerID uuid.UUID) ([]*entities.Task, error)
	Update(ctx context.Context, task *entities.Task) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}

// NotificationRepository defines the interface for notification data
// operations. Reads and the read-flag update are owner-scoped; the
// existence check is by task id alone, which is what makes generation
// idempotent.
type NotificationRepository interface {
	Create(ctx context.Context, notification *entities.Notification) error
	ExistsForTask(ctx context.Context, taskID uuid.UUID) (bool, error)
	ListUnreadByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Notification, error)
	MarkRead(ctx context.Context, id, ownerID uuid.UUID) error
}
