package services

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/eduardoBeilfuss02/to-do-list-app-fullstack/internal/domain/entities"
)

// In-memory repository fakes. They mirror the SQL implementations'
// contracts: ownership is part of every lookup and the notification
// store enforces one row per task.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entities.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return entities.ErrDuplicateUsername
		}
	}

	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

type fakeTaskRepo struct {
	mu    sync.Mutex
	tasks []*entities.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{}
}

func (r *fakeTaskRepo) Create(_ context.Context, task *entities.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *task
	r.tasks = append(r.tasks, &copied)
	return nil
}

func (r *fakeTaskRepo) GetByOwner(_ context.Context, id, ownerID uuid.UUID) (*entities.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.tasks {
		if t.ID == id && t.OwnerID == ownerID {
			copied := *t
			return &copied, nil
		}
	}
	return nil, entities.ErrTaskNotFound
}

func (r *fakeTaskRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*entities.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := []*entities.Task{}
	for i := len(r.tasks) - 1; i >= 0; i-- {
		if r.tasks[i].OwnerID == ownerID {
			copied := *r.tasks[i]
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeTaskRepo) ListPendingWithDeadline(_ context.Context, ownerID uuid.UUID) ([]*entities.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := []*entities.Task{}
	for _, t := range r.tasks {
		if t.OwnerID == ownerID && t.Status == entities.TaskStatusPending && t.Deadline != nil {
			copied := *t
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, task *entities.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.tasks {
		if t.ID == task.ID && t.OwnerID == task.OwnerID {
			copied := *task
			r.tasks[i] = &copied
			return nil
		}
	}
	return entities.ErrTaskNotFound
}

func (r *fakeTaskRepo) Delete(_ context.Context, id, ownerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.tasks {
		if t.ID == id && t.OwnerID == ownerID {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}
	return entities.ErrTaskNotFound
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications []*entities.Notification

	// forceExistsOnCreate makes Create fail as if another request won
	// the insert race after ExistsForTask reported no row.
	forceExistsOnCreate bool
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) Create(_ context.Context, notification *entities.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.forceExistsOnCreate {
		return entities.ErrNotificationExists
	}

	for _, n := range r.notifications {
		if n.TaskID == notification.TaskID {
			return entities.ErrNotificationExists
		}
	}

	copied := *notification
	r.notifications = append(r.notifications, &copied)
	return nil
}

func (r *fakeNotificationRepo) ExistsForTask(_ context.Context, taskID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.forceExistsOnCreate {
		return false, nil
	}

	for _, n := range r.notifications {
		if n.TaskID == taskID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeNotificationRepo) ListUnreadByOwner(_ context.Context, ownerID uuid.UUID) ([]*entities.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := []*entities.Notification{}
	for i := len(r.notifications) - 1; i >= 0; i-- {
		n := r.notifications[i]
		if n.OwnerID == ownerID && !n.Read {
			copied := *n
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeNotificationRepo) MarkRead(_ context.Context, id, ownerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.notifications {
		if n.ID == id && n.OwnerID == ownerID {
			n.Read = true
			return nil
		}
	}
	return entities.ErrNotificationNotFound
}
