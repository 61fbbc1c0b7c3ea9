package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/eduardoBeilfuss02/to-do-list-app-fullstack/internal/domain/entities"
	"github.com/eduardoBeilfuss02/to-do-list-app-fullstack/internal/ports"
)

// TaskRepositoryImpl implements the TaskRepository interface. Every
// query carries the owner id as a filter predicate; ownership is never
// checked after the fact.
type TaskRepositoryImpl struct {
	db *sqlx.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *sqlx.DB) ports.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *entities.Task) error {
	query := r.db.Rebind(`
		INSERT INTO tasks (id, title, description, deadline, priority, status, owner_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)

	_, err := r.db.ExecContext(ctx, query,
		task.ID, task.Title, task.Description, task.Deadline,
		task.Priority, task.Status, task.OwnerID, task.CreatedAt, task.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	return nil
}

func (r *TaskRepositoryImpl) GetByOwner(ctx context.Context, id, ownerID uuid.UUID) (*entities.Task, error) {
	query := r.db.Rebind(`
		SELECT id, title, description, deadline, priority, status, owner_id, created_at, updated_at
		FROM tasks
		WHERE id = ? AND owner_id = ?`)

	var task entities.Task
	err := r.db.GetContext(ctx, &task, query, id, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}

	return &task, nil
}

func (r *TaskRepositoryImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Task, error) {
	query := r.db.Rebind(`
		SELECT id, title, description, deadline, priority, status, owner_id, created_at, updated_at
		FROM tasks
		WHERE owner_id = ?
		ORDER BY created_at DESC, id DESC`)

	tasks := []*entities.Task{}
	err := r.db.SelectContext(ctx, &tasks, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return tasks, nil
}

func (r *TaskRepositoryImpl) ListPendingWithDeadline(ctx context.Context, ownerID uuid.UUID) ([]*entities.Task, error) {
	query := r.db.Rebind(`
		SELECT id, title, description, deadline, priority, status, owner_id, created_at, updated_at
		FROM tasks
		WHERE owner_id = ? AND status = ? AND deadline IS NOT NULL`)

	tasks := []*entities.Task{}
	err := r.db.SelectContext(ctx, &tasks, query, ownerID, entities.TaskStatusPending)
	if err != nil {
		return nil, fmt.Errorf("list pending tasks with deadline: %w", err)
	}

	return tasks, nil
}

func (r *TaskRepositoryImpl) Update(ctx context.Context, task *entities.Task) error {
	query := r.db.Rebind(`
		UPDATE tasks
		SET title = ?, description = ?, deadline = ?, priority = ?, status = ?, updated_at = ?
		WHERE id = ? AND owner_id = ?`)

	result, err := r.db.ExecContext(ctx, query,
		task.Title, task.Description, task.Deadline, task.Priority,
		task.Status, task.UpdatedAt, task.ID, task.OwnerID)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return entities.ErrTaskNotFound
	}

	return nil
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	query := r.db.Rebind(`DELETE FROM tasks WHERE id = ? AND owner_id = ?`)

	result, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return entities.ErrTaskNotFound
	}

	return nil
}
