package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/eduardoBeilfuss02/to-do-list-app-fullstack/internal/domain/entities"
	"github.com/eduardoBeilfuss02/to-do-list-app-fullstack/internal/infrastructure/logger"
	"github.com/eduardoBeilfuss02/to-do-list-app-fullstack/internal/ports"
)

// TaskService handles owner-scoped task operations
type TaskService struct {
	taskRepo ports.TaskRepository
	logger   *logger.Logger
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo ports.TaskRepository, logger *logger.Logger) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

// CreateTask creates a new task for the owner. Status always starts as
// pending regardless of input and priority defaults to medium.
func (s *TaskService) CreateTask(ctx context.Context, ownerID uuid.UUID, req ports.CreateTaskRequest) (*entities.Task, error) {
	priority := req.Priority
	if priority == "" {
		priority = entities.PriorityMedium
	}

	var description *string
	if req.Description != "" {
		description = &req.Description
	}

	// An empty-string deadline decodes to a zero Date; store NULL, not
	// year one.
	deadline := req.Deadline
	if deadline != nil && deadline.IsZero() {
		deadline = nil
	}

	now := time.Now()
	task := &entities.Task{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: description,
		Deadline:    deadline,
		Priority:    priority,
		Status:      entities.TaskStatusPending,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Info("Task created successfully", "task_id", task.ID, "owner_id", ownerID)

	return task, nil
}

// ListTasks returns all of the owner's tasks, newest first.
func (s *TaskService) ListTasks(ctx context.Context, ownerID uuid.UUID) ([]*entities.Task, error) {
	tasks, err := s.taskRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// UpdateTask applies a partial update to a task the owner holds.
// Fields left empty in the request keep their stored values; an update
// can therefore never clear a field. Returns ErrTaskNotFound when no
// task matches both id and owner.
func (s *TaskService) UpdateTask(ctx context.Context, id, ownerID uuid.UUID, req ports.UpdateTaskRequest) error {
	task, err := s.taskRepo.GetByOwner(ctx, id, ownerID)
	if err != nil {
		return err
	}

	if req.Title != "" {
		task.Title = req.Title
	}
	if req.Description != "" {
		task.Description = &req.Description
	}
	if req.Deadline != nil && !req.Deadline.IsZero() {
		task.Deadline = req.Deadline
	}
	if req.Priority != "" {
		task.Priority = req.Priority
	}
	if req.Status != "" {
		task.Status = req.Status
	}
	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return err
	}

	s.logger.Info("Task updated successfully", "task_id", id, "owner_id", ownerID)

	return nil
}

// DeleteTask removes a task the owner holds. Returns ErrTaskNotFound
// when no task matches both id and owner.
func (s *TaskService) DeleteTask(ctx context.Context, id, ownerID uuid.UUID) error {
	if err := s.taskRepo.Delete(ctx, id, ownerID); err != nil {
		return err
	}

	s.logger.Info("Task deleted successfully", "task_id", id, "owner_id", ownerID)

	return nil
}
