package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/eduardoBeilfuss02/to-do-list-app-fullstack/internal/domain/entities"
	"github.com/eduardoBeilfuss02/to-do-list-app-fullstack/internal/infrastructure/logger"
	"github.com/eduardoBeilfuss02/to-do-list-app-fullstack/internal/ports"
)

// NotificationService derives deadline reminders from a user's pending
// tasks and manages the read flag. Generation runs synchronously on
// every notification fetch; there is no background scheduler.
type NotificationService struct {
	taskRepo         ports.TaskRepository
	notificationRepo ports.NotificationRepository
	logger           *logger.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(taskRepo ports.TaskRepository, notificationRepo ports.NotificationRepository, logger *logger.Logger) *NotificationService {
	return &NotificationService{
		taskRepo:         taskRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// GenerateForUser creates reminders for the owner's pending tasks whose
// deadline has arrived or passed. At most one notification ever exists
// per task: the dedup check is existence-only, so a reminder written as
// "due today" keeps that wording even after the task becomes overdue.
func (s *NotificationService) GenerateForUser(ctx context.Context, ownerID uuid.UUID) error {
	tasks, err := s.taskRepo.ListPendingWithDeadline(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("failed to load pending tasks: %w", err)
	}

	today := entities.Today()

	for _, task := range tasks {
		message := task.ReminderMessage(today)
		if message == "" {
			continue
		}

		exists, err := s.notificationRepo.ExistsForTask(ctx, task.ID)
		if err != nil {
			return fmt.Errorf("failed to check existing notification: %w", err)
		}
		if exists {
			continue
		}

		notification := &entities.Notification{
			ID:      uuid.New(),
			OwnerID: ownerID,
			TaskID:  task.ID,
			Message: message,
			SentAt:  time.Now(),
			Read:    false,
		}

		if err := s.notificationRepo.Create(ctx, notification); err != nil {
			// A concurrent request generated the reminder between the
			// existence check and the insert; the unique index on
			// task_id turns that race into a no-op.
			if errors.Is(err, entities.ErrNotificationExists) {
				continue
			}
			return fmt.Errorf("failed to create notification: %w", err)
		}

		s.logger.Info("Notification generated", "notification_id", notification.ID, "task_id", task.ID, "owner_id", ownerID)
	}

	return nil
}

// ListUnread returns the owner's unread notifications, newest first.
func (s *NotificationService) ListUnread(ctx context.Context, ownerID uuid.UUID) ([]*entities.Notification, error) {
	notifications, err := s.notificationRepo.ListUnreadByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return notifications, nil
}

// MarkRead flips a notification's read flag for its owner. Returns
// ErrNotificationNotFound when no notification matches both id and
// owner.
func (s *NotificationService) MarkRead(ctx context.Context, id, ownerID uuid.UUID) error {
	if err := s.notificationRepo.MarkRead(ctx, id, ownerID); err != nil {
		return err
	}

	s.logger.Info("Notification marked as read", "notification_id", id, "owner_id", ownerID)

	return nil
}
