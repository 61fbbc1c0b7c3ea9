package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/eduardoBeilfuss02/to-do-list-app-fullstack/internal/domain/entities"
	"github.com/eduardoBeilfuss02/to-do-list-app-fullstack/internal/ports"
)

// NotificationRepositoryImpl implements the NotificationRepository
// interface. The notifications table carries a unique index on task_id,
// so concurrent generators cannot insert two reminders for one task.
type NotificationRepositoryImpl struct {
	db *sqlx.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *sqlx.DB) ports.NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) Create(ctx context.Context, notification *entities.Notification) error {
	query := r.db.Rebind(`
		INSERT INTO notifications (id, owner_id, task_id, message, sent_at, read)
		VALUES (?, ?, ?, ?, ?, ?)`)

	_, err := r.db.ExecContext(ctx, query,
		notification.ID, notification.OwnerID, notification.TaskID,
		notification.Message, notification.SentAt, notification.Read)
	if err != nil {
		if isUniqueViolation(err) {
			return entities.ErrNotificationExists
		}
		return fmt.Errorf("create notification: %w", err)
	}

	return nil
}

func (r *NotificationRepositoryImpl) ExistsForTask(ctx context.Context, taskID uuid.UUID) (bool, error) {
	query := r.db.Rebind(`SELECT EXISTS (SELECT 1 FROM notifications WHERE task_id = ?)`)

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, taskID)
	if err != nil {
		return false, fmt.Errorf("check notification exists: %w", err)
	}

	return exists, nil
}

func (r *NotificationRepositoryImpl) ListUnreadByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Notification, error) {
	query := r.db.Rebind(`
		SELECT id, owner_id, task_id, message, sent_at, read
		FROM notifications
		WHERE owner_id = ? AND read = ?
		ORDER BY sent_at DESC, id DESC`)

	notifications := []*entities.Notification{}
	err := r.db.SelectContext(ctx, &notifications, query, ownerID, false)
	if err != nil {
		return nil, fmt.Errorf("list unread notifications: %w", err)
	}

	return notifications, nil
}

func (r *NotificationRepositoryImpl) MarkRead(ctx context.Context, id, ownerID uuid.UUID) error {
	query := r.db.Rebind(`UPDATE notifications SET read = ? WHERE id = ? AND owner_id = ?`)

	result, err := r.db.ExecContext(ctx, query, true, id, ownerID)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return entities.ErrNotificationNotFound
	}

	return nil
}
