package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/eduardoBeilfuss02/to-do-list-app-fullstack/internal/domain/entities"
	"github.com/eduardoBeilfuss02/to-do-list-app-fullstack/internal/infrastructure/logger"
)

func TestNotificationHandlerGetGeneratesFirst(t *testing.T) {
	ownerID := uuid.New()
	generated := false

	svc := &stubNotificationService{
		generateFn: func(_ context.Context, gotOwner uuid.UUID) error {
			if gotOwner != ownerID {
				t.Errorf("generate owner = %s, want %s", gotOwner, ownerID)
			}
			generated = true
			return nil
		},
		listFn: func(_ context.Context, gotOwner uuid.UUID) ([]*entities.Notification, error) {
			if !generated {
				t.Error("ListUnread called before GenerateForUser")
			}
			return []*entities.Notification{
				{
					ID:      uuid.New(),
					OwnerID: gotOwner,
					TaskID:  uuid.New(),
					Message: `Your task "Pay rent" is overdue!`,
					SentAt:  time.Now(),
				},
			}, nil
		},
	}
	handler := NewNotificationHandler(svc, logger.NewNop())

	c, rec := newTestContext(t, http.MethodGet, "/api/notifications", "")
	c.Set(ContextKeyUserID, ownerID)

	if err := handler.GetNotifications(c); err != nil {
		t.Fatalf("GetNotifications() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}

	var notifications []*entities.Notification
	if err := json.Unmarshal(rec.Body.Bytes(), &notifications); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(notifications) != 1 || notifications[0].Message != `Your task "Pay rent" is overdue!` {
		t.Errorf("notifications = %+v", notifications)
	}
}

func TestNotificationHandlerGetEmpty(t *testing.T) {
	svc := &stubNotificationService{
		generateFn: func(context.Context, uuid.UUID) error { return nil },
		listFn: func(context.Context, uuid.UUID) ([]*entities.Notification, error) {
			return []*entities.Notification{}, nil
		},
	}
	handler := NewNotificationHandler(svc, logger.NewNop())

	c, rec := newTestContext(t, http.MethodGet, "/api/notifications", "")
	c.Set(ContextKeyUserID, uuid.New())

	if err := handler.GetNotifications(c); err != nil {
		t.Fatalf("GetNotifications() error = %v", err)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Errorf("body = %q, want empty JSON array", body)
	}
}

func TestNotificationHandlerMarkAsRead(t *testing.T) {
	ownerID := uuid.New()
	notificationID := uuid.New()

	svc := &stubNotificationService{
		markReadFn: func(_ context.Context, gotID, gotOwner uuid.UUID) error {
			if gotID != notificationID || gotOwner != ownerID {
				t.Errorf("MarkRead(%s, %s), want (%s, %s)", gotID, gotOwner, notificationID, ownerID)
			}
			return nil
		},
	}
	handler := NewNotificationHandler(svc, logger.NewNop())

	c, rec := newTestContext(t, http.MethodPatch, "/api/notifications/"+notificationID.String()+"/read", "")
	c.SetParamNames("id")
	c.SetParamValues(notificationID.String())
	c.Set(ContextKeyUserID, ownerID)

	if err := handler.MarkAsRead(c); err != nil {
		t.Fatalf("MarkAsRead() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestNotificationHandlerMarkAsReadNotFound(t *testing.T) {
	svc := &stubNotificationService{
		markReadFn: func(context.Context, uuid.UUID, uuid.UUID) error {
			return entities.ErrNotificationNotFound
		},
	}
	handler := NewNotificationHandler(svc, logger.NewNop())

	id := uuid.New()
	c, _ := newTestContext(t, http.MethodPatch, "/api/notifications/"+id.String()+"/read", "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	c.Set(ContextKeyUserID, uuid.New())

	he := requireHTTPError(t, handler.MarkAsRead(c), http.StatusNotFound)
	if he.Message != "Notification not found or does not belong to the user." {
		t.Errorf("message = %v", he.Message)
	}
}
