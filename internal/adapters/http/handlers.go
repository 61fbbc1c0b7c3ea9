package http

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys set by the auth middleware.
const (
	ContextKeyUserID   = "user"
	ContextKeyUserName = "user_name"
)

func getUserIDFromContext(c echo.Context) uuid.UUID {
	userID, ok := c.Get(ContextKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil
	}

	return userID
}
