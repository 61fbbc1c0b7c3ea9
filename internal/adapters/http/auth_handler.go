package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eduardoBeilfuss02/to-do-list-app-fullstack/internal/domain/entities"
	"github.com/eduardoBeilfuss02/to-do-list-app-fullstack/internal/infrastructure/logger"
	"github.com/eduardoBeilfuss02/to-do-list-app-fullstack/internal/ports"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	authService ports.AuthService
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService ports.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register handles user registration
func (h *AuthHandler) Register(c echo.Context) error {
	var req ports.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.Register(c.Request().Context(), req); err != nil {
		if errors.Is(err, entities.ErrDuplicateUsername) {
			return echo.NewHTTPError(http.StatusConflict, "Username already exists.")
		}
		h.logger.Error("Register failed", "error", err, "username", req.Username)
		return echo.NewHTTPError(http.StatusInternalServerError, "An unexpected server error occurred.")
	}

	return c.JSON(http.StatusCreated, ports.MessageResponse{Message: "User created successfully!"})
}

// Login handles user login
func (h *AuthHandler) Login(c echo.Context) error {
	var req ports.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	response, err := h.authService.Login(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, entities.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid username or password.")
		}
		h.logger.Error("Login failed", "error", err, "username", req.Username)
		return echo.NewHTTPError(http.StatusInternalServerError, "An unexpected server error occurred.")
	}

	return c.JSON(http.StatusOK, response)
}
