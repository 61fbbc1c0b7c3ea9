package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	httpHandlers "github.com/eduardoBeilfuss02/to-do-list-app-fullstack/internal/adapters/http"
	"github.com/eduardoBeilfuss02/to-do-list-app-fullstack/internal/ports"
)

// authMiddleware validates bearer tokens on protected routes. A missing
// or malformed Authorization header is 401; a header that parses but
// carries an invalid or expired token is 403.
func (s *Server) authMiddleware(authService ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Access denied. No token provided.")
			}

			// The scheme is matched case-insensitively, so "bearer"
			// and "BEARER" are accepted too.
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "Access denied. No token provided.")
			}
			tokenString := parts[1]

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				s.logger.LogSecurityEvent("invalid_token", "", c.RealIP(), map[string]interface{}{
					"error": err.Error(),
				})
				return echo.NewHTTPError(http.StatusForbidden, "Invalid or expired token.")
			}

			// Set user claims in context
			c.Set(httpHandlers.ContextKeyUserID, claims.UserID)
			c.Set(httpHandlers.ContextKeyUserName, claims.Name)

			return next(c)
		}
	}
}
