package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/authcore/account-service/internal/core/domain"
)

// SessionValidator resolves a bearer token to an active session.
type SessionValidator interface {
	Validate(ctx context.Context, token string) (*domain.Session, error)
}

// Auth validates the bearer token against the session store and injects the
// session into context under "session". A structurally valid token whose
// session has been revoked is rejected.
func Auth(sessions SessionValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			session, err := sessions.Validate(c.Request().Context(), parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or revoked session")
			}

			c.Set("session", session)
			return next(c)
		}
	}
}
