package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/authcore/account-service/internal/core/domain"
)

// SessionKey is the echo context key under which the auth middleware stores
// the validated session.
const SessionKey = "session"

// ctxSession extracts the session injected by the Auth middleware and
// fast-fails before any service call when it is absent.
func ctxSession(c echo.Context) (*domain.Session, error) {
	session, _ := c.Get(SessionKey).(*domain.Session)
	if session == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return session, nil
}
