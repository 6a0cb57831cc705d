package ports

import (
	"context"

	"github.com/authcore/account-service/internal/core/domain"
)

// LoginResult is returned on a successful login. Token is the bearer
// credential handed to the client; Session is the server-side record it
// refers to.
type LoginResult struct {
	Token   string
	Session *domain.Session
	User    *domain.User
}

// AuthService validates login credentials and manages session lifecycle.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
}
