package ports

import (
	"context"

	"github.com/authcore/account-service/internal/core/domain"
)

// SessionStore holds active sessions. A session absent from the store is
// revoked regardless of what its bearer token claims.
type SessionStore interface {
	Save(ctx context.Context, session *domain.Session) error
	Find(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}
