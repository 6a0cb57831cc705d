package ports

import (
	"context"

	"github.com/authcore/account-service/internal/core/domain"
)

// UserRepository is the persistence boundary for user identity records and
// password hashes.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// SetPassword replaces the stored password hash for the given user.
	SetPassword(ctx context.Context, userID, passwordHash string) error
}
