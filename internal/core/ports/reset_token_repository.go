package ports

import (
	"context"

	"github.com/authcore/account-service/internal/core/domain"
)

// ResetTokenRepository is the ledger of outstanding password-reset tokens.
type ResetTokenRepository interface {
	Create(ctx context.Context, token *domain.PasswordResetToken) error
	FindByID(ctx context.Context, id string) (*domain.PasswordResetToken, error)
	Exists(ctx context.Context, id string) (bool, error)
	DeleteByID(ctx context.Context, id string) error
	// Consume atomically fetches and deletes the token in a single operation.
	// When two completions race on the same id, exactly one receives the
	// token; the other gets domain.ErrTokenNotFound.
	Consume(ctx context.Context, id string) (*domain.PasswordResetToken, error)
}
