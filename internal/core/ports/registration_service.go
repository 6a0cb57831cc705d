package ports

import (
	"context"

	"github.com/authcore/account-service/internal/core/domain"
)

// RegisterInput carries all fields needed to create an account. Fields are
// bound and syntactically validated at the transport boundary before the
// service sees them.
type RegisterInput struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
}

// RegistrationService validates and creates new accounts. On rule failures
// it returns a domain.ValidationErrors carrying every applicable violation
// and performs no mutation.
type RegistrationService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
}
