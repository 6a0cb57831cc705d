package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/authcore/account-service/internal/core/domain"
	"github.com/authcore/account-service/internal/core/ports"
)

// RegistrationService enforces uniqueness and password-strength rules before
// creating an account.
type RegistrationService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewRegistrationService(users ports.UserRepository, logger zerolog.Logger) *RegistrationService {
	return &RegistrationService{users: users, logger: logger}
}

// Register evaluates every rule and collects the violations rather than
// stopping at the first failure. Zero violations creates the user with a
// bcrypt-hashed password; any violation leaves the store untouched.
func (s *RegistrationService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	var violations domain.ValidationErrors

	usernameTaken, err := s.users.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, fmt.Errorf("register: check username: %w", err)
	}
	if usernameTaken {
		violations = append(violations, domain.ViolationUsernameTaken)
	}

	emailTaken, err := s.users.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("register: check email: %w", err)
	}
	if emailTaken {
		violations = append(violations, domain.ViolationEmailTaken)
	}

	if len(input.Password) < domain.MinPasswordLength {
		violations = append(violations, domain.ViolationPasswordTooShort)
	}

	if len(violations) > 0 {
		return nil, violations
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Str("username", input.Username).Msg("failed to create user")
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Msg("account created")
	return created, nil
}
