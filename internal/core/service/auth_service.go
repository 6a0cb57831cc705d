package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/authcore/account-service/internal/core/domain"
	"github.com/authcore/account-service/internal/core/ports"
)

// AuthService validates login credentials and delegates session lifecycle to
// the SessionManager.
type AuthService struct {
	users    ports.UserRepository
	sessions *SessionManager
	logger   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions *SessionManager, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, logger: logger}
}

// Login verifies the password for the named user and establishes a session.
// An unknown username and a wrong password both yield ErrInvalidCredentials
// so the response does not reveal which part was wrong.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, session, err := s.sessions.Issue(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", user.Username).Str("session_id", session.ID).Msg("login succeeded")
	return &ports.LoginResult{Token: token, Session: session, User: user}, nil
}

// Logout revokes the session. Revoking an already-revoked session is not an
// error.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Revoke(ctx, sessionID); err != nil {
		return err
	}
	s.logger.Info().Str("session_id", sessionID).Msg("logout")
	return nil
}
