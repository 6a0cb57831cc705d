package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/authcore/account-service/internal/core/domain"
	"github.com/authcore/account-service/internal/core/ports"
)

// ResetEmailBuilder renders the subject and body of the reset email for a
// given recipient and reset link.
type ResetEmailBuilder interface {
	BuildResetEmail(username, link string) (subject, body string, err error)
}

// ResetService coordinates the reset-token ledger, the credential store, and
// the outbound mail queue.
type ResetService struct {
	users   ports.UserRepository
	tokens  ports.ResetTokenRepository
	mail    ports.MailEnqueuer
	emails  ResetEmailBuilder
	baseURL string
	logger  zerolog.Logger
}

func NewResetService(
	users ports.UserRepository,
	tokens ports.ResetTokenRepository,
	mail ports.MailEnqueuer,
	emails ResetEmailBuilder,
	baseURL string,
	logger zerolog.Logger,
) *ResetService {
	return &ResetService{
		users:   users,
		tokens:  tokens,
		mail:    mail,
		emails:  emails,
		baseURL: baseURL,
		logger:  logger,
	}
}

// RequestReset issues a reset token for the account owning email and queues
// the reset link for delivery. Delivery is fire-and-forget: a failed send is
// logged by the mail workers but the token is still considered issued.
//
// Earlier outstanding tokens for the same user are left alive; the ledger
// allows multiple concurrent tokens per user.
func (s *ResetService) RequestReset(ctx context.Context, email string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrUserNotFound
		}
		return "", fmt.Errorf("request reset: %w", err)
	}

	token := &domain.PasswordResetToken{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Email:     user.Email,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.tokens.Create(ctx, token); err != nil {
		return "", fmt.Errorf("request reset: persist token: %w", err)
	}

	link := fmt.Sprintf("%s/auth/reset-password/%s", s.baseURL, token.ID)
	subject, body, err := s.emails.BuildResetEmail(user.Username, link)
	if err != nil {
		// The token is already issued; a broken template must not undo that.
		s.logger.Error().Err(err).Str("token_id", token.ID).Msg("failed to render reset email")
	} else {
		s.mail.Enqueue(ports.OutboundEmail{To: user.Email, Subject: subject, Body: body})
	}

	s.logger.Info().Str("username", user.Username).Str("token_id", token.ID).Msg("reset token issued")
	return token.ID, nil
}

// ConfirmTokenExists gates the "check your email" confirmation page. It is a
// pure existence check; expiry is only evaluated on completion.
func (s *ResetService) ConfirmTokenExists(ctx context.Context, tokenID string) (bool, error) {
	return s.tokens.Exists(ctx, tokenID)
}

// CompleteReset consumes a token and updates the owner's password.
//
// Validation is evaluated as a batch so the caller sees every problem at
// once. Expiry detection deletes the token immediately, even when other
// violations coexist; all other violations leave the token intact for retry.
// The success path consumes the token with an atomic fetch-and-delete before
// writing the new hash, so two racing completions cannot both succeed.
func (s *ResetService) CompleteReset(ctx context.Context, input ports.CompleteResetInput) error {
	token, err := s.tokens.FindByID(ctx, input.TokenID)
	if err != nil {
		if errors.Is(err, domain.ErrTokenNotFound) {
			return domain.ErrTokenNotFound
		}
		return fmt.Errorf("complete reset: %w", err)
	}

	var violations domain.ValidationErrors

	if input.Password != input.ConfirmPassword {
		violations = append(violations, domain.ViolationPasswordMismatch)
	}
	if len(input.Password) < domain.MinPasswordLength {
		violations = append(violations, domain.ViolationPasswordTooShort)
	}
	if token.Expired(time.Now().UTC()) {
		violations = append(violations, domain.ViolationResetLinkExpired)
		if err := s.tokens.DeleteByID(ctx, token.ID); err != nil && !errors.Is(err, domain.ErrTokenNotFound) {
			s.logger.Warn().Err(err).Str("token_id", token.ID).Msg("failed to delete expired token")
		} else {
			s.logger.Info().Str("token_id", token.ID).Msg("expired reset token deleted")
		}
	}

	if len(violations) > 0 {
		return violations
	}

	// Consume before writing: the loser of a concurrent completion race
	// observes ErrTokenNotFound here and no second password write happens.
	consumed, err := s.tokens.Consume(ctx, token.ID)
	if err != nil {
		if errors.Is(err, domain.ErrTokenNotFound) {
			return domain.ErrTokenNotFound
		}
		return fmt.Errorf("complete reset: consume token: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("complete reset: hash password: %w", err)
	}

	if err := s.users.SetPassword(ctx, consumed.UserID, string(hash)); err != nil {
		return fmt.Errorf("complete reset: update password: %w", err)
	}

	s.logger.Info().Str("user_id", consumed.UserID).Str("token_id", consumed.ID).Msg("password reset completed")
	return nil
}
