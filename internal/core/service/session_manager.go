package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/authcore/account-service/internal/core/domain"
	"github.com/authcore/account-service/internal/core/ports"
)

const defaultSessionTTL = 24 * time.Hour

// SessionManager issues and validates sessions. The client holds an HS256
// JWT whose sid claim names a record in the SessionStore; the store is the
// source of truth, so deleting the record revokes the session even while the
// JWT is still unexpired.
type SessionManager struct {
	store  ports.SessionStore
	secret string
	ttl    time.Duration
	logger zerolog.Logger
}

func NewSessionManager(store ports.SessionStore, secret string, ttl time.Duration, logger zerolog.Logger) *SessionManager {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionManager{store: store, secret: secret, ttl: ttl, logger: logger}
}

// Issue creates a session bound to the user and returns the signed bearer
// token alongside the session record.
func (m *SessionManager) Issue(ctx context.Context, user *domain.User) (string, *domain.Session, error) {
	now := time.Now().UTC()
	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}

	if err := m.store.Save(ctx, session); err != nil {
		return "", nil, err
	}

	claims := jwt.MapClaims{
		"sid":      session.ID,
		"username": user.Username,
		"exp":      session.ExpiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(m.secret))
	if err != nil {
		return "", nil, err
	}

	return token, session, nil
}

// Validate parses the bearer token and confirms the session it names is
// still active. Returns ErrSessionNotFound for revoked or expired sessions.
func (m *SessionManager) Validate(ctx context.Context, token string) (*domain.Session, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(m.secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrSessionNotFound
	}

	sid, _ := claims["sid"].(string)
	if sid == "" {
		return nil, domain.ErrSessionNotFound
	}

	session, err := m.store.Find(ctx, sid)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

// Revoke deletes the session record; the matching JWT is useless afterwards.
func (m *SessionManager) Revoke(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return domain.ErrSessionNotFound
	}
	if err := m.store.Delete(ctx, sessionID); err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
		return err
	}
	return nil
}
