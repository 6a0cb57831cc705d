package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/authcore/account-service/internal/core/domain"
)

// stubSessionStore is an in-memory SessionStore.
type stubSessionStore struct {
	sessions map[string]*domain.Session
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*domain.Session)}
}

func (s *stubSessionStore) Save(_ context.Context, session *domain.Session) error {
	clone := *session
	s.sessions[session.ID] = &clone
	return nil
}

func (s *stubSessionStore) Find(_ context.Context, id string) (*domain.Session, error) {
	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	clone := *session
	return &clone, nil
}

func (s *stubSessionStore) Delete(_ context.Context, id string) error {
	if _, ok := s.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

func TestSessionManager_IssueAndValidate(t *testing.T) {
	store := newStubSessionStore()
	m := NewSessionManager(store, "secret", time.Hour, zerolog.Nop())

	user := &domain.User{ID: "user_1", Username: "alice"}
	token, session, err := m.Issue(context.Background(), user)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if token == "" || session.ID == "" {
		t.Fatalf("expected token and session id")
	}
	if session.UserID != "user_1" || session.Username != "alice" {
		t.Fatalf("session not bound to user: %+v", session)
	}

	got, err := m.Validate(context.Background(), token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if got.ID != session.ID {
		t.Fatalf("expected session %s, got %s", session.ID, got.ID)
	}
}

func TestSessionManager_Validate_WrongSecret(t *testing.T) {
	store := newStubSessionStore()
	m := NewSessionManager(store, "secret", time.Hour, zerolog.Nop())

	token, _, err := m.Issue(context.Background(), &domain.User{ID: "user_1", Username: "alice"})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	other := NewSessionManager(store, "different", time.Hour, zerolog.Nop())
	if _, err := other.Validate(context.Background(), token); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound for bad signature, got %v", err)
	}
}

func TestSessionManager_Revoke(t *testing.T) {
	store := newStubSessionStore()
	m := NewSessionManager(store, "secret", time.Hour, zerolog.Nop())

	token, session, err := m.Issue(context.Background(), &domain.User{ID: "user_1", Username: "alice"})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if err := m.Revoke(context.Background(), session.ID); err != nil {
		t.Fatalf("Revoke failed: %v", err)
	}

	// The JWT is still signed and unexpired, but the session record is gone.
	if _, err := m.Validate(context.Background(), token); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound after revoke, got %v", err)
	}

	// Revoking twice is not an error.
	if err := m.Revoke(context.Background(), session.ID); err != nil {
		t.Fatalf("second Revoke failed: %v", err)
	}
}
