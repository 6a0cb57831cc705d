package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/authcore/account-service/internal/core/domain"
)

type stubValidator struct {
	validateFn func(ctx context.Context, token string) (*domain.Session, error)
}

func (s *stubValidator) Validate(ctx context.Context, token string) (*domain.Session, error) {
	return s.validateFn(ctx, token)
}

func runAuth(t *testing.T, header string, v SessionValidator) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
	return rec, Auth(v)(next)(c)
}

func TestAuth_ValidToken(t *testing.T) {
	v := &stubValidator{
		validateFn: func(ctx context.Context, token string) (*domain.Session, error) {
			if token != "good" {
				t.Fatalf("unexpected token: %s", token)
			}
			return &domain.Session{ID: "sess_1", Username: "alice"}, nil
		},
	}

	rec, err := runAuth(t, "Bearer good", v)
	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	v := &stubValidator{
		validateFn: func(ctx context.Context, token string) (*domain.Session, error) {
			t.Fatalf("validator should not be called")
			return nil, nil
		},
	}

	_, err := runAuth(t, "", v)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	v := &stubValidator{
		validateFn: func(ctx context.Context, token string) (*domain.Session, error) {
			t.Fatalf("validator should not be called")
			return nil, nil
		},
	}

	_, err := runAuth(t, "Token abc", v)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_RevokedSession(t *testing.T) {
	v := &stubValidator{
		validateFn: func(ctx context.Context, token string) (*domain.Session, error) {
			return nil, domain.ErrSessionNotFound
		},
	}

	_, err := runAuth(t, "Bearer stale", v)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
