package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/authcore/account-service/internal/core/domain"
	"github.com/authcore/account-service/internal/core/ports"
)

type stubResetService struct {
	requestFn  func(ctx context.Context, email string) (string, error)
	confirmFn  func(ctx context.Context, tokenID string) (bool, error)
	completeFn func(ctx context.Context, input ports.CompleteResetInput) error
}

func (s *stubResetService) RequestReset(ctx context.Context, email string) (string, error) {
	return s.requestFn(ctx, email)
}

func (s *stubResetService) ConfirmTokenExists(ctx context.Context, tokenID string) (bool, error) {
	return s.confirmFn(ctx, tokenID)
}

func (s *stubResetService) CompleteReset(ctx context.Context, input ports.CompleteResetInput) error {
	return s.completeFn(ctx, input)
}

func resetContext(e *echo.Echo, method, path, body, resetID string) (echo.Context, *httptest.ResponseRecorder) {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if resetID != "" {
		c.SetParamNames("resetID")
		c.SetParamValues(resetID)
	}
	return c, rec
}

func TestResetHandler_ForgotPassword_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubResetService{
		requestFn: func(ctx context.Context, email string) (string, error) {
			if email != "bob@example.com" {
				t.Fatalf("unexpected email: %s", email)
			}
			return "tok_1", nil
		},
	}
	h := NewResetHandler(stub)

	c, rec := resetContext(e, http.MethodPost, "/auth/forgot-password", `{"email":"bob@example.com"}`, "")
	if err := h.ForgotPassword(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp forgotPasswordResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ResetID != "tok_1" {
		t.Fatalf("unexpected reset id: %q", resp.ResetID)
	}
	if resp.Redirect != "/auth/password-reset-sent/tok_1" {
		t.Fatalf("unexpected redirect: %q", resp.Redirect)
	}
}

func TestResetHandler_ForgotPassword_UnknownEmail(t *testing.T) {
	e := newTestEcho()
	stub := &stubResetService{
		requestFn: func(ctx context.Context, email string) (string, error) {
			return "", domain.ErrUserNotFound
		},
	}
	h := NewResetHandler(stub)

	c, _ := resetContext(e, http.MethodPost, "/auth/forgot-password", `{"email":"ghost@example.com"}`, "")
	err := h.ForgotPassword(c)

	var he *echo.HTTPError
	if ok := errorAs(err, &he); !ok || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
	// The message echoes the submitted address.
	if !strings.Contains(he.Message.(string), "ghost@example.com") {
		t.Fatalf("expected email in message, got %v", he.Message)
	}
}

func TestResetHandler_ResetSent(t *testing.T) {
	e := newTestEcho()
	h := NewResetHandler(&stubResetService{
		confirmFn: func(ctx context.Context, tokenID string) (bool, error) {
			return tokenID == "tok_1", nil
		},
	})

	c, rec := resetContext(e, http.MethodGet, "/auth/password-reset-sent/tok_1", "", "tok_1")
	if err := h.ResetSent(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	c, _ = resetContext(e, http.MethodGet, "/auth/password-reset-sent/tok_2", "", "tok_2")
	err := h.ResetSent(c)
	var he *echo.HTTPError
	if ok := errorAs(err, &he); !ok || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown token, got %v", err)
	}
}

func TestResetHandler_ResetPassword_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubResetService{
		completeFn: func(ctx context.Context, input ports.CompleteResetInput) error {
			if input.TokenID != "tok_1" || input.Password != "abcde" || input.ConfirmPassword != "abcde" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return nil
		},
	}
	h := NewResetHandler(stub)

	c, rec := resetContext(e, http.MethodPost, "/auth/reset-password/tok_1",
		`{"password":"abcde","confirm_password":"abcde"}`, "tok_1")
	if err := h.ResetPassword(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp resetPasswordResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Redirect != "/auth/login" {
		t.Fatalf("expected login redirect, got %q", resp.Redirect)
	}
}

func TestResetHandler_ResetPassword_ViolationBatch(t *testing.T) {
	e := newTestEcho()
	stub := &stubResetService{
		completeFn: func(ctx context.Context, input ports.CompleteResetInput) error {
			return domain.ValidationErrors{
				domain.ViolationPasswordMismatch,
				domain.ViolationResetLinkExpired,
			}
		},
	}
	h := NewResetHandler(stub)

	c, rec := resetContext(e, http.MethodPost, "/auth/reset-password/tok_1",
		`{"password":"abcde","confirm_password":"abcdf"}`, "tok_1")
	if err := h.ResetPassword(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}

	var resp violationsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Errors) != 2 {
		t.Fatalf("expected 2 violations, got %+v", resp.Errors)
	}
}

func TestResetHandler_ResetPassword_UnknownToken(t *testing.T) {
	e := newTestEcho()
	stub := &stubResetService{
		completeFn: func(ctx context.Context, input ports.CompleteResetInput) error {
			return domain.ErrTokenNotFound
		},
	}
	h := NewResetHandler(stub)

	c, _ := resetContext(e, http.MethodPost, "/auth/reset-password/gone",
		`{"password":"abcde","confirm_password":"abcde"}`, "gone")
	if err := h.ResetPassword(c); err != domain.ErrTokenNotFound {
		t.Fatalf("expected ErrTokenNotFound to propagate, got %v", err)
	}
}
