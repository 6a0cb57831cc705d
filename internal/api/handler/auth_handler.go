package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/authcore/account-service/internal/api/metrics"
	"github.com/authcore/account-service/internal/core/domain"
	"github.com/authcore/account-service/internal/core/ports"
)

// AuthHandler serves registration, login, logout, and the authenticated
// "who am I" endpoint.
type AuthHandler struct {
	register ports.RegistrationService
	auth     ports.AuthService
}

func NewAuthHandler(register ports.RegistrationService, auth ports.AuthService) *AuthHandler {
	return &AuthHandler{register: register, auth: auth}
}

// Register creates a new account.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  violationsResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.register.Register(c.Request().Context(), ports.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		var ve domain.ValidationErrors
		if errors.As(err, &ve) {
			metrics.RegistrationsTotal.WithLabelValues("rejected").Inc()
			return c.JSON(http.StatusUnprocessableEntity, toViolations(ve))
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, registerResponse{
		User:     toUserResponse(user),
		Message:  "account created successfully, login now",
		Redirect: "/auth/login",
	})
}

// Login authenticates credentials and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("denied").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Token:    result.Token,
		User:     toUserResponse(result.User),
		Redirect: "/home",
	})
}

// Logout revokes the caller's session.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  logoutResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	if err := h.auth.Logout(c.Request().Context(), session.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logoutResponse{Redirect: "/auth/login"})
}

// Me returns the account bound to the caller's session.
//
// @Summary      Current session's user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"user_id":    session.UserID,
		"username":   session.Username,
		"session_id": session.ID,
		"expires_at": session.ExpiresAt,
	})
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
		Email:     u.Email,
	}
}

func toViolations(ve domain.ValidationErrors) violationsResponse {
	items := make([]violationItem, 0, len(ve))
	for _, v := range ve {
		items = append(items, violationItem{Code: v.Code, Message: v.Message})
	}
	return violationsResponse{Errors: items}
}
