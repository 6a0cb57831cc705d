package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/authcore/account-service/internal/api/metrics"
	"github.com/authcore/account-service/internal/core/domain"
	"github.com/authcore/account-service/internal/core/ports"
)

// ResetHandler serves the forgot-password / reset-password flow.
type ResetHandler struct {
	reset ports.ResetService
}

func NewResetHandler(reset ports.ResetService) *ResetHandler {
	return &ResetHandler{reset: reset}
}

// ForgotPassword issues a reset token and emails the reset link.
//
// @Summary      Request a password reset link
// @Tags         reset
// @Accept       json
// @Produce      json
// @Param        body  body      forgotPasswordRequest  true  "Account email"
// @Success      200   {object}  forgotPasswordResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /auth/forgot-password [post]
func (h *ResetHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resetID, err := h.reset.RequestReset(c.Request().Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.ResetRequestsTotal.WithLabelValues("unknown_email").Inc()
			// Message echoes the submitted email, mirroring the long-standing
			// behaviour of this flow.
			return echo.NewHTTPError(http.StatusNotFound,
				fmt.Sprintf("no user with email '%s' was found", req.Email))
		}
		return err
	}

	metrics.ResetRequestsTotal.WithLabelValues("issued").Inc()
	return c.JSON(http.StatusOK, forgotPasswordResponse{
		ResetID:  resetID,
		Message:  "reset link sent, check your email",
		Redirect: "/auth/password-reset-sent/" + resetID,
	})
}

// ResetSent gates the "check your email" confirmation page. Existence only;
// expiry is evaluated when the reset is completed.
//
// @Summary      Confirm a reset token exists
// @Tags         reset
// @Produce      json
// @Param        resetID  path      string  true  "Reset token id"
// @Success      200      {object}  resetSentResponse
// @Failure      404      {object}  errorResponse
// @Router       /auth/password-reset-sent/{resetID} [get]
func (h *ResetHandler) ResetSent(c echo.Context) error {
	exists, err := h.reset.ConfirmTokenExists(c.Request().Context(), c.Param("resetID"))
	if err != nil {
		return err
	}
	if !exists {
		return echo.NewHTTPError(http.StatusNotFound, "invalid reset id")
	}
	return c.JSON(http.StatusOK, resetSentResponse{
		Message: "a reset link has been sent to your email",
	})
}

// ResetPassword consumes a token and sets the new password.
//
// @Summary      Complete a password reset
// @Tags         reset
// @Accept       json
// @Produce      json
// @Param        resetID  path      string                true  "Reset token id"
// @Param        body     body      resetPasswordRequest  true  "New password"
// @Success      200      {object}  resetPasswordResponse
// @Failure      400      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Failure      422      {object}  violationsResponse
// @Router       /auth/reset-password/{resetID} [post]
func (h *ResetHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.reset.CompleteReset(c.Request().Context(), ports.CompleteResetInput{
		TokenID:         c.Param("resetID"),
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		var ve domain.ValidationErrors
		if errors.As(err, &ve) {
			if ve.Has(domain.CodeResetLinkExpired) {
				metrics.ResetTokensExpiredTotal.Inc()
			}
			return c.JSON(http.StatusUnprocessableEntity, toViolations(ve))
		}
		return err
	}

	metrics.ResetsCompletedTotal.Inc()
	return c.JSON(http.StatusOK, resetPasswordResponse{
		Message:  "password reset completed, proceed to login",
		Redirect: "/auth/login",
	})
}
