package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/artistdesk/artistdesk-api/internal/service"
	"github.com/artistdesk/artistdesk-api/internal/util"
)

type AuthHandler struct {
	auth     *service.AuthService
	resetURL string
}

func RegisterAuth(e *echo.Echo, auth *service.AuthService, resetURL string) {
	handler := &AuthHandler{auth: auth, resetURL: resetURL}

	e.POST("/token", handler.login)
	e.POST("/user", handler.register)
	e.POST("/change_password", handler.changePassword, RequireAuth(auth), RequireActive())
	e.POST("/forgot-password", handler.forgotPassword)
	e.POST("/reset-password", handler.resetPassword)
}

// login handles POST /token. The payload is form-encoded to match OAuth2
// password-grant clients.
func (h *AuthHandler) login(c echo.Context) error {
	username := strings.TrimSpace(c.FormValue("username"))
	password := c.FormValue("password")
	if username == "" || password == "" {
		return c.JSON(http.StatusBadRequest, util.Error("username and password required"))
	}

	token, expiresAt, err := h.auth.Login(c.Request().Context(), username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidLogin) {
			return unauthorized(c, err.Error())
		}
		return c.JSON(http.StatusInternalServerError, util.Error("unable to log in"))
	}

	return c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt.Format(time.RFC3339),
	})
}

// register handles POST /user
func (h *AuthHandler) register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" || strings.TrimSpace(req.EmailAddress) == "" {
		return c.JSON(http.StatusBadRequest, util.Error("username, password and email_address required"))
	}

	id, err := h.auth.Register(c.Request().Context(), service.RegisterInput{
		Username:     strings.TrimSpace(req.Username),
		Password:     req.Password,
		TypeOfEntity: req.TypeOfEntity,
		Name:         req.Name,
		Surname:      req.Surname,
		EmailAddress: strings.TrimSpace(req.EmailAddress),
		PhoneNumber:  req.PhoneNumber,
		VatID:        req.VatID,
		BankAccount:  req.BankAccount,
	})
	if err != nil {
		if errors.Is(err, service.ErrDuplicateUser) {
			return c.JSON(http.StatusConflict, util.Error(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("unable to register"))
	}

	return c.JSON(http.StatusCreated, RegisterResponse{UserID: id})
}

// changePassword handles POST /change_password
func (h *AuthHandler) changePassword(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return unauthorized(c, service.ErrUnauthorized.Error())
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if req.OldPassword == "" || req.NewPassword == "" {
		return c.JSON(http.StatusBadRequest, util.Error("old_password and new_password required"))
	}

	if err := h.auth.ChangePassword(c.Request().Context(), user, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrWrongPassword) {
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("unable to change password"))
	}

	return c.JSON(http.StatusOK, util.Message("password updated"))
}

// forgotPassword handles POST /forgot-password. The response is the same
// 202 whether or not the email matches an account.
func (h *AuthHandler) forgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if strings.TrimSpace(req.Email) == "" {
		return c.JSON(http.StatusBadRequest, util.Error("email required"))
	}

	if err := h.auth.ForgotPassword(c.Request().Context(), strings.TrimSpace(req.Email), h.resetURL); err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to process request"))
	}

	return c.JSON(http.StatusAccepted, util.Message("if the email exists, a reset link has been sent"))
}

// resetPassword handles POST /reset-password
func (h *AuthHandler) resetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if req.Token == "" || req.NewPassword == "" {
		return c.JSON(http.StatusBadRequest, util.Error("token and new_password required"))
	}

	if err := h.auth.ResetPassword(c.Request().Context(), req.Token, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrResetTokenInvalid), errors.Is(err, service.ErrResetTokenExpired):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		default:
			// ErrResetTokenOrphaned included: an orphaned token points at a
			// consistency fault, not a caller mistake.
			return c.JSON(http.StatusInternalServerError, util.Error("unable to reset password"))
		}
	}

	return c.JSON(http.StatusOK, util.Message("password has been reset"))
}
