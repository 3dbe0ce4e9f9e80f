// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"gatekeeper/internal/delivery/http/middleware"
	"gatekeeper/internal/delivery/http/response"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/errors"
	"gatekeeper/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Cookie    *RefreshCookie
	Logger    *slog.Logger
}

// SessionHandler serves login, refresh, logout and the current user's profile.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	cookie    *RefreshCookie
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		cookie:    params.Cookie,
		logger:    params.Logger,
	}
}

// Login exchanges username and password for an access token and sets the refresh cookie.
// Accepts both JSON and form-encoded credentials.
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.sessionUC.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookie.Set(c, output.Tokens.RefreshToken, output.Tokens.RefreshExpiresAt)

	return response.NoStore(c, http.StatusOK, newTokenResponse(output.User, output.Tokens), "Login successful")
}

// Refresh mints a new access token from the refresh cookie. The cookie is rewritten either way,
// carrying the rotated token when rotation happened.
func (h *SessionHandler) Refresh(c echo.Context) error {
	refreshToken, ok := h.cookie.Read(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	output, err := h.sessionUC.Refresh(c.Request().Context(), refreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookie.Set(c, output.Tokens.RefreshToken, output.Tokens.RefreshExpiresAt)

	return response.NoStore(c, http.StatusOK, newTokenResponse(output.User, output.Tokens), "Token refreshed successfully")
}

// Logout revokes the bearer token and the refresh cookie's token, then clears the cookie.
func (h *SessionHandler) Logout(c echo.Context) error {
	accessToken, ok := middleware.BearerToken(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}
	refreshToken, _ := h.cookie.Read(c)

	if err := h.sessionUC.Logout(c.Request().Context(), &usecase.LogoutInput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}); err != nil {
		return errors.WithStack(err)
	}

	h.cookie.Clear(c)

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// Me returns the authenticated user.
func (h *SessionHandler) Me(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	return response.Success(c, http.StatusOK, newUserResponse(user), "")
}

// UpdateProfile changes the authenticated user's email, full name or password.
func (h *SessionHandler) UpdateProfile(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := h.sessionUC.UpdateProfile(c.Request().Context(), user, &usecase.UpdateProfileInput{
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(updated), "Profile updated successfully")
}
