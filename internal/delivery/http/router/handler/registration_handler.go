package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/delivery/http/response"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/errors"
	"gatekeeper/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RegistrationHandlerParams holds dependencies for RegistrationHandler, injected by Fx.
type RegistrationHandlerParams struct {
	fx.In

	InvitationUC usecase.InvitationUsecase
	SessionUC    usecase.SessionUsecase
	Cookie       *RefreshCookie
	Logger       *slog.Logger
}

// RegistrationHandler serves invitation-gated registration.
type RegistrationHandler struct {
	invitationUC usecase.InvitationUsecase
	sessionUC    usecase.SessionUsecase
	cookie       *RefreshCookie
	logger       *slog.Logger
}

// NewRegistrationHandler is the constructor for RegistrationHandler, injected by Fx.
func NewRegistrationHandler(params RegistrationHandlerParams) *RegistrationHandler {
	return &RegistrationHandler{
		invitationUC: params.InvitationUC,
		sessionUC:    params.SessionUC,
		cookie:       params.Cookie,
		logger:       params.Logger,
	}
}

// Check reports whether the invitation in the "key" query parameter can still be used.
func (h *RegistrationHandler) Check(c echo.Context) error {
	key := c.QueryParam("key")
	if key == "" {
		return domainerrors.ErrInvalidInvitation
	}

	if _, err := h.invitationUC.Redeem(c.Request().Context(), key); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, invitationCheckResponse{Valid: true}, "")
}

// Register creates the user, consumes the invitation and starts a session for the new user.
func (h *RegistrationHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	user, err := h.invitationUC.Register(ctx, &usecase.RegisterInput{
		Token:    req.Key,
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	// The account exists from here on; a failed session only means the user has to log in.
	tokens, err := h.sessionUC.StartSession(ctx, user)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("Failed to start session after registration",
			slog.String("username", user.Username),
			slog.Any("error", err),
		)

		return response.Success(c, http.StatusCreated, map[string]any{"user": newUserResponse(user)}, "User registered successfully")
	}

	h.cookie.Set(c, tokens.RefreshToken, tokens.RefreshExpiresAt)

	return response.NoStore(c, http.StatusCreated, newTokenResponse(user, tokens), "User registered successfully")
}
