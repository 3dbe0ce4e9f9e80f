package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	// ContextKeyUser holds the authenticated *entity.User.
	ContextKeyUser = "user"

	bearerScheme = "bearer"
)

// AuthMiddleware authenticates requests carrying an access token in the Authorization header.
type AuthMiddleware struct {
	sessionUC usecase.SessionUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessionUC usecase.SessionUsecase) *AuthMiddleware {
	return &AuthMiddleware{sessionUC: sessionUC}
}

// Authenticate rejects the request with ErrUnauthorized unless the bearer token resolves to an active user.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := BearerToken(c)
		if !ok {
			return domainerrors.ErrUnauthorized
		}

		ctx := c.Request().Context()
		user, err := m.sessionUC.Authenticate(ctx, token)
		if err != nil {
			return err
		}

		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("username", user.Username)))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		c.Set(ContextKeyUser, user)

		return next(c)
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
// The scheme is matched case-insensitively.
func BearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}

// CurrentUser returns the user stored by Authenticate.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(ContextKeyUser).(*entity.User)

	return user, ok && user != nil
}
