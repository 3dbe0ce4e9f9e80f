// Package middleware holds echo middleware shared by every HTTP delivery.
package middleware

import (
	"log/slog"

	deliverycontext "gatekeeper/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware tags each request with an ID and stores a logger carrying it in the request context.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses the client's X-Request-Id when it is usable and echoes the final ID in the response.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := deliverycontext.NormalizeRequestID(c.Request().Header.Get(deliverycontext.HeaderXRequestID))
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx, _ := deliverycontext.WithRequest(c.Request().Context(), m.logger, requestID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
