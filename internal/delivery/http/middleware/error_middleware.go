package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/delivery/http/response"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware renders every handler error as the unified JSON envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.Any("error", err),
				slog.String("code", appErr.ErrorCode()),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
			// Internal details never reach the client
			_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), "")

			return
		}

		logger.Debug("Request rejected", slog.String("code", appErr.ErrorCode()))
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message := http.StatusText(httpErr.Code)
		switch msg := httpErr.Message.(type) {
		case string:
			message = msg
		case error:
			message = msg.Error()
		case nil:
		default:
			message = fmt.Sprint(msg)
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, "")

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Error(c, http.StatusInternalServerError, domainerrors.ErrInternalError.ErrorCode(), "Internal server error, please try again later", "")
}
