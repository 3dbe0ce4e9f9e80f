// Package response writes the JSON envelope shared by every endpoint.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the envelope. Exactly one of Data and Error is set.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries the machine-readable code, such as "INVALID_INVITATION".
type ErrorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

func write(c echo.Context, body Response) error {
	if body.Message == "" {
		body.Message = http.StatusText(body.Code)
	}

	return c.JSON(body.Code, body)
}

func Success(c echo.Context, statusCode int, data any, message string) error {
	return write(c, Response{Success: true, Code: statusCode, Message: message, Data: data})
}

// NoStore writes a success envelope that carries credentials and must not be cached.
func NoStore(c echo.Context, statusCode int, data any, message string) error {
	header := c.Response().Header()
	header.Set("Cache-Control", "no-store")
	header.Set("Pragma", "no-cache")

	return Success(c, statusCode, data, message)
}

func Error(c echo.Context, statusCode int, errorCode, message, details string) error {
	return write(c, Response{
		Code:    statusCode,
		Message: message,
		Error:   &ErrorInfo{Code: errorCode, Details: details},
	})
}

// BindingError answers 400 for a body that could not be decoded. Validation failures go through
// the error handler instead.
func BindingError(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}
