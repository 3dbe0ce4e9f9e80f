package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "gatekeeper/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	serve := func(header string) (*httptest.ResponseRecorder, string) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set(deliverycontext.HeaderXRequestID, header)
		}
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(req, rec)

		var seen string
		err := m.Process(func(c echo.Context) error {
			ctx := c.Request().Context()
			seen = deliverycontext.GetRequestIDFromContext(ctx)
			require.NotNil(t, deliverycontext.GetLogger(ctx))

			return nil
		})(c)
		require.NoError(t, err)

		return rec, seen
	}

	t.Run("keeps the client request id", func(t *testing.T) {
		rec, seen := serve("req-123")

		assert.Equal(t, "req-123", seen)
		assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("replaces an unusable request id", func(t *testing.T) {
		rec, seen := serve("two words")

		assert.NotEqual(t, "two words", seen)
		assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("generates one when missing", func(t *testing.T) {
		rec, seen := serve("")

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
	})
}
