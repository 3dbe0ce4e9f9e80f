package handler

import (
	"net/http"
	"time"

	"gatekeeper/config"

	"github.com/labstack/echo/v4"
)

// RefreshCookie owns the refresh token cookie. The token only travels in this cookie, never in a body.
type RefreshCookie struct {
	cfg config.CookieConfig
	now func() time.Time
}

// NewRefreshCookie is the constructor for RefreshCookie, injected by Fx.
func NewRefreshCookie(cfg *config.Config) *RefreshCookie {
	return &RefreshCookie{cfg: cfg.Auth.Cookie, now: time.Now}
}

// Set writes the refresh token with an expiry matching the token's own.
func (rc *RefreshCookie) Set(c echo.Context, token string, expiresAt time.Time) {
	cookie := rc.base()
	cookie.Value = token
	cookie.Expires = expiresAt
	cookie.MaxAge = max(int(expiresAt.Sub(rc.now()).Seconds()), 1)
	c.SetCookie(cookie)
}

// Clear expires the cookie in the browser. Attributes must match Set or the browser keeps the old one.
func (rc *RefreshCookie) Clear(c echo.Context) {
	cookie := rc.base()
	cookie.Expires = time.Unix(0, 0)
	cookie.MaxAge = -1
	c.SetCookie(cookie)
}

// Read returns the refresh token presented by the client, if any.
func (rc *RefreshCookie) Read(c echo.Context) (string, bool) {
	cookie, err := c.Cookie(rc.cfg.Name)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	return cookie.Value, true
}

func (rc *RefreshCookie) base() *http.Cookie {
	return &http.Cookie{
		Name:     rc.cfg.Name,
		Path:     rc.cfg.Path,
		Domain:   rc.cfg.Domain,
		HttpOnly: true,
		Secure:   !rc.cfg.Insecure,
		SameSite: http.SameSiteStrictMode,
	}
}
