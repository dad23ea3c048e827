package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	accessCookieName  = "accessToken"
	refreshCookieName = "refreshToken"
)

// CookiePolicy decides the security attributes of the auth cookies. The same
// policy applies on login, refresh, and logout: httpOnly always, secure and
// strict same-site in production.
type CookiePolicy struct {
	Production bool
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func (p CookiePolicy) setTokenCookies(c echo.Context, access, refresh string) {
	c.SetCookie(p.cookie(accessCookieName, access, p.AccessTTL))
	c.SetCookie(p.cookie(refreshCookieName, refresh, p.RefreshTTL))
}

func (p CookiePolicy) clearTokenCookies(c echo.Context) {
	c.SetCookie(p.cookie(accessCookieName, "", -time.Second))
	c.SetCookie(p.cookie(refreshCookieName, "", -time.Second))
}

func (p CookiePolicy) cookie(name, value string, ttl time.Duration) *http.Cookie {
	sameSite := http.SameSiteLaxMode
	if p.Production {
		sameSite = http.SameSiteStrictMode
	}
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   p.Production,
		SameSite: sameSite,
	}
}
