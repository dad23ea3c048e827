package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/carehub/hospital-system/internal/core/domain"
	"github.com/carehub/hospital-system/internal/core/ports"
)

const accessCookieName = "accessToken"

// Auth validates the access token and injects the identity into context.
// The token is read from the accessToken cookie or, failing that, a bearer
// Authorization header.
func Auth(codec ports.TokenCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := accessTokenFrom(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
			}

			claims, err := codec.VerifyAccess(token)
			if err != nil {
				if err == domain.ErrTokenExpired {
					return echo.NewHTTPError(http.StatusUnauthorized, "access token expired")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid access token")
			}

			c.Set("user_id", claims.UserID)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}

func accessTokenFrom(c echo.Context) string {
	if cookie, err := c.Cookie(accessCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
