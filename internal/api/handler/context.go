package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carehub/hospital-system/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call: both values being present proves the
// middleware ran.
func ctxIdentity(c echo.Context) (userID string, role domain.Role, err error) {
	userID, _ = c.Get("user_id").(string)
	role, _ = c.Get("role").(domain.Role)
	if userID == "" || !role.Valid() {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, role, nil
}
