package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/carehub/hospital-system/internal/core/domain"
)

// RBAC enforces role-based access control. It assumes Auth ran first and
// yields the domain error so the central handler renders the envelope.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(domain.Role)
			if _, ok := allowed[role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
