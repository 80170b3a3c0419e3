package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/housebroker/listing-api/internal/core/domain"
)

// RequireRole guards a route with the role claim set by Auth. A token whose
// role matches none of the given roles is rejected with 403, as is a request
// that never went through Auth.
func RequireRole(roles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[string(r)] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
