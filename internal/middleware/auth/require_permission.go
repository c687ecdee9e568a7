package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/akiram/casting-agency/internal/auth"
)

// PermissionMiddleware gates a route on a verified claim set carrying one
// required permission scope. Ordering is fail closed: authenticate first,
// then authorize, then execute.
type PermissionMiddleware struct {
	Validator *auth.Validator
}

func NewPermissionMiddleware(v *auth.Validator) *PermissionMiddleware {
	return &PermissionMiddleware{Validator: v}
}

func (m *PermissionMiddleware) RequirePermission(permission string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)

			claims, err := m.Validator.Validate(c.Request().Context(), header)
			if err != nil {
				return err
			}

			if err := claims.Require(permission); err != nil {
				return err
			}

			c.Set("claims", claims)
			c.Set("user_id", claims.Subject)

			return next(c)
		}
	}
}

// ClaimsFrom returns the claim set stashed by RequirePermission, or nil on
// an unauthenticated route.
func ClaimsFrom(c echo.Context) *auth.ClaimSet {
	if claims, ok := c.Get("claims").(*auth.ClaimSet); ok {
		return claims
	}
	return nil
}
