// Package middleware carries the authentication and authorization
// layer for the admin area. Every /internal route passes through
// Auth: a missing bearer token is a 401, a bad token or an access
// level below the matching policy rule is a 403.
package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shopops-cloud/shopops/internal/auth"
	"github.com/shopops-cloud/shopops/internal/policy"
)

const claimsKey = "auth.claims"

// Auth verifies the bearer token and evaluates the policy table
// against the request method, path and the caller's access level.
func Auth(manager *auth.Manager, pol *policy.Policy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return echo.ErrUnauthorized
			}

			token := strings.TrimPrefix(header, "Bearer ")
			if token == header || token == "" {
				return echo.ErrUnauthorized
			}

			claims, err := manager.Verify(token)
			if err != nil {
				return echo.ErrForbidden.SetInternal(err)
			}

			c.Set(claimsKey, claims)

			if !pol.Allow(c.Request().Method, c.Request().URL.Path, claims.Access) {
				return echo.ErrForbidden
			}

			return next(c)
		}
	}
}

// Claims returns the verified claims attached by Auth, or nil on
// unauthenticated routes.
func Claims(c echo.Context) *auth.Claims {
	claims, _ := c.Get(claimsKey).(*auth.Claims)
	return claims
}
