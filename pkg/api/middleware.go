package api

import (
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/incidentfox/incidentfox/pkg/auth"
)

const principalContextKey = "principal"

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			return next(c)
		}
	}
}

// principalMiddleware authenticates the bearer token and stashes the
// resulting principal on the context.
func (s *Server) principalMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c *echo.Context) error {
		header := c.Request().Header.Get("Authorization")
		bearer, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || bearer == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
		}
		principal, err := s.authn.Authenticate(c.Request().Context(), bearer)
		if err != nil {
			return mapAuthError(err)
		}
		c.Set(principalContextKey, principal)
		return next(c)
	}
}

// principalFrom returns the authenticated principal, or nil.
func principalFrom(c *echo.Context) *auth.Principal {
	p, _ := c.Get(principalContextKey).(*auth.Principal)
	return p
}

// requirePermission gates a route group on one permission.
func requirePermission(perm string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			p := principalFrom(c)
			if p == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}
			if !p.HasPermission(perm) {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient permission: "+perm)
			}
			return next(c)
		}
	}
}

// requireWrite rejects read-only principals (impersonation, OIDC without the
// write flag) on mutating tenant routes.
func requireWrite(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c *echo.Context) error {
		p := principalFrom(c)
		if p == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
		}
		if !p.CanWrite {
			return echo.NewHTTPError(http.StatusForbidden, "principal is read-only")
		}
		return next(c)
	}
}

// orgScope rejects org-scoped principals acting outside their own org. The
// shared admin principal carries no org and passes every check.
func orgScope(c *echo.Context, orgID string) error {
	p := principalFrom(c)
	if p != nil && p.OrgID != "" && p.OrgID != orgID {
		return echo.NewHTTPError(http.StatusForbidden, "principal is scoped to another org")
	}
	return nil
}

// internalMiddleware admits only configured internal services, identified by
// the X-Internal-Service header. The internal API is expected to be
// network-isolated; the header names the caller for audit.
func (s *Server) internalMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c *echo.Context) error {
		name := c.Request().Header.Get("X-Internal-Service")
		for _, allowed := range s.cfg.InternalServices {
			if name == allowed {
				return next(c)
			}
		}
		return echo.NewHTTPError(http.StatusForbidden, "internal API access denied")
	}
}
