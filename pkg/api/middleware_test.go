package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incidentfox/incidentfox/pkg/auth"
)

func okHandler(c *echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestSecurityHeaders(t *testing.T) {
	e := echo.New()
	e.Use(securityHeaders())
	e.GET("/", okHandler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestPrincipalMiddlewareMissingToken(t *testing.T) {
	s := &Server{}
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := s.principalMiddleware(okHandler)(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, err.(*echo.HTTPError).Code)
}

func TestPrincipalMiddlewareRejectsNonBearer(t *testing.T) {
	s := &Server{}
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := s.principalMiddleware(okHandler)(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, err.(*echo.HTTPError).Code)
}

func TestRequirePermission(t *testing.T) {
	e := echo.New()

	t.Run("denied without permission", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		c.Set(principalContextKey, &auth.Principal{Role: auth.RoleTeam, Permissions: []string{auth.PermTeamRead}})

		err := requirePermission(auth.PermProvision)(okHandler)(c)
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, err.(*echo.HTTPError).Code)
	})

	t.Run("admin wildcard passes", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		c.Set(principalContextKey, &auth.Principal{Role: auth.RoleAdmin, Permissions: []string{auth.PermAdminAll}})

		assert.NoError(t, requirePermission(auth.PermProvision)(okHandler)(c))
	})

	t.Run("no principal is unauthorized", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

		err := requirePermission(auth.PermProvision)(okHandler)(c)
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, err.(*echo.HTTPError).Code)
	})
}

func TestRequireWrite(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())
	c.Set(principalContextKey, &auth.Principal{Role: auth.RoleTeam, AuthKind: auth.KindImpersonation})

	err := requireWrite(okHandler)(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, err.(*echo.HTTPError).Code)

	c.Set(principalContextKey, &auth.Principal{Role: auth.RoleTeam, CanWrite: true})
	assert.NoError(t, requireWrite(okHandler)(c))
}

func TestOrgScope(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	c.Set(principalContextKey, &auth.Principal{Role: auth.RoleOrgAdmin, OrgID: "acme"})
	assert.NoError(t, orgScope(c, "acme"))

	err := orgScope(c, "globex")
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, err.(*echo.HTTPError).Code)

	// The shared admin carries no org and may touch any of them.
	c.Set(principalContextKey, &auth.Principal{Role: auth.RoleAdmin})
	assert.NoError(t, orgScope(c, "globex"))
}

func TestInternalMiddleware(t *testing.T) {
	s := &Server{cfg: Config{InternalServices: []string{"scheduler"}}}
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/internal/scheduled-jobs/due", nil)
	req.Header.Set("X-Internal-Service", "scheduler")
	c := e.NewContext(req, httptest.NewRecorder())
	assert.NoError(t, s.internalMiddleware(okHandler)(c))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/internal/scheduled-jobs/due", nil)
	req.Header.Set("X-Internal-Service", "stranger")
	c = e.NewContext(req, httptest.NewRecorder())
	err := s.internalMiddleware(okHandler)(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, err.(*echo.HTTPError).Code)
}

func TestLoadConfigFromEnvPermissionTuning(t *testing.T) {
	t.Setenv("ORCHESTRATOR_REQUIRED_PERMISSION_AGENT_RUN", "admin:agents:execute")
	t.Setenv("ORCHESTRATOR_REQUIRE_ADMIN_STAR", "true")
	cfg := LoadConfigFromEnv()
	assert.Equal(t, auth.PermAdminAll, cfg.AdminPermission)
	assert.Equal(t, "admin:agents:execute", cfg.AdminRunPermission)
}
