package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incidentfox/incidentfox/pkg/auth"
)

func teamContext(e *echo.Echo, method, target, body string) *echo.Context {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c := e.NewContext(req, httptest.NewRecorder())
	c.Set(principalContextKey, &auth.Principal{
		Role:        auth.RoleTeam,
		AuthKind:    auth.KindTeamToken,
		OrgID:       "acme",
		TeamNodeID:  "payments",
		Subject:     "team:acme/payments",
		Permissions: []string{auth.PermTeamRead, auth.PermTeamWrite, auth.PermAgentInvoke},
		CanWrite:    true,
	})
	return c
}

func TestCreateScheduledJobHandler_Validation(t *testing.T) {
	s := &Server{}
	e := echo.New()

	t.Run("missing job type", func(t *testing.T) {
		c := teamContext(e, http.MethodPost, "/api/v1/scheduled-jobs", `{"cron":"*/5 * * * *"}`)
		err := s.createScheduledJobHandler(c)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, err.(*echo.HTTPError).Code)
	})

	t.Run("invalid cron expression", func(t *testing.T) {
		c := teamContext(e, http.MethodPost, "/api/v1/scheduled-jobs", `{"job_type":"agent_run","cron":"not a cron"}`)
		err := s.createScheduledJobHandler(c)
		require.Error(t, err)
		he := err.(*echo.HTTPError)
		assert.Equal(t, http.StatusBadRequest, he.Code)
		assert.Contains(t, he.Message, "invalid cron expression")
	})

	t.Run("unscoped principal", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/scheduled-jobs", strings.NewReader(`{}`)), httptest.NewRecorder())
		c.Set(principalContextKey, &auth.Principal{Role: auth.RoleAdmin, Permissions: []string{auth.PermAdminAll}})
		err := s.createScheduledJobHandler(c)
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, err.(*echo.HTTPError).Code)
	})
}

func TestAgentRunHandler_Validation(t *testing.T) {
	s := &Server{}
	e := echo.New()

	t.Run("missing agent", func(t *testing.T) {
		c := teamContext(e, http.MethodPost, "/api/v1/agents/run", `{"prompt":"investigate"}`)
		err := s.agentRunHandler(c)
		require.Error(t, err)
		he := err.(*echo.HTTPError)
		assert.Equal(t, http.StatusBadRequest, he.Code)
		assert.Equal(t, "agent is required", he.Message)
	})

	t.Run("missing prompt", func(t *testing.T) {
		c := teamContext(e, http.MethodPost, "/api/v1/agents/run", `{"agent":"investigator"}`)
		err := s.agentRunHandler(c)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, err.(*echo.HTTPError).Code)
	})

	t.Run("unscoped principal", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/agents/run", strings.NewReader(`{"agent":"investigator","prompt":"go"}`)), httptest.NewRecorder())
		c.Request().Header.Set("Content-Type", "application/json")
		c.Set(principalContextKey, &auth.Principal{Role: auth.RoleAdmin, Permissions: []string{auth.PermAdminAll}})
		err := s.agentRunHandler(c)
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, err.(*echo.HTTPError).Code)
	})

	t.Run("visitor confined to playground", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/agents/run", strings.NewReader(`{"agent":"investigator","prompt":"go"}`)), httptest.NewRecorder())
		c.Request().Header.Set("Content-Type", "application/json")
		c.Set(principalContextKey, &auth.Principal{
			Role:        auth.RoleVisitor,
			AuthKind:    auth.KindVisitor,
			OrgID:       "acme",
			TeamNodeID:  "playground-team",
			Permissions: []string{auth.PermAgentInvoke},
		})
		err := s.agentRunHandler(c)
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, err.(*echo.HTTPError).Code)
	})
}

func TestPatchMyConfigHandler(t *testing.T) {
	s := &Server{}
	e := echo.New()

	t.Run("impersonation principal cannot write", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodPut, "/api/v1/config/me",
			strings.NewReader(`{"knowledge_source":{"google":["drive:folder/demo"]}}`)), httptest.NewRecorder())
		c.Request().Header.Set("Content-Type", "application/json")
		c.Set(principalContextKey, &auth.Principal{
			Role:        auth.RoleTeam,
			AuthKind:    auth.KindImpersonation,
			OrgID:       "acme",
			TeamNodeID:  "payments",
			Permissions: []string{auth.PermTeamRead, auth.PermAgentInvoke},
		})
		err := requireWrite(s.patchMyConfigHandler)(c)
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, err.(*echo.HTTPError).Code)
	})

	t.Run("unscoped principal", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodPut, "/api/v1/config/me",
			strings.NewReader(`{"a":1}`)), httptest.NewRecorder())
		c.Request().Header.Set("Content-Type", "application/json")
		c.Set(principalContextKey, &auth.Principal{Role: auth.RoleAdmin, Permissions: []string{auth.PermAdminAll}, CanWrite: true})
		err := requireWrite(s.patchMyConfigHandler)(c)
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, err.(*echo.HTTPError).Code)
	})

	t.Run("empty patch", func(t *testing.T) {
		c := teamContext(e, http.MethodPut, "/api/v1/config/me", `{}`)
		err := requireWrite(s.patchMyConfigHandler)(c)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, err.(*echo.HTTPError).Code)
	})
}

func TestAdminAgentRunHandler_RequiresTenant(t *testing.T) {
	s := &Server{}
	e := echo.New()
	c := adminContext(e, http.MethodPost, "/api/v1/admin/agents/run", `{"agent":"investigator","prompt":"go"}`)

	err := s.adminAgentRunHandler(c)
	require.Error(t, err)
	he := err.(*echo.HTTPError)
	assert.Equal(t, http.StatusBadRequest, he.Code)
	assert.Equal(t, "org_id and team_node_id are required", he.Message)
}
