package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"

	"github.com/incidentfox/incidentfox/pkg/auth"
)

func adminContext(e *echo.Echo, method, target, body string) *echo.Context {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(principalContextKey, &auth.Principal{
		Role:        auth.RoleAdmin,
		Subject:     "admin",
		Permissions: []string{auth.PermAdminAll},
		CanWrite:    true,
	})
	return c
}

func TestCreateOrgHandler_Validation(t *testing.T) {
	s := &Server{}
	e := echo.New()

	tests := []struct {
		name   string
		body   string
		errMsg string
	}{
		{"missing org_id", `{"name":"Acme"}`, "org_id is required"},
		{"invalid json", `{`, "invalid request body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := adminContext(e, http.MethodPost, "/api/v1/admin/orgs", tt.body)
			err := s.createOrgHandler(c)
			if assert.Error(t, err) {
				he, ok := err.(*echo.HTTPError)
				if assert.True(t, ok, "expected echo.HTTPError") {
					assert.Equal(t, http.StatusBadRequest, he.Code)
					assert.Contains(t, he.Message, tt.errMsg)
				}
			}
		})
	}
}

func TestCreateNodeHandler_Validation(t *testing.T) {
	s := &Server{}
	e := echo.New()

	tests := []struct {
		name   string
		body   string
		errMsg string
	}{
		{"missing node_id", `{"parent_node_id":"acme","kind":"team"}`, "node_id and parent_node_id are required"},
		{"missing parent", `{"node_id":"payments","kind":"team"}`, "node_id and parent_node_id are required"},
		{"bad kind", `{"node_id":"payments","parent_node_id":"acme","kind":"org"}`, "kind must be sub_team or team"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := adminContext(e, http.MethodPost, "/api/v1/admin/orgs/acme/nodes", tt.body)
			err := s.createNodeHandler(c)
			if assert.Error(t, err) {
				he, ok := err.(*echo.HTTPError)
				if assert.True(t, ok) {
					assert.Equal(t, http.StatusBadRequest, he.Code)
					assert.Contains(t, he.Message, tt.errMsg)
				}
			}
		})
	}
}

func TestPatchConfigHandler_EmptyPatch(t *testing.T) {
	s := &Server{}
	e := echo.New()
	c := adminContext(e, http.MethodPut, "/api/v1/admin/orgs/acme/nodes/payments/config", `{}`)

	err := s.patchConfigHandler(c)
	if assert.Error(t, err) {
		he, ok := err.(*echo.HTTPError)
		if assert.True(t, ok) {
			assert.Equal(t, http.StatusBadRequest, he.Code)
			assert.Contains(t, he.Message, "empty patch")
		}
	}
}

func TestProvisionTeamHandler_Validation(t *testing.T) {
	s := &Server{}
	e := echo.New()
	c := adminContext(e, http.MethodPost, "/api/v1/admin/provision/team", `{"org_id":"acme"}`)

	err := s.provisionTeamHandler(c)
	if assert.Error(t, err) {
		he, ok := err.(*echo.HTTPError)
		if assert.True(t, ok) {
			assert.Equal(t, http.StatusBadRequest, he.Code)
			assert.Contains(t, he.Message, "team_node_id")
		}
	}
}
