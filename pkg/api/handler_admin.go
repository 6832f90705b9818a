package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/incidentfox/incidentfox/ent/orgnode"
)

// createOrgHandler handles POST /api/v1/admin/orgs. Only the shared admin
// may create orgs; org-admin tokens are scoped to an existing org.
func (s *Server) createOrgHandler(c *echo.Context) error {
	if p := principalFrom(c); p.OrgID != "" {
		return echo.NewHTTPError(http.StatusForbidden, "org-scoped principals cannot create orgs")
	}
	var req CreateOrgRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.OrgID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "org_id is required")
	}
	if req.Name == "" {
		req.Name = req.OrgID
	}

	ctx, cancel := requestTimeout(c)
	defer cancel()
	node, err := s.nodes.CreateOrg(ctx, req.OrgID, req.Name, principalFrom(c).Subject)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, nodeResponse(node))
}

// createNodeHandler handles POST /api/v1/admin/orgs/{org}/nodes.
func (s *Server) createNodeHandler(c *echo.Context) error {
	if err := orgScope(c, c.Param("org")); err != nil {
		return err
	}
	var req CreateNodeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.NodeID == "" || req.ParentNodeID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "node_id and parent_node_id are required")
	}
	kind := orgnode.Kind(req.Kind)
	if kind != orgnode.KindSubTeam && kind != orgnode.KindTeam {
		return echo.NewHTTPError(http.StatusBadRequest, "kind must be sub_team or team")
	}
	if req.Name == "" {
		req.Name = req.NodeID
	}

	ctx, cancel := requestTimeout(c)
	defer cancel()
	node, err := s.nodes.CreateNode(ctx, c.Param("org"), req.NodeID, req.ParentNodeID, kind, req.Name, principalFrom(c).Subject)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, nodeResponse(node))
}

// deleteNodeHandler handles DELETE /api/v1/admin/orgs/{org}/nodes/{node}.
func (s *Server) deleteNodeHandler(c *echo.Context) error {
	if err := orgScope(c, c.Param("org")); err != nil {
		return err
	}
	ctx, cancel := requestTimeout(c)
	defer cancel()
	if err := s.nodes.DeleteNode(ctx, c.Param("org"), c.Param("node"), principalFrom(c).Subject); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// getConfigHandler handles GET /api/v1/admin/orgs/{org}/nodes/{node}/config.
func (s *Server) getConfigHandler(c *echo.Context) error {
	if err := orgScope(c, c.Param("org")); err != nil {
		return err
	}
	ctx, cancel := requestTimeout(c)
	defer cancel()
	orgID, nodeID := c.Param("org"), c.Param("node")

	if _, err := s.nodes.GetNode(ctx, orgID, nodeID); err != nil {
		return mapServiceError(err)
	}
	config, version, err := s.nodes.GetConfig(ctx, orgID, nodeID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, ConfigResponse{
		OrgID:   orgID,
		NodeID:  nodeID,
		Version: version,
		Config:  config,
	})
}

// patchConfigHandler handles PUT /api/v1/admin/orgs/{org}/nodes/{node}/config.
// The body is a merge patch: nulls delete, nested objects merge, anything
// else replaces.
func (s *Server) patchConfigHandler(c *echo.Context) error {
	if err := orgScope(c, c.Param("org")); err != nil {
		return err
	}
	var patch map[string]interface{}
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "request body must be a JSON object")
	}
	if len(patch) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "empty patch")
	}
	if integrations, ok := patch["integrations"].(map[string]interface{}); ok {
		warnings, err := s.registry.Validate(integrations)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		for _, w := range warnings {
			s.logger.Warn("Integration config warning", "warning", w.String())
		}
	}

	ctx, cancel := requestTimeout(c)
	defer cancel()
	row, err := s.nodes.PatchConfig(ctx, c.Param("org"), c.Param("node"), patch, principalFrom(c).Subject)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, ConfigResponse{
		OrgID:   row.OrgID,
		NodeID:  row.NodeID,
		Version: row.Version,
		Config:  row.Config,
	})
}

// issueTokenHandler handles POST /api/v1/admin/orgs/{org}/nodes/{team}/tokens.
func (s *Server) issueTokenHandler(c *echo.Context) error {
	if err := orgScope(c, c.Param("org")); err != nil {
		return err
	}
	ctx, cancel := requestTimeout(c)
	defer cancel()
	orgID, teamID := c.Param("org"), c.Param("team")

	if _, err := s.nodes.GetNode(ctx, orgID, teamID); err != nil {
		return mapServiceError(err)
	}
	bearer, err := s.tokens.IssueTeamToken(ctx, orgID, teamID, principalFrom(c).Subject)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, TokenResponse{Token: bearer})
}

// rotateTokenHandler revokes the team's live tokens and issues a new one.
func (s *Server) rotateTokenHandler(c *echo.Context) error {
	if err := orgScope(c, c.Param("org")); err != nil {
		return err
	}
	ctx, cancel := requestTimeout(c)
	defer cancel()
	bearer, err := s.tokens.RotateTeamToken(ctx, c.Param("org"), c.Param("team"), principalFrom(c).Subject)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, TokenResponse{Token: bearer})
}

// revokeTokenHandler revokes a single team token by id.
func (s *Server) revokeTokenHandler(c *echo.Context) error {
	if err := orgScope(c, c.Param("org")); err != nil {
		return err
	}
	ctx, cancel := requestTimeout(c)
	defer cancel()
	if err := s.tokens.RevokeTeamToken(ctx, c.Param("org"), c.Param("token_id"), principalFrom(c).Subject); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// issueOrgAdminTokenHandler mints an org-scoped admin bearer. Only the shared
// admin may mint these; org admins cannot mint peers.
func (s *Server) issueOrgAdminTokenHandler(c *echo.Context) error {
	if p := principalFrom(c); p.OrgID != "" {
		return echo.NewHTTPError(http.StatusForbidden, "org-scoped principals cannot issue org admin tokens")
	}
	ctx, cancel := requestTimeout(c)
	defer cancel()
	orgID := c.Param("org")
	if _, err := s.nodes.GetNode(ctx, orgID, orgID); err != nil {
		return mapServiceError(err)
	}
	bearer, err := s.tokens.IssueOrgAdminToken(ctx, orgID, principalFrom(c).Subject)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, TokenResponse{Token: bearer})
}

// revokeOrgAdminTokenHandler revokes one org admin token by id.
func (s *Server) revokeOrgAdminTokenHandler(c *echo.Context) error {
	if err := orgScope(c, c.Param("org")); err != nil {
		return err
	}
	ctx, cancel := requestTimeout(c)
	defer cancel()
	if err := s.tokens.RevokeOrgAdminToken(ctx, c.Param("org"), c.Param("token_id"), principalFrom(c).Subject); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// impersonationTokenHandler mints a short-lived tenant JWT for the caller.
func (s *Server) impersonationTokenHandler(c *echo.Context) error {
	if err := orgScope(c, c.Param("org")); err != nil {
		return err
	}
	var req ImpersonationTokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	// Zero takes the signer's configured ceiling; larger requests are clamped
	// by the signer.
	var ttl time.Duration
	if req.TTLSeconds > 0 {
		ttl = time.Duration(req.TTLSeconds) * time.Second
	}

	ctx, cancel := requestTimeout(c)
	defer cancel()
	orgID, teamID := c.Param("org"), c.Param("team")
	if _, err := s.nodes.GetNode(ctx, orgID, teamID); err != nil {
		return mapServiceError(err)
	}
	jwt, err := s.tokens.MintImpersonation(ctx, orgID, teamID, principalFrom(c).Subject, ttl)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, TokenResponse{Token: jwt})
}
