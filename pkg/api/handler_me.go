package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// authMeHandler handles GET /api/v1/auth/me: it classifies the presented
// bearer and echoes the resulting principal.
func (s *Server) authMeHandler(c *echo.Context) error {
	p := principalFrom(c)
	return c.JSON(http.StatusOK, PrincipalResponse{
		Role:        p.Role,
		AuthKind:    p.AuthKind,
		OrgID:       p.OrgID,
		TeamNodeID:  p.TeamNodeID,
		Subject:     p.Subject,
		Email:       p.Email,
		Permissions: p.Permissions,
		CanWrite:    p.CanWrite,
	})
}

// effectiveConfigHandler handles GET /api/v1/config/me/effective: the merged
// org-to-team view for the caller's scope, with secret fields redacted.
func (s *Server) effectiveConfigHandler(c *echo.Context) error {
	p := principalFrom(c)
	if p.OrgID == "" || p.TeamNodeID == "" {
		return echo.NewHTTPError(http.StatusForbidden, "principal is not scoped to a team")
	}

	ctx, cancel := requestTimeout(c)
	defer cancel()
	eff, err := s.resolver.Resolve(ctx, p.OrgID, p.TeamNodeID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"org_id":       p.OrgID,
		"team_node_id": p.TeamNodeID,
		"config":       s.redactSecrets(eff),
	})
}

// patchMyConfigHandler handles PUT /api/v1/config/me: a merge patch applied
// to the caller's own team node. Read-only principals are rejected by the
// requireWrite middleware before reaching here.
func (s *Server) patchMyConfigHandler(c *echo.Context) error {
	p := principalFrom(c)
	if p.OrgID == "" || p.TeamNodeID == "" {
		return echo.NewHTTPError(http.StatusForbidden, "principal is not scoped to a team")
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
	row, err := s.nodes.PatchConfig(ctx, p.OrgID, p.TeamNodeID, patch, p.Subject)
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

// redactSecrets replaces secret integration fields with a placeholder so the
// effective view never leaks credentials.
func (s *Server) redactSecrets(eff map[string]interface{}) map[string]interface{} {
	integrations, ok := eff["integrations"].(map[string]interface{})
	if !ok {
		return eff
	}
	out := make(map[string]interface{}, len(eff))
	for k, v := range eff {
		out[k] = v
	}
	redacted := make(map[string]interface{}, len(integrations))
	for id, raw := range integrations {
		cfg, ok := raw.(map[string]interface{})
		if !ok {
			redacted[id] = raw
			continue
		}
		secrets := s.registry.SecretFields(id)
		clean := make(map[string]interface{}, len(cfg))
		for field, value := range cfg {
			clean[field] = value
			for _, secret := range secrets {
				if field == secret {
					if str, ok := value.(string); ok && str != "" {
						clean[field] = "********"
					}
					break
				}
			}
		}
		redacted[id] = clean
	}
	out["integrations"] = redacted
	return out
}

// listIntegrationsHandler handles GET /api/v1/integrations: the seeded
// integration schemas.
func (s *Server) listIntegrationsHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"integrations": s.registry.List(),
	})
}
