package api

import (
	"errors"
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/incidentfox/incidentfox/pkg/provisioning"
)

// provisionRunIDHeader surfaces the conflicting run on 409 responses so the
// caller can inspect it.
const provisionRunIDHeader = "X-Provisioning-Run-Id"

// provisionTeamHandler handles POST /api/v1/admin/provision/team.
func (s *Server) provisionTeamHandler(c *echo.Context) error {
	var req ProvisionTeamRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.OrgID == "" || req.TeamNodeID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "org_id and team_node_id are required")
	}
	if err := orgScope(c, req.OrgID); err != nil {
		return err
	}
	if req.TeamName == "" {
		req.TeamName = req.TeamNodeID
	}

	result, err := s.provisioner.ProvisionTeam(c.Request().Context(), provisioning.Request{
		OrgID:           req.OrgID,
		TeamNodeID:      req.TeamNodeID,
		TeamName:        req.TeamName,
		SlackChannelIDs: req.SlackChannelIDs,
		IdempotencyKey:  req.IdempotencyKey,
		Actor:           principalFrom(c).Subject,
	})
	if err != nil {
		var conflict *provisioning.ConflictError
		if errors.As(err, &conflict) {
			c.Response().Header().Set(provisionRunIDHeader, conflict.RunID)
		}
		return mapServiceError(err)
	}

	resp := provisioningRunResponse(result.Run)
	resp.TeamToken = result.TeamToken
	resp.Replayed = result.Replayed
	// Replays and fresh runs both answer 200; Replayed distinguishes them.
	return c.JSON(http.StatusOK, resp)
}

// getProvisioningRunHandler handles GET /api/v1/admin/provision/runs/{org}/{run_id}.
func (s *Server) getProvisioningRunHandler(c *echo.Context) error {
	if err := orgScope(c, c.Param("org")); err != nil {
		return err
	}
	ctx, cancel := requestTimeout(c)
	defer cancel()
	run, err := s.provisioner.GetRun(ctx, c.Param("org"), c.Param("run_id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, provisioningRunResponse(run))
}

// listProvisioningRunsHandler handles GET /api/v1/admin/provision/runs/{org}.
func (s *Server) listProvisioningRunsHandler(c *echo.Context) error {
	if err := orgScope(c, c.Param("org")); err != nil {
		return err
	}
	limit := 20
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = n
	}

	ctx, cancel := requestTimeout(c)
	defer cancel()
	runs, err := s.provisioner.ListRuns(ctx, c.Param("org"), c.QueryParam("team_node_id"), limit)
	if err != nil {
		return mapServiceError(err)
	}
	out := make([]ProvisioningRunResponse, 0, len(runs))
	for _, run := range runs {
		out = append(out, provisioningRunResponse(run))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"runs": out})
}
