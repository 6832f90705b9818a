package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/incidentfox/incidentfox/pkg/scheduler"
)

// dueJobsHandler handles GET /api/v1/internal/scheduled-jobs/due: it
// atomically claims up to limit due jobs for the calling worker.
func (s *Server) dueJobsHandler(c *echo.Context) error {
	owner := c.QueryParam("owner")
	if owner == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "owner is required")
	}
	limit := 10
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = n
	}

	ctx, cancel := requestTimeout(c)
	defer cancel()
	jobs, err := s.jobs.ClaimDue(ctx, owner, limit, scheduler.DefaultLockTTL)
	if err != nil {
		return mapServiceError(err)
	}

	out := make([]map[string]interface{}, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, map[string]interface{}{
			"id":           job.ID,
			"org_id":       job.OrgID,
			"team_node_id": job.TeamNodeID,
			"job_type":     job.JobType,
			"config":       job.Config,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"jobs": out})
}

// completeJobHandler handles POST /api/v1/internal/scheduled-jobs/{id}/complete.
func (s *Server) completeJobHandler(c *echo.Context) error {
	var req CompleteJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Owner == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "owner is required")
	}
	if req.Status != "succeeded" && req.Status != "failed" {
		return echo.NewHTTPError(http.StatusBadRequest, "status must be succeeded or failed")
	}

	ctx, cancel := requestTimeout(c)
	defer cancel()
	if err := s.jobs.Complete(ctx, c.Param("id"), req.Owner, req.Status); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// impersonateTeamHandler handles POST /api/v1/internal/impersonate-team:
// mints a short-lived tenant JWT for an internal service.
func (s *Server) impersonateTeamHandler(c *echo.Context) error {
	var req ImpersonateTeamRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.OrgID == "" || req.TeamNodeID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "org_id and team_node_id are required")
	}

	ctx, cancel := requestTimeout(c)
	defer cancel()
	if _, err := s.nodes.GetNode(ctx, req.OrgID, req.TeamNodeID); err != nil {
		return mapServiceError(err)
	}
	subject := c.Request().Header.Get("X-Internal-Service")
	// Zero TTL takes the signer's configured ceiling.
	jwt, err := s.tokens.MintImpersonation(ctx, req.OrgID, req.TeamNodeID, subject, 0)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, TokenResponse{Token: jwt})
}

// slackAppsHandler handles GET /api/v1/internal/slack/apps: the configured
// Slack apps, without signing secrets.
func (s *Server) slackAppsHandler(c *echo.Context) error {
	apps := make([]map[string]string, 0, len(s.cfg.SlackApps))
	for _, app := range s.cfg.SlackApps {
		apps = append(apps, map[string]string{
			"slug":      app.Slug,
			"app_id":    app.AppID,
			"bot_token": app.BotToken,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"apps": apps})
}
