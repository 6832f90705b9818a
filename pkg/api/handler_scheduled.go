package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/incidentfox/incidentfox/pkg/scheduler"
)

// createScheduledJobHandler handles POST /api/v1/scheduled-jobs for the
// caller's team.
func (s *Server) createScheduledJobHandler(c *echo.Context) error {
	p := principalFrom(c)
	if p.OrgID == "" || p.TeamNodeID == "" {
		return echo.NewHTTPError(http.StatusForbidden, "principal is not scoped to a team")
	}

	var req CreateScheduledJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.JobType == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "job_type is required")
	}
	if _, err := scheduler.NextFire(req.Cron, time.Now()); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid cron expression: "+req.Cron)
	}

	ctx, cancel := requestTimeout(c)
	defer cancel()
	job, err := s.jobs.CreateJob(ctx, p.OrgID, p.TeamNodeID, req.JobType, req.Cron, req.Config)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, scheduledJobResponse(job))
}

// listScheduledJobsHandler handles GET /api/v1/scheduled-jobs.
func (s *Server) listScheduledJobsHandler(c *echo.Context) error {
	p := principalFrom(c)
	if p.OrgID == "" || p.TeamNodeID == "" {
		return echo.NewHTTPError(http.StatusForbidden, "principal is not scoped to a team")
	}

	ctx, cancel := requestTimeout(c)
	defer cancel()
	jobs, err := s.jobs.ListJobs(ctx, p.OrgID, p.TeamNodeID)
	if err != nil {
		return mapServiceError(err)
	}
	out := make([]ScheduledJobResponse, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, scheduledJobResponse(job))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"jobs": out})
}

// deleteScheduledJobHandler handles DELETE /api/v1/scheduled-jobs/{id}.
func (s *Server) deleteScheduledJobHandler(c *echo.Context) error {
	p := principalFrom(c)
	ctx, cancel := requestTimeout(c)
	defer cancel()
	if err := s.jobs.DeleteJob(ctx, p.OrgID, p.TeamNodeID, c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// setScheduledJobEnabledHandler handles PUT /api/v1/scheduled-jobs/{id}/enabled.
func (s *Server) setScheduledJobEnabledHandler(c *echo.Context) error {
	var req struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	p := principalFrom(c)
	ctx, cancel := requestTimeout(c)
	defer cancel()
	if err := s.jobs.SetEnabled(ctx, p.OrgID, p.TeamNodeID, c.Param("id"), req.Enabled); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
