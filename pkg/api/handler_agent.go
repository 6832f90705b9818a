package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/incidentfox/incidentfox/ent"
	"github.com/incidentfox/incidentfox/ent/a2atask"
	"github.com/incidentfox/incidentfox/pkg/auth"
	"github.com/incidentfox/incidentfox/pkg/dispatch"
	"github.com/incidentfox/incidentfox/pkg/fanout"
	"github.com/incidentfox/incidentfox/pkg/output"
)

// adminAgentRunHandler handles POST /api/v1/admin/agents/run: the org and
// team come from the request body.
func (s *Server) adminAgentRunHandler(c *echo.Context) error {
	var req AgentRunRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.OrgID == "" || req.TeamNodeID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "org_id and team_node_id are required")
	}
	return s.runAgent(c, req, req.OrgID, req.TeamNodeID)
}

// agentRunHandler handles POST /api/v1/agents/run: the tenant comes from the
// principal's scope.
func (s *Server) agentRunHandler(c *echo.Context) error {
	var req AgentRunRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	p := principalFrom(c)
	if p.OrgID == "" || p.TeamNodeID == "" {
		return echo.NewHTTPError(http.StatusForbidden, "principal is not scoped to a team")
	}
	return s.runAgent(c, req, p.OrgID, p.TeamNodeID)
}

func (s *Server) runAgent(c *echo.Context, req AgentRunRequest, orgID, teamNodeID string) error {
	if req.Agent == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent is required")
	}
	if req.Prompt == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "prompt is required")
	}
	p := principalFrom(c)
	if !p.MayInvokeAgent(req.Agent) {
		return echo.NewHTTPError(http.StatusForbidden, "agent not permitted for this principal")
	}
	if req.TriggerSource == "" {
		req.TriggerSource = "api"
	}

	task := s.openA2ATask(c, orgID, teamNodeID, req)

	result, err := s.dispatcher.RunAgent(c.Request().Context(), dispatch.Input{
		OrgID:         orgID,
		TeamNodeID:    teamNodeID,
		Agent:         req.Agent,
		Prompt:        req.Prompt,
		TriggerSource: req.TriggerSource,
		MaxTurns:      req.MaxTurns,
		CorrelationID: req.CorrelationID,
		Actor:         p.Subject,
	})
	if err != nil {
		s.closeA2ATask(task, "", err)
		return mapDispatchError(err)
	}
	s.closeA2ATask(task, result.Output, nil)

	outcomes := s.deliverResult(c.Request().Context(), orgID, teamNodeID, result)
	resp := AgentRunResponse{
		RunID:       result.RunID,
		Status:      "complete",
		Output:      result.Output,
		EventsCount: result.EventsCount,
	}
	for _, d := range result.Destinations {
		resp.Destinations = append(resp.Destinations, d)
	}
	for _, o := range outcomes {
		resp.Fanout = append(resp.Fanout, o)
	}
	return c.JSON(http.StatusOK, resp)
}

// deliverResult delivers the run's artifact to its resolved destinations.
// Delivery failures are reflected in the outcomes, never in the HTTP status.
func (s *Server) deliverResult(ctx context.Context, orgID, teamNodeID string, result *dispatch.Result) []fanout.Outcome {
	if len(result.Destinations) == 0 {
		return nil
	}
	eff, err := s.resolver.Resolve(ctx, orgID, teamNodeID)
	if err != nil {
		s.logger.Error("Skipping fan-out, effective config unavailable", "error", err)
		return nil
	}
	creds, err := fanout.CredentialsFromEffective(eff, s.enc)
	if err != nil {
		s.logger.Error("Skipping fan-out, credentials unavailable", "error", err)
		return nil
	}
	// Slack bot tokens come off the config encrypted.
	dests := make([]output.Destination, len(result.Destinations))
	copy(dests, result.Destinations)
	for i := range dests {
		if dests[i].Kind == output.KindSlack && dests[i].BotToken != "" {
			plain, derr := s.enc.Decrypt(dests[i].BotToken)
			if derr != nil {
				s.logger.Error("Failed to decrypt slack bot token", "error", derr)
				continue
			}
			dests[i].BotToken = plain
		}
	}
	outcomes := s.fanout.Deliver(ctx, dests, fanout.Artifact{
		RunID:   result.RunID,
		Text:    result.Output,
		Success: true,
	}, creds)
	return outcomes
}

// openA2ATask records an agent-to-agent task when the run is driven through
// the internal surface (scheduler impersonation).
func (s *Server) openA2ATask(c *echo.Context, orgID, teamNodeID string, req AgentRunRequest) *ent.A2ATask {
	p := principalFrom(c)
	if p.AuthKind != auth.KindImpersonation {
		return nil
	}
	task, err := s.entClient.A2ATask.Create().
		SetStatus(a2atask.StatusWorking).
		SetMessage(map[string]interface{}{
			"agent":          req.Agent,
			"prompt":         req.Prompt,
			"trigger_source": req.TriggerSource,
			"subject":        p.Subject,
		}).
		SetOrgID(orgID).
		SetTeamNodeID(teamNodeID).
		Save(c.Request().Context())
	if err != nil {
		s.logger.Error("Failed to record a2a task", "error", err)
		return nil
	}
	return task
}

func (s *Server) closeA2ATask(task *ent.A2ATask, outputText string, runErr error) {
	if task == nil {
		return
	}
	status := a2atask.StatusCompleted
	result := map[string]interface{}{"text": outputText}
	if runErr != nil {
		status = a2atask.StatusFailed
		result = map[string]interface{}{"error": runErr.Error()}
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := task.Update().
		SetStatus(status).
		SetResultMessage(result).
		Exec(ctx); err != nil {
		s.logger.Error("Failed to close a2a task", "task_id", task.ID, "error", err)
	}
}

// mapDispatchError maps run failures onto upstream-flavored statuses.
func mapDispatchError(err error) error {
	switch {
	case errors.Is(err, dispatch.ErrSandboxUnavailable):
		return echo.NewHTTPError(http.StatusBadGateway, "sandbox_unavailable")
	case errors.Is(err, dispatch.ErrSandboxTimeout):
		return echo.NewHTTPError(http.StatusGatewayTimeout, "sandbox_timeout")
	case errors.Is(err, dispatch.ErrMaxTurnsExceeded):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "max_turns_exceeded")
	case errors.Is(err, dispatch.ErrAgentError):
		return echo.NewHTTPError(http.StatusBadGateway, "agent_error")
	default:
		return mapServiceError(err)
	}
}
