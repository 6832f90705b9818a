package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/incidentfox/incidentfox/pkg/audit"
	"github.com/incidentfox/incidentfox/pkg/dispatch"
	"github.com/incidentfox/incidentfox/pkg/fanout"
	"github.com/incidentfox/incidentfox/pkg/webhook"
)

const maxWebhookBody = 4 * 1024 * 1024

// defaultWebhookAgent runs when the tenant config names no agent.
const defaultWebhookAgent = "incident-responder"

func readWebhookBody(c *echo.Context) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "unreadable request body")
	}
	return body, nil
}

func mapVerifyError(err error) error {
	kind := webhook.KindOfVerifyError(err)
	switch kind {
	case webhook.ErrKindMissingSigningSecret:
		return echo.NewHTTPError(http.StatusServiceUnavailable, kind)
	default:
		return echo.NewHTTPError(http.StatusUnauthorized, kind)
	}
}

// slackWebhookHandler handles POST /webhooks/slack and the multi-app variant
// /webhooks/slack/{slug}/{surface}. Slack expects an answer within 3 seconds,
// so agent work is dispatched after the acknowledgement.
func (s *Server) slackWebhookHandler(c *echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		slug = "default"
	}
	app, ok := s.cfg.SlackApps[slug]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown slack app: "+slug)
	}

	body, err := readWebhookBody(c)
	if err != nil {
		return err
	}
	if err := webhook.VerifySlack(app.SigningSecret,
		c.Request().Header.Get("X-Slack-Request-Timestamp"),
		c.Request().Header.Get("X-Slack-Signature"),
		body, time.Now()); err != nil {
		return mapVerifyError(err)
	}

	surface := c.Param("surface")
	if surface != "" && surface != "events" {
		// Interactions, commands, and oauth redirects are acknowledged but
		// carry no agent trigger.
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "request body must be JSON")
	}
	if payload["type"] == "url_verification" {
		challenge, _ := payload["challenge"].(string)
		return c.JSON(http.StatusOK, map[string]string{"challenge": challenge})
	}

	ev := webhook.ParseSlack(payload)
	if ev == nil {
		return c.JSON(http.StatusOK, map[string]string{"status": "ignored"})
	}
	return s.acceptWebhook(c, ev)
}

// githubWebhookHandler handles POST /webhooks/github.
func (s *Server) githubWebhookHandler(c *echo.Context) error {
	body, err := readWebhookBody(c)
	if err != nil {
		return err
	}
	if err := webhook.VerifyGitHub(s.cfg.GitHubWebhookSecret,
		c.Request().Header.Get("X-Hub-Signature-256"), body); err != nil {
		return mapVerifyError(err)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "request body must be JSON")
	}

	eventName := c.Request().Header.Get("X-GitHub-Event")
	if outcome := s.recordReactionFeedback(c.Request().Context(), payload); outcome != "" {
		return c.JSON(http.StatusOK, map[string]string{"status": outcome})
	}

	ev := webhook.ParseGitHub(c.Request().Header.Get("X-GitHub-Delivery"), eventName, payload)
	if ev == nil {
		return c.JSON(http.StatusOK, map[string]string{"status": "ignored"})
	}
	return s.acceptWebhook(c, ev)
}

// recordReactionFeedback turns a 👍/👎 reaction on one of our run comments
// into a feedback audit row. Returns "" when the payload is not a reaction.
func (s *Server) recordReactionFeedback(ctx context.Context, payload map[string]interface{}) string {
	reaction, ok := payload["reaction"].(map[string]interface{})
	if !ok {
		return ""
	}
	comment, ok := payload["comment"].(map[string]interface{})
	if !ok {
		return ""
	}
	commentBody, _ := comment["body"].(string)
	runID := fanout.RunIDFromMarker(commentBody)
	if runID == "" {
		return "ignored"
	}

	content, _ := reaction["content"].(string)
	var sentiment string
	switch content {
	case "+1":
		sentiment = "positive"
	case "-1":
		sentiment = "negative"
	default:
		return "ignored"
	}

	sender, _ := payload["sender"].(map[string]interface{})
	actor, _ := sender["login"].(string)
	s.audit.Record(ctx, audit.Event{
		Actor:  "github:" + actor,
		Action: audit.ActionFeedback,
		Target: runID,
		Detail: map[string]interface{}{"sentiment": sentiment, "reaction": content},
	})
	return "feedback_recorded"
}

// pagerDutyWebhookHandler handles POST /webhooks/pagerduty.
func (s *Server) pagerDutyWebhookHandler(c *echo.Context) error {
	body, err := readWebhookBody(c)
	if err != nil {
		return err
	}
	if err := webhook.VerifyPagerDuty(s.cfg.PagerDutyWebhookSecret,
		c.Request().Header.Get("X-PagerDuty-Signature"), body); err != nil {
		return mapVerifyError(err)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "request body must be JSON")
	}
	ev := webhook.ParsePagerDuty(payload)
	if ev == nil {
		return c.JSON(http.StatusOK, map[string]string{"status": "ignored"})
	}
	return s.acceptWebhook(c, ev)
}

// incidentIOWebhookHandler handles POST /webhooks/incidentio.
func (s *Server) incidentIOWebhookHandler(c *echo.Context) error {
	body, err := readWebhookBody(c)
	if err != nil {
		return err
	}
	if err := webhook.VerifyHMACHex(s.cfg.IncidentIOWebhookSecret,
		c.Request().Header.Get("X-Incident-Io-Signature"), body); err != nil {
		return mapVerifyError(err)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "request body must be JSON")
	}
	ev := webhook.ParseIncidentIO(payload)
	if ev == nil {
		return c.JSON(http.StatusOK, map[string]string{"status": "ignored"})
	}
	return s.acceptWebhook(c, ev)
}

// genericWebhookHandler builds a handler for vendors that share the plain
// hex-HMAC signature scheme.
func (s *Server) genericWebhookHandler(vendor string) echo.HandlerFunc {
	return func(c *echo.Context) error {
		body, err := readWebhookBody(c)
		if err != nil {
			return err
		}
		if err := webhook.VerifyHMACHex(s.cfg.GenericWebhookSecret,
			c.Request().Header.Get("X-Webhook-Signature"), body); err != nil {
			return mapVerifyError(err)
		}

		var payload map[string]interface{}
		if err := json.Unmarshal(body, &payload); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "request body must be JSON")
		}
		eventID, _ := payload["id"].(string)
		prompt, _ := payload["summary"].(string)
		if prompt == "" {
			prompt, _ = payload["message"].(string)
		}
		key, _ := payload["team_key"].(string)
		ev := webhook.ParseGeneric(vendor, eventID, vendor, key, prompt, payload)
		if ev == nil {
			return c.JSON(http.StatusOK, map[string]string{"status": "ignored"})
		}
		return s.acceptWebhook(c, ev)
	}
}

// googleChatWebhookHandler handles POST /webhooks/google-chat, authenticated
// by a shared bearer token.
func (s *Server) googleChatWebhookHandler(c *echo.Context) error {
	if err := webhook.VerifyBearer(s.cfg.GoogleChatToken,
		c.Request().Header.Get("Authorization")); err != nil {
		return mapVerifyError(err)
	}
	body, err := readWebhookBody(c)
	if err != nil {
		return err
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "request body must be JSON")
	}
	ev := webhook.ParseGoogleChat(payload)
	if ev == nil {
		return c.JSON(http.StatusOK, map[string]string{"status": "ignored"})
	}
	return s.acceptWebhook(c, ev)
}

// teamsWebhookHandler handles POST /webhooks/teams.
func (s *Server) teamsWebhookHandler(c *echo.Context) error {
	if err := webhook.VerifyBearer(s.cfg.TeamsToken,
		c.Request().Header.Get("Authorization")); err != nil {
		return mapVerifyError(err)
	}
	body, err := readWebhookBody(c)
	if err != nil {
		return err
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "request body must be JSON")
	}
	ev := webhook.ParseTeams(payload)
	if ev == nil {
		return c.JSON(http.StatusOK, map[string]string{"status": "ignored"})
	}
	return s.acceptWebhook(c, ev)
}

// acceptWebhook routes a verified event to its tenant, deduplicates
// redeliveries, and hands the heavy work to a background goroutine. The
// vendor always gets a 2xx once the signature checked out.
func (s *Server) acceptWebhook(c *echo.Context, ev *webhook.Event) error {
	ctx, cancel := requestTimeout(c)
	defer cancel()

	orgID, teamNodeID, err := s.webhooks.ResolveTenant(ctx, ev)
	if err != nil {
		if errors.Is(err, webhook.ErrUnroutable) {
			s.logger.Warn("Unroutable webhook",
				"vendor", ev.Vendor, "source", ev.RoutingSource, "key", ev.RoutingKey)
			return c.JSON(http.StatusOK, map[string]string{"status": "unroutable"})
		}
		return mapServiceError(err)
	}

	first, priorOutcome, err := s.webhooks.MarkDelivered(ctx, ev.Vendor, ev.EventID, orgID, teamNodeID)
	if err != nil {
		return mapServiceError(err)
	}
	if !first {
		return c.JSON(http.StatusOK, map[string]string{"status": "duplicate", "outcome": priorOutcome})
	}
	s.webhooks.RecordReceipt(ctx, ev, orgID, teamNodeID)

	go s.processWebhookEvent(ev, orgID, teamNodeID)
	return c.JSON(http.StatusAccepted, map[string]string{"status": "accepted"})
}

// processWebhookEvent runs the agent for one webhook event and fans out the
// result. Runs detached from the request.
func (s *Server) processWebhookEvent(ev *webhook.Event, orgID, teamNodeID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()
	logger := s.logger.With("vendor", ev.Vendor, "org_id", orgID, "team_node_id", teamNodeID)

	agent := defaultWebhookAgent
	if eff, err := s.resolver.Resolve(ctx, orgID, teamNodeID); err == nil {
		if agents, ok := eff["agents"].(map[string]interface{}); ok {
			if name, ok := agents["default"].(string); ok && name != "" {
				agent = name
			}
		}
	}

	result, err := s.dispatcher.RunAgent(ctx, dispatch.Input{
		OrgID:         orgID,
		TeamNodeID:    teamNodeID,
		Agent:         agent,
		Prompt:        ev.Prompt,
		TriggerSource: ev.Vendor,
		Trigger:       ev.Trigger,
		Actor:         "webhook:" + ev.Vendor,
	})
	if err != nil {
		logger.Error("Webhook agent run failed", "error", err)
		s.webhooks.SetOutcome(ctx, ev.Vendor, ev.EventID, "error")
		return
	}

	outcomes := s.deliverResult(ctx, orgID, teamNodeID, result)
	for _, o := range outcomes {
		if !o.OK {
			logger.Warn("Webhook fan-out delivery failed",
				"kind", o.Destination.Kind, "error", o.Error)
		}
	}
	s.webhooks.SetOutcome(ctx, ev.Vendor, ev.EventID, "processed")
}
