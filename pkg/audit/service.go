// Package audit provides the append-only audit log. Every state transition
// on tokens, configs, provisioning runs, agent runs, and credential accesses
// lands here; rows are never updated or deleted.
package audit

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/incidentfox/incidentfox/ent"
	"github.com/incidentfox/incidentfox/ent/auditevent"
)

// Outcome values for audit rows.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Well-known actions recorded by the core.
const (
	ActionConfigWrite      = "config.write"
	ActionNodeCreate       = "node.create"
	ActionNodeDelete       = "node.delete"
	ActionTokenIssue       = "token.issue"
	ActionTokenRevoke      = "token.revoke"
	ActionImpersonate      = "token.impersonate"
	ActionProvision        = "provision.run"
	ActionAgentRun         = "agent.run"
	ActionCredentialAccess = "credential.access"
	ActionWebhookReceive   = "webhook.receive"
	ActionFeedback         = "feedback.record"
	ActionFanout           = "fanout.deliver"
)

// Event is one audit record to append.
type Event struct {
	Actor   string
	Action  string
	Target  string
	Outcome string
	Detail  map[string]interface{}
}

// Service appends audit events.
type Service struct {
	client *ent.Client
	logger *slog.Logger
}

// NewService creates an audit service.
func NewService(client *ent.Client) *Service {
	return &Service{
		client: client,
		logger: slog.Default().With("component", "audit"),
	}
}

// Record appends one audit row. Failures are logged, never propagated: an
// audit write must not fail the operation it describes.
func (s *Service) Record(ctx context.Context, ev Event) {
	if s == nil || s.client == nil {
		return
	}
	outcome := ev.Outcome
	if outcome == "" {
		outcome = OutcomeSuccess
	}
	builder := s.client.AuditEvent.Create().
		SetID(uuid.NewString()).
		SetActor(ev.Actor).
		SetAction(ev.Action).
		SetTarget(ev.Target).
		SetOutcome(auditevent.Outcome(outcome))
	if ev.Detail != nil {
		builder.SetDetail(ev.Detail)
	}
	if _, err := builder.Save(ctx); err != nil {
		s.logger.Error("Failed to append audit event",
			"action", ev.Action, "target", ev.Target, "error", err)
	}
}

// RecordError appends an error-outcome row for a failed operation.
func (s *Service) RecordError(ctx context.Context, ev Event, opErr error) {
	ev.Outcome = OutcomeError
	if ev.Detail == nil {
		ev.Detail = map[string]interface{}{}
	}
	if opErr != nil {
		ev.Detail["error"] = opErr.Error()
	}
	s.Record(ctx, ev)
}
