package webhook

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/incidentfox/incidentfox/ent"
	"github.com/incidentfox/incidentfox/ent/orgnode"
	"github.com/incidentfox/incidentfox/ent/webhookdelivery"
	"github.com/incidentfox/incidentfox/pkg/audit"
	"github.com/incidentfox/incidentfox/pkg/nodestore"
	"github.com/incidentfox/incidentfox/pkg/output"
)

// ErrUnroutable is returned when no tenant claims the event's routing key.
var ErrUnroutable = errors.New("no tenant mapped for routing key")

// Event is a vendor webhook normalized for dispatch.
type Event struct {
	Vendor  string
	EventID string
	// RoutingSource/RoutingKey locate the owning tenant.
	RoutingSource string
	RoutingKey    string
	// Prompt is the text handed to the agent.
	Prompt  string
	Trigger output.Trigger
	// Payload keeps vendor fields the agent may want.
	Payload map[string]interface{}
}

// Service routes verified webhook events to tenants and deduplicates
// redeliveries.
type Service struct {
	client *ent.Client
	nodes  *nodestore.Service
	audit  *audit.Service
	logger *slog.Logger
}

// NewService creates the webhook service.
func NewService(client *ent.Client, nodes *nodestore.Service, auditSvc *audit.Service) *Service {
	return &Service{
		client: client,
		nodes:  nodes,
		audit:  auditSvc,
		logger: slog.Default().With("component", "webhook"),
	}
}

// MarkDelivered records the (vendor, event_id) pair. A redelivery returns
// first=false along with the prior delivery's recorded outcome; the unique
// index arbitrates races.
func (s *Service) MarkDelivered(ctx context.Context, vendor, eventID, orgID, teamNodeID string) (first bool, priorOutcome string, err error) {
	if eventID == "" {
		// Vendors without delivery ids cannot be deduplicated.
		return true, "", nil
	}
	err = s.client.WebhookDelivery.Create().
		SetID(uuid.NewString()).
		SetVendor(vendor).
		SetEventID(eventID).
		SetOrgID(orgID).
		SetTeamNodeID(teamNodeID).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			s.logger.Info("Duplicate webhook delivery ignored", "vendor", vendor, "event_id", eventID)
			prior, qerr := s.client.WebhookDelivery.Query().
				Where(webhookdelivery.Vendor(vendor), webhookdelivery.EventID(eventID)).
				Only(ctx)
			if qerr != nil {
				return false, "", nil
			}
			return false, prior.Outcome, nil
		}
		return false, "", err
	}
	return true, "", nil
}

// SetOutcome records the processing outcome on a delivery row, best effort.
func (s *Service) SetOutcome(ctx context.Context, vendor, eventID, outcome string) {
	if eventID == "" {
		return
	}
	if _, err := s.client.WebhookDelivery.Update().
		Where(webhookdelivery.Vendor(vendor), webhookdelivery.EventID(eventID)).
		SetOutcome(outcome).
		Save(ctx); err != nil {
		s.logger.Warn("Failed to record webhook outcome", "vendor", vendor, "event_id", eventID, "error", err)
	}
}

// ResolveTenant maps the event's routing key to its owning (org, team).
// Google Chat spaces and Teams tenants auto-provision a dedicated org with a
// "default" team on first contact; other sources must be mapped explicitly.
func (s *Service) ResolveTenant(ctx context.Context, ev *Event) (orgID, teamNodeID string, err error) {
	if ev.RoutingKey == "" {
		return "", "", ErrUnroutable
	}
	orgID, teamNodeID, err = s.nodes.LookupRouting(ctx, ev.RoutingSource, ev.RoutingKey)
	if err == nil {
		return orgID, teamNodeID, nil
	}
	if !errors.Is(err, nodestore.ErrNotFound) {
		return "", "", err
	}

	switch ev.RoutingSource {
	case "gchat":
		return s.autoProvision(ctx, "gchat", "gchat-"+ev.RoutingKey, "gchat_space_ids", ev.RoutingKey)
	case "teams":
		return s.autoProvision(ctx, "teams", "teams-"+ev.RoutingKey, "teams_channel_ids", ev.RoutingKey)
	}
	return "", "", ErrUnroutable
}

// autoProvision creates a surface-owned org with a single "default" team and
// maps the routing key onto it.
func (s *Service) autoProvision(ctx context.Context, source, orgID, routingField, key string) (string, string, error) {
	const teamNodeID = "default"
	actor := "webhook:" + source

	if _, err := s.nodes.CreateOrg(ctx, orgID, orgID, actor); err != nil && !errors.Is(err, nodestore.ErrAlreadyExists) {
		return "", "", fmt.Errorf("auto-provisioning org %s: %w", orgID, err)
	}
	if _, err := s.nodes.CreateNode(ctx, orgID, teamNodeID, orgID, orgnode.KindTeam, "Default", actor); err != nil && !errors.Is(err, nodestore.ErrAlreadyExists) {
		return "", "", fmt.Errorf("auto-provisioning team for %s: %w", orgID, err)
	}
	patch := map[string]interface{}{
		"routing": map[string]interface{}{
			routingField: []interface{}{key},
		},
	}
	if _, err := s.nodes.PatchConfig(ctx, orgID, teamNodeID, patch, actor); err != nil {
		// A concurrent auto-provision may have won the key.
		if nodestore.IsRoutingConflict(err) {
			return s.nodes.LookupRouting(ctx, source, key)
		}
		return "", "", fmt.Errorf("mapping routing key for %s: %w", orgID, err)
	}
	s.logger.Info("Auto-provisioned surface tenant", "org_id", orgID, "source", source, "key", key)
	return orgID, teamNodeID, nil
}

// RecordReceipt appends the audit row for an accepted webhook.
func (s *Service) RecordReceipt(ctx context.Context, ev *Event, orgID, teamNodeID string) {
	s.audit.Record(ctx, audit.Event{
		Actor:  "webhook:" + ev.Vendor,
		Action: audit.ActionWebhookReceive,
		Target: orgID + "/" + teamNodeID,
		Detail: map[string]interface{}{"vendor": ev.Vendor, "event_id": ev.EventID},
	})
}
