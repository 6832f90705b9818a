// Package fanout posts a finished run's result artifact to its resolved
// destinations. Destinations are independent: one failing post never blocks
// the others, and every destination's outcome is captured.
package fanout

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/incidentfox/incidentfox/pkg/crypto"
	"github.com/incidentfox/incidentfox/pkg/integration"
	"github.com/incidentfox/incidentfox/pkg/output"
)

const deliveryTimeout = 30 * time.Second

// Artifact is the result of an agent run, ready for delivery.
type Artifact struct {
	RunID   string
	Text    string
	Success bool
}

// Outcome records one destination's delivery result.
type Outcome struct {
	Destination output.Destination `json:"destination"`
	OK          bool               `json:"ok"`
	Error       string             `json:"error,omitempty"`
}

// Credentials bundles the decrypted vendor credentials a delivery may need.
// Slack tokens travel on the destination itself; the rest come from the
// tenant's integrations config.
type Credentials struct {
	GitHubToken      string
	GitHubAPIHost    string
	PagerDutyAPIKey  string
	PagerDutyFrom    string
	IncidentIOAPIKey string
}

// CredentialsFromEffective extracts and decrypts the delivery credentials
// from an effective config. Absent integrations leave zero values; the
// delivery for that kind then fails with a clear outcome.
func CredentialsFromEffective(effective map[string]interface{}, enc *crypto.Encryptor) (Credentials, error) {
	var creds Credentials

	github, err := enc.DecryptDict(integration.GetIntegrationConfig(effective, "github"))
	if err != nil {
		return creds, fmt.Errorf("decrypting github credentials: %w", err)
	}
	creds.GitHubToken, _ = github["token"].(string)
	creds.GitHubAPIHost, _ = github["api_host"].(string)

	pagerduty, err := enc.DecryptDict(integration.GetIntegrationConfig(effective, "pagerduty"))
	if err != nil {
		return creds, fmt.Errorf("decrypting pagerduty credentials: %w", err)
	}
	creds.PagerDutyAPIKey, _ = pagerduty["api_key"].(string)
	creds.PagerDutyFrom, _ = pagerduty["from_email"].(string)

	incidentio, err := enc.DecryptDict(integration.GetIntegrationConfig(effective, "incidentio"))
	if err != nil {
		return creds, fmt.Errorf("decrypting incidentio credentials: %w", err)
	}
	creds.IncidentIOAPIKey, _ = incidentio["api_key"].(string)

	return creds, nil
}

// Service delivers artifacts to external destinations.
type Service struct {
	http   *http.Client
	logger *slog.Logger

	// Overridable vendor API bases, for tests.
	slackAPIURL    string
	pagerDutyBase  string
	incidentIOBase string
}

// NewService creates a fan-out service.
func NewService() *Service {
	return &Service{
		http:           &http.Client{Timeout: deliveryTimeout},
		logger:         slog.Default().With("component", "fanout"),
		pagerDutyBase:  "https://api.pagerduty.com",
		incidentIOBase: "https://api.incident.io",
	}
}

// Deliver posts the artifact to every destination, sequentially, and returns
// one outcome per destination.
func (s *Service) Deliver(ctx context.Context, destinations []output.Destination, artifact Artifact, creds Credentials) []Outcome {
	outcomes := make([]Outcome, 0, len(destinations))
	for _, dest := range destinations {
		err := s.deliverOne(ctx, dest, artifact, creds)
		outcome := Outcome{Destination: dest, OK: err == nil}
		if err != nil {
			outcome.Error = err.Error()
			s.logger.Warn("Delivery failed",
				"kind", dest.Kind, "run_id", artifact.RunID, "error", err)
		} else {
			s.logger.Info("Delivered result",
				"kind", dest.Kind, "run_id", artifact.RunID)
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

func (s *Service) deliverOne(ctx context.Context, dest output.Destination, artifact Artifact, creds Credentials) error {
	ctx, cancel := context.WithTimeout(ctx, deliveryTimeout)
	defer cancel()

	switch dest.Kind {
	case output.KindSlack:
		return s.deliverSlack(ctx, dest, artifact)
	case output.KindGitHub:
		return s.deliverGitHub(ctx, dest, artifact, creds)
	case output.KindPagerDuty:
		return s.deliverPagerDuty(ctx, dest, artifact, creds)
	case output.KindIncidentIO:
		return s.deliverIncidentIO(ctx, dest, artifact, creds)
	default:
		return fmt.Errorf("unknown destination kind: %s", dest.Kind)
	}
}
