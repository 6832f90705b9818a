package fanout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/incidentfox/incidentfox/pkg/output"
)

// deliverPagerDuty attaches the artifact as a note on the incident.
func (s *Service) deliverPagerDuty(ctx context.Context, dest output.Destination, artifact Artifact, creds Credentials) error {
	if creds.PagerDutyAPIKey == "" {
		return fmt.Errorf("pagerduty integration not configured")
	}
	if dest.IncidentID == "" {
		return fmt.Errorf("pagerduty destination has no incident id")
	}

	payload, err := json.Marshal(map[string]interface{}{
		"note": map[string]string{"content": artifact.Text},
	})
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/incidents/%s/notes", s.pagerDutyBase, dest.IncidentID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Token token="+creds.PagerDutyAPIKey)
	req.Header.Set("Content-Type", "application/json")
	if creds.PagerDutyFrom != "" {
		req.Header.Set("From", creds.PagerDutyFrom)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("pagerduty note request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("pagerduty note returned %d: %s", resp.StatusCode, msg)
	}
	return nil
}

// deliverIncidentIO records the artifact as a timeline entry on the incident.
func (s *Service) deliverIncidentIO(ctx context.Context, dest output.Destination, artifact Artifact, creds Credentials) error {
	if creds.IncidentIOAPIKey == "" {
		return fmt.Errorf("incidentio integration not configured")
	}
	if dest.IncidentID == "" {
		return fmt.Errorf("incidentio destination has no incident id")
	}

	payload, err := json.Marshal(map[string]interface{}{
		"incident_id": dest.IncidentID,
		"description": artifact.Text,
	})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.incidentIOBase+"/v2/incident_timeline_events", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+creds.IncidentIOAPIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("incidentio timeline request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("incidentio timeline returned %d: %s", resp.StatusCode, msg)
	}
	return nil
}
