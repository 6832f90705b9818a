package api

import (
	"time"

	"github.com/incidentfox/incidentfox/ent"
)

// NodeResponse is the wire shape of an org node.
type NodeResponse struct {
	OrgID     string    `json:"org_id"`
	NodeID    string    `json:"node_id"`
	ParentID  string    `json:"parent_node_id,omitempty"`
	Kind      string    `json:"kind"`
	Name      string    `json:"name"`
	Depth     int       `json:"depth"`
	CreatedAt time.Time `json:"created_at"`
}

func nodeResponse(n *ent.OrgNode) NodeResponse {
	var parentID string
	if n.ParentID != nil {
		parentID = *n.ParentID
	}
	return NodeResponse{
		OrgID:     n.OrgID,
		NodeID:    n.NodeID,
		ParentID:  parentID,
		Kind:      string(n.Kind),
		Name:      n.Name,
		Depth:     n.Depth,
		CreatedAt: n.CreatedAt,
	}
}

// ConfigResponse is the wire shape of a node's stored config.
type ConfigResponse struct {
	OrgID   string                 `json:"org_id"`
	NodeID  string                 `json:"node_id"`
	Version int                    `json:"version"`
	Config  map[string]interface{} `json:"config"`
}

// TokenResponse returns a freshly minted bearer. The plaintext appears only
// here; storage keeps the hash.
type TokenResponse struct {
	Token string `json:"token"`
}

// ProvisioningRunResponse is the wire shape of a provisioning run.
type ProvisioningRunResponse struct {
	ID         string                   `json:"id"`
	OrgID      string                   `json:"org_id"`
	TeamNodeID string                   `json:"team_node_id"`
	Status     string                   `json:"status"`
	Steps      []map[string]interface{} `json:"steps,omitempty"`
	Error      string                   `json:"error,omitempty"`
	TeamToken  string                   `json:"team_token,omitempty"`
	Replayed   bool                     `json:"replayed,omitempty"`
	CreatedAt  time.Time                `json:"created_at"`
	UpdatedAt  time.Time                `json:"updated_at"`
}

func provisioningRunResponse(run *ent.ProvisioningRun) ProvisioningRunResponse {
	var errMsg string
	if run.ErrorMessage != nil {
		errMsg = *run.ErrorMessage
	}
	return ProvisioningRunResponse{
		ID:         run.ID,
		OrgID:      run.OrgID,
		TeamNodeID: run.TeamNodeID,
		Status:     string(run.Status),
		Steps:      run.Steps,
		Error:      errMsg,
		CreatedAt:  run.CreatedAt,
		UpdatedAt:  run.UpdatedAt,
	}
}

// PrincipalResponse is the wire shape of GET /api/v1/auth/me.
type PrincipalResponse struct {
	Role        string   `json:"role"`
	AuthKind    string   `json:"auth_kind"`
	OrgID       string   `json:"org_id,omitempty"`
	TeamNodeID  string   `json:"team_node_id,omitempty"`
	Subject     string   `json:"subject,omitempty"`
	Email       string   `json:"email,omitempty"`
	Permissions []string `json:"permissions"`
	CanWrite    bool     `json:"can_write"`
}

// ScheduledJobResponse is the wire shape of a scheduled job.
type ScheduledJobResponse struct {
	ID         string                 `json:"id"`
	OrgID      string                 `json:"org_id"`
	TeamNodeID string                 `json:"team_node_id"`
	JobType    string                 `json:"job_type"`
	Cron       string                 `json:"cron"`
	Config     map[string]interface{} `json:"config,omitempty"`
	NextFireAt time.Time              `json:"next_fire_at"`
	LastStatus string                 `json:"last_status,omitempty"`
	Enabled    bool                   `json:"enabled"`
}

func scheduledJobResponse(job *ent.ScheduledJob) ScheduledJobResponse {
	return ScheduledJobResponse{
		ID:         job.ID,
		OrgID:      job.OrgID,
		TeamNodeID: job.TeamNodeID,
		JobType:    job.JobType,
		Cron:       job.CronExpr,
		Config:     job.Config,
		NextFireAt: job.NextFireAt,
		LastStatus: job.LastStatus,
		Enabled:    job.Enabled,
	}
}

// AgentRunResponse is the wire shape of a finished agent run.
type AgentRunResponse struct {
	RunID        string        `json:"run_id"`
	Status       string        `json:"status"`
	Output       string        `json:"output,omitempty"`
	EventsCount  int           `json:"events_count"`
	Destinations []interface{} `json:"destinations,omitempty"`
	Fanout       []interface{} `json:"fanout,omitempty"`
}

// HealthCheck is one component's health in the health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is the wire shape of GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}
