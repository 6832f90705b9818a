package api

// CreateOrgRequest is the body for POST /api/v1/admin/orgs.
type CreateOrgRequest struct {
	OrgID string `json:"org_id"`
	Name  string `json:"name"`
}

// CreateNodeRequest is the body for POST /api/v1/admin/orgs/{org}/nodes.
type CreateNodeRequest struct {
	NodeID       string `json:"node_id"`
	ParentNodeID string `json:"parent_node_id"`
	Kind         string `json:"kind"`
	Name         string `json:"name"`
}

// ImpersonationTokenRequest is the body for the impersonation-token endpoint.
type ImpersonationTokenRequest struct {
	TTLSeconds int `json:"ttl_seconds,omitempty"`
}

// ProvisionTeamRequest is the body for POST /api/v1/admin/provision/team.
type ProvisionTeamRequest struct {
	OrgID           string   `json:"org_id"`
	TeamNodeID      string   `json:"team_node_id"`
	TeamName        string   `json:"team_name"`
	SlackChannelIDs []string `json:"slack_channel_ids,omitempty"`
	IdempotencyKey  string   `json:"idempotency_key,omitempty"`
}

// AgentRunRequest is the body for the agent-run endpoints. Org and team are
// required on the admin route and taken from the principal on the tenant one.
type AgentRunRequest struct {
	OrgID         string `json:"org_id,omitempty"`
	TeamNodeID    string `json:"team_node_id,omitempty"`
	Agent         string `json:"agent"`
	Prompt        string `json:"prompt"`
	TriggerSource string `json:"trigger_source,omitempty"`
	MaxTurns      int    `json:"max_turns,omitempty"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// CreateScheduledJobRequest is the body for POST /api/v1/scheduled-jobs.
type CreateScheduledJobRequest struct {
	JobType string                 `json:"job_type"`
	Cron    string                 `json:"cron"`
	Config  map[string]interface{} `json:"config,omitempty"`
}

// CompleteJobRequest is the body for the internal job-completion endpoint.
type CompleteJobRequest struct {
	Owner  string `json:"owner"`
	Status string `json:"status"`
}

// ImpersonateTeamRequest is the body for POST /api/v1/internal/impersonate-team.
type ImpersonateTeamRequest struct {
	OrgID      string `json:"org_id"`
	TeamNodeID string `json:"team_node_id"`
}
