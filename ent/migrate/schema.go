// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// A2aTasksColumns holds the columns for the "a2a_tasks" table.
	A2aTasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"submitted", "working", "completed", "failed", "canceled"}, Default: "submitted"},
		{Name: "message", Type: field.TypeJSON},
		{Name: "result_message", Type: field.TypeJSON, Nullable: true},
		{Name: "artifacts", Type: field.TypeJSON, Nullable: true},
		{Name: "history", Type: field.TypeJSON, Nullable: true},
		{Name: "org_id", Type: field.TypeString},
		{Name: "team_node_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// A2aTasksTable holds the schema information for the "a2a_tasks" table.
	A2aTasksTable = &schema.Table{
		Name:       "a2a_tasks",
		Columns:    A2aTasksColumns,
		PrimaryKey: []*schema.Column{A2aTasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "a2atask_org_id_team_node_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{A2aTasksColumns[6], A2aTasksColumns[7], A2aTasksColumns[8]},
			},
			{
				Name:    "a2atask_status",
				Unique:  false,
				Columns: []*schema.Column{A2aTasksColumns[1]},
			},
		},
	}
	// AgentRunsColumns holds the columns for the "agent_runs" table.
	AgentRunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "correlation_id", Type: field.TypeString, Nullable: true},
		{Name: "org_id", Type: field.TypeString},
		{Name: "team_node_id", Type: field.TypeString},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "trigger_source", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "running", "complete", "error", "interrupted"}, Default: "queued"},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "max_turns", Type: field.TypeInt, Default: 30},
		{Name: "events_count", Type: field.TypeInt, Default: 0},
		{Name: "output_ref", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// AgentRunsTable holds the schema information for the "agent_runs" table.
	AgentRunsTable = &schema.Table{
		Name:       "agent_runs",
		Columns:    AgentRunsColumns,
		PrimaryKey: []*schema.Column{AgentRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentrun_org_id_team_node_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[2], AgentRunsColumns[3], AgentRunsColumns[7]},
			},
			{
				Name:    "agentrun_correlation_id",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[1]},
			},
			{
				Name:    "agentrun_status",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[6]},
			},
		},
	}
	// AuditEventsColumns holds the columns for the "audit_events" table.
	AuditEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "ts", Type: field.TypeTime},
		{Name: "actor", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "target", Type: field.TypeString, Nullable: true},
		{Name: "outcome", Type: field.TypeEnum, Enums: []string{"success", "error"}, Default: "success"},
		{Name: "detail", Type: field.TypeJSON, Nullable: true},
	}
	// AuditEventsTable holds the schema information for the "audit_events" table.
	AuditEventsTable = &schema.Table{
		Name:       "audit_events",
		Columns:    AuditEventsColumns,
		PrimaryKey: []*schema.Column{AuditEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditevent_ts",
				Unique:  false,
				Columns: []*schema.Column{AuditEventsColumns[1]},
			},
			{
				Name:    "auditevent_action_ts",
				Unique:  false,
				Columns: []*schema.Column{AuditEventsColumns[3], AuditEventsColumns[1]},
			},
			{
				Name:    "auditevent_actor_ts",
				Unique:  false,
				Columns: []*schema.Column{AuditEventsColumns[2], AuditEventsColumns[1]},
			},
		},
	}
	// ImpersonationJtisColumns holds the columns for the "impersonation_jtis" table.
	ImpersonationJtisColumns = []*schema.Column{
		{Name: "jti", Type: field.TypeString, Unique: true},
		{Name: "org_id", Type: field.TypeString},
		{Name: "team_node_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
	}
	// ImpersonationJtisTable holds the schema information for the "impersonation_jtis" table.
	ImpersonationJtisTable = &schema.Table{
		Name:       "impersonation_jtis",
		Columns:    ImpersonationJtisColumns,
		PrimaryKey: []*schema.Column{ImpersonationJtisColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "impersonationjti_expires_at",
				Unique:  false,
				Columns: []*schema.Column{ImpersonationJtisColumns[4]},
			},
		},
	}
	// IntegrationSchemasColumns holds the columns for the "integration_schemas" table.
	IntegrationSchemasColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "fields", Type: field.TypeJSON},
	}
	// IntegrationSchemasTable holds the schema information for the "integration_schemas" table.
	IntegrationSchemasTable = &schema.Table{
		Name:       "integration_schemas",
		Columns:    IntegrationSchemasColumns,
		PrimaryKey: []*schema.Column{IntegrationSchemasColumns[0]},
	}
	// NodeConfigurationsColumns holds the columns for the "node_configurations" table.
	NodeConfigurationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "org_id", Type: field.TypeString},
		{Name: "node_id", Type: field.TypeString},
		{Name: "config", Type: field.TypeJSON},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "updated_by", Type: field.TypeString, Nullable: true},
	}
	// NodeConfigurationsTable holds the schema information for the "node_configurations" table.
	NodeConfigurationsTable = &schema.Table{
		Name:       "node_configurations",
		Columns:    NodeConfigurationsColumns,
		PrimaryKey: []*schema.Column{NodeConfigurationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "nodeconfig_org_id_node_id",
				Unique:  true,
				Columns: []*schema.Column{NodeConfigurationsColumns[1], NodeConfigurationsColumns[2]},
			},
		},
	}
	// NodeConfigurationHistoryColumns holds the columns for the "node_configuration_history" table.
	NodeConfigurationHistoryColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "org_id", Type: field.TypeString},
		{Name: "node_id", Type: field.TypeString},
		{Name: "config", Type: field.TypeJSON},
		{Name: "version", Type: field.TypeInt},
		{Name: "recorded_at", Type: field.TypeTime},
		{Name: "updated_by", Type: field.TypeString, Nullable: true},
	}
	// NodeConfigurationHistoryTable holds the schema information for the "node_configuration_history" table.
	NodeConfigurationHistoryTable = &schema.Table{
		Name:       "node_configuration_history",
		Columns:    NodeConfigurationHistoryColumns,
		PrimaryKey: []*schema.Column{NodeConfigurationHistoryColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "nodeconfighistory_org_id_node_id_version",
				Unique:  true,
				Columns: []*schema.Column{NodeConfigurationHistoryColumns[1], NodeConfigurationHistoryColumns[2], NodeConfigurationHistoryColumns[4]},
			},
		},
	}
	// OrgAdminTokensColumns holds the columns for the "org_admin_tokens" table.
	OrgAdminTokensColumns = []*schema.Column{
		{Name: "token_id", Type: field.TypeString, Unique: true},
		{Name: "org_id", Type: field.TypeString},
		{Name: "token_hash", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
	}
	// OrgAdminTokensTable holds the schema information for the "org_admin_tokens" table.
	OrgAdminTokensTable = &schema.Table{
		Name:       "org_admin_tokens",
		Columns:    OrgAdminTokensColumns,
		PrimaryKey: []*schema.Column{OrgAdminTokensColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "orgadmintoken_org_id",
				Unique:  false,
				Columns: []*schema.Column{OrgAdminTokensColumns[1]},
			},
		},
	}
	// OrgNodesColumns holds the columns for the "org_nodes" table.
	OrgNodesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "org_id", Type: field.TypeString},
		{Name: "node_id", Type: field.TypeString},
		{Name: "parent_id", Type: field.TypeString, Nullable: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"org", "sub_team", "team"}},
		{Name: "name", Type: field.TypeString},
		{Name: "depth", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// OrgNodesTable holds the schema information for the "org_nodes" table.
	OrgNodesTable = &schema.Table{
		Name:       "org_nodes",
		Columns:    OrgNodesColumns,
		PrimaryKey: []*schema.Column{OrgNodesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "orgnode_org_id_node_id",
				Unique:  true,
				Columns: []*schema.Column{OrgNodesColumns[1], OrgNodesColumns[2]},
			},
			{
				Name:    "orgnode_org_id_parent_id",
				Unique:  false,
				Columns: []*schema.Column{OrgNodesColumns[1], OrgNodesColumns[3]},
			},
		},
	}
	// OrchestratorProvisioningRunsColumns holds the columns for the "orchestrator_provisioning_runs" table.
	OrchestratorProvisioningRunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "org_id", Type: field.TypeString},
		{Name: "team_node_id", Type: field.TypeString},
		{Name: "idempotency_key", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "succeeded", "failed"}, Default: "running"},
		{Name: "steps", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// OrchestratorProvisioningRunsTable holds the schema information for the "orchestrator_provisioning_runs" table.
	OrchestratorProvisioningRunsTable = &schema.Table{
		Name:       "orchestrator_provisioning_runs",
		Columns:    OrchestratorProvisioningRunsColumns,
		PrimaryKey: []*schema.Column{OrchestratorProvisioningRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "provisioningrun_org_id_team_node_id_idempotency_key",
				Unique:  true,
				Columns: []*schema.Column{OrchestratorProvisioningRunsColumns[1], OrchestratorProvisioningRunsColumns[2], OrchestratorProvisioningRunsColumns[3]},
				Annotation: &entsql.IndexAnnotation{
					Where: "idempotency_key IS NOT NULL",
				},
			},
			{
				Name:    "provisioningrun_org_id_team_node_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{OrchestratorProvisioningRunsColumns[1], OrchestratorProvisioningRunsColumns[2], OrchestratorProvisioningRunsColumns[7]},
			},
		},
	}
	// RoutingKeysColumns holds the columns for the "routing_keys" table.
	RoutingKeysColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"slack", "github", "pagerduty", "incidentio", "teams", "gchat"}},
		{Name: "key", Type: field.TypeString},
		{Name: "org_id", Type: field.TypeString},
		{Name: "team_node_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// RoutingKeysTable holds the schema information for the "routing_keys" table.
	RoutingKeysTable = &schema.Table{
		Name:       "routing_keys",
		Columns:    RoutingKeysColumns,
		PrimaryKey: []*schema.Column{RoutingKeysColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "routingkey_source_key",
				Unique:  true,
				Columns: []*schema.Column{RoutingKeysColumns[1], RoutingKeysColumns[2]},
			},
			{
				Name:    "routingkey_org_id_team_node_id",
				Unique:  false,
				Columns: []*schema.Column{RoutingKeysColumns[3], RoutingKeysColumns[4]},
			},
		},
	}
	// ScheduledJobsColumns holds the columns for the "scheduled_jobs" table.
	ScheduledJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "org_id", Type: field.TypeString},
		{Name: "team_node_id", Type: field.TypeString},
		{Name: "job_type", Type: field.TypeString},
		{Name: "cron", Type: field.TypeString},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "next_fire_at", Type: field.TypeTime},
		{Name: "last_status", Type: field.TypeString, Nullable: true},
		{Name: "lock_owner", Type: field.TypeString, Nullable: true},
		{Name: "lock_expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ScheduledJobsTable holds the schema information for the "scheduled_jobs" table.
	ScheduledJobsTable = &schema.Table{
		Name:       "scheduled_jobs",
		Columns:    ScheduledJobsColumns,
		PrimaryKey: []*schema.Column{ScheduledJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scheduledjob_next_fire_at",
				Unique:  false,
				Columns: []*schema.Column{ScheduledJobsColumns[6]},
			},
			{
				Name:    "scheduledjob_org_id_team_node_id",
				Unique:  false,
				Columns: []*schema.Column{ScheduledJobsColumns[1], ScheduledJobsColumns[2]},
			},
		},
	}
	// TeamTokensColumns holds the columns for the "team_tokens" table.
	TeamTokensColumns = []*schema.Column{
		{Name: "token_id", Type: field.TypeString, Unique: true},
		{Name: "org_id", Type: field.TypeString},
		{Name: "team_node_id", Type: field.TypeString},
		{Name: "token_hash", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
	}
	// TeamTokensTable holds the schema information for the "team_tokens" table.
	TeamTokensTable = &schema.Table{
		Name:       "team_tokens",
		Columns:    TeamTokensColumns,
		PrimaryKey: []*schema.Column{TeamTokensColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "teamtoken_org_id_team_node_id",
				Unique:  false,
				Columns: []*schema.Column{TeamTokensColumns[1], TeamTokensColumns[2]},
			},
		},
	}
	// TokenAuditColumns holds the columns for the "token_audit" table.
	TokenAuditColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "ts", Type: field.TypeTime},
		{Name: "org_id", Type: field.TypeString},
		{Name: "team_node_id", Type: field.TypeString, Nullable: true},
		{Name: "token_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeEnum, Enums: []string{"issued", "rotated", "revoked"}},
		{Name: "actor", Type: field.TypeString},
	}
	// TokenAuditTable holds the schema information for the "token_audit" table.
	TokenAuditTable = &schema.Table{
		Name:       "token_audit",
		Columns:    TokenAuditColumns,
		PrimaryKey: []*schema.Column{TokenAuditColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tokenaudit_org_id_ts",
				Unique:  false,
				Columns: []*schema.Column{TokenAuditColumns[2], TokenAuditColumns[1]},
			},
		},
	}
	// WebhookDeliveriesColumns holds the columns for the "webhook_deliveries" table.
	WebhookDeliveriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "vendor", Type: field.TypeString},
		{Name: "event_id", Type: field.TypeString},
		{Name: "org_id", Type: field.TypeString, Nullable: true},
		{Name: "team_node_id", Type: field.TypeString, Nullable: true},
		{Name: "outcome", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// WebhookDeliveriesTable holds the schema information for the "webhook_deliveries" table.
	WebhookDeliveriesTable = &schema.Table{
		Name:       "webhook_deliveries",
		Columns:    WebhookDeliveriesColumns,
		PrimaryKey: []*schema.Column{WebhookDeliveriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "webhookdelivery_vendor_event_id",
				Unique:  true,
				Columns: []*schema.Column{WebhookDeliveriesColumns[1], WebhookDeliveriesColumns[2]},
			},
			{
				Name:    "webhookdelivery_created_at",
				Unique:  false,
				Columns: []*schema.Column{WebhookDeliveriesColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		A2aTasksTable,
		AgentRunsTable,
		AuditEventsTable,
		ImpersonationJtisTable,
		IntegrationSchemasTable,
		NodeConfigurationsTable,
		NodeConfigurationHistoryTable,
		OrgAdminTokensTable,
		OrgNodesTable,
		OrchestratorProvisioningRunsTable,
		RoutingKeysTable,
		ScheduledJobsTable,
		TeamTokensTable,
		TokenAuditTable,
		WebhookDeliveriesTable,
	}
)

func init() {
	A2aTasksTable.Annotation = &entsql.Annotation{
		Table: "a2a_tasks",
	}
	ImpersonationJtisTable.Annotation = &entsql.Annotation{
		Table: "impersonation_jtis",
	}
	NodeConfigurationsTable.Annotation = &entsql.Annotation{
		Table: "node_configurations",
	}
	NodeConfigurationHistoryTable.Annotation = &entsql.Annotation{
		Table: "node_configuration_history",
	}
	OrchestratorProvisioningRunsTable.Annotation = &entsql.Annotation{
		Table: "orchestrator_provisioning_runs",
	}
	TokenAuditTable.Annotation = &entsql.Annotation{
		Table: "token_audit",
	}
}
