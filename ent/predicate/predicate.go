// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// A2ATask is the predicate function for a2atask builders.
type A2ATask func(*sql.Selector)

// AgentRun is the predicate function for agentrun builders.
type AgentRun func(*sql.Selector)

// AuditEvent is the predicate function for auditevent builders.
type AuditEvent func(*sql.Selector)

// ImpersonationJTI is the predicate function for impersonationjti builders.
type ImpersonationJTI func(*sql.Selector)

// IntegrationSchema is the predicate function for integrationschema builders.
type IntegrationSchema func(*sql.Selector)

// NodeConfig is the predicate function for nodeconfig builders.
type NodeConfig func(*sql.Selector)

// NodeConfigHistory is the predicate function for nodeconfighistory builders.
type NodeConfigHistory func(*sql.Selector)

// OrgAdminToken is the predicate function for orgadmintoken builders.
type OrgAdminToken func(*sql.Selector)

// OrgNode is the predicate function for orgnode builders.
type OrgNode func(*sql.Selector)

// ProvisioningRun is the predicate function for provisioningrun builders.
type ProvisioningRun func(*sql.Selector)

// RoutingKey is the predicate function for routingkey builders.
type RoutingKey func(*sql.Selector)

// ScheduledJob is the predicate function for scheduledjob builders.
type ScheduledJob func(*sql.Selector)

// TeamToken is the predicate function for teamtoken builders.
type TeamToken func(*sql.Selector)

// TokenAudit is the predicate function for tokenaudit builders.
type TokenAudit func(*sql.Selector)

// WebhookDelivery is the predicate function for webhookdelivery builders.
type WebhookDelivery func(*sql.Selector)
