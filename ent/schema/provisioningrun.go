package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProvisioningRun is one idempotent multi-step provisioning attempt for a
// (org, team) pair. The partial unique index on
// (org_id, team_node_id, idempotency_key) is the idempotency arbiter.
type ProvisioningRun struct {
	ent.Schema
}

// Annotations of the ProvisioningRun.
func (ProvisioningRun) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "orchestrator_provisioning_runs"},
	}
}

// Fields of the ProvisioningRun.
func (ProvisioningRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("org_id"),
		field.String("team_node_id"),
		field.String("idempotency_key").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("running", "succeeded", "failed").
			Default("running"),
		field.JSON("steps", []map[string]interface{}{}).
			Optional().
			Comment("Ordered [{name, status, detail}]"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ProvisioningRun.
func (ProvisioningRun) Indexes() []ent.Index {
	return []ent.Index{
		// Partial unique: only when an idempotency key is present.
		index.Fields("org_id", "team_node_id", "idempotency_key").
			Unique().
			Annotations(entsql.IndexWhere("idempotency_key IS NOT NULL")),
		index.Fields("org_id", "team_node_id", "created_at"),
	}
}
