package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScheduledJob is a cron-driven agent job. Claiming is DB-arbitrated:
// the due query runs FOR UPDATE SKIP LOCKED and stamps lock_owner /
// lock_expires_at so replicas never claim the same job twice.
type ScheduledJob struct {
	ent.Schema
}

// Fields of the ScheduledJob.
func (ScheduledJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("org_id"),
		field.String("team_node_id"),
		field.String("job_type"),
		field.String("cron_expr").
			StorageKey("cron"),
		field.JSON("config", map[string]interface{}{}).
			Optional(),
		field.Time("next_fire_at"),
		field.String("last_status").
			Optional(),
		field.String("lock_owner").
			Optional().
			Nillable(),
		field.Time("lock_expires_at").
			Optional().
			Nillable(),
		field.Bool("enabled").
			Default(true),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ScheduledJob.
func (ScheduledJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("next_fire_at"),
		index.Fields("org_id", "team_node_id"),
	}
}
