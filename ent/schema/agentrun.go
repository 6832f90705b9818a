package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentRun records one bounded agent investigation.
type AgentRun struct {
	ent.Schema
}

// Fields of the AgentRun.
func (AgentRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("correlation_id").
			Optional(),
		field.String("org_id"),
		field.String("team_node_id"),
		field.String("agent_name"),
		field.String("trigger_source").
			Optional(),
		field.Enum("status").
			Values("queued", "running", "complete", "error", "interrupted").
			Default("queued"),
		field.Time("started_at").
			Default(time.Now),
		field.Time("ended_at").
			Optional().
			Nillable(),
		field.Int("max_turns").
			Default(30),
		field.Int("events_count").
			Default(0),
		field.String("output_ref").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
	}
}

// Indexes of the AgentRun.
func (AgentRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id", "team_node_id", "started_at"),
		index.Fields("correlation_id"),
		index.Fields("status"),
	}
}
