package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// A2ATask tracks an agent-to-agent task driven through the internal surface.
type A2ATask struct {
	ent.Schema
}

// Annotations of the A2ATask.
func (A2ATask) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "a2a_tasks"},
	}
}

// Fields of the A2ATask.
func (A2ATask) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Enum("status").
			Values("submitted", "working", "completed", "failed", "canceled").
			Default("submitted"),
		field.JSON("message", map[string]interface{}{}),
		field.JSON("result_message", map[string]interface{}{}).
			Optional(),
		field.JSON("artifacts", []map[string]interface{}{}).
			Optional(),
		field.JSON("history", []map[string]interface{}{}).
			Optional(),
		field.String("org_id"),
		field.String("team_node_id"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the A2ATask.
func (A2ATask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id", "team_node_id", "created_at"),
		index.Fields("status"),
	}
}
