package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// NodeConfigHistory is the append-only change stream of node configurations.
type NodeConfigHistory struct {
	ent.Schema
}

// Annotations of the NodeConfigHistory.
func (NodeConfigHistory) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "node_configuration_history"},
	}
}

// Fields of the NodeConfigHistory.
func (NodeConfigHistory) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("org_id"),
		field.String("node_id"),
		field.JSON("config", map[string]interface{}{}),
		field.Int("version"),
		field.Time("recorded_at").
			Default(time.Now),
		field.String("updated_by").
			Optional(),
	}
}

// Indexes of the NodeConfigHistory.
func (NodeConfigHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id", "node_id", "version").
			Unique(),
	}
}
