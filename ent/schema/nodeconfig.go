package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// NodeConfig holds the current configuration document for one node.
// Exactly one row per (org_id, node_id); previous versions live in
// NodeConfigHistory.
type NodeConfig struct {
	ent.Schema
}

// Annotations of the NodeConfig.
func (NodeConfig) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "node_configurations"},
	}
}

// Fields of the NodeConfig.
func (NodeConfig) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("org_id"),
		field.String("node_id"),
		field.JSON("config", map[string]interface{}{}),
		field.Int("version").
			Default(1).
			Min(1),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.String("updated_by").
			Optional(),
	}
}

// Indexes of the NodeConfig.
func (NodeConfig) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id", "node_id").
			Unique(),
	}
}
