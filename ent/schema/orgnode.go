package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OrgNode holds the schema definition for the OrgNode entity.
// Nodes form the tenant hierarchy: org roots, sub-teams, and teams.
type OrgNode struct {
	ent.Schema
}

// Fields of the OrgNode.
func (OrgNode) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("org_id").
			Comment("Org root identifier; equals node_id for org roots"),
		field.String("node_id"),
		field.String("parent_id").
			Optional().
			Nillable().
			Comment("Null for org roots"),
		field.Enum("kind").
			Values("org", "sub_team", "team"),
		field.String("name"),
		field.Int("depth").
			Default(0).
			Comment("0 for org roots; enables O(1) ancestor-chain iteration"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the OrgNode.
func (OrgNode) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id", "node_id").
			Unique(),
		index.Fields("org_id", "parent_id"),
	}
}
