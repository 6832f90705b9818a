package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TeamToken is an opaque team bearer. The wire format is "<id>.<secret>";
// only the peppered HMAC of the secret is stored.
type TeamToken struct {
	ent.Schema
}

// Fields of the TeamToken.
func (TeamToken) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("token_id").
			Unique().
			Immutable(),
		field.String("org_id"),
		field.String("team_node_id"),
		field.String("token_hash").
			Sensitive(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("last_used_at").
			Optional().
			Nillable(),
		field.Time("revoked_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the TeamToken.
func (TeamToken) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id", "team_node_id"),
	}
}
