package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OrgAdminToken is an org-scoped opaque admin bearer, same shape as TeamToken.
type OrgAdminToken struct {
	ent.Schema
}

// Fields of the OrgAdminToken.
func (OrgAdminToken) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("token_id").
			Unique().
			Immutable(),
		field.String("org_id"),
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

// Indexes of the OrgAdminToken.
func (OrgAdminToken) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id"),
	}
}
