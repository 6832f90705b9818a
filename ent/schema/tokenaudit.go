package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TokenAudit records token lifecycle events (issue, rotate, revoke).
type TokenAudit struct {
	ent.Schema
}

// Annotations of the TokenAudit.
func (TokenAudit) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "token_audit"},
	}
}

// Fields of the TokenAudit.
func (TokenAudit) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Time("ts").
			Default(time.Now),
		field.String("org_id"),
		field.String("team_node_id").
			Optional(),
		field.String("token_id"),
		field.Enum("action").
			Values("issued", "rotated", "revoked"),
		field.String("actor"),
	}
}

// Indexes of the TokenAudit.
func (TokenAudit) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id", "ts"),
	}
}
