package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ImpersonationJTI is the optional DB allowlist of minted impersonation and
// sandbox JWT ids. Rows exist only when JTI DB logging is enabled; when
// JTI DB require is on, decode fails for ids without a row.
type ImpersonationJTI struct {
	ent.Schema
}

// Annotations of the ImpersonationJTI.
func (ImpersonationJTI) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "impersonation_jtis"},
	}
}

// Fields of the ImpersonationJTI.
func (ImpersonationJTI) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("jti").
			Unique().
			Immutable(),
		field.String("org_id"),
		field.String("team_node_id"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("expires_at"),
	}
}

// Indexes of the ImpersonationJTI.
func (ImpersonationJTI) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("expires_at"),
	}
}
