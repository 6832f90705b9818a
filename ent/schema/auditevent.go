package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditEvent is one append-only audit row. Credential accesses, config
// writes, token lifecycle, provisioning and agent-run transitions all land
// here; nothing ever updates or deletes a row.
type AuditEvent struct {
	ent.Schema
}

// Fields of the AuditEvent.
func (AuditEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Time("ts").
			Default(time.Now),
		field.String("actor"),
		field.String("action"),
		field.String("target").
			Optional(),
		field.Enum("outcome").
			Values("success", "error").
			Default("success"),
		field.JSON("detail", map[string]interface{}{}).
			Optional(),
	}
}

// Indexes of the AuditEvent.
func (AuditEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ts"),
		index.Fields("action", "ts"),
		index.Fields("actor", "ts"),
	}
}
