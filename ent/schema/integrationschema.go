package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// IntegrationSchema is a registered integration definition: which fields the
// integration carries, which are secret, and at which level they may be set.
type IntegrationSchema struct {
	ent.Schema
}

// Fields of the IntegrationSchema.
func (IntegrationSchema) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			Comment("Integration identifier, e.g. 'snowflake'"),
		field.String("name"),
		field.String("category"),
		field.JSON("fields", []map[string]interface{}{}).
			Comment("[{name, type, required, level, default?}]"),
	}
}
